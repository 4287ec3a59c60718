// This file is part of spcecho.
//
// spcecho is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// spcecho is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with spcecho.  If not, see <https://www.gnu.org/licenses/>.

package preview

import (
	"fmt"
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/spcecho/curated"
	"github.com/jetsetilly/spcecho/logger"
)

// WAVError is returned when a WAV file cannot be written.
const WAVError = "preview: wav: %v"

// WriteWAV encodes the audio as a stereo WAV file of the given bit depth.
// Supported bit depths are 8, 16 and 24.
func WriteWAV(w io.WriteSeeker, pcm PCM, bitDepth int) error {
	switch bitDepth {
	case 8, 16, 24:
	default:
		return curated.Errorf(WAVError, fmt.Errorf("unsupported bit depth: %d", bitDepth))
	}

	// eight bit wav data is unsigned
	var offset int
	if bitDepth == 8 {
		offset = 128
	}

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 2,
			SampleRate:  pcm.SampleRate,
		},
		Data:           make([]int, 0, pcm.Len()*2),
		SourceBitDepth: bitDepth,
	}
	for i := range pcm.Left {
		buf.Data = append(buf.Data, toInt(pcm.Left[i], bitDepth)+offset, toInt(pcm.Right[i], bitDepth)+offset)
	}

	enc := wav.NewEncoder(w, pcm.SampleRate, bitDepth, 2, 1)
	if err := enc.Write(buf); err != nil {
		return curated.Errorf(WAVError, err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf(WAVError, err)
	}

	return nil
}

// SaveWAV writes the audio to a WAV file.
func SaveWAV(filename string, pcm PCM, bitDepth int) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf(WAVError, err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf(WAVError, err)
		}
	}()

	logger.Logf(logger.Allow, "preview", "writing audio to %s", filename)

	return WriteWAV(f, pcm, bitDepth)
}
