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
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jetsetilly/spcecho/curated"
	"github.com/jetsetilly/spcecho/logger"
)

// SourceError is returned when a source file cannot be loaded.
const SourceError = "preview: source: %v"

// PCM is stereo audio data. Values are in the range -1.0 to 1.0.
type PCM struct {
	SampleRate int
	Left       []float64
	Right      []float64
}

// Len returns the number of stereo samples.
func (p PCM) Len() int {
	return len(p.Left)
}

// Duration returns the length of the audio.
func (p PCM) Duration() time.Duration {
	if p.SampleRate == 0 {
		return 0
	}
	return time.Duration(float64(p.Len()) / float64(p.SampleRate) * float64(time.Second))
}

// Int16LE returns the audio as interleaved, little endian, signed 16 bit
// values.
func (p PCM) Int16LE() []byte {
	b := make([]byte, p.Len()*4)
	for i := range p.Left {
		binary.LittleEndian.PutUint16(b[i*4:], uint16(toInt(p.Left[i], 16)))
		binary.LittleEndian.PutUint16(b[i*4+2:], uint16(toInt(p.Right[i], 16)))
	}
	return b
}

// toInt scales v to a signed integer of the bit depth.
func toInt(v float64, bitDepth int) int {
	v = math.Max(-1.0, math.Min(1.0, v))
	return int(math.Round(v * float64(int(1)<<(bitDepth-1)-1)))
}

// Impulse returns a single sample at the given amplitude.
func Impulse(sampleRate int, amplitude float64) PCM {
	return PCM{
		SampleRate: sampleRate,
		Left:       []float64{amplitude},
		Right:      []float64{amplitude},
	}
}

// LoadSource loads audio from a WAV or MP3 file. The file type is decided by
// the file extension. Mono files are copied to both channels.
func LoadSource(filename string) (PCM, error) {
	f, err := os.Open(filename)
	if err != nil {
		return PCM{}, curated.Errorf(SourceError, err)
	}
	defer f.Close()

	var p PCM

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav":
		p, err = decodeWAV(f)
	case ".mp3":
		p, err = decodeMP3(f)
	default:
		err = fmt.Errorf("unsupported file type: %s", filename)
	}
	if err != nil {
		return PCM{}, curated.Errorf(SourceError, err)
	}

	logger.Logf(logger.Allow, "preview", "source %s: %dHz %v", filename, p.SampleRate, p.Duration())

	return p, nil
}

func decodeWAV(r io.ReadSeeker) (PCM, error) {
	dec := wav.NewDecoder(r)
	if dec == nil {
		return PCM{}, fmt.Errorf("wav: error decoding")
	}
	if !dec.IsValidFile() {
		return PCM{}, fmt.Errorf("wav: not a valid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return PCM{}, fmt.Errorf("wav: %w", err)
	}

	chans := int(dec.NumChans)
	depth := int(dec.BitDepth)
	if chans == 0 || depth == 0 {
		return PCM{}, fmt.Errorf("wav: unsupported format")
	}

	scale := float64(int(1) << (depth - 1))

	// eight bit wav data is unsigned
	var offset int
	if depth == 8 {
		offset = 128
	}

	p := PCM{
		SampleRate: int(dec.SampleRate),
		Left:       make([]float64, 0, len(buf.Data)/chans),
		Right:      make([]float64, 0, len(buf.Data)/chans),
	}

	for i := 0; i+chans <= len(buf.Data); i += chans {
		l := float64(buf.Data[i]-offset) / scale
		r := l
		if chans > 1 {
			r = float64(buf.Data[i+1]-offset) / scale
		}
		p.Left = append(p.Left, l)
		p.Right = append(p.Right, r)
	}

	return p, nil
}

func decodeMP3(r io.Reader) (PCM, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return PCM{}, fmt.Errorf("mp3: %w", err)
	}

	// the decoded stream is always 16bit little endian stereo, even if the
	// source is mono. four bytes per sample
	data, err := io.ReadAll(dec)
	if err != nil {
		return PCM{}, fmt.Errorf("mp3: %w", err)
	}

	p := PCM{
		SampleRate: dec.SampleRate(),
		Left:       make([]float64, 0, len(data)/4),
		Right:      make([]float64, 0, len(data)/4),
	}

	for i := 0; i+4 <= len(data); i += 4 {
		l := int16(binary.LittleEndian.Uint16(data[i:]))
		r := int16(binary.LittleEndian.Uint16(data[i+2:]))
		p.Left = append(p.Left, float64(l)/32768.0)
		p.Right = append(p.Right, float64(r)/32768.0)
	}

	return p, nil
}
