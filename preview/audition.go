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

//go:build !headless

package preview

import (
	"bytes"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/jetsetilly/spcecho/curated"
	"github.com/jetsetilly/spcecho/logger"
)

// AuditionError is returned when the audio cannot be played.
const AuditionError = "preview: audition: %v"

// Audition plays the audio through the default audio device and returns when
// playback has finished.
func Audition(pcm PCM) error {
	op := &oto.NewContextOptions{
		SampleRate:   pcm.SampleRate,
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return curated.Errorf(AuditionError, err)
	}
	<-ready

	player := ctx.NewPlayer(bytes.NewReader(pcm.Int16LE()))
	defer player.Close()

	logger.Logf(logger.Allow, "preview", "playing %v of audio", pcm.Duration())

	player.Play()
	for player.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}

	if err := player.Err(); err != nil {
		return curated.Errorf(AuditionError, err)
	}

	return nil
}
