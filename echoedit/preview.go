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

package echoedit

import (
	"fmt"
	"time"

	"github.com/jetsetilly/spcecho/hardware/dsp/registers"
	"github.com/jetsetilly/spcecho/logger"
	"github.com/jetsetilly/spcecho/placement"
	"github.com/jetsetilly/spcecho/preview"
	"github.com/jetsetilly/spcecho/snapshot"
)

// PreviewOptions control the source and length of a preview.
type PreviewOptions struct {
	// WAV or MP3 file to use as the source. if empty an impulse is used
	Source string

	// minimum length of the preview
	Seconds float64

	// amplitude and sample rate of the impulse
	Impulse    float64
	SampleRate int
}

// Preview renders the echo settings of the input snapshot, with the commands
// applied, without changing the snapshot. Placement problems are reported
// but no questions are asked.
func (ed *Editor) Preview(input string, cmds Commands, opts PreviewOptions) (preview.Results, error) {
	ld := snapshot.NewLoader(input, ed.Extension)
	err := ld.Load()
	if err != nil {
		return preview.Results{}, err
	}

	st, err := registers.Load(ld.Data)
	if err != nil {
		return preview.Results{}, err
	}

	err = cmds.Apply(st)
	if err != nil {
		return preview.Results{}, err
	}

	if !cmds.AutoPlacement() {
		if d := placement.CheckUnderflow(ld.Data, st); !d.Safe() {
			fmt.Fprintln(ed.Output, d.Caution())
		}
	}
	if d := placement.CheckCapacity(st); !d.Safe() {
		fmt.Fprintln(ed.Output, d.Caution())
	}

	var src preview.PCM
	if opts.Source != "" {
		src, err = preview.LoadSource(opts.Source)
		if err != nil {
			return preview.Results{}, err
		}
	} else {
		src = preview.Impulse(opts.SampleRate, opts.Impulse)
	}

	settings := preview.NewSettings(st)
	logger.Logf(logger.Allow, "preview", "%s: %s", ld.ShortName(), settings)

	res := preview.NewEmulation(settings).Run(src, time.Duration(opts.Seconds*float64(time.Second)))
	fmt.Fprintln(ed.Output, res)

	return res, nil
}
