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


// Package preferences groups the user preferences for spcecho and registers
// them with a prefs.Disk instance.
package preferences

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/spcecho/prefs"
)

// DefaultPrefsFile is the name of the preferences file in the resource path.
const DefaultPrefsFile = "preferences"

// Range of sample rates supported by the preview.
const (
	MinSampleRate = 8000
	MaxSampleRate = 192000
)

// Preferences for spcecho.
type Preferences struct {
	dsk *prefs.Disk

	// ask y/n questions with a single keypress when stdin is a terminal
	Keypress prefs.Bool

	// extension added to snapshot filenames that do not have it
	Extension prefs.String

	// length of rendered preview in seconds
	PreviewSeconds prefs.Float

	// amplitude of the impulse used when no source file is given. in the
	// range 0.0 to 1.0
	PreviewImpulse prefs.Float

	// sample rate and bit depth of the rendered preview. stored as a single
	// value of the form "32000 16"
	PreviewFormat *prefs.Generic

	SampleRate int
	BitDepth   int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Preferences are loaded from the file at path and the
// file is created if it does not exist.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{}

	p.PreviewFormat = prefs.NewGeneric(
		func(v prefs.Value) error {
			s, ok := v.(string)
			if !ok {
				return fmt.Errorf("preferences: preview format must be a string")
			}
			f := strings.Fields(s)
			if len(f) != 2 {
				return fmt.Errorf("preferences: preview format must be rate and depth: %q", s)
			}
			rate, err := strconv.Atoi(f[0])
			if err != nil || rate < MinSampleRate || rate > MaxSampleRate {
				return fmt.Errorf("preferences: preview sample rate not supported: %q", f[0])
			}
			depth, err := strconv.Atoi(f[1])
			if err != nil || (depth != 8 && depth != 16 && depth != 24) {
				return fmt.Errorf("preferences: preview bit depth not supported: %q", f[1])
			}
			p.SampleRate = rate
			p.BitDepth = depth
			return nil
		},
		func() prefs.Value {
			return fmt.Sprintf("%d %d", p.SampleRate, p.BitDepth)
		},
	)

	p.SetDefaults()

	var err error
	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("confirm.keypress", &p.Keypress)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("snapshot.extension", &p.Extension)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("preview.seconds", &p.PreviewSeconds)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("preview.impulse", &p.PreviewImpulse)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("preview.format", p.PreviewFormat)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Load(true)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	p.Keypress.Set(true)
	p.Extension.Set(".spc")
	p.PreviewSeconds.Set(3.0)
	p.PreviewImpulse.Set(0.8)

	// the native sample rate of the SPC700
	p.SampleRate = 32000
	p.BitDepth = 16
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
