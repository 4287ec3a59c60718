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

package placement

import "fmt"

// Kind of placement problem.
type Kind int

// List of valid Kind values.
const (
	Safe Kind = iota
	Underflow
	Overflow
)

func (k Kind) String() string {
	switch k {
	case Safe:
		return "safe"
	case Underflow:
		return "buffer underflow"
	case Overflow:
		return "buffer overflow"
	}
	return "unknown"
}

// Decision describes the result of a placement check. The zero value is a
// safe decision.
type Decision struct {
	Kind Kind

	// for an underflow the suggestion is the lowest page above the sample
	// data. for an overflow it is the largest EDL value that fits
	Suggestion uint8

	// CanFix is false if there is no suggestion to accept
	CanFix bool

	// register values at the time of the check
	Page  uint8
	Speed uint8
}

// Safe returns true if no confirmation is required.
func (d Decision) Safe() bool {
	return d.Kind == Safe
}

// Caution is the message describing the problem.
func (d Decision) Caution() string {
	switch d.Kind {
	case Underflow:
		if !d.CanFix {
			return fmt.Sprintf("CAUTION: buffer underflow detected! No echo buffer address above the audio data (current 0x%02X00)", d.Page)
		}
		return fmt.Sprintf("CAUTION: buffer underflow detected! Consider raising buffer address to: 0x%02X00", d.Suggestion)
	case Overflow:
		return fmt.Sprintf("CAUTION: buffer overflow detected! Consider lowering echo speed to: %dms", int(d.Suggestion)<<4)
	}
	return ""
}

// Question asks whether the suggestion should be accepted. Empty if there is
// nothing to accept.
func (d Decision) Question() string {
	if !d.CanFix {
		return ""
	}
	switch d.Kind {
	case Underflow:
		return "Raise echo buffer address?"
	case Overflow:
		return "Lower echo speed?"
	}
	return ""
}

// Warning is shown if the suggestion is declined.
func (d Decision) Warning() string {
	switch d.Kind {
	case Underflow:
		return "Echo buffer underflow can overwrite music data and cause unexpected and/or unwanted glitches in SPC playback."
	case Overflow:
		return "Echo buffer overflow can cause unexpected and/or unwanted glitches in SPC playback."
	}
	return ""
}

// Proceed is the final question asked if the suggestion is declined.
const Proceed = "Proceed anyway?"
