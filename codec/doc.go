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

// Package codec converts the values a user types on the command line into the
// single byte encodings used by the SPC700 DSP echo registers, and back again
// for display.
//
// All functions are pure. Failures are curated errors with one of two
// patterns: FormatError when the text cannot be read as the expected kind of
// value, and RangeError when the value is readable but outside the domain of
// the register. Both patterns name the field, so that the message can be
// shown to the user directly:
//
//	v, err := codec.EncodeVolumePercent(codec.FieldLeftVolume, "150")
//	// err.Error() == "range error: left echo volume: 150 is outside -100 to 100"
package codec

// List of error patterns. The first placeholder is the field name.
const (
	FormatError = "format error: %s: %v"
	RangeError  = "range error: %s: %v"
)

// Field names used in error messages.
const (
	FieldLeftVolume    = "left echo volume"
	FieldRightVolume   = "right echo volume"
	FieldFeedback      = "feedback"
	FieldEchoSpeed     = "echo speed"
	FieldChannelMask   = "channel mask"
	FieldBufferAddress = "buffer address"
)
