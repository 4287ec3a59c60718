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

package codec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/spcecho/curated"
	"github.com/jetsetilly/spcecho/hardware/dsp/addresses"
)

// volume, feedback and speed domains
const (
	maxPercent  = 100
	maxSpeedMS  = 240
	msPerUnit   = 16
	numChannels = 8
)

// EncodeVolumePercent converts a percentage in the range -100 to 100 into a
// signed byte in the range -127 to 127. The conversion is
//
//	round(percent * 1.27)
//
// with halves rounded away from zero. Negative percentages invert the phase
// of the echo. The same encoding is used for both echo volumes and for the
// feedback register, the name argument is used in error messages.
func EncodeVolumePercent(name string, text string) (uint8, error) {
	p, err := strconv.Atoi(text)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return 0, curated.Errorf(RangeError, name, fmt.Sprintf("%s is outside -%d to %d", text, maxPercent, maxPercent))
		}
		return 0, curated.Errorf(FormatError, name, fmt.Sprintf("%q is not a whole number", text))
	}

	if p < -maxPercent || p > maxPercent {
		return 0, curated.Errorf(RangeError, name, fmt.Sprintf("%d is outside -%d to %d", p, maxPercent, maxPercent))
	}

	// integer arithmetic for round(p * 1.27)
	n := p * 127
	if n >= 0 {
		n = (n + 50) / 100
	} else {
		n = -((-n + 50) / 100)
	}

	return uint8(int8(n)), nil
}

// DecodeVolumePercent is the inverse of EncodeVolumePercent(). Register values
// that could not have been produced by the encoder (eg. -128) are clamped to
// the nearest percentage.
func DecodeVolumePercent(v uint8) int {
	n := int(int8(v)) * 100
	if n >= 0 {
		n = (n + 63) / 127
	} else {
		n = -((-n + 63) / 127)
	}
	return max(-maxPercent, min(maxPercent, n))
}

// EncodeEchoSpeed converts an echo time in milliseconds into the EDL register
// value. The DSP measures echo time in units of 16ms so the value is rounded
// to the nearest unit, with halves rounding up. The text must be digits only.
func EncodeEchoSpeed(text string) (uint8, error) {
	if text == "" || strings.TrimLeft(text, "0123456789") != "" {
		return 0, curated.Errorf(FormatError, FieldEchoSpeed, fmt.Sprintf("%q is not a whole number of milliseconds", text))
	}

	ms, err := strconv.Atoi(text)
	if err != nil || ms > maxSpeedMS {
		return 0, curated.Errorf(RangeError, FieldEchoSpeed, fmt.Sprintf("%sms is outside 0 to %dms", text, maxSpeedMS))
	}

	return uint8((ms + msPerUnit/2) / msPerUnit), nil
}

// DecodeEchoSpeed returns the echo time in milliseconds for an EDL register
// value. Only the lower four bits of the register are used by the DSP.
func DecodeEchoSpeed(v uint8) int {
	return int(v&0x0f) * msPerUnit
}

// EncodeChannelMask converts a string of exactly eight characters into the
// EON register value. Each character turns echo on (x, X or 1) or off (o, O or
// 0) for one channel. The first character is channel 1, which is the least
// significant bit of the register.
//
// For example, "XOXOXOOO" turns on echo for channels 1, 3 and 5 and gives a
// register value of 0b00010101.
func EncodeChannelMask(text string) (uint8, error) {
	if len(text) != numChannels {
		return 0, curated.Errorf(FormatError, FieldChannelMask, fmt.Sprintf("%q does not have %d channels", text, numChannels))
	}

	var v uint8
	for i := 0; i < numChannels; i++ {
		switch text[i] {
		case 'x', 'X', '1':
			v |= 1 << i
		case 'o', 'O', '0':
		default:
			return 0, curated.Errorf(FormatError, FieldChannelMask, fmt.Sprintf("%q is not a valid channel setting (use X or O)", text[i]))
		}
	}

	return v, nil
}

// DecodeChannelMask is the inverse of EncodeChannelMask(). It always uses the
// characters X and O.
func DecodeChannelMask(v uint8) string {
	var s strings.Builder
	for i := 0; i < numChannels; i++ {
		if v&(1<<i) != 0 {
			s.WriteByte('X')
		} else {
			s.WriteByte('O')
		}
	}
	return s.String()
}

// EncodeBufferAddressHex converts one or two hexadecimal digits into the ESA
// register value. The value is the page of sound RAM where the echo buffer
// starts, so C0 puts the echo buffer at address $C000. Pages below 02 are
// reserved for the sound driver.
func EncodeBufferAddressHex(text string) (uint8, error) {
	if len(text) == 0 || len(text) > 2 {
		return 0, curated.Errorf(FormatError, FieldBufferAddress, fmt.Sprintf("%q must be one or two hex digits", text))
	}

	v, err := strconv.ParseUint(text, 16, 8)
	if err != nil {
		return 0, curated.Errorf(FormatError, FieldBufferAddress, fmt.Sprintf("%q is not hexadecimal", text))
	}

	if v < addresses.MinEchoPage {
		return 0, curated.Errorf(RangeError, FieldBufferAddress, fmt.Sprintf("%02X is outside %02X to FF", v, addresses.MinEchoPage))
	}

	return uint8(v), nil
}
