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

package addresses

// Base is the file offset of the DSP register block in an SPC snapshot.
const Base = 0x10100

// WindowSize is the size of the DSP register block. A snapshot must be at
// least Base+WindowSize bytes long.
const WindowSize = 0x80

// DSPRegister specifies the offset of a register relative to Base.
type DSPRegister int

// Echo registers.
const (
	EFB   DSPRegister = 0x0d // echo feedback
	EVOLL DSPRegister = 0x2c // echo volume left
	EVOLR DSPRegister = 0x3c // echo volume right
	EON   DSPRegister = 0x4d // echo enable per channel
	FLG   DSPRegister = 0x6c // reset, mute, echo disable and noise clock
	ESA   DSPRegister = 0x6d // echo buffer start page
	EDL   DSPRegister = 0x7d // echo delay in 16ms units
)

// FlagEchoDisable is the bit in the FLG register that turns off writes to the
// echo buffer. A set bit silences the echo.
const FlagEchoDisable = uint8(0x20)

// Offset returns the absolute file offset of the register.
func (r DSPRegister) Offset() int {
	return Base + int(r)
}

func (r DSPRegister) String() string {
	if s, ok := Canonical[r]; ok {
		return s
	}
	return "unknown"
}

// Canonical lists the echo registers along with the canonical names for those
// registers, as used in the SPC700 reference documentation.
var Canonical = map[DSPRegister]string{
	EFB:   "EFB",
	EVOLL: "EVOLL",
	EVOLR: "EVOLR",
	EON:   "EON",
	FLG:   "FLG",
	ESA:   "ESA",
	EDL:   "EDL",
}

// Sound RAM geometry. The echo buffer is placed at a page boundary.
const (
	RAMTop   = 0xffff
	PageSize = 0x100

	// the lowest page that can be used for the echo buffer. page zero and the
	// stack page are in constant use by the sound driver
	MinEchoPage = 0x02
)

// EchoBytesPerUnit is the number of bytes of echo buffer used for every unit
// of the EDL register. Each unit is 16ms of echo.
const EchoBytesPerUnit = 0x800
