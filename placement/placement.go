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

import (
	"fmt"

	"github.com/jetsetilly/spcecho/curated"
	"github.com/jetsetilly/spcecho/hardware/dsp/addresses"
	"github.com/jetsetilly/spcecho/hardware/dsp/registers"
	"github.com/jetsetilly/spcecho/logger"
)

// PlacementError is returned when a placement problem is left unresolved.
const PlacementError = "placement error: %v"

// FindSampleDataEnd returns the highest address in sound RAM whose value is
// neither 0x00 nor 0xff. Address zero is never considered. The bool is false
// if no such address was found, in which case the address is zero.
func FindSampleDataEnd(buffer []byte) (uint16, bool) {
	i := addresses.RAMTop
	if i >= len(buffer) {
		i = len(buffer) - 1
	}
	for ; i > 0; i-- {
		if buffer[i] != 0x00 && buffer[i] != 0xff {
			return uint16(i), true
		}
	}
	return 0, false
}

// SuggestedPage returns the first page above the address. The lowest page
// returned is addresses.MinEchoPage. The bool is false if the address is in
// the last page of sound RAM, meaning there is no page above it.
func SuggestedPage(end uint16) (uint8, bool) {
	p := int(end&0xff00)>>8 + 1
	if p < addresses.MinEchoPage {
		p = addresses.MinEchoPage
	}
	if p > 0xff {
		return 0, false
	}
	return uint8(p), true
}

// Report is the result of automatic placement.
type Report struct {
	End   uint16
	Found bool
	Page  uint8
}

func (r Report) String() string {
	s := fmt.Sprintf("End of audio data found at address: 0x%04X\n", r.End)
	if !r.Found {
		s = "No audio data found in sound RAM\n"
	}
	return s + fmt.Sprintf("Viable echo buffer address at: 0x%02X00", r.Page)
}

// Auto places the echo buffer immediately after the sample data and marks the
// BufferAddress register as dirty.
//
// When there is no sample data the buffer is placed at addresses.MinEchoPage
// (0x02) rather than page 0x01. Page 0x01 is the SPC700 stack page and is
// also refused by codec.EncodeBufferAddressHex.
func Auto(buffer []byte, st *registers.Store) (Report, error) {
	end, found := FindSampleDataEnd(buffer)
	if !found {
		logger.Log(logger.Allow, "placement", "no sample data found")
	}

	page, ok := SuggestedPage(end)
	if !ok {
		return Report{End: end, Found: found}, curated.Errorf(PlacementError,
			fmt.Errorf("no room for echo buffer above sample data ending at %#04x", end))
	}

	st.Set(registers.BufferAddress, page)
	logger.Logf(logger.Allow, "placement", "echo buffer placed at page %#02x", page)

	return Report{End: end, Found: found, Page: page}, nil
}

// CheckUnderflow compares the value of the BufferAddress register against the
// end of the sample data in the buffer.
func CheckUnderflow(buffer []byte, st *registers.Store) Decision {
	end, _ := FindSampleDataEnd(buffer)
	page := st.Value(registers.BufferAddress)

	suggested, ok := SuggestedPage(end)
	if !ok {
		logger.Logf(logger.Allow, "placement", "underflow: page %#02x and no page above %#04x", page, end)
		return Decision{Kind: Underflow, Page: page, Speed: st.Value(registers.EchoSpeed)}
	}

	if page >= suggested {
		return Decision{}
	}

	logger.Logf(logger.Allow, "placement", "underflow: page %#02x below %#02x", page, suggested)

	return Decision{
		Kind:       Underflow,
		Suggestion: suggested,
		CanFix:     true,
		Page:       page,
		Speed:      st.Value(registers.EchoSpeed),
	}
}

// RequiredEnd returns the address one past the end of the echo buffer for the
// page and EDL value.
func RequiredEnd(page uint8, speed uint8) int {
	return int(page)*addresses.PageSize + int(speed)*addresses.EchoBytesPerUnit
}

// CheckCapacity makes sure that the echo buffer fits in sound RAM with the
// current values of the BufferAddress and EchoSpeed registers.
//
// The test is a strict comparison against RAMTop so a buffer ending exactly
// at the top of sound RAM is treated as an overflow.
func CheckCapacity(st *registers.Store) Decision {
	page := st.Value(registers.BufferAddress)
	speed := st.Value(registers.EchoSpeed)

	if RequiredEnd(page, speed) <= addresses.RAMTop {
		return Decision{}
	}

	truncated := (0xff - page) >> 3

	logger.Logf(logger.Allow, "placement", "overflow: page %#02x speed %d (suggest %d)", page, speed, truncated)

	return Decision{
		Kind:       Overflow,
		Suggestion: truncated,
		CanFix:     true,
		Page:       page,
		Speed:      speed,
	}
}

// Resolve applies the answers to a Decision. If accept is true and the
// Decision can be fixed, the fix is made to the register Store. Otherwise, if
// proceed is true the problem is left in place. If neither then a
// PlacementError is returned.
//
// A safe Decision always resolves successfully.
func Resolve(st *registers.Store, d Decision, accept bool, proceed bool) error {
	if d.Safe() {
		return nil
	}

	if accept && d.CanFix {
		switch d.Kind {
		case Underflow:
			st.Set(registers.BufferAddress, d.Suggestion)
			logger.Logf(logger.Allow, "placement", "buffer address raised to %#02x", d.Suggestion)
		case Overflow:
			st.Set(registers.EchoSpeed, d.Suggestion)
			logger.Logf(logger.Allow, "placement", "echo speed lowered to %d", d.Suggestion)
		}
		return nil
	}

	if proceed {
		logger.Logf(logger.Allow, "placement", "proceeding with %s", d.Kind)
		return nil
	}

	return curated.Errorf(PlacementError, fmt.Errorf("%s not resolved", d.Kind))
}
