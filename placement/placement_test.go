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

package placement_test

import (
	"testing"

	"github.com/jetsetilly/spcecho/curated"
	"github.com/jetsetilly/spcecho/hardware/dsp/addresses"
	"github.com/jetsetilly/spcecho/hardware/dsp/registers"
	"github.com/jetsetilly/spcecho/placement"
	"github.com/jetsetilly/spcecho/test"
)

func newStore(t *testing.T, buf []byte) *registers.Store {
	t.Helper()
	st, err := registers.Load(buf)
	test.DemandSuccess(t, err)
	return st
}

func newBuffer() []byte {
	return make([]byte, addresses.Base+addresses.WindowSize)
}

func TestFindSampleDataEnd(t *testing.T) {
	buf := newBuffer()

	end, ok := placement.FindSampleDataEnd(buf)
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, end, 0)

	// 0xff is treated the same as 0x00
	for i := 0x9000; i <= 0xffff; i++ {
		buf[i] = 0xff
	}
	buf[0x8000] = 0xaa

	end, ok = placement.FindSampleDataEnd(buf)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, end, 0x8000)

	page, ok := placement.SuggestedPage(end)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, page, 0x81)

	// the DSP register block is above sound RAM and is never scanned
	buf[addresses.Base+0x10] = 0x55
	end, _ = placement.FindSampleDataEnd(buf)
	test.ExpectEquality(t, end, 0x8000)

	// address zero is never considered
	buf = newBuffer()
	buf[0] = 0x12
	_, ok = placement.FindSampleDataEnd(buf)
	test.ExpectFailure(t, ok)
}

func TestSuggestedPage(t *testing.T) {
	page, ok := placement.SuggestedPage(0x80ff)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, page, 0x81)

	// low pages are clamped
	page, ok = placement.SuggestedPage(0)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, page, addresses.MinEchoPage)

	page, ok = placement.SuggestedPage(0x0001)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, page, addresses.MinEchoPage)

	page, ok = placement.SuggestedPage(0xfe00)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, page, 0xff)

	// no page above the last page
	_, ok = placement.SuggestedPage(0xff00)
	test.ExpectFailure(t, ok)
}

func TestAuto(t *testing.T) {
	buf := newBuffer()
	buf[0x8000] = 0xaa
	st := newStore(t, buf)

	rep, err := placement.Auto(buf, st)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, rep.End, 0x8000)
	test.ExpectEquality(t, rep.Page, 0x81)
	test.ExpectSuccess(t, st.IsDirty(registers.BufferAddress))
	test.ExpectEquality(t, st.Value(registers.BufferAddress), 0x81)
	test.ExpectEquality(t, rep.String(), "End of audio data found at address: 0x8000\nViable echo buffer address at: 0x8100")

	// degenerate case
	buf = newBuffer()
	st = newStore(t, buf)
	rep, err = placement.Auto(buf, st)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, rep.Found)
	test.ExpectEquality(t, rep.Page, addresses.MinEchoPage)
	test.ExpectEquality(t, st.Value(registers.BufferAddress), 0x02)
	test.ExpectSuccess(t, st.IsDirty(registers.BufferAddress))

	// data in the last page
	buf = newBuffer()
	buf[0xff10] = 0x01
	st = newStore(t, buf)
	_, err = placement.Auto(buf, st)
	test.ExpectSuccess(t, curated.Is(err, placement.PlacementError))
	test.ExpectFailure(t, st.IsDirty(registers.BufferAddress))
}

func TestUnderflow(t *testing.T) {
	buf := newBuffer()
	buf[0x8000] = 0xaa
	st := newStore(t, buf)

	st.Set(registers.BufferAddress, 0x40)
	d := placement.CheckUnderflow(buf, st)
	test.ExpectEquality(t, d.Kind, placement.Underflow)
	test.ExpectEquality(t, d.Suggestion, 0x81)
	test.ExpectSuccess(t, d.CanFix)
	test.ExpectEquality(t, d.Question(), "Raise echo buffer address?")
	test.ExpectEquality(t, d.Caution(), "CAUTION: buffer underflow detected! Consider raising buffer address to: 0x8100")

	// accepting the fix
	err := placement.Resolve(st, d, true, false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, st.Value(registers.BufferAddress), 0x81)

	// now safe
	d = placement.CheckUnderflow(buf, st)
	test.ExpectSuccess(t, d.Safe())

	// exactly the suggested page is safe and so is anything above
	st.Set(registers.BufferAddress, 0xc0)
	test.ExpectSuccess(t, placement.CheckUnderflow(buf, st).Safe())
}

func TestUnderflowDeclined(t *testing.T) {
	buf := newBuffer()
	buf[0x8000] = 0xaa
	st := newStore(t, buf)
	st.Set(registers.BufferAddress, 0x40)

	d := placement.CheckUnderflow(buf, st)

	// proceed anyway leaves the register unchanged
	err := placement.Resolve(st, d, false, true)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, st.Value(registers.BufferAddress), 0x40)

	// declining both is an error
	err = placement.Resolve(st, d, false, false)
	test.ExpectSuccess(t, curated.Is(err, placement.PlacementError))
	test.ExpectEquality(t, st.Value(registers.BufferAddress), 0x40)
}

func TestUnderflowNoFix(t *testing.T) {
	buf := newBuffer()
	buf[0xff80] = 0x01
	st := newStore(t, buf)
	st.Set(registers.BufferAddress, 0xf0)

	d := placement.CheckUnderflow(buf, st)
	test.ExpectEquality(t, d.Kind, placement.Underflow)
	test.ExpectFailure(t, d.CanFix)
	test.ExpectEquality(t, d.Question(), "")

	// accepting a fix that doesn't exist has no effect
	err := placement.Resolve(st, d, true, false)
	test.ExpectSuccess(t, curated.Is(err, placement.PlacementError))
	test.ExpectEquality(t, st.Value(registers.BufferAddress), 0xf0)
}

func TestOverflow(t *testing.T) {
	buf := newBuffer()
	st := newStore(t, buf)

	st.Set(registers.BufferAddress, 0xfe)
	st.Set(registers.EchoSpeed, 15)

	d := placement.CheckCapacity(st)
	test.ExpectEquality(t, d.Kind, placement.Overflow)
	test.ExpectEquality(t, d.Suggestion, 0)
	test.ExpectEquality(t, d.Question(), "Lower echo speed?")
	test.ExpectEquality(t, d.Caution(), "CAUTION: buffer overflow detected! Consider lowering echo speed to: 0ms")

	err := placement.Resolve(st, d, true, false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, st.Value(registers.EchoSpeed), 0)
	test.ExpectSuccess(t, placement.CheckCapacity(st).Safe())

	// page 0xc0 with speed 15 overflows and the suggested speed is 7
	st.Set(registers.BufferAddress, 0xc0)
	st.Set(registers.EchoSpeed, 15)
	d = placement.CheckCapacity(st)
	test.ExpectEquality(t, d.Kind, placement.Overflow)
	test.ExpectEquality(t, d.Suggestion, 7)
	test.ExpectEquality(t, placement.RequiredEnd(0xc0, 7), 0xf800)

	// declining both
	err = placement.Resolve(st, d, false, false)
	test.ExpectSuccess(t, curated.Is(err, placement.PlacementError))
	test.ExpectEquality(t, st.Value(registers.EchoSpeed), 15)
}

func TestCapacityBoundary(t *testing.T) {
	st := newStore(t, newBuffer())

	// ends at 0xf800 + 0x0800 = 0x10000, one past the top of sound RAM
	st.Set(registers.BufferAddress, 0xf8)
	st.Set(registers.EchoSpeed, 1)
	test.ExpectEquality(t, placement.CheckCapacity(st).Kind, placement.Overflow)

	st.Set(registers.BufferAddress, 0xf7)
	test.ExpectSuccess(t, placement.CheckCapacity(st).Safe())

	// speed zero always fits
	st.Set(registers.BufferAddress, 0xff)
	st.Set(registers.EchoSpeed, 0)
	test.ExpectSuccess(t, placement.CheckCapacity(st).Safe())
}

func TestSafeResolve(t *testing.T) {
	st := newStore(t, newBuffer())
	test.ExpectSuccess(t, placement.Resolve(st, placement.Decision{}, false, false))
	test.ExpectEquality(t, len(st.Dirty()), 0)
}
