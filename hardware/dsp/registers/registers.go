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

package registers

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/spcecho/curated"
	"github.com/jetsetilly/spcecho/hardware/dsp/addresses"
)

// FormatError is returned by Load() when the buffer is too short to contain
// the DSP register block.
const FormatError = "format error: snapshot too short: %d bytes (need at least %d)"

// ID identifies one of the echo registers managed by the Store.
type ID int

// List of valid ID values.
const (
	LeftVolume ID = iota
	RightVolume
	Feedback
	EchoSpeed
	ChannelMask
	BufferAddress

	NumRegisters
)

// all IDs in display order.
var all = [NumRegisters]ID{LeftVolume, RightVolume, Feedback, EchoSpeed, ChannelMask, BufferAddress}

// All returns the list of IDs in the order they should be displayed.
func All() []ID {
	return all[:]
}

func (id ID) String() string {
	switch id {
	case LeftVolume:
		return "left volume"
	case RightVolume:
		return "right volume"
	case Feedback:
		return "feedback"
	case EchoSpeed:
		return "echo speed"
	case ChannelMask:
		return "channel mask"
	case BufferAddress:
		return "buffer address"
	}
	return "unknown register"
}

// DSP returns the hardware register for the ID.
func (id ID) DSP() addresses.DSPRegister {
	switch id {
	case LeftVolume:
		return addresses.EVOLL
	case RightVolume:
		return addresses.EVOLR
	case Feedback:
		return addresses.EFB
	case EchoSpeed:
		return addresses.EDL
	case ChannelMask:
		return addresses.EON
	case BufferAddress:
		return addresses.ESA
	}
	panic(fmt.Sprintf("registers: no DSP register for ID %d", id))
}

// Offset returns the absolute offset of the register in the snapshot.
func (id ID) Offset() int {
	return id.DSP().Offset()
}

// Register is a single echo register.
type Register struct {
	ID    ID
	Value uint8
	Dirty bool
}

// Store is the set of echo registers for a snapshot.
type Store struct {
	buffer []byte
	regs   [NumRegisters]Register
}

// Load creates a new Store from the buffer. The buffer is not copied and
// must not be resized while the Store is in use.
func Load(buffer []byte) (*Store, error) {
	need := addresses.Base + addresses.WindowSize
	if len(buffer) < need {
		return nil, curated.Errorf(FormatError, len(buffer), need)
	}

	st := &Store{buffer: buffer}
	for _, id := range all {
		st.regs[id] = Register{
			ID:    id,
			Value: buffer[id.Offset()],
		}
	}

	return st, nil
}

// ReadOriginal returns the value of the register as it is in the buffer.
// This is the loaded value unless the buffer has been patched.
func (st *Store) ReadOriginal(id ID) uint8 {
	return st.buffer[id.Offset()]
}

// Set the register to a new value. The register is marked dirty even when the
// value has not changed.
func (st *Store) Set(id ID, value uint8) {
	st.regs[id].Value = value
	st.regs[id].Dirty = true
}

// Value returns the current value of the register.
func (st *Store) Value(id ID) uint8 {
	return st.regs[id].Value
}

// IsDirty returns true if the register has been Set().
func (st *Store) IsDirty(id ID) bool {
	return st.regs[id].Dirty
}

// Register returns a copy of the register.
func (st *Store) Register(id ID) Register {
	return st.regs[id]
}

// Registers returns a copy of every register, in display order.
func (st *Store) Registers() []Register {
	r := make([]Register, 0, NumRegisters)
	for _, id := range all {
		r = append(r, st.regs[id])
	}
	return r
}

// Dirty returns the list of registers that have been Set(), in display order.
func (st *Store) Dirty() []Register {
	var d []Register
	for _, id := range all {
		if st.regs[id].Dirty {
			d = append(d, st.regs[id])
		}
	}
	return d
}

// String returns the registers on one line with the canonical hardware name
// and value. Dirty registers are marked with an asterisk.
func (st *Store) String() string {
	s := strings.Builder{}
	for i, id := range all {
		if i > 0 {
			s.WriteString(" ")
		}
		r := st.regs[id]
		s.WriteString(fmt.Sprintf("%s=%02x", id.DSP(), r.Value))
		if r.Dirty {
			s.WriteString("*")
		}
	}
	return s.String()
}
