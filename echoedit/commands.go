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
	"github.com/jetsetilly/spcecho/codec"
	"github.com/jetsetilly/spcecho/hardware/dsp/registers"
)

// Commands are the register values requested by the user, as typed on the
// command line. Empty fields leave the register unchanged, except for
// BufferAddress where an empty field asks for automatic placement.
type Commands struct {
	LeftVolume    string
	RightVolume   string
	Feedback      string
	EchoSpeed     string
	ChannelMask   string
	BufferAddress string
}

type command struct {
	id     registers.ID
	text   string
	encode func(string) (uint8, error)
}

func (cmds Commands) list() []command {
	volume := func(name string) func(string) (uint8, error) {
		return func(s string) (uint8, error) {
			return codec.EncodeVolumePercent(name, s)
		}
	}

	return []command{
		{id: registers.LeftVolume, text: cmds.LeftVolume, encode: volume(codec.FieldLeftVolume)},
		{id: registers.RightVolume, text: cmds.RightVolume, encode: volume(codec.FieldRightVolume)},
		{id: registers.Feedback, text: cmds.Feedback, encode: volume(codec.FieldFeedback)},
		{id: registers.EchoSpeed, text: cmds.EchoSpeed, encode: codec.EncodeEchoSpeed},
		{id: registers.ChannelMask, text: cmds.ChannelMask, encode: codec.EncodeChannelMask},
		{id: registers.BufferAddress, text: cmds.BufferAddress, encode: codec.EncodeBufferAddressHex},
	}
}

// AutoPlacement returns true if no buffer address has been given.
func (cmds Commands) AutoPlacement() bool {
	return cmds.BufferAddress == ""
}

// Apply sets the registers in the Store. Every command is encoded before any
// register is set so an error leaves the Store unchanged.
func (cmds Commands) Apply(st *registers.Store) error {
	type value struct {
		id registers.ID
		v  uint8
	}
	var values []value

	for _, c := range cmds.list() {
		if c.text == "" {
			continue // for loop
		}
		v, err := c.encode(c.text)
		if err != nil {
			return err
		}
		values = append(values, value{id: c.id, v: v})
	}

	for _, v := range values {
		st.Set(v.id, v.v)
	}

	return nil
}
