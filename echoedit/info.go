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
	"io"

	"github.com/jetsetilly/spcecho/codec"
	"github.com/jetsetilly/spcecho/hardware/dsp/addresses"
	"github.com/jetsetilly/spcecho/hardware/dsp/registers"
	"github.com/jetsetilly/spcecho/placement"
	"github.com/jetsetilly/spcecho/snapshot"
)

// Info writes the current echo settings of the input snapshot to output.
// Nothing is changed.
func Info(output io.Writer, input string, ext string) error {
	ld := snapshot.NewLoader(input, ext)
	err := ld.Load()
	if err != nil {
		return err
	}

	st, err := registers.Load(ld.Data)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "%s (sha1 %s)\n", ld.Filename, ld.Hash)
	WriteRegisters(output, st)

	flg := ld.Data[addresses.FLG.Offset()]
	writes := "enabled"
	if flg&addresses.FlagEchoDisable != 0 {
		writes = "disabled"
	}
	fmt.Fprintf(output, "%-16s %-5s %02x    echo writes %s\n", "flags", addresses.FLG, flg, writes)

	end, found := placement.FindSampleDataEnd(ld.Data)
	if !found {
		fmt.Fprintln(output, "no audio data found")
	} else {
		fmt.Fprintf(output, "end of audio data at 0x%04X\n", end)
	}
	if page, ok := placement.SuggestedPage(end); ok {
		fmt.Fprintf(output, "viable echo buffer address at 0x%02X00\n", page)
	} else {
		fmt.Fprintln(output, "no viable echo buffer address")
	}

	if d := placement.CheckUnderflow(ld.Data, st); !d.Safe() {
		fmt.Fprintln(output, d.Caution())
	}
	if d := placement.CheckCapacity(st); !d.Safe() {
		fmt.Fprintln(output, d.Caution())
	}

	return nil
}

// WriteRegisters writes the value of each echo register in the Store with
// the value decoded into the units used on the command line.
func WriteRegisters(output io.Writer, st *registers.Store) {
	for _, id := range registers.All() {
		v := st.Value(id)

		var s string
		switch id {
		case registers.LeftVolume, registers.RightVolume, registers.Feedback:
			s = fmt.Sprintf("%d%%", codec.DecodeVolumePercent(v))
		case registers.EchoSpeed:
			s = fmt.Sprintf("%dms", codec.DecodeEchoSpeed(v))
		case registers.ChannelMask:
			s = codec.DecodeChannelMask(v)
		case registers.BufferAddress:
			s = fmt.Sprintf("0x%02X00", v)
		}

		fmt.Fprintf(output, "%-16s %-5s %02x    %s\n", id, id.DSP(), v, s)
	}
}
