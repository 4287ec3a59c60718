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


// Package patch writes the dirty echo registers of a registers.Store back to
// the snapshot buffer. The echo disable bit of the FLG register is always
// cleared, so that a patched snapshot plays with echo whether or not the
// original sound driver enabled it.
package patch

import (
	"github.com/jetsetilly/spcecho/hardware/dsp/addresses"
	"github.com/jetsetilly/spcecho/hardware/dsp/registers"
	"github.com/jetsetilly/spcecho/logger"
)

// Apply writes every dirty register in the Store to the buffer and clears the
// echo disable bit of FLG. Other bits of FLG are preserved. The buffer is
// modified in place and returned.
//
// The buffer must be the one the Store was loaded from, or a copy of it.
func Apply(buffer []byte, st *registers.Store) []byte {
	for _, r := range st.Dirty() {
		buffer[r.ID.Offset()] = r.Value
		logger.Logf(logger.Allow, "patch", "%s (%s) = %#02x", r.ID.DSP(), r.ID, r.Value)
	}

	flg := addresses.FLG.Offset()
	if buffer[flg]&addresses.FlagEchoDisable != 0 {
		logger.Log(logger.Allow, "patch", "clearing echo disable bit in FLG")
	}
	buffer[flg] &^= addresses.FlagEchoDisable

	return buffer
}
