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

// Package addresses contains the location of the SPC700 DSP registers in an
// SPC snapshot file and the canonical names for those registers.
//
// The DSP register block is stored in the snapshot after the 64KB of sound
// RAM, beginning at file offset Base. Only the registers that control the
// echo effect are listed. Register values are relative to Base and are turned
// into absolute file offsets with the Offset() function.
package addresses
