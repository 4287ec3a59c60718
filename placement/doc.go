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


// Package placement decides where the echo buffer should go in sound RAM.
//
// The echo buffer must start above the last byte of sample data (an
// underflow overwrites samples) and must end before the top of sound RAM (an
// overflow wraps around to page zero). Sound RAM occupies the first 64k of
// the snapshot so buffer indices are used directly as sound RAM addresses.
//
// The package never performs any I/O. Functions that find a problem return
// a Decision describing it. The caller asks the user what to do and passes
// the answers to Resolve(), which changes the registers or returns a
// PlacementError.
package placement
