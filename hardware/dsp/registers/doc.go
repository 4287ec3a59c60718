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


// Package registers holds the six echo registers of an SPC snapshot along
// with the buffer they were loaded from.
//
// Values are read from the buffer once, at load time. Set() changes the value
// held by the Store and marks the register as dirty but never writes to the
// buffer. Writing dirty registers back to the buffer is the job of the patch
// package.
package registers
