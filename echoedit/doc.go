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


// Package echoedit ties the other packages together to perform one edit of
// an SPC snapshot: load the file, set the registers from the user's
// commands, resolve the placement of the echo buffer, patch the buffer and
// save the result.
//
// The Editor never reads from stdin directly. All questions are asked
// through a confirm.Confirmer and all messages are written to an io.Writer.
package echoedit
