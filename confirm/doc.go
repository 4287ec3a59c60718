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


// Package confirm asks the user yes/no questions.
//
// The Confirmer interface is satisfied by several types. Keypress reads a
// single key from a terminal in cbreak mode. Line reads a line at a time and
// is used when the input is not a terminal. AssumeYes answers yes to every
// question without reading anything, for the -y flag. Scripted answers from
// a list and is useful for testing.
//
// Confirmers re-prompt until they get a valid answer. End of input is
// treated as a no.
package confirm
