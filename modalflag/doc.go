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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes and
// allows different flags for each mode.
//
// Whereas with flag.FlagSet you call Parse() with the array of strings as the
// only argument, with modalflag you first call NewArgs() with the array of
// arguments and then Parse() with no arguments:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("PATCH", "INFO", "PREVIEW")
//	p, err := md.Parse()
//
// The first sub-mode in the list is the default mode. It is selected if the
// first argument is not the name of a sub-mode or if the first argument is a
// flag that the top level does not know about. Sub-mode names are case
// insensitive.
//
// Once a mode has been selected, the flags for that mode are added after a
// call to NewMode() and then Parse() is called again:
//
//	md.NewMode()
//	left := md.AddString("l", "", "left echo volume")
//	p, err = md.Parse()
//
// In a mode with no sub-modes, flags and positional arguments can be mixed.
// This means that "song.spc -l 50 out.spc" is the same as
// "-l 50 song.spc out.spc". Positional arguments are retrieved with
// RemainingArgs() or GetArg().
//
// Help messages are printed to the Output field when the -help flag is given.
// The Parse() function returns ParseHelp in that case.
package modalflag
