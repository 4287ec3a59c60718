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

// Package prefs stores user preferences on disk and allows them to be
// overridden for a single run from the command line.
//
// Preference values are typed (Bool, Int, Float, String and Generic) and are
// registered with a Disk instance under a key:
//
//	dsk, err := prefs.NewDisk(paths.ResourcePath("preferences"))
//	var keypress prefs.Bool
//	err = dsk.Add("confirm.keypress", &keypress)
//	err = dsk.Load(true)
//
// The file is a list of "key :: value" lines following a warning line. Keys
// in the file that have not been added to the Disk instance are preserved
// when the file is saved, so that more than one Disk instance can share the
// same file.
//
// Command line preferences are pushed with PushCommandLineStack() as a string
// of the form "key::value; key::value". Values in the top group of the stack
// take precedence over values loaded from disk and are consumed when used.
package prefs
