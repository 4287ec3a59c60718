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


// Package snapshot reads and writes SPC snapshot files.
//
// The package knows nothing about the layout of the snapshot beyond the
// filename extension. Filenames without the extension have it added, so that
// "song" and "song.spc" refer to the same file:
//
//	ld := snapshot.NewLoader("song", ".spc")
//	err := ld.Load()
//
// Save() writes to a temporary file in the destination directory and renames
// it over the destination. A failed save never leaves a partial file.
package snapshot
