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

// Package paths contains functions to prepare paths to spcecho resources.
//
// The policy of ResourcePath() is simple: if the base resource directory,
// ".spcecho", is present in the program's current directory then that is the
// base path that will be used. If it is not present then the user's config
// directory is used, as returned by os.UserConfigDir().
//
// On a modern Linux system the path returned for the preferences file will
// be:
//
//	/home/user/.config/spcecho/preferences
package paths
