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

// Package logger is the central log for spcecho. Entries are made up of a tag
// and a detail string. The tag is normally the name of the package making the
// entry, for example:
//
//	logger.Logf(logger.Allow, "placement", "end of sample data at %#04x", end)
//
// Consecutive identical entries are folded into one entry with a repeat count.
// The log is only echoed to an io.Writer if SetEcho() has been called, which
// the command line does for the -log flag. Otherwise entries are kept in
// memory. The command line shows the last entries with Tail() after an
// unexpected error.
//
// A Permission is required to make a log entry. The Allow value is suitable
// for most purposes.
package logger
