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

//go:build windows

package confirm

import (
	"fmt"
	"io"
	"os"
)

// Keypress is not available on windows.
type Keypress struct {
	Line
}

// NewKeypress always fails on windows.
func NewKeypress(_ *os.File, _ io.Writer) (*Keypress, error) {
	return nil, fmt.Errorf("confirm: keypress input not supported on windows")
}
