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

//go:build !windows

package confirm

import (
	"fmt"
	"io"
	"os"

	"github.com/jetsetilly/spcecho/logger"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// Keypress reads answers from a terminal one key at a time. The terminal is
// put into cbreak mode for the duration of the question.
type Keypress struct {
	input  *os.File
	output io.Writer

	canAttr    unix.Termios
	cbreakAttr unix.Termios
}

// NewKeypress is the preferred method of initialisation for the Keypress
// type. The input must be a terminal.
func NewKeypress(input *os.File, output io.Writer) (*Keypress, error) {
	c := &Keypress{
		input:  input,
		output: output,
	}

	if err := termios.Tcgetattr(c.input.Fd(), &c.canAttr); err != nil {
		return nil, fmt.Errorf("confirm: %w", err)
	}

	c.cbreakAttr = c.canAttr
	termios.Cfmakecbreak(&c.cbreakAttr)

	return c, nil
}

// Confirm implements the Confirmer interface.
func (c *Keypress) Confirm(prompt string) bool {
	if err := termios.Tcsetattr(c.input.Fd(), termios.TCIFLUSH, &c.cbreakAttr); err != nil {
		logger.Log(logger.Allow, "confirm", err)
	}
	defer func() {
		if err := termios.Tcsetattr(c.input.Fd(), termios.TCIFLUSH, &c.canAttr); err != nil {
			logger.Log(logger.Allow, "confirm", err)
		}
	}()

	fmt.Fprintf(c.output, "%s (y / n) ", prompt)

	b := make([]byte, 1)
	for {
		n, err := c.input.Read(b)
		if err != nil {
			fmt.Fprintln(c.output)
			logAnswer(prompt, false)
			return false
		}
		if n == 0 {
			continue // for loop
		}

		if yes, ok := answer(b[0]); ok {
			// cbreak mode does not echo input
			fmt.Fprintf(c.output, "%c\n", b[0])
			logAnswer(prompt, yes)
			return yes
		}
	}
}
