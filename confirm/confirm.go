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

package confirm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/spcecho/logger"
	"golang.org/x/term"
)

// Confirmer is implemented by types that can ask a yes/no question.
type Confirmer interface {
	Confirm(prompt string) bool
}

// New returns the most suitable Confirmer for the input. If keypress is true
// and the input is a terminal then a Keypress confirmer is returned.
// Otherwise a Line confirmer is used.
func New(input *os.File, output io.Writer, keypress bool) Confirmer {
	if keypress && term.IsTerminal(int(input.Fd())) {
		c, err := NewKeypress(input, output)
		if err == nil {
			return c
		}
		logger.Log(logger.Allow, "confirm", err)
	}
	return NewLine(input, output)
}

func logAnswer(prompt string, answer bool) {
	if answer {
		logger.Logf(logger.Allow, "confirm", "%s yes", prompt)
	} else {
		logger.Logf(logger.Allow, "confirm", "%s no", prompt)
	}
}

// answer returns whether the character is a yes, and whether it is a valid
// answer at all.
func answer(c byte) (bool, bool) {
	switch c {
	case 'y', 'Y':
		return true, true
	case 'n', 'N':
		return false, true
	}
	return false, false
}

// Line reads answers a line at a time. Only the first character of the line
// is considered.
type Line struct {
	input  *bufio.Reader
	output io.Writer
}

// NewLine is the preferred method of initialisation for the Line type.
func NewLine(input io.Reader, output io.Writer) *Line {
	return &Line{
		input:  bufio.NewReader(input),
		output: output,
	}
}

// Confirm implements the Confirmer interface.
func (c *Line) Confirm(prompt string) bool {
	for {
		fmt.Fprintf(c.output, "%s (y / n) ", prompt)

		s, err := c.input.ReadString('\n')
		s = strings.TrimSpace(s)
		if len(s) > 0 {
			if yes, ok := answer(s[0]); ok {
				logAnswer(prompt, yes)
				return yes
			}
		}

		if err != nil {
			fmt.Fprintln(c.output)
			logAnswer(prompt, false)
			return false
		}
	}
}

// AssumeYes answers yes to every question. The question and the answer are
// still written to the output.
type AssumeYes struct {
	Output io.Writer
}

// Confirm implements the Confirmer interface.
func (c AssumeYes) Confirm(prompt string) bool {
	if c.Output != nil {
		fmt.Fprintf(c.Output, "%s (y / n) y\n", prompt)
	}
	logAnswer(prompt, true)
	return true
}

// Scripted answers questions from a list of answers. Once the list is
// exhausted every answer is no. Every prompt is recorded.
type Scripted struct {
	Answers []bool
	Prompts []string
}

// Confirm implements the Confirmer interface.
func (c *Scripted) Confirm(prompt string) bool {
	c.Prompts = append(c.Prompts, prompt)
	if len(c.Answers) == 0 {
		return false
	}
	a := c.Answers[0]
	c.Answers = c.Answers[1:]
	return a
}
