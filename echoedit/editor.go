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

package echoedit

import (
	"fmt"
	"io"
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/spcecho/confirm"
	"github.com/jetsetilly/spcecho/curated"
	"github.com/jetsetilly/spcecho/hardware/dsp/registers"
	"github.com/jetsetilly/spcecho/logger"
	"github.com/jetsetilly/spcecho/patch"
	"github.com/jetsetilly/spcecho/placement"
	"github.com/jetsetilly/spcecho/snapshot"
)

// Patch errors.
const (
	// NotSaved is returned when the user declines to overwrite the output file.
	NotSaved    = "%s not saved"
	MemvizError = "memviz: %v"
)

// Editor performs edits of SPC snapshots.
type Editor struct {
	// questions are asked with the Confirmer. must not be nil
	Confirm confirm.Confirmer

	// messages for the user. must not be nil
	Output io.Writer

	// extension added to filenames. see snapshot.Filename()
	Extension string

	// if not empty a graph of the patched registers is written to the named
	// file in DOT format. the file is only created after the snapshot has
	// been saved
	Memviz string
}

// Patch the input snapshot with the commands and save it to output. If output
// is empty the input file is overwritten.
//
// Nothing is written unless every step succeeds.
func (ed *Editor) Patch(input string, output string, cmds Commands) error {
	ld := snapshot.NewLoader(input, ed.Extension)
	err := ld.Load()
	if err != nil {
		return err
	}

	st, err := registers.Load(ld.Data)
	if err != nil {
		return err
	}
	logger.Logf(logger.Allow, "registers", "loaded: %s", st)

	err = cmds.Apply(st)
	if err != nil {
		return err
	}

	err = ed.Place(ld.Data, st, cmds.AutoPlacement())
	if err != nil {
		return err
	}

	if output == "" {
		output = input
	}
	output = snapshot.Filename(output, ed.Extension)

	if snapshot.Exists(output) {
		if !ed.Confirm.Confirm(fmt.Sprintf("%s already exists! Overwrite?", output)) {
			return curated.Errorf(NotSaved, output)
		}
	}

	logger.Logf(logger.Allow, "registers", "saving: %s", st)
	data := patch.Apply(ld.Data, st)

	err = snapshot.Save(output, data)
	if err != nil {
		return err
	}

	fmt.Fprintf(ed.Output, "Writing echo DSP registers for %s... saved!\n", output)

	if ed.Memviz != "" {
		err = ed.writeMemviz(st)
		if err != nil {
			return err
		}
	}

	return nil
}

func (ed *Editor) writeMemviz(st *registers.Store) error {
	f, err := os.Create(ed.Memviz)
	if err != nil {
		return curated.Errorf(MemvizError, err)
	}
	defer f.Close()

	// memviz can only map values it can take the address of
	regs := st.Registers()
	memviz.Map(f, &regs)

	logger.Logf(logger.Allow, "memviz", "register graph written to %s", ed.Memviz)
	return nil
}

// Place resolves the echo buffer placement. With auto placement the buffer is
// placed immediately after the sample data. Otherwise the buffer address in
// the Store is checked against the sample data and the user is asked what to
// do about an underflow.
//
// In both cases the capacity of the buffer is checked last, against the final
// buffer address and echo speed.
func (ed *Editor) Place(buffer []byte, st *registers.Store, auto bool) error {
	if auto {
		rep, err := placement.Auto(buffer, st)
		if err != nil {
			return err
		}
		fmt.Fprintln(ed.Output, rep)
	} else {
		err := ed.resolve(st, placement.CheckUnderflow(buffer, st))
		if err != nil {
			return err
		}
	}

	return ed.resolve(st, placement.CheckCapacity(st))
}

func (ed *Editor) resolve(st *registers.Store, d placement.Decision) error {
	if d.Safe() {
		return nil
	}

	fmt.Fprintln(ed.Output, d.Caution())

	var accept bool
	if q := d.Question(); q != "" {
		accept = ed.Confirm.Confirm(q)
	}

	var proceed bool
	if !accept {
		fmt.Fprintln(ed.Output, d.Warning())
		proceed = ed.Confirm.Confirm(placement.Proceed)
	}

	return placement.Resolve(st, d, accept, proceed)
}
