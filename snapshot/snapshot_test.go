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

package snapshot_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/spcecho/curated"
	"github.com/jetsetilly/spcecho/snapshot"
	"github.com/jetsetilly/spcecho/test"
)

func TestFilename(t *testing.T) {
	test.ExpectEquality(t, snapshot.Filename("song", ".spc"), "song.spc")
	test.ExpectEquality(t, snapshot.Filename("song.spc", ".spc"), "song.spc")
	test.ExpectEquality(t, snapshot.Filename("SONG.SPC", ".spc"), "SONG.SPC")
	test.ExpectEquality(t, snapshot.Filename("song.spc.bak", ".spc"), "song.spc.bak.spc")
	test.ExpectEquality(t, snapshot.Filename("song", ""), "song")
}

func TestLoadAndSave(t *testing.T) {
	dir := t.TempDir()
	data := []byte{0x01, 0x02, 0x03, 0x04}

	fn := filepath.Join(dir, "song.spc")
	test.ExpectFailure(t, snapshot.Exists(fn))
	test.DemandSuccess(t, snapshot.Save(fn, data))
	test.ExpectSuccess(t, snapshot.Exists(fn))

	// directory is not a file
	test.ExpectFailure(t, snapshot.Exists(dir))

	ld := snapshot.NewLoader(filepath.Join(dir, "song"), ".spc")
	test.ExpectEquality(t, ld.Filename, fn)
	test.ExpectEquality(t, ld.ShortName(), "song")
	test.ExpectFailure(t, ld.HasLoaded())

	test.DemandSuccess(t, ld.Load())
	test.ExpectSuccess(t, ld.HasLoaded())
	test.ExpectSuccess(t, bytes.Equal(ld.Data, data))
	test.ExpectEquality(t, ld.Hash, "12dada1fff4d4787ade3333147202c3b443e376f")

	// overwrite
	test.DemandSuccess(t, snapshot.Save(fn, []byte{0xff}))
	b, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, bytes.Equal(b, []byte{0xff}))

	// no temporary files left behind
	entries, err := os.ReadDir(dir)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(entries), 1)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	ld := snapshot.NewLoader(filepath.Join(dir, "missing"), ".spc")
	err := ld.Load()
	test.ExpectSuccess(t, curated.Is(err, snapshot.Error))

	empty := filepath.Join(dir, "empty.spc")
	test.DemandSuccess(t, os.WriteFile(empty, nil, 0o644))
	ld = snapshot.NewLoader(empty, ".spc")
	test.ExpectSuccess(t, curated.Is(ld.Load(), snapshot.Error))
}

func TestSaveError(t *testing.T) {
	err := snapshot.Save(filepath.Join(t.TempDir(), "missing", "song.spc"), []byte{0x00})
	test.ExpectSuccess(t, curated.Is(err, snapshot.Error))
}
