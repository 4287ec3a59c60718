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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/spcecho/prefs"
	"github.com/jetsetilly/spcecho/test"
)

func cmpPrefFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v, w, x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("TRUE"))
	test.ExpectFailure(t, x.Set(10))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")
}

func TestIntAndFloat(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var n prefs.Int
	var f prefs.Float
	test.ExpectSuccess(t, dsk.Add("number", &n))
	test.ExpectSuccess(t, dsk.Add("preview.seconds", &f))

	test.ExpectSuccess(t, n.Set("99"))
	test.ExpectSuccess(t, f.Set(2.5))
	test.DemandSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "number :: 99\npreview.seconds :: 2.500\n")

	test.ExpectFailure(t, n.Set("---"))
	test.ExpectFailure(t, n.Set(1.0))
	test.ExpectFailure(t, f.Set("x"))
}

func TestLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var ext prefs.String
	test.ExpectSuccess(t, dsk.Add("snapshot.extension", &ext))
	test.ExpectSuccess(t, ext.Set(".spc"))

	// file does not exist so it is created with the current values
	test.DemandSuccess(t, dsk.Load(true))
	cmpPrefFile(t, fn, "snapshot.extension :: .spc\n")

	test.ExpectSuccess(t, ext.Set(".SPC"))
	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, ext.String(), ".spc")
}

func TestCommandLineOverride(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var keypress prefs.Bool
	test.ExpectSuccess(t, dsk.Add("confirm.keypress", &keypress))
	test.ExpectSuccess(t, keypress.Set(true))
	test.DemandSuccess(t, dsk.Save())

	prefs.PushCommandLineStack("confirm.keypress::false; unused::1")
	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectFailure(t, keypress.Get().(bool))

	// the unused entry remains in the stack
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "unused::1")
}

func TestGeneric(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var lo, hi int
	v := prefs.NewGeneric(
		func(s prefs.Value) error {
			_, err := fmt.Sscanf(s.(string), "%d,%d", &lo, &hi)
			return err
		},
		func() prefs.Value {
			return fmt.Sprintf("%d,%d", lo, hi)
		},
	)
	test.ExpectSuccess(t, dsk.Add("generic", v))

	lo = 2
	hi = 255
	test.DemandSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "generic :: 2,255\n")

	lo = 0
	hi = 0
	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, lo, 2)
	test.ExpectEquality(t, hi, 255)
}

// a second Disk instance using the same file does not clobber values it does
// not know about
func TestSharedFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, v.Set(true))
	test.DemandSuccess(t, dsk.Save())

	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &s))
	test.ExpectSuccess(t, s.Set("bar"))
	test.DemandSuccess(t, dsk.Save())

	cmpPrefFile(t, fn, "foo :: bar\ntest :: true\n")
}

func TestIllegalKey(t *testing.T) {
	dsk, err := prefs.NewDisk(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	var s prefs.String
	test.ExpectFailure(t, dsk.Add("a :: b", &s))
	test.ExpectFailure(t, dsk.Add("a;b", &s))
}

func TestDiskString(t *testing.T) {
	dsk, err := prefs.NewDisk(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	var b prefs.Bool
	var f prefs.Float
	test.ExpectSuccess(t, dsk.Add("b", &b))
	test.ExpectSuccess(t, dsk.Add("a", &f))
	test.ExpectSuccess(t, f.Set(0.5))
	test.ExpectEquality(t, dsk.String(), "a :: 0.500\nb :: false\n")
}
