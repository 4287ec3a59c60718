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

package snapshot

import (
	"crypto/sha1"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/spcecho/curated"
	"github.com/jetsetilly/spcecho/logger"
)

// Error is the pattern for all errors returned by the package.
const Error = "snapshot: %v"

// Filename returns name with the extension added if it is not already
// present. The comparison is not case sensitive. An empty extension leaves
// the name unchanged.
func Filename(name string, ext string) string {
	if ext == "" || strings.HasSuffix(strings.ToLower(name), strings.ToLower(ext)) {
		return name
	}
	return name + ext
}

// Loader is used to load a snapshot file.
type Loader struct {
	// filename of the snapshot, including the extension
	Filename string

	// copy of the loaded data
	Data []byte

	// sha1 of the loaded data. empty until the data has been loaded
	Hash string
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string, ext string) Loader {
	return Loader{
		Filename: Filename(filename, ext),
	}
}

// ShortName returns the filename without the directory or extension.
func (ld Loader) ShortName() string {
	n := filepath.Base(ld.Filename)
	return strings.TrimSuffix(n, filepath.Ext(n))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// Load the snapshot data. Calling Load() a second time has no effect.
func (ld *Loader) Load() error {
	if ld.HasLoaded() {
		return nil
	}

	data, err := os.ReadFile(ld.Filename)
	if err != nil {
		return curated.Errorf(Error, err)
	}
	if len(data) == 0 {
		return curated.Errorf(Error, fmt.Errorf("%s is empty", ld.Filename))
	}

	ld.Data = data
	ld.Hash = fmt.Sprintf("%x", sha1.Sum(ld.Data))

	logger.Logf(logger.Allow, "snapshot", "loaded %s (%d bytes, sha1 %s)", ld.Filename, len(ld.Data), ld.Hash)

	return nil
}

// Exists returns true if filename names an existing file.
func Exists(filename string) bool {
	fi, err := os.Stat(filename)
	return err == nil && !fi.IsDir()
}

// Save data to filename. The file is replaced if it exists.
func Save(filename string, data []byte) error {
	f, err := os.CreateTemp(filepath.Dir(filename), ".spcecho-*")
	if err != nil {
		return curated.Errorf(Error, err)
	}
	tmp := f.Name()

	// the temporary file is removed on any error
	fail := func(err error) error {
		_ = f.Close()
		_ = os.Remove(tmp)
		return curated.Errorf(Error, err)
	}

	if _, err := f.Write(data); err != nil {
		return fail(err)
	}
	if err := f.Chmod(0o644); err != nil {
		return fail(err)
	}
	if err := f.Close(); err != nil {
		return fail(err)
	}
	if err := os.Rename(tmp, filename); err != nil {
		_ = os.Remove(tmp)
		return curated.Errorf(Error, err)
	}

	logger.Logf(logger.Allow, "snapshot", "saved %s (%d bytes)", filename, len(data))

	return nil
}
