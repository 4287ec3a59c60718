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

//go:build headless

package preview

import (
	"fmt"

	"github.com/jetsetilly/spcecho/curated"
)

// AuditionError is returned when the audio cannot be played.
const AuditionError = "preview: audition: %v"

// Audition is not available in headless builds.
func Audition(_ PCM) error {
	return curated.Errorf(AuditionError, fmt.Errorf("not available in headless build"))
}
