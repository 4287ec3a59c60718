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

package preview

import "fmt"

// Results of an emulation run.
type Results struct {
	Settings Settings
	PCM      PCM

	// highest absolute value before clamping
	Peak float64

	// number of samples that were clamped
	Clipped int
}

func (res Results) String() string {
	s := fmt.Sprintf("%v of audio, peak %.2f", res.PCM.Duration(), res.Peak)
	if res.Clipped > 0 {
		s = fmt.Sprintf("%s, %d samples clipped", s, res.Clipped)
	}
	return s
}
