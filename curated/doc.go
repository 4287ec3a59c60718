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

// Package curated is a helper package for the plain Go error type. Curated
// errors are created with the Errorf() function, which is used in the same
// way as the Errorf() function in the fmt package.
//
// The pattern given to Errorf() identifies the error. Packages in spcecho
// store the patterns they care about as exported constants, so that callers
// can test for a category of error without string matching on the final
// message. For example, the codec package declares:
//
//	const RangeError = "range error: %s: %v"
//
// and a caller can test for it with:
//
//	if curated.Is(err, codec.RangeError) {
//		...
//	}
//
// The Has() function is similar but looks for the pattern anywhere in the
// chain of wrapped curated errors:
//
//	err := curated.Errorf("patch: %v", codecErr)
//	curated.Has(err, codec.RangeError) // true
//	curated.Is(err, codec.RangeError)  // false
//
// The Error() function normalises the message so that adjacent duplicate
// parts are removed. A chain is made of parts separated by the sub-string
// ": ". Wrapping an error with a prefix it already has is therefore harmless:
//
//	a := curated.Errorf("snapshot: %v", "file truncated")
//	b := curated.Errorf("snapshot: %v", a)
//	b.Error() // "snapshot: file truncated"
//
// Curated errors also support errors.Is() and errors.As() from the standard
// library by way of the Unwrap() function, which returns any error values
// given to Errorf().
package curated
