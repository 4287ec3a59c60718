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


// Package preview is used to emulate the echo settings of an SPC snapshot for
// a short period of time, so that they can be heard without loading the
// snapshot into an SPC player.
//
// The emulation is not an emulation of the SPC700 DSP. The sample data in the
// snapshot is not played. Instead a source sound (an impulse by default, or
// a WAV or MP3 file) is passed through a delay line configured by the echo
// registers:
//
//	settings := preview.NewSettings(store)
//	res := preview.NewEmulation(settings).Run(preview.Impulse(32000, 0.8), 3*time.Second)
//	err := preview.SaveWAV("preview.wav", res.PCM, 16)
//
// The FIR filter of the real echo unit is not emulated.
package preview
