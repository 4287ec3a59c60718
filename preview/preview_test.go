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

package preview_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jetsetilly/spcecho/curated"
	"github.com/jetsetilly/spcecho/hardware/dsp/addresses"
	"github.com/jetsetilly/spcecho/hardware/dsp/registers"
	"github.com/jetsetilly/spcecho/preview"
	"github.com/jetsetilly/spcecho/test"
)

func newStore(t *testing.T) *registers.Store {
	t.Helper()
	st, err := registers.Load(make([]byte, addresses.Base+addresses.WindowSize))
	test.DemandSuccess(t, err)
	return st
}

func TestSettings(t *testing.T) {
	st := newStore(t)
	st.Set(registers.LeftVolume, 0x40)
	st.Set(registers.RightVolume, 0xc0)
	st.Set(registers.Feedback, 0x80)
	st.Set(registers.EchoSpeed, 5)
	st.Set(registers.ChannelMask, 0x15)

	s := preview.NewSettings(st)
	test.ExpectEquality(t, s.LeftVolume, 0.5)
	test.ExpectEquality(t, s.RightVolume, -0.5)
	test.ExpectEquality(t, s.Feedback, -1.0)
	test.ExpectEquality(t, s.Delay, 80*time.Millisecond)
	test.ExpectEquality(t, s.Voices, 3)
}

func TestImpulseEcho(t *testing.T) {
	st := newStore(t)
	st.Set(registers.LeftVolume, 0x40)
	st.Set(registers.RightVolume, 0x20)
	st.Set(registers.Feedback, 0x40)
	st.Set(registers.EchoSpeed, 1)
	st.Set(registers.ChannelMask, 0xff)

	res := preview.NewEmulation(preview.NewSettings(st)).Run(preview.Impulse(32000, 0.8), time.Second)
	test.DemandEquality(t, res.PCM.Len(), 32000)
	test.ExpectEquality(t, res.PCM.SampleRate, 32000)
	test.ExpectEquality(t, res.PCM.Duration(), time.Second)

	// 16ms at 32kHz is 512 samples
	test.ExpectEquality(t, res.PCM.Left[0], 0.8)
	test.ExpectEquality(t, res.PCM.Left[1], 0.0)
	test.ExpectApproximate(t, res.PCM.Left[512], 0.4, 0.0001)
	test.ExpectApproximate(t, res.PCM.Right[512], 0.2, 0.0001)
	test.ExpectApproximate(t, res.PCM.Left[1024], 0.2, 0.0001)
	test.ExpectApproximate(t, res.PCM.Left[1536], 0.1, 0.0001)
	test.ExpectEquality(t, res.PCM.Left[1025], 0.0)

	test.ExpectEquality(t, res.Peak, 0.8)
	test.ExpectEquality(t, res.Clipped, 0)
}

func TestNoVoices(t *testing.T) {
	st := newStore(t)
	st.Set(registers.LeftVolume, 0x7f)
	st.Set(registers.RightVolume, 0x7f)
	st.Set(registers.EchoSpeed, 1)
	st.Set(registers.ChannelMask, 0x00)

	res := preview.NewEmulation(preview.NewSettings(st)).Run(preview.Impulse(32000, 0.8), time.Second)
	for i := 1; i < res.PCM.Len(); i++ {
		if res.PCM.Left[i] != 0.0 || res.PCM.Right[i] != 0.0 {
			t.Fatalf("unexpected echo at sample %d", i)
		}
	}
}

func TestClipping(t *testing.T) {
	st := newStore(t)
	st.Set(registers.LeftVolume, 0x7f)
	st.Set(registers.RightVolume, 0x7f)
	st.Set(registers.Feedback, 0x7f)
	st.Set(registers.EchoSpeed, 0)
	st.Set(registers.ChannelMask, 0xff)

	// a delay of zero is a delay of one sample
	src := preview.PCM{
		SampleRate: 100,
		Left:       []float64{1.0, 1.0, 1.0, 1.0},
		Right:      []float64{1.0, 1.0, 1.0, 1.0},
	}
	res := preview.NewEmulation(preview.NewSettings(st)).Run(src, 0)
	test.DemandEquality(t, res.PCM.Len(), 4)
	test.ExpectEquality(t, res.PCM.Left[1], 1.0)
	test.ExpectSuccess(t, res.Clipped > 0)
	test.ExpectSuccess(t, res.Peak > 1.0)
}

func TestWAVRoundTrip(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preview.wav")

	src := preview.PCM{
		SampleRate: 32000,
		Left:       []float64{0.5, -0.5, 0.25, 0.0},
		Right:      []float64{-0.25, 0.75, 0.0, 1.0},
	}

	for _, depth := range []int{8, 16, 24} {
		test.DemandSuccess(t, preview.SaveWAV(fn, src, depth), depth)

		p, err := preview.LoadSource(fn)
		test.DemandSuccess(t, err, depth)
		test.DemandEquality(t, p.Len(), src.Len(), depth)
		test.ExpectEquality(t, p.SampleRate, 32000, depth)

		for i := range src.Left {
			test.ExpectApproximate(t, p.Left[i], src.Left[i], 0.02, depth, i)
			test.ExpectApproximate(t, p.Right[i], src.Right[i], 0.02, depth, i)
		}
	}
}

func TestWAVErrors(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preview.wav")
	err := preview.SaveWAV(fn, preview.Impulse(32000, 1.0), 12)
	test.ExpectSuccess(t, curated.Is(err, preview.WAVError))
}

func TestSourceErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := preview.LoadSource(filepath.Join(dir, "missing.wav"))
	test.ExpectSuccess(t, curated.Is(err, preview.SourceError))

	fn := filepath.Join(dir, "source.ogg")
	test.DemandSuccess(t, os.WriteFile(fn, []byte{0x00}, 0o644))
	_, err = preview.LoadSource(fn)
	test.ExpectSuccess(t, curated.Is(err, preview.SourceError))

	fn = filepath.Join(dir, "source.wav")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("not a wav file"), 0o644))
	_, err = preview.LoadSource(fn)
	test.ExpectSuccess(t, curated.Is(err, preview.SourceError))
}

func TestInt16LE(t *testing.T) {
	p := preview.PCM{
		SampleRate: 32000,
		Left:       []float64{1.0},
		Right:      []float64{-1.0},
	}
	b := p.Int16LE()
	test.DemandEquality(t, len(b), 4)
	test.ExpectEquality(t, b[0], 0xff)
	test.ExpectEquality(t, b[1], 0x7f)
	test.ExpectEquality(t, b[2], 0x01)
	test.ExpectEquality(t, b[3], 0x80)
}
