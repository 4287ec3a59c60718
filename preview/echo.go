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

import (
	"fmt"
	"math"
	"math/bits"
	"time"

	"github.com/jetsetilly/spcecho/codec"
	"github.com/jetsetilly/spcecho/hardware/dsp/registers"
	"github.com/jetsetilly/spcecho/logger"
)

// Settings for the echo emulation, taken from the echo registers.
type Settings struct {
	// volume of the echo in each channel and the amount of feedback. in the
	// range -1.0 to 1.0
	LeftVolume  float64
	RightVolume float64
	Feedback    float64

	// echo delay. a delay of zero is the shortest possible delay of one
	// sample
	Delay time.Duration

	// number of voices sending to the echo unit
	Voices int
}

// NewSettings creates Settings from the current values in the register
// Store.
func NewSettings(st *registers.Store) Settings {
	vol := func(id registers.ID) float64 {
		return float64(int8(st.Value(id))) / 128.0
	}

	return Settings{
		LeftVolume:  vol(registers.LeftVolume),
		RightVolume: vol(registers.RightVolume),
		Feedback:    vol(registers.Feedback),
		Delay:       time.Duration(codec.DecodeEchoSpeed(st.Value(registers.EchoSpeed))) * time.Millisecond,
		Voices:      bits.OnesCount8(st.Value(registers.ChannelMask)),
	}
}

func (s Settings) String() string {
	return fmt.Sprintf("vol %.2f/%.2f fb %.2f delay %v voices %d", s.LeftVolume, s.RightVolume, s.Feedback, s.Delay, s.Voices)
}

// Emulation of the echo unit.
type Emulation struct {
	settings Settings
}

// NewEmulation is the preferred method of initialisation for the Emulation
// type.
func NewEmulation(settings Settings) *Emulation {
	return &Emulation{
		settings: settings,
	}
}

// delayLine is the echo buffer for one channel.
type delayLine struct {
	buffer []float64
	idx    int
}

func newDelayLine(length int) *delayLine {
	return &delayLine{
		buffer: make([]float64, max(1, length)),
	}
}

// step pushes one sample into the line and returns the sample leaving it.
// the feedback is mixed with the input before it enters the line.
func (dl *delayLine) step(in float64, feedback float64) float64 {
	out := dl.buffer[dl.idx]
	dl.buffer[dl.idx] = in + out*feedback
	dl.idx++
	if dl.idx >= len(dl.buffer) {
		dl.idx = 0
	}
	return out
}

// Run the emulation with the source audio. The output is as long as the
// source or the length argument, whichever is longer. The sample rate of the
// output is the same as the source.
func (em *Emulation) Run(src PCM, length time.Duration) Results {
	n := max(src.Len(), int(length.Seconds()*float64(src.SampleRate)))
	delay := int(int64(em.settings.Delay) * int64(src.SampleRate) / int64(time.Second))

	logger.Logf(logger.Allow, "preview", "%s: %d samples (delay %d)", em.settings, n, delay)

	res := Results{
		Settings: em.settings,
		PCM: PCM{
			SampleRate: src.SampleRate,
			Left:       make([]float64, n),
			Right:      make([]float64, n),
		},
	}

	// portion of the input that is sent to the echo unit
	send := float64(em.settings.Voices) / 8.0

	left := newDelayLine(delay)
	right := newDelayLine(delay)

	for i := 0; i < n; i++ {
		var l, r float64
		if i < src.Len() {
			l = src.Left[i]
			r = src.Right[i]
		}

		el := left.step(l*send, em.settings.Feedback)
		er := right.step(r*send, em.settings.Feedback)

		res.PCM.Left[i] = res.mix(l + el*em.settings.LeftVolume)
		res.PCM.Right[i] = res.mix(r + er*em.settings.RightVolume)
	}

	return res
}

// mix clamps the sample and notes peak and clipping.
func (res *Results) mix(v float64) float64 {
	a := math.Abs(v)
	if a > res.Peak {
		res.Peak = a
	}
	if a > 1.0 {
		res.Clipped++
		return math.Copysign(1.0, v)
	}
	return v
}
