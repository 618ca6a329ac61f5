// Package sfx synthesizes the game's sound effects as interleaved stereo
// float32 little-endian PCM.
package sfx

import (
	"math"

	"gridsnake/internal/sim"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	frameBytes   = 4 * ChannelCount
)

type Kind int

const (
	Start Kind = iota
	Eat
	Death
)

func (k Kind) String() string {
	switch k {
	case Start:
		return "start"
	case Eat:
		return "eat"
	case Death:
		return "death"
	}
	return "unknown"
}

// Kinds lists every effect Generate knows.
var Kinds = [...]Kind{Start, Eat, Death}

// ForEvent maps a simulation event to its effect.
func ForEvent(k sim.EventKind) (Kind, bool) {
	switch k {
	case sim.EventEat:
		return Eat, true
	case sim.EventDeath:
		return Death, true
	}
	return 0, false
}

// Generate renders an effect. Unknown kinds yield nil.
func Generate(kind Kind) []byte {
	switch kind {
	case Start:
		return genStart()
	case Eat:
		return genEat()
	case Death:
		return genDeath()
	}
	return nil
}

// Duration returns the length of a rendered buffer in seconds.
func Duration(buf []byte) float64 {
	return float64(len(buf)/frameBytes) / SampleRate
}

func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	for c := 0; c < ChannelCount; c++ {
		o := i*frameBytes + c*4
		buf[o] = byte(v)
		buf[o+1] = byte(v >> 8)
		buf[o+2] = byte(v >> 16)
		buf[o+3] = byte(v >> 24)
	}
}

// softSat is a cubic soft clipper. Output stays within [-1,1] for any input,
// with a hyperbolic tail past unity instead of a hard edge.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns the envelope level at progress p in [0,1]. attack, decay and
// release are fractions of the whole sound; sustain is the held level.
func adsr(p, attack, decay, sustain, release float64) float64 {
	releaseAt := 1 - release
	switch {
	case p < attack:
		return p / attack
	case p < attack+decay:
		return 1 - (1-sustain)*(p-attack)/decay
	case p < releaseAt:
		return sustain
	}
	return max(0, sustain*(1-(p-releaseAt)/release))
}

// fm returns a two-operator FM sample at time t. carrier is the base
// frequency in Hz, modRatio the modulator/carrier ratio and modIdx the
// modulation depth in radians.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances a 64-bit LCG (Knuth's MMIX constants) and returns white
// noise in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

// makeBuf allocates n stereo frames.
func makeBuf(n int) []byte { return make([]byte, n*frameBytes) }

func samples(seconds float64) int { return int(seconds * SampleRate) }

// genStart: two quick rising blips.
func genStart() []byte {
	n := samples(0.16)
	buf := makeBuf(n)
	half := n / 2
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		freq, p := 660.0, float64(i)/float64(half)
		if i >= half {
			freq, p = 990.0, float64(i-half)/float64(n-half)
		}
		env := adsr(p, 0.02, 0.4, 0.2, 0.3)
		s := fm(t, freq, 1.0, 0.8*env) * env * 0.4
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genEat: short FM pop with rising pitch.
func genEat() []byte {
	n := samples(0.09)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.5, 0.0, 0.1)
		freq := 480 + 720*p
		s := fm(t, freq, 2.0, 3.5*env) * env * 0.5
		s += math.Sin(2*math.Pi*freq*3*t) * env * 0.06
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genDeath: noise thud under a falling minor triad.
func genDeath() []byte {
	n := samples(0.7)
	notes := []struct{ freq, onset float64 }{
		{329.63, 0.00},
		{261.63, 0.12},
		{220.00, 0.24},
	}
	mix := make([]float64, n)
	for _, note := range notes {
		start := samples(note.onset)
		for i := start; i < n; i++ {
			t := float64(i) / SampleRate
			np := float64(i-start) / float64(n-start)
			env := adsr(np, 0.008, 0.25, 0.3, 0.45)
			freq := note.freq * (1 - np*0.03)
			mix[i] += fm(t, freq, 2.0, 2.0*env) * env * 0.3
		}
	}
	seed := uint64(0xDEAD)
	thud := samples(0.12)
	for i := 0; i < thud && i < n; i++ {
		p := float64(i) / float64(thud)
		env := (1 - p) * (1 - p)
		t := float64(i) / SampleRate
		mix[i] += (lcg(&seed)*0.25 + math.Sin(2*math.Pi*70*t)*0.5) * env
	}
	buf := makeBuf(n)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}
