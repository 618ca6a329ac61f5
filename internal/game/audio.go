package game

import (
	"bytes"
	"fmt"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"gridsnake/internal/sfx"
)

// Audio plays pre-rendered effects through oto. A muted Audio never opens a
// device and Play is a no-op.
type Audio struct {
	ctx    *oto.Context
	ready  chan struct{}
	sounds map[sfx.Kind][]byte
}

func NewAudio(muted bool) (*Audio, error) {
	if muted {
		return &Audio{}, nil
	}
	ctx, ready, err := oto.NewContext(sfx.SampleRate, sfx.ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, fmt.Errorf("audio context: %w", err)
	}
	a := &Audio{ctx: ctx, ready: ready, sounds: make(map[sfx.Kind][]byte)}
	for _, k := range sfx.Kinds {
		a.sounds[k] = sfx.Generate(k)
	}
	return a, nil
}

// Play starts an effect without blocking. Effects requested before the
// device is ready are dropped.
func (a *Audio) Play(kind sfx.Kind) {
	if a == nil || a.ctx == nil {
		return
	}
	select {
	case <-a.ready:
	default:
		return
	}
	samples := a.sounds[kind]
	if len(samples) == 0 {
		return
	}
	go a.playToEnd(samples)
}

func (a *Audio) playToEnd(samples []byte) {
	player := a.ctx.NewPlayer(bytes.NewReader(samples))
	defer player.Close()
	player.SetVolume(sfxVolume)
	player.Play()
	for player.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}
}
