// Package game hosts the simulation in a desktop window: glfw for the window
// and input, OpenGL to present the software-rendered frame and oto for sound.
package game

import (
	"fmt"
	"io"
	"log"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"gridsnake/internal/config"
	"gridsnake/internal/render"
	"gridsnake/internal/sfx"
	"gridsnake/internal/sim"
)

// RunDesktop opens a window and plays until it is closed or Escape is pressed.
func RunDesktop(r *sim.Runner, s config.Settings, logger *log.Logger) error {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	w, h := r.Game().Config().RasterSize()
	scale := max(s.Scale, 1)
	window, err := initWindow(w*scale, h*scale, WindowTitle)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.ClearColor(0, 0, 0, 1)

	presenter, err := NewPresenter()
	if err != nil {
		return fmt.Errorf("presenter: %w", err)
	}
	defer presenter.Destroy()

	audio, err := NewAudio(s.Mute)
	if err != nil {
		logger.Printf("audio init failed (continuing without sound): %v", err)
	}

	bus := NewEventBus()
	bus.Subscribe(func(e sim.Event) {
		if kind, ok := sfx.ForEvent(e.Kind); ok {
			audio.Play(kind)
		}
	}, sim.EventEat, sim.EventDeath)
	bus.Subscribe(func(sim.Event) {
		logger.Printf("game over, score %d", r.Score())
	}, sim.EventDeath)

	input := NewInput(window)
	canvas := render.NewRenderer()

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now

		glfw.PollEvents()
		if input.Quit() {
			window.SetShouldClose(true)
			continue
		}

		wasPlaying := r.Game().Playing()
		if input.Apply(r) && !wasPlaying {
			audio.Play(sfx.Start)
		}

		bus.Publish(r.Frame(dt).Events)

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}
		frame := canvas.Render(r.View())
		presenter.Upload(frame)
		b := frame.Bounds()
		presenter.Draw(render.Fit(fbW, fbH, b.Dx(), b.Dy()), fbW, fbH)
		window.SwapBuffers()
	}
	logger.Printf("window closed, final score %d", r.Score())
	return nil
}
