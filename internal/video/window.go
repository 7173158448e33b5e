// Package video implements chip8.DisplaySink and chip8.KeypadSource on
// top of faiface/pixel's pixelgl backend, adapted from the fixed
// 64x32-scaled quad-draw window the original chippy emulator used.
package video

import (
	"fmt"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"golang.org/x/image/colornames"

	"github.com/coreyhulse/chipforge/internal/chip8"
)

const (
	gridWidth  = chip8.ScreenWidth
	gridHeight = chip8.ScreenHeight

	screenWidth  float64 = 1024
	screenHeight float64 = 768
)

// keyMap is the fixed CHIP-8 keypad layout: physical key -> hex code.
var keyMap = [chip8.NumKeys]pixelgl.Button{
	0x0: pixelgl.KeyX,
	0x1: pixelgl.Key1,
	0x2: pixelgl.Key2,
	0x3: pixelgl.Key3,
	0x4: pixelgl.KeyQ,
	0x5: pixelgl.KeyW,
	0x6: pixelgl.KeyE,
	0x7: pixelgl.KeyA,
	0x8: pixelgl.KeyS,
	0x9: pixelgl.KeyD,
	0xA: pixelgl.KeyZ,
	0xB: pixelgl.KeyC,
	0xC: pixelgl.Key4,
	0xD: pixelgl.KeyR,
	0xE: pixelgl.KeyF,
	0xF: pixelgl.KeyV,
}

// Window wraps a pixelgl window. It implements chip8.DisplaySink via
// Refresh and chip8.KeypadSource via Poll.
type Window struct {
	*pixelgl.Window
	queue []chip8.Event
}

// NewWindow creates and shows the emulator window.
func NewWindow(title string) (*Window, error) {
	cfg := pixelgl.WindowConfig{
		Title:  title,
		Bounds: pixel.R(0, 0, screenWidth, screenHeight),
		VSync:  true,
	}
	w, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return nil, fmt.Errorf("video: creating window: %w", err)
	}
	return &Window{Window: w}, nil
}

// Refresh implements chip8.DisplaySink: it clears the window and redraws
// every set framebuffer cell as a scaled quad.
func (w *Window) Refresh(fb [gridHeight][gridWidth]bool) {
	w.Clear(colornames.Black)

	draw := imdraw.New(nil)
	draw.Color = pixel.RGB(1, 1, 1)

	cellW := screenWidth / gridWidth
	cellH := screenHeight / gridHeight

	for y := 0; y < gridHeight; y++ {
		for x := 0; x < gridWidth; x++ {
			if !fb[y][x] {
				continue
			}
			// Row 0 of the CHIP-8 framebuffer is the top of the
			// screen; pixel's Y axis grows upward, so flip it.
			flippedY := gridHeight - 1 - y
			draw.Push(pixel.V(cellW*float64(x), cellH*float64(flippedY)))
			draw.Push(pixel.V(cellW*float64(x)+cellW, cellH*float64(flippedY)+cellH))
			draw.Rectangle(0)
		}
	}

	draw.Draw(w)
	w.Update()
}

// Poll implements chip8.KeypadSource: it drains one pending key-edge (or
// quit) event, lazily refilling its internal queue from pixelgl's input
// state when empty.
func (w *Window) Poll() chip8.Event {
	if len(w.queue) == 0 {
		w.fillQueue()
	}
	if len(w.queue) == 0 {
		return chip8.Event{Kind: chip8.EventNone}
	}
	ev := w.queue[0]
	w.queue = w.queue[1:]
	return ev
}

func (w *Window) fillQueue() {
	if w.Closed() {
		w.queue = append(w.queue, chip8.Event{Kind: chip8.EventQuit})
		return
	}

	w.UpdateInput()

	for code, btn := range keyMap {
		switch {
		case w.JustPressed(btn):
			w.queue = append(w.queue, chip8.Event{Kind: chip8.EventKeyDown, Code: byte(code)})
		case w.JustReleased(btn):
			w.queue = append(w.queue, chip8.Event{Kind: chip8.EventKeyUp, Code: byte(code)})
		}
	}
}
