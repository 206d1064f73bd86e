package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/tapcade/arcade/internal/core"
)

// Bindings maps window keys to game actions.
var Bindings = map[ebiten.Key]core.Action{
	ebiten.KeyArrowUp:    core.ActionUp,
	ebiten.KeyW:          core.ActionUp,
	ebiten.KeyArrowDown:  core.ActionDown,
	ebiten.KeyS:          core.ActionDown,
	ebiten.KeyArrowLeft:  core.ActionLeft,
	ebiten.KeyA:          core.ActionLeft,
	ebiten.KeyArrowRight: core.ActionRight,
	ebiten.KeyD:          core.ActionRight,
	ebiten.KeyEnter:      core.ActionConfirm,
	ebiten.KeySpace:      core.ActionConfirm,
	ebiten.KeyP:          core.ActionPause,
	ebiten.KeyR:          core.ActionRestart,
	ebiten.KeyEscape:     core.ActionBack,
}

// Input collects one frame of window input.
type Input struct {
	w, h  int
	frame core.InputFrame
	keys  []ebiten.Key
}

// NewInput creates an input reader for a w x h pixel play area.
func NewInput(w, h int) *Input {
	return &Input{w: w, h: h, frame: core.NewInputFrame()}
}

// Poll reads the keys and clicks of this tick. The returned frame is only
// valid until the next Poll.
func (in *Input) Poll() (core.InputFrame, bool) {
	in.frame.Clear()

	in.keys = inpututil.AppendJustPressedKeys(in.keys[:0])
	if in.Apply(in.keys) {
		return in.frame, true
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		in.Click(ebiten.CursorPosition())
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		in.Click(ebiten.TouchPosition(id))
	}
	return in.frame, false
}

// Apply sets the actions bound to keys. It reports true when Q asks to quit.
func (in *Input) Apply(keys []ebiten.Key) bool {
	for _, k := range keys {
		if k == ebiten.KeyQ {
			return true
		}
		if a, ok := Bindings[k]; ok {
			in.frame.Set(a)
		}
	}
	return false
}

// Click records a press at pixel (px, py) as a normalized touch. Presses
// outside the play area are dropped.
func (in *Input) Click(px, py int) {
	if px < 0 || py < 0 || px >= in.w || py >= in.h || in.w == 0 || in.h == 0 {
		return
	}
	in.frame.Touch(float64(px)/float64(in.w), float64(py)/float64(in.h))
}

// Frame returns the frame collected so far.
func (in *Input) Frame() core.InputFrame {
	return in.frame
}
