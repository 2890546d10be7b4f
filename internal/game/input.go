package game

import (
	"github.com/Garsondee/Cannon-Ball/internal/cannon"
	"github.com/hajimehoshi/ebiten/v2"
)

// mapKey converts an ebiten key to a session key. Everything the session
// does not act on becomes KeyOther.
func mapKey(k ebiten.Key) cannon.Key {
	switch k {
	case ebiten.KeyArrowLeft:
		return cannon.KeyLeft
	case ebiten.KeyArrowRight:
		return cannon.KeyRight
	case ebiten.KeyArrowUp:
		return cannon.KeyUp
	case ebiten.KeyArrowDown:
		return cannon.KeyDown
	case ebiten.KeySpace:
		return cannon.KeySpace
	}
	return cannon.KeyOther
}

// translateKeys appends key-down events for pressed and key-up events for
// released to dst. Releases come first so a same-frame tap ends pressed.
func translateKeys(dst []cannon.InputEvent, pressed, released []ebiten.Key) []cannon.InputEvent {
	for _, k := range released {
		if ck := mapKey(k); ck != cannon.KeyOther {
			dst = append(dst, cannon.KeyUpEvent(ck))
		}
	}
	for _, k := range pressed {
		if ck := mapKey(k); ck != cannon.KeyOther {
			dst = append(dst, cannon.KeyDownEvent(ck))
		}
	}
	return dst
}
