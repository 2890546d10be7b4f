package termui

import (
	"time"

	"github.com/Garsondee/Cannon-Ball/internal/cannon"
	"github.com/gdamore/tcell/v2"
)

// Terminals report presses and repeats but never releases, so a held arrow
// is assumed released once no repeat arrives within these windows. The
// first window covers the usual auto-repeat delay.
const (
	holdFirst  = 550 * time.Millisecond
	holdRepeat = 150 * time.Millisecond
)

// hold tracks one arrow key the session believes is down.
type hold struct {
	key      cannon.Key
	deadline time.Time
}

// keyAction is what a tcell key event means to the frontend.
type keyAction int

const (
	actionNone keyAction = iota
	actionSession
	actionQuit
	actionMute
)

// mapKey converts a tcell key event to a session key.
func mapKey(ev *tcell.EventKey) (cannon.Key, keyAction) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return cannon.KeyLeft, actionSession
	case tcell.KeyRight:
		return cannon.KeyRight, actionSession
	case tcell.KeyUp:
		return cannon.KeyUp, actionSession
	case tcell.KeyDown:
		return cannon.KeyDown, actionSession
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return cannon.KeyOther, actionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return cannon.KeySpace, actionSession
		case 'q', 'Q':
			return cannon.KeyOther, actionQuit
		case 'm', 'M':
			return cannon.KeyOther, actionMute
		}
	}
	return cannon.KeyOther, actionNone
}

// pressKey queues the events for a key press at now. A repeat of the held
// arrow only extends its deadline; a different arrow releases the old one.
func (u *UI) pressKey(k cannon.Key, now time.Time) {
	if k != cannon.KeyLeft && k != cannon.KeyRight {
		u.queue = append(u.queue, cannon.KeyDownEvent(k))
		return
	}
	if u.held != nil && u.held.key == k {
		u.held.deadline = now.Add(holdRepeat)
		return
	}
	if u.held != nil {
		u.queue = append(u.queue, cannon.KeyUpEvent(u.held.key))
	}
	u.held = &hold{key: k, deadline: now.Add(holdFirst)}
	u.queue = append(u.queue, cannon.KeyDownEvent(k))
}

// expireHold synthesises the key-up for an arrow whose repeats stopped.
func (u *UI) expireHold(now time.Time) {
	if u.held == nil || now.Before(u.held.deadline) {
		return
	}
	u.queue = append(u.queue, cannon.KeyUpEvent(u.held.key))
	u.held = nil
}
