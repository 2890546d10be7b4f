// Package termui plays the game in a terminal through tcell, scaling the
// arena onto the character grid.
package termui

import (
	"context"
	"fmt"
	"time"

	"github.com/Garsondee/Cannon-Ball/internal/cannon"
	"github.com/gdamore/tcell/v2"
)

const frameInterval = 16 * time.Millisecond

// UI drives a cannon.Session from tcell events and draws it each tick.
type UI struct {
	screen  tcell.Screen
	session *cannon.Session

	queue    []cannon.InputEvent
	held     *hold
	mouseBtn tcell.ButtonMask
}

// New initialises screen and builds a session on the main menu.
func New(screen tcell.Screen, opts cannon.Options) (*UI, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()
	screen.SetStyle(styleSky)
	screen.Clear()
	return &UI{
		screen:  screen,
		session: cannon.NewSession(opts),
	}, nil
}

// Session exposes the underlying session.
func (u *UI) Session() *cannon.Session { return u.session }

// Close restores the terminal.
func (u *UI) Close() {
	u.screen.Fini()
}

// Run pumps terminal events and ticks the session every frame until the
// session stops or ctx is cancelled.
func (u *UI) Run(ctx context.Context) error {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := u.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-eventChan:
			u.HandleEvent(ev, time.Now())
		case now := <-ticker.C:
			if !u.Step(now) {
				return nil
			}
		}
	}
}

// HandleEvent translates one tcell event into queued session input.
func (u *UI) HandleEvent(ev tcell.Event, now time.Time) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		k, action := mapKey(ev)
		switch action {
		case actionQuit:
			u.queue = append(u.queue, cannon.Quit())
		case actionMute:
			u.session.ToggleMute()
		case actionSession:
			u.pressKey(k, now)
		}
	case *tcell.EventMouse:
		btn := ev.Buttons() & tcell.Button1
		if btn != 0 && u.mouseBtn == 0 {
			cx, cy := ev.Position()
			cols, rows := u.screen.Size()
			x, y := toArena(cx, cy, cols, rows)
			u.queue = append(u.queue, cannon.PointerDown(x, y))
		}
		u.mouseBtn = btn
	case *tcell.EventResize:
		u.screen.Sync()
	}
}

// Step expires held keys, applies the queued input, advances one tick and
// redraws. It returns false once the session has stopped.
func (u *UI) Step(now time.Time) bool {
	u.expireHold(now)
	running := u.session.Tick(u.queue)
	u.queue = u.queue[:0]
	if running {
		u.Draw()
	}
	return running
}
