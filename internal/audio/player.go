package audio

import (
	"fmt"
	"time"

	"github.com/Garsondee/Cannon-Ball/internal/cannon"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Player renders every cue once into memory and plays them through the
// beep speaker. It implements cannon.CueSink.
type Player struct {
	cfg    Config
	format beep.Format

	shots map[cannon.Cue]*beep.Buffer
	cart  *beep.Buffer
	music *beep.Buffer

	cartCtrl  *beep.Ctrl
	musicCtrl *beep.Ctrl

	started bool
	muted   bool
}

var _ cannon.Muter = (*Player)(nil)

// NewPlayer validates cfg and pre-renders all sounds. It does not touch the
// audio device; call Start for that.
func NewPlayer(cfg Config) (*Player, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rate := beep.SampleRate(cfg.SampleRate)
	p := &Player{
		cfg:    cfg,
		format: beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2},
		shots:  make(map[cannon.Cue]*beep.Buffer, len(oneShots)),
	}
	for cue, create := range oneShots {
		p.shots[cue] = p.render(create(rate))
	}
	p.cart = p.render(createCart(rate))
	p.music = p.render(createMusic(rate))
	return p, nil
}

func (p *Player) render(s beep.Streamer) *beep.Buffer {
	buf := beep.NewBuffer(p.format)
	buf.Append(s)
	return buf
}

// Start opens the speaker and begins the background loop. The cart loop is
// queued paused and only unpaused by CueMoveStart.
func (p *Player) Start() error {
	if p.started {
		return nil
	}
	rate := p.format.SampleRate
	if err := speaker.Init(rate, rate.N(time.Duration(p.cfg.BufferMillis)*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker at %d Hz: %w", p.cfg.SampleRate, err)
	}

	p.cartCtrl = &beep.Ctrl{
		Streamer: newVolume(loop(p.cart), p.cfg.CartVolume*p.cfg.MasterVolume),
		Paused:   true,
	}
	p.musicCtrl = &beep.Ctrl{
		Streamer: newVolume(loop(p.music), p.cfg.MusicVolume*p.cfg.MasterVolume),
		Paused:   p.muted,
	}
	speaker.Play(p.musicCtrl, p.cartCtrl)
	p.started = true
	return nil
}

func loop(buf *beep.Buffer) beep.Streamer {
	return beep.Loop(-1, buf.Streamer(0, buf.Len()))
}

// Trigger implements cannon.CueSink. It never blocks on playback.
func (p *Player) Trigger(c cannon.Cue) {
	if !p.started {
		return
	}
	switch c {
	case cannon.CueMoveStart:
		p.setPaused(p.cartCtrl, p.muted)
	case cannon.CueMoveStop:
		p.setPaused(p.cartCtrl, true)
	default:
		if p.muted {
			return
		}
		buf, ok := p.shots[c]
		if !ok {
			return
		}
		if c == cannon.CueGameOver {
			p.setPaused(p.cartCtrl, true)
		}
		speaker.Play(newVolume(buf.Streamer(0, buf.Len()), p.cfg.EffectVolume*p.cfg.MasterVolume))
	}
}

// SetMuted silences or restores music and effects.
func (p *Player) SetMuted(m bool) {
	p.muted = m
	if !p.started {
		return
	}
	p.setPaused(p.musicCtrl, m)
	if m {
		p.setPaused(p.cartCtrl, true)
	}
}

// Muted reports whether the player is muted.
func (p *Player) Muted() bool { return p.muted }

func (p *Player) setPaused(ctrl *beep.Ctrl, paused bool) {
	speaker.Lock()
	ctrl.Paused = paused
	speaker.Unlock()
}

// Close stops all sounds and releases the device.
func (p *Player) Close() {
	if !p.started {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.started = false
}

// Duration returns the length of the rendered sound for c. Loop cues report
// one period of the cart rumble.
func (p *Player) Duration(c cannon.Cue) time.Duration {
	switch c {
	case cannon.CueMoveStart, cannon.CueMoveStop:
		return p.format.SampleRate.D(p.cart.Len())
	}
	if buf, ok := p.shots[c]; ok {
		return p.format.SampleRate.D(buf.Len())
	}
	return 0
}

// MusicDuration returns the length of one pass of the background track.
func (p *Player) MusicDuration() time.Duration {
	return p.format.SampleRate.D(p.music.Len())
}
