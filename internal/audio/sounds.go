package audio

import (
	"time"

	"github.com/Garsondee/Cannon-Ball/internal/cannon"
	"github.com/gopxl/beep"
)

const (
	fireDuration    = 180 * time.Millisecond
	bounceDuration  = 60 * time.Millisecond
	hitNoteDuration = 90 * time.Millisecond
	cartDuration    = 240 * time.Millisecond
	gameOverNote    = 260 * time.Millisecond
	musicNote       = 180 * time.Millisecond
)

// createFire is a falling noise burst over a low thump.
func createFire(rate beep.SampleRate) beep.Streamer {
	noise := NewEnvelope(NewOscillator(0, fireDuration, WaveNoise, rate),
		fireDuration, 2*time.Millisecond, 150*time.Millisecond, rate)
	thump := NewEnvelope(NewSweep(140, -400, fireDuration, WaveSine, rate),
		fireDuration, 2*time.Millisecond, 120*time.Millisecond, rate)
	return beep.Mix(newVolume(noise, 0.4), newVolume(thump, 0.8))
}

// createBounce is a short square blip.
func createBounce(rate beep.SampleRate) beep.Streamer {
	return newVolume(tone(520, bounceDuration, WaveSquare, rate), 0.5)
}

// createHit is a rising two-note chime (B5, E6).
func createHit(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		newVolume(tone(987.77, hitNoteDuration, WaveSquare, rate), 0.5),
		newVolume(tone(1318.51, hitNoteDuration*2, WaveSquare, rate), 0.5),
	)
}

// createCart is one period of the launcher rumble; the player loops it.
func createCart(rate beep.SampleRate) beep.Streamer {
	body := NewOscillator(55, cartDuration, WaveSquare, rate)
	grit := NewOscillator(0, cartDuration, WaveNoise, rate)
	return beep.Mix(newVolume(body, 0.35), newVolume(grit, 0.15))
}

// createGameOver is a descending saw triad.
func createGameOver(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		tone(392.00, gameOverNote, WaveSaw, rate),
		tone(311.13, gameOverNote, WaveSaw, rate),
		tone(261.63, gameOverNote*2, WaveSaw, rate),
	)
}

// musicPhrase is the arpeggio the background track loops, as note
// frequencies in Hz; 0 is a rest.
var musicPhrase = []float64{
	261.63, 329.63, 392.00, 523.25, 392.00, 329.63, 0, 329.63,
	220.00, 261.63, 329.63, 440.00, 329.63, 261.63, 0, 261.63,
	174.61, 220.00, 261.63, 349.23, 261.63, 220.00, 0, 220.00,
	196.00, 246.94, 293.66, 392.00, 293.66, 246.94, 196.00, 0,
}

// createMusic renders one pass of the background phrase.
func createMusic(rate beep.SampleRate) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(musicPhrase))
	for _, f := range musicPhrase {
		if f == 0 {
			notes = append(notes, beep.Silence(rate.N(musicNote)))
			continue
		}
		notes = append(notes, tone(f, musicNote, WaveSine, rate))
	}
	return beep.Seq(notes...)
}

// oneShots maps cues to their one-shot recipe. CueMoveStart/Stop control
// the cart loop instead.
var oneShots = map[cannon.Cue]func(beep.SampleRate) beep.Streamer{
	cannon.CueFire:     createFire,
	cannon.CueBounce:   createBounce,
	cannon.CueHit:      createHit,
	cannon.CueGameOver: createGameOver,
}
