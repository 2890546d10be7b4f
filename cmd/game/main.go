package main

import (
	"flag"
	"log"
	"os"

	"github.com/Garsondee/Cannon-Ball/internal/audio"
	"github.com/Garsondee/Cannon-Ball/internal/cannon"
	"github.com/Garsondee/Cannon-Ball/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	var mute bool
	var debug bool
	var seed int64

	flag.BoolVar(&mute, "mute", false, "start muted (M toggles)")
	flag.Int64Var(&seed, "seed", 0, "target placement seed (0 = clock)")
	flag.BoolVar(&debug, "debug", false, "show the event overlay (toggle with F1)")
	flag.Parse()

	var cues cannon.CueSink = cannon.NopCues{}
	player, err := startAudio(mute)
	if err != nil {
		log.Printf("audio disabled: %v", err)
	} else {
		cues = player
	}

	g := game.New(game.Options{Seed: seed, Cues: cues, Debug: debug})

	ebiten.SetWindowTitle("Cannon Ball")
	ebiten.SetWindowSize(cannon.ArenaWidth, cannon.ArenaHeight)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(cannon.TicksPerSecond)
	runErr := ebiten.RunGame(g)
	if player != nil {
		player.Close()
	}
	if runErr != nil {
		log.Print(runErr)
		os.Exit(1)
	}
	log.Printf("final: %s", g.Session().Summary())
}

// startAudio opens the speaker. A muted player still starts so M can
// unmute it in game.
func startAudio(muted bool) (*audio.Player, error) {
	player, err := audio.NewPlayer(audio.LoadConfig(os.Getenv))
	if err != nil {
		return nil, err
	}
	player.SetMuted(muted)
	if err := player.Start(); err != nil {
		return nil, err
	}
	return player, nil
}
