package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/Garsondee/Cannon-Ball/internal/audio"
	"github.com/Garsondee/Cannon-Ball/internal/cannon"
	"github.com/Garsondee/Cannon-Ball/internal/termui"
	"github.com/gdamore/tcell/v2"
)

func main() {
	var mute bool
	var seed int64

	flag.BoolVar(&mute, "mute", false, "start muted (m toggles)")
	flag.Int64Var(&seed, "seed", 0, "target placement seed (0 = clock)")
	flag.Parse()

	var cues cannon.CueSink = cannon.NopCues{}
	player, err := startAudio(mute)
	if err != nil {
		log.Printf("audio disabled: %v", err)
	} else {
		cues = player
	}
	fail := func(err error) {
		if player != nil {
			player.Close()
		}
		log.Print(err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fail(err)
	}
	ui, err := termui.New(screen, cannon.Options{Seed: seed, Cues: cues})
	if err != nil {
		fail(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	runErr := ui.Run(ctx)
	stop()
	ui.Close()
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		fail(runErr)
	}
	if player != nil {
		player.Close()
	}
	fmt.Println(ui.Session().Summary())
}

// startAudio opens the speaker. A muted player still starts so m can
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
