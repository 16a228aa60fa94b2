//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"time"

	"tappy/internal/app"
	"tappy/internal/audio"
	"tappy/internal/hud"
	"tappy/internal/scene"

	"github.com/gopxl/beep/speaker"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	cfg.BindAudio(flag.CommandLine)
	flag.Parse()

	digits, err := cfg.DigitConfig()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	music := audio.NewMusic(audio.Melody(audio.SampleRate, 250*time.Millisecond, 262, 330, 392, 330))
	if cfg.Music {
		if err := speaker.Init(audio.SampleRate, audio.SampleRate.N(audio.BufferDuration)); err != nil {
			log.Printf("audio disabled: %v", err)
		} else {
			speaker.Play(music)
		}
	}

	sc := scene.New(cfg.Size())
	sc.Events.On(scene.TopicChangeEnv, func(...any) { log.Printf("environment change at score %d", sc.Data.Int(scene.KeyScore)) })
	game := app.New(sc, hud.GuiOptions{Digits: digits, Muter: music}, cfg.TPS)

	ebiten.SetWindowTitle("tappy")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
