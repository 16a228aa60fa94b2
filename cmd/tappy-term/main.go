package main

import (
	"flag"
	"log"

	"tappy/internal/app"
	"tappy/internal/hud"
	"tappy/internal/scene"
	"tappy/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	digits, err := cfg.DigitConfig()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("terminal: %v", err)
	}
	screen.EnableMouse()

	var notices []string
	sc := scene.New(cfg.Size())
	a := term.NewApp(screen, sc, hud.GuiOptions{
		Digits: digits,
		Notify: func(msg string) { notices = append(notices, msg) },
	}, cfg.TPS)
	a.Run()
	screen.Fini()

	for _, msg := range notices {
		log.Print(msg)
	}
}
