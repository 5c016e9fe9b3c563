package main

import (
	"context"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"

	"tilequest/config"
	"tilequest/telemetry"
)

func main() {
	// A local .env can set seed, save path and telemetry options.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("skipping .env: %v", err)
	}
	settings := config.LoadSettings()

	if settings.TelemetryEnabled {
		shutdown, err := telemetry.Setup(context.Background())
		if err != nil {
			log.Printf("telemetry disabled: %v", err)
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					log.Printf("telemetry shutdown: %v", err)
				}
			}()
		}
	}

	// --overworld drops the player straight into the open world instead of
	// the town.
	startInOverworld := len(os.Args) > 1 && os.Args[1] == "--overworld"

	game := NewGame(settings, startInOverworld)

	windowWidth, windowHeight := config.GetWindowSize()
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("Tilequest")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
