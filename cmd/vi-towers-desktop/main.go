package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/lixenwraith/vi-towers/app"
	"github.com/lixenwraith/vi-towers/asset"
	"github.com/lixenwraith/vi-towers/audio"
	"github.com/lixenwraith/vi-towers/board"
	"github.com/lixenwraith/vi-towers/config"
	"github.com/lixenwraith/vi-towers/core"
	"github.com/lixenwraith/vi-towers/desktop"
	"github.com/lixenwraith/vi-towers/service"
	"github.com/lixenwraith/vi-towers/status"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:   "vi-towers-desktop",
		Usage:  "tower defense in a window",
		Flags:  config.Flags(),
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "vi-towers-desktop: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	s, err := config.FromCommand(cmd)
	if err != nil {
		return err
	}
	if logFile := config.SetupLogging(s.Debug); logFile != nil {
		defer logFile.Close()
	}

	lib := asset.NewLibrary(nil)
	catalog := board.NewCatalog(lib)

	assets := asset.NewService(lib)
	sound := audio.NewService(assets)

	hub := service.NewHub()
	if err := hub.Register(assets, s.Assets); err != nil {
		return err
	}
	if err := hub.Register(sound, s.Audio(audio.LoadConfig())); err != nil {
		return err
	}
	if err := hub.InitAll(); err != nil {
		return err
	}
	if err := hub.StartAll(); err != nil {
		return err
	}
	defer hub.StopAll()
	log.Printf("[main] services: %v", hub.Order())

	engine := sound.Engine()
	a := app.New(app.Options{
		Catalog: catalog,
		Sound:   engine,
		Music:   engine,
		Audio:   engine,
		Status:  status.NewRegistry(),
		Seed:    s.WorldSeed(),
		Debug:   s.Debug,
		Stock:   s.Stock,
	})

	if err := desktop.Run(a, s.Scale); err != nil {
		return fmt.Errorf("desktop: %w", err)
	}
	return nil
}
