package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/lixenwraith/vi-towers/app"
	"github.com/lixenwraith/vi-towers/asset"
	"github.com/lixenwraith/vi-towers/audio"
	"github.com/lixenwraith/vi-towers/board"
	"github.com/lixenwraith/vi-towers/config"
	"github.com/lixenwraith/vi-towers/core"
	"github.com/lixenwraith/vi-towers/service"
	"github.com/lixenwraith/vi-towers/status"
	"github.com/lixenwraith/vi-towers/terminal"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:   "vi-towers",
		Usage:  "tower defense in the terminal",
		Flags:  config.Flags(),
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "vi-towers: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	// Panic recovery: the crash hook restores the terminal before the report
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

	// Image handles must exist before the asset service starts loading
	lib := asset.NewLibrary(nil)
	catalog := board.NewCatalog(lib)

	assets := asset.NewService(lib)
	sound := audio.NewService(assets)
	term := terminal.NewService()

	hub := service.NewHub()
	for _, reg := range []struct {
		svc  service.Service
		args []any
	}{
		{assets, []any{s.Assets}},
		{sound, []any{s.Audio(audio.LoadConfig())}},
		{term, []any{terminal.ParseColorMode(s.Color)}},
	} {
		if err := hub.Register(reg.svc, reg.args...); err != nil {
			return err
		}
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
		Glyphs:  true,
		Stock:   s.Stock,
	})

	pump := terminal.NewPump(a.Push)
	pump.OnResize = term.Resize

	interval := s.FrameInterval()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-term.Events():
			if pump.Translate(ev) {
				return nil
			}

		case now := <-ticker.C:
			delta := now.Sub(last).Seconds()
			last = now
			if a.Step(delta) {
				return nil
			}
			a.Draw(term.Canvas())
			term.Present()
		}
	}
}
