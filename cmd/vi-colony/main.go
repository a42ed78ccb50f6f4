package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/vi-colony/audio"
	"github.com/lixenwraith/vi-colony/config"
	"github.com/lixenwraith/vi-colony/core"
	"github.com/lixenwraith/vi-colony/event"
	"github.com/lixenwraith/vi-colony/injector"
	"github.com/lixenwraith/vi-colony/input"
	"github.com/lixenwraith/vi-colony/logging"
	"github.com/lixenwraith/vi-colony/render"
)

var (
	configFlag = flag.String("config", "vi-colony.yaml", "Path to YAML config (missing file uses defaults)")
	debugFlag  = flag.Bool("debug", false, "Write debug log to the configured log dir")
	seedFlag   = flag.Int64("seed", 0, "Map seed override (0 = keep config)")
	muteFlag   = flag.Bool("mute", false, "Disable audio cues")
)

// errQuit ends the run group on a user quit without reporting an error
var errQuit = errors.New("quit")

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "vi-colony: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	if *debugFlag {
		cfg.Log.Debug = true
	}
	if *seedFlag != 0 {
		cfg.Map.Seed = *seedFlag
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	log, session := logging.WithSession(log)
	defer func() { _ = log.Sync() }()

	colony, err := injector.InitializeColony(cfg, log)
	if err != nil {
		return fmt.Errorf("assemble colony: %w", err)
	}
	log.Info("colony ready",
		zap.String("session", session),
		zap.Int("workers", len(colony.Population.Workers)),
		zap.Int("ore", len(colony.Population.Ore)),
	)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	// Panic recovery: restore the terminal before the trace is printed
	core.SetCrashCleanup(screen.Fini)
	defer func() { core.HandleCrash(recover()) }()
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	var player *audio.Player
	if cfg.Audio.Enabled {
		p, closeAudio, err := audio.OpenSpeaker()
		if err != nil {
			log.Warn("audio disabled", zap.Error(err))
		} else {
			player = p
			defer closeAudio()
		}
	}

	world := colony.World
	view, gridLayer := render.NewMapView(screen, colony.Map)
	lookup := func(row, col int) (core.Entity, bool) {
		var (
			e  core.Entity
			ok bool
		)
		world.RunSafe(func() { e, ok = world.EntityAt(world.Components.Ore, row, col) })
		return e, ok
	}
	translator := input.NewTranslator(world.Resource.Input, colony.Map.Rows(), colony.Map.Cols(), lookup)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer func() { core.HandleCrash(recover()) }()
		return colony.Scheduler.Run(ctx)
	})

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	// Pump exits on its own once quit closes
	core.Go(func() { screen.ChannelEvents(events, quit) })

	// Screen owner: input translation, notification drain and drawing stay on this goroutine
	g.Go(func() error {
		defer func() { core.HandleCrash(recover()) }()
		defer close(quit)
		view.RenderFrame(render.Collect(world))

		for {
			select {
			case <-ctx.Done():
				return nil

			case ev, ok := <-events:
				if !ok {
					return nil
				}
				switch e := ev.(type) {
				case *tcell.EventResize:
					view.Resize()
					continue
				case *tcell.EventKey:
					if e.Key() == tcell.KeyRune && e.Rune() == 'g' {
						log.Debug("grid overlay", zap.Bool("visible", gridLayer.Toggle()))
						continue
					}
				}
				if translator.Translate(ev) {
					return errQuit
				}

			case <-colony.Scheduler.UpdateDone():
				for _, n := range world.Resource.Events.Consume() {
					notify(log, player, n)
				}
				view.RenderFrame(render.Collect(world))
			}
		}
	})

	if err := g.Wait(); err != nil && !errors.Is(err, errQuit) {
		return err
	}
	log.Info("colony stopped", zap.Uint64("ticks", colony.Scheduler.TickCount()))
	return nil
}

func notify(log *zap.Logger, player *audio.Player, n event.GameEvent) {
	if player != nil {
		player.Play(audio.CueFor(n))
	}
	if ce := log.Check(zap.DebugLevel, "notification"); ce != nil {
		ce.Write(
			zap.Stringer("type", n.Type),
			zap.Uint64("tick", n.Tick),
			zap.Stringer("entity", n.Entity),
			zap.Int("row", n.Row),
			zap.Int("col", n.Col),
		)
	}
}
