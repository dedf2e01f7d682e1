// Command snake plays Snake in an Ebiten window.
//
// Controls: arrows or WASD steer, Space starts/pauses/restarts, Enter starts or
// restarts, N starts a new game, Backspace clears the high score. Swipes,
// mouse drags and the scroll wheel also steer while a game is running.
//
// Configuration is read from snake.yaml, .env and SNAKE_* variables; see the
// config package. Flags override the loaded values.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/snake/config"
	"github.com/plus3/snake/observability"
	"github.com/plus3/snake/snake"
	"github.com/plus3/snake/snake/autopilot"
	"github.com/plus3/snake/snake/debugui"
	debugui_ebiten "github.com/plus3/snake/snake/debugui/ebiten"
	"github.com/plus3/snake/spectate"
)

func main() {
	if err := run(); err != nil {
		slog.Error("snake failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "Path to a YAML config file.")
	autoplay := flag.Bool("autoplay", false, "Let the autopilot play (attract mode).")
	debug := flag.Bool("debug", false, "Show the Dear ImGui debug overlay.")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn or error.")
	serve := flag.Bool("serve", false, "Start the read-only spectator server.")
	addr := flag.String("addr", "", "Spectator server listen address.")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *logLevel != "" {
		cfg.Debug.LogLevel = *logLevel
	}
	if *debug {
		cfg.Debug.Imgui = true
	}
	if *serve {
		cfg.Server.Enabled = true
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}

	level, err := cfg.Debug.Level()
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	engine, err := snake.NewEngine(cfg.Game, snake.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("creating engine: %w", err)
	}

	scheduler := snake.NewScheduler(engine)
	if *autoplay {
		scheduler.Register(&autopilot.Pilot{Restart: true})
		scheduler.Commands().Apply(snake.ActionConfirm)
	}
	if cfg.Observability.Metrics.Enabled {
		scheduler.Register(observability.NewMetricsSystem())
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	if cfg.Server.Enabled {
		hub := spectate.NewHub(engine, logger)
		scheduler.Register(hub)
		router := spectate.NewRouter(hub, cfg.Server, cfg.Observability.Metrics)
		go func() {
			if err := spectate.Serve(ctx, cfg.Server.Addr, router, logger); err != nil {
				errCh <- fmt.Errorf("spectator server: %w", err)
				stop()
			}
		}()
	}

	go scheduler.Run(ctx)

	game := NewGame(scheduler, cfg.Game.GridSize)
	title := "Snake"
	if cfg.Debug.Imgui {
		backend := debugui_ebiten.NewImguiBackend(title, game.Width()+debugPanelWidth, game.Height())
		game.EnableDebug(backend, debugui.NewOverlay(scheduler))
	} else {
		ebiten.SetWindowSize(game.Width()*2, game.Height()*2)
		ebiten.SetWindowTitle(title)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	game.quit = ctx.Done()

	logger.Info("snake starting",
		"grid_size", cfg.Game.GridSize,
		"autoplay", *autoplay,
		"debug", cfg.Debug.Imgui,
		"server", cfg.Server.Enabled,
	)

	if err := ebiten.RunGame(game); err != nil {
		return err
	}
	stop()

	select {
	case err := <-errCh:
		return err
	default:
		return nil
	}
}
