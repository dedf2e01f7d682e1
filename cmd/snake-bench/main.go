package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/plus3/snake/snake"
	"github.com/plus3/snake/snake/autopilot"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the benchmark should run for.")
	games := flag.Int("games", runtime.NumCPU(), "The number of games played in parallel.")
	seed := flag.Uint64("seed", 1, "Base food seed; game i uses seed+i. Zero picks random seeds.")
	grid := flag.Int("grid", snake.DefaultConfig().GridSize, "The board side length.")
	maxTicks := flag.Uint64("max-ticks", 20000, "Abandon a game that has not ended after this many ticks.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	quiet := slog.New(slog.DiscardHandler)

	cfg := snake.DefaultConfig()
	cfg.GridSize = *grid
	cfg.Start = snake.Position{X: *grid / 2, Y: *grid / 2}
	cfg.StartFood = snake.Position{X: *grid - 1, Y: *grid - 1}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid board", "error", err)
		os.Exit(1)
	}

	report := &Report{
		Duration:       *duration,
		Games:          *games,
		GridSize:       *grid,
		Seed:           *seed,
		GCPauseMetrics: *gcPauseMetrics,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	logger.Info("running autopilot games", "games", *games, "duration", *duration, "grid", *grid)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	recorders := make([]*recorder, *games)
	var wg sync.WaitGroup
	startTime := time.Now()
	for i := range *games {
		gameCfg := cfg
		if *seed != 0 {
			gameCfg.Seed = *seed + uint64(i)
		}
		engine, err := snake.NewEngine(gameCfg, snake.WithLogger(quiet))
		if err != nil {
			logger.Error("failed to create engine", "error", err)
			os.Exit(1)
		}

		rec := &recorder{maxTicks: *maxTicks}
		recorders[i] = rec
		scheduler := snake.NewScheduler(engine)
		scheduler.Register(rec)
		scheduler.Register(&autopilot.Pilot{Restart: true})
		scheduler.Commands().Apply(snake.ActionConfirm)

		wg.Go(func() {
			play(ctx, scheduler, rec)
		})
	}
	wg.Wait()

	report.TotalTime = time.Since(startTime)
	for _, rec := range recorders {
		report.add(rec)
	}
	report.finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	logger.Info("benchmark finished", "ticks", report.TotalTicks, "games_finished", len(report.Results))

	fmt.Println("\n--- Snake Benchmark Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		logger.Error("failed to generate report", "error", err)
		os.Exit(1)
	}
	fmt.Println("--- End of Report ---")
}

// play steps the scheduler as fast as possible until ctx expires.
func play(ctx context.Context, scheduler *snake.Scheduler, rec *recorder) {
	last := time.Now()
	for ctx.Err() == nil {
		start := time.Now()
		scheduler.Once(start.Sub(last))
		rec.stepTimes = append(rec.stepTimes, time.Since(start))
		last = start
	}
}

// recorder is a System collecting the result of every finished game. It runs
// before the pilot so it sees the final frame before the restart.
type recorder struct {
	maxTicks  uint64
	results   []GameResult
	stepTimes []time.Duration
	ticks     int64
}

func (r *recorder) Execute(frame *snake.TickFrame) {
	if frame.Outcome != snake.OutcomeSkipped {
		r.ticks++
	}

	snap := frame.Snapshot
	switch {
	case frame.Outcome.Ended():
		r.results = append(r.results, newGameResult(snap, frame.Outcome.String()))
	case snap.State == snake.Running && snap.Ticks >= r.maxTicks:
		r.results = append(r.results, newGameResult(snap, "stalled"))
		frame.Engine.Reset()
	}
}
