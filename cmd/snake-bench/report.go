package main

import (
	"cmp"
	"fmt"
	"io"
	"runtime"
	"slices"
	"text/template"
	"time"

	"github.com/plus3/snake/snake"
)

// GameResult summarizes one finished game.
type GameResult struct {
	Reason string
	Score  int
	Length int
	Ticks  uint64
}

func newGameResult(snap snake.Snapshot, reason string) GameResult {
	return GameResult{
		Reason: reason,
		Score:  snap.Score,
		Length: snap.Length(),
		Ticks:  snap.Ticks,
	}
}

type Report struct {
	// Configuration
	Duration time.Duration
	Games    int
	GridSize int
	Seed     uint64

	// Results
	TotalTicks     int64
	TotalSteps     int64
	TotalTime      time.Duration
	StepTime       Stats
	Results        []GameResult
	Reasons        map[string]int
	Score          IntStats
	Length         IntStats
	BestGame       GameResult
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	P99     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))

	sorted := slices.Clone(s.Samples)
	slices.Sort(sorted)
	s.P99 = sorted[len(sorted)*99/100]
}

// IntStats aggregates an integer metric over finished games.
type IntStats struct {
	Min int
	Max int
	Avg float64
}

func intStats(values []int) IntStats {
	if len(values) == 0 {
		return IntStats{}
	}
	total := 0
	for _, v := range values {
		total += v
	}
	return IntStats{
		Min: slices.Min(values),
		Max: slices.Max(values),
		Avg: float64(total) / float64(len(values)),
	}
}

func (r *Report) add(rec *recorder) {
	r.TotalTicks += rec.ticks
	r.TotalSteps += int64(len(rec.stepTimes))
	r.StepTime.Samples = append(r.StepTime.Samples, rec.stepTimes...)
	r.Results = append(r.Results, rec.results...)
}

func (r *Report) finalize() {
	r.StepTime.Finalize()

	r.Reasons = make(map[string]int)
	scores := make([]int, 0, len(r.Results))
	lengths := make([]int, 0, len(r.Results))
	for _, result := range r.Results {
		r.Reasons[result.Reason]++
		scores = append(scores, result.Score)
		lengths = append(lengths, result.Length)
	}
	r.Score = intStats(scores)
	r.Length = intStats(lengths)

	if len(r.Results) > 0 {
		r.BestGame = slices.MaxFunc(r.Results, func(a, b GameResult) int {
			return cmp.Compare(a.Score, b.Score)
		})
	}
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Snake Autopilot Benchmark

## Configuration
- **Run Duration:** {{.Duration}}
- **Parallel Games:** {{.Games}}
- **Board:** {{.GridSize}}x{{.GridSize}}
- **Base Seed:** {{.Seed}}

## Throughput
- **Scheduler Steps:** {{.TotalSteps}}
- **Engine Ticks:** {{.TotalTicks}}
- **Ticks/sec:** {{rate .TotalTicks .TotalTime}}
- **Total Test Time:** {{.TotalTime}}
- **Step Time:**
  - **Avg:** {{.StepTime.Avg}}
  - **Min:** {{.StepTime.Min}}
  - **Max:** {{.StepTime.Max}}
  - **P99:** {{.StepTime.P99}}

## Games
- **Finished:** {{len .Results}}
{{- range $reason, $count := .Reasons}}
  - {{$reason}}: {{$count}}
{{- end}}
- **Score:** avg {{printf "%.1f" .Score.Avg}}, min {{.Score.Min}}, max {{.Score.Max}}
- **Length:** avg {{printf "%.1f" .Length.Avg}}, min {{.Length.Min}}, max {{.Length.Max}}
- **Best Game:** {{.BestGame.Score}} points, length {{.BestGame.Length}}, {{.BestGame.Ticks}} ticks ({{.BestGame.Reason}})

## Memory Usage
- Heap Alloc:     {{mb .MemStatsStart.HeapAlloc}} MB (start) -> {{mb .MemStatsEnd.HeapAlloc}} MB (end)
- Total Alloc:    {{mb .MemStatsStart.TotalAlloc}} MB (start) -> {{mb .MemStatsEnd.TotalAlloc}} MB (end)
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
{{end}}`

	fm := template.FuncMap{
		"mb": func(v uint64) string {
			return fmt.Sprintf("%.2f", float64(v)/1024/1024)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
		"rate": func(count int64, d time.Duration) string {
			if d <= 0 {
				return "N/A"
			}
			return fmt.Sprintf("%.0f", float64(count)/d.Seconds())
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
