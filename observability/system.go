package observability

import "github.com/plus3/snake/snake"

// MetricsSystem mirrors every scheduler step into the package metrics.
type MetricsSystem struct{}

func NewMetricsSystem() *MetricsSystem {
	return &MetricsSystem{}
}

func (s *MetricsSystem) Execute(frame *snake.TickFrame) {
	snap := frame.Snapshot

	Score.Set(float64(snap.Score))
	HighScore.Set(float64(snap.HighScore))
	Length.Set(float64(snap.Length()))
	Speed.Set(snap.Speed.Seconds())

	if frame.Outcome == snake.OutcomeSkipped {
		return
	}

	TicksTotal.Inc()
	if frame.Elapsed > 0 {
		TickInterval.Observe(frame.Elapsed.Seconds())
	}
	if frame.Outcome.Grew() {
		FoodEatenTotal.Inc()
	}
	if frame.Outcome.Ended() {
		GamesTotal.WithLabelValues(frame.Outcome.String()).Inc()
		FinalScore.Observe(float64(snap.Score))
	}
}
