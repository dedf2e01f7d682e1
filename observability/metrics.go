// Package observability provides Prometheus metrics and HTTP middleware
// for monitoring snake games and the spectator server.
package observability

import "github.com/prometheus/client_golang/prometheus"

// ScoreBuckets covers final scores from a first-food death to a long run on
// the default board.
var ScoreBuckets = []float64{0, 10, 50, 100, 200, 400, 800, 1430}

// TickBuckets spans the tick intervals a game moves through, 50ms to 250ms,
// with room for scheduling jitter.
var TickBuckets = []float64{0.025, 0.05, 0.1, 0.15, 0.2, 0.25, 0.3, 0.5}

var (
	// GamesTotal counts finished games by how they ended.
	GamesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "snake_games_total",
			Help: "Finished games",
		},
		[]string{"reason"},
	)

	// FoodEatenTotal counts every food the snake has eaten.
	FoodEatenTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "snake_food_eaten_total",
			Help: "Food eaten",
		},
	)

	// TicksTotal counts engine ticks that advanced a running game.
	TicksTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "snake_ticks_total",
			Help: "Engine ticks",
		},
	)

	// TickInterval records the wall time between ticks in seconds.
	TickInterval = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "snake_tick_interval_seconds",
			Help:    "Time between ticks",
			Buckets: TickBuckets,
		},
	)

	Score = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "snake_score",
			Help: "Score of the current game",
		},
	)

	HighScore = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "snake_high_score",
			Help: "Session high score",
		},
	)

	Length = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "snake_length",
			Help: "Snake length in segments",
		},
	)

	// Speed is the current tick interval in seconds.
	Speed = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "snake_speed_seconds",
			Help: "Current tick interval",
		},
	)

	// FinalScore records the score of each finished game.
	FinalScore = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "snake_final_score",
			Help:    "Score at game over",
			Buckets: ScoreBuckets,
		},
	)

	// HTTPRequestsTotal counts spectator HTTP requests by method and status class.
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "snake_http_requests_total",
			Help: "Spectator HTTP requests",
		},
		[]string{"method", "status"},
	)

	// HTTPRequestDuration records spectator request duration in seconds.
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "snake_http_request_duration_seconds",
			Help:    "Spectator HTTP request duration",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	// Spectators tracks connected websocket spectators.
	Spectators = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "snake_spectators_active",
			Help: "Connected spectators",
		},
	)
)

func init() {
	prometheus.MustRegister(
		GamesTotal,
		FoodEatenTotal,
		TicksTotal,
		TickInterval,
		Score,
		HighScore,
		Length,
		Speed,
		FinalScore,
		HTTPRequestsTotal,
		HTTPRequestDuration,
		Spectators,
	)
}
