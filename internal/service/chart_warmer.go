package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/fingold/fingold-backend/internal/charts"
	"github.com/fingold/fingold-backend/internal/domain"
	"github.com/rs/zerolog"
)

// ChartWarmer is a background worker that periodically renders the
// dashboard charts so requests are served from the chart cache
type ChartWarmer struct {
	chartService *ChartService
	logger       zerolog.Logger
	interval     time.Duration
	stopCh       chan struct{}
	doneCh       chan struct{}
	stopOnce     sync.Once
	mu           sync.Mutex
	running      bool
}

// warmKinds are rendered on every pass; balance uses the default range
var warmKinds = []ChartKind{ChartCategory, ChartMonthly, ChartBalance}

// NewChartWarmer creates a new chart warmer
func NewChartWarmer(chartService *ChartService, logger zerolog.Logger, interval time.Duration) *ChartWarmer {
	if interval <= 0 {
		interval = 10 * time.Minute
	}

	return &ChartWarmer{
		chartService: chartService,
		logger:       logger.With().Str("component", "chart_warmer").Logger(),
		interval:     interval,
		stopCh:       make(chan struct{}),
		doneCh:       make(chan struct{}),
	}
}

// Start begins the background warming
func (w *ChartWarmer) Start(ctx context.Context) {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.mu.Unlock()

	w.logger.Info().
		Dur("interval", w.interval).
		Msg("Starting chart warmer")

	go w.run(ctx)
}

// Stop gracefully stops the warmer
func (w *ChartWarmer) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.mu.Unlock()

	w.stopOnce.Do(func() {
		w.logger.Info().Msg("Stopping chart warmer")
		close(w.stopCh)
	})
	<-w.doneCh
	w.logger.Info().Msg("Chart warmer stopped")
}

func (w *ChartWarmer) run(ctx context.Context) {
	defer close(w.doneCh)

	// Warm immediately on startup
	w.WarmOnce(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.setStopped()
			return
		case <-w.stopCh:
			w.setStopped()
			return
		case <-ticker.C:
			w.WarmOnce(ctx)
		}
	}
}

func (w *ChartWarmer) setStopped() {
	w.mu.Lock()
	w.running = false
	w.mu.Unlock()
}

// WarmOnce renders every dashboard chart and returns how many were rendered.
// Charts with nothing to draw are skipped.
func (w *ChartWarmer) WarmOnce(ctx context.Context) int {
	startTime := time.Now()
	rendered := 0
	failed := 0

	for _, kind := range warmKinds {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("Context cancelled, stopping warm pass")
			return rendered
		default:
		}

		if _, err := w.chartService.Render(kind, domain.DefaultBalanceRange); err != nil {
			if errors.Is(err, charts.ErrNoData) {
				continue
			}
			w.logger.Error().Err(err).Str("chart", string(kind)).Msg("Failed to warm chart")
			failed++
			continue
		}
		rendered++
	}

	w.logger.Debug().
		Int("rendered", rendered).
		Int("failed", failed).
		Dur("elapsed", time.Since(startTime)).
		Msg("Completed chart warm pass")
	return rendered
}

// IsRunning returns whether the warmer is currently running
func (w *ChartWarmer) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}
