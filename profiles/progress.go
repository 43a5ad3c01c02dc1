package profiles

import (
	"log/slog"
	"sync"
	"time"
)

// progressTracker reports embedding progress through the store's logger.
// Safe for concurrent Add calls from the worker pool.
type progressTracker struct {
	logger         *slog.Logger
	total          int
	reportInterval int

	mu           sync.Mutex
	current      int
	lastReported int
	startTime    time.Time
}

func newProgressTracker(logger *slog.Logger, total, reportInterval int) *progressTracker {
	if reportInterval < 1 {
		reportInterval = 1
	}
	return &progressTracker{
		logger:         logger,
		total:          total,
		reportInterval: reportInterval,
		startTime:      time.Now(),
	}
}

// Add records n completed items and reports when the interval is crossed.
func (p *progressTracker) Add(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.current += n
	if p.current > p.total {
		p.current = p.total
	}
	if p.current-p.lastReported < p.reportInterval && p.current != p.total {
		return
	}
	p.lastReported = p.current

	p.logger.Info("embedding progress",
		"done", p.current,
		"total", p.total,
		"elapsed", time.Since(p.startTime).Round(time.Millisecond))
}
