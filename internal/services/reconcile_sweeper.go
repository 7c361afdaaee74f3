package services

import (
	"time"

	"go.uber.org/zap"
)

// ReconcileSweeper periodically heals counter drift in the background. Any
// cadence is safe; the sweep only overwrites counters that disagree with the
// ledger.
type ReconcileSweeper struct {
	interval time.Duration
	stopChan chan struct{}
}

var Sweeper *ReconcileSweeper

func init() {
	Sweeper = &ReconcileSweeper{
		interval: 10 * time.Minute,
		stopChan: make(chan struct{}),
	}
}

// SetInterval must be called before Start.
func (s *ReconcileSweeper) SetInterval(d time.Duration) {
	s.interval = d
}

// Start runs the sweep loop until Stop is called. Run it in its own
// goroutine.
func (s *ReconcileSweeper) Start() {
	zap.L().Info("reconcile sweeper started", zap.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			corrected, err := ReconcileAll()
			if err != nil {
				zap.L().Error("reconcile sweep failed", zap.Error(err))
				continue
			}
			if corrected > 0 {
				zap.L().Warn("reconcile sweep corrected drifted counters",
					zap.Int("corrected", corrected))
			}

		case <-s.stopChan:
			zap.L().Info("reconcile sweeper stopped")
			return
		}
	}
}

func (s *ReconcileSweeper) Stop() {
	close(s.stopChan)
}
