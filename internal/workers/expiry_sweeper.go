package workers

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// Purger is implemented by stores that must delete expired shares themselves.
// Memory and Redis stores expire records on their own and do not need it.
type Purger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// ExpirySweeper periodically deletes expired shares.
type ExpirySweeper struct {
	purger   Purger
	interval time.Duration
}

func NewExpirySweeper(purger Purger, interval time.Duration) *ExpirySweeper {
	return &ExpirySweeper{
		purger:   purger,
		interval: interval,
	}
}

// Run sweeps once immediately, then every interval until ctx is cancelled.
func (s *ExpirySweeper) Run(ctx context.Context) {
	logrus.WithField("interval", s.interval).Info("expiry sweeper started")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.sweep(ctx)
	for {
		select {
		case <-ticker.C:
			s.sweep(ctx)
		case <-ctx.Done():
			logrus.Info("expiry sweeper stopped")
			return
		}
	}
}

func (s *ExpirySweeper) sweep(ctx context.Context) {
	removed, err := s.purger.PurgeExpired(ctx)
	if err != nil {
		if ctx.Err() == nil {
			logrus.WithError(err).Error("failed to purge expired shares")
		}
		return
	}
	if removed > 0 {
		logrus.WithField("removed", removed).Info("expired shares purged")
	}
}
