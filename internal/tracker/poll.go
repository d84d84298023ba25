package tracker

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Run calls Tick every interval until ctx is cancelled. Tick errors are
// logged and polling continues. Rollover is therefore noticed up to one
// interval after midnight.
func (t *Tracker) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	t.logger.Debug("polling for rollover", zap.Duration("interval", interval))
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			rolled, err := t.Tick(ctx, t.clock())
			if err != nil {
				t.logger.Warn("rollover check failed", zap.Error(err))
				continue
			}
			if rolled {
				t.logger.Debug("checklist reset for new day")
			}
		}
	}
}
