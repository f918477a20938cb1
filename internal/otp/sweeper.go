package otp

import (
	"context"
	"log/slog"
	"time"

	"github.com/yabeye/edu_verify_backend/pkg/clock"
)

// Sweeper is implemented by stores that can drop expired challenges in bulk.
type Sweeper interface {
	Sweep(now time.Time) int
}

// RunSweeper removes expired challenges every interval until ctx is done.
// Expiry is still enforced lazily on access; this only bounds memory held by
// challenges nobody asks about again.
func RunSweeper(ctx context.Context, s Sweeper, clk clock.Clocker, interval time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(clk.Now()); n > 0 {
				logger.Debug("swept expired otp challenges", "count", n)
			}
		}
	}
}
