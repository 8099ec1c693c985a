package video

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/maslima80/listingshow/pkg/logger"
	"go.uber.org/zap"
)

const (
	pollMaxAttempts  = 10
	pollInitialDelay = 10 * time.Second
	pollInterval     = 30 * time.Second
)

// DurationPoller retries the duration fetch for a freshly uploaded video a
// bounded number of times. When the attempts run out the asset simply stays
// pending until the bulk reconciliation sweep picks it up.
type DurationPoller struct {
	update       *UpdateDurationUseCase
	logger       logger.Logger
	maxAttempts  int
	initialDelay time.Duration
	interval     time.Duration
	sleep        func(ctx context.Context, d time.Duration) error
}

func NewDurationPoller(update *UpdateDurationUseCase, log logger.Logger) *DurationPoller {
	return &DurationPoller{
		update:       update,
		logger:       log,
		maxAttempts:  pollMaxAttempts,
		initialDelay: pollInitialDelay,
		interval:     pollInterval,
		sleep:        sleepCtx,
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Run polls until the asset is charged, a terminal error occurs, or the
// attempt budget is exhausted.
func (p *DurationPoller) Run(ctx context.Context, assetID uuid.UUID) {
	l := p.logger.With(zap.String("asset_id", assetID.String()))

	if err := p.sleep(ctx, p.initialDelay); err != nil {
		return
	}

	for attempt := 1; attempt <= p.maxAttempts; attempt++ {
		result, err := p.update.Execute(ctx, assetID)
		if err != nil {
			// The asset may have been deleted mid-poll, or the provider may be
			// down. Either way the sweep will retry anything still pending.
			l.Warn("Duration poll attempt failed", zap.Int("attempt", attempt), zap.Error(err))
			return
		}
		if result.Charged || result.AlreadyCharged {
			return
		}

		if attempt < p.maxAttempts {
			if err := p.sleep(ctx, p.interval); err != nil {
				return
			}
		}
	}

	l.Info("Duration poll attempts exhausted, leaving asset for reconciliation sweep",
		zap.Int("attempts", p.maxAttempts))
}
