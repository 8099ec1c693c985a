package video

import (
	"context"
	"time"

	"github.com/maslima80/listingshow/internal/application/service"
	"github.com/maslima80/listingshow/internal/domain/asset"
	"github.com/maslima80/listingshow/pkg/logger"
	"go.uber.org/zap"
)

const reconcileLockTTL = 5 * time.Minute

type ReconcilePendingUseCase struct {
	assetRepo asset.Repository
	update    *UpdateDurationUseCase
	locker    service.AssetLocker
	logger    logger.Logger
}

func NewReconcilePendingUseCase(
	assetRepo asset.Repository,
	update *UpdateDurationUseCase,
	locker service.AssetLocker,
	log logger.Logger,
) *ReconcilePendingUseCase {
	return &ReconcilePendingUseCase{
		assetRepo: assetRepo,
		update:    update,
		locker:    locker,
		logger:    log,
	}
}

type ReconcileOutput struct {
	Scanned int `json:"scanned"`
	Charged int `json:"charged"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}

// Execute sweeps every video still awaiting a duration and tries one metadata
// fetch per asset. One bad asset never aborts the sweep; failures are logged
// and counted. A per-asset lock keeps two sweeps from reconciling the same
// asset at once.
func (uc *ReconcilePendingUseCase) Execute(ctx context.Context) (*ReconcileOutput, error) {
	pending, err := uc.assetRepo.FindPendingDurationVideos(ctx, asset.ProviderBunny)
	if err != nil {
		return nil, err
	}

	out := &ReconcileOutput{Scanned: len(pending)}
	for _, a := range pending {
		lockKey := "reconcile:" + a.ID.String()
		ok, err := uc.locker.TryLock(ctx, lockKey, reconcileLockTTL)
		if err != nil {
			uc.logger.Error("Failed to acquire reconcile lock", err, zap.String("asset_id", a.ID.String()))
			out.Failed++
			continue
		}
		if !ok {
			out.Skipped++
			continue
		}

		result, err := uc.update.Execute(ctx, a.ID)
		if err != nil {
			uc.logger.Error("Failed to reconcile video duration", err, zap.String("asset_id", a.ID.String()))
			out.Failed++
		} else if result.Charged {
			out.Charged++
		}

		if err := uc.locker.Unlock(ctx, lockKey); err != nil {
			uc.logger.Warn("Failed to release reconcile lock", zap.String("asset_id", a.ID.String()), zap.Error(err))
		}
	}

	uc.logger.Info("Pending video reconciliation sweep finished",
		zap.Int("scanned", out.Scanned),
		zap.Int("charged", out.Charged),
		zap.Int("skipped", out.Skipped),
		zap.Int("failed", out.Failed))
	return out, nil
}
