package video

import (
	"context"

	"github.com/google/uuid"
	"github.com/maslima80/listingshow/adapters/event"
	"github.com/maslima80/listingshow/internal/application/service"
	quotaUC "github.com/maslima80/listingshow/internal/application/usecase/quota"
	"github.com/maslima80/listingshow/internal/domain/asset"
	"github.com/maslima80/listingshow/internal/domain/property"
	"github.com/maslima80/listingshow/internal/domain/quota"
	"github.com/maslima80/listingshow/pkg/apperror"
	"github.com/maslima80/listingshow/pkg/logger"
	"go.uber.org/zap"
)

type UpdateDurationUseCase struct {
	assetRepo    asset.Repository
	propertyRepo property.Repository
	videoHost    service.VideoHost
	ledger       quota.Ledger
	quotaUC      *quotaUC.QuotaUseCase
	kafkaClient  EventPublisher
	logger       logger.Logger
}

func NewUpdateDurationUseCase(
	assetRepo asset.Repository,
	propertyRepo property.Repository,
	videoHost service.VideoHost,
	ledger quota.Ledger,
	quotaUseCase *quotaUC.QuotaUseCase,
	kafkaClient EventPublisher,
	log logger.Logger,
) *UpdateDurationUseCase {
	return &UpdateDurationUseCase{
		assetRepo:    assetRepo,
		propertyRepo: propertyRepo,
		videoHost:    videoHost,
		ledger:       ledger,
		quotaUC:      quotaUseCase,
		kafkaClient:  kafkaClient,
		logger:       log,
	}
}

type UpdateDurationOutput struct {
	Charged        bool
	AlreadyCharged bool
	DurationSec    int
	Minutes        int
}

// Execute attempts the awaiting-duration to charged transition for one video.
// It is safe to call any number of times: an already-charged asset is a no-op,
// and a lost race on the conditional duration update skips the ledger write,
// so the team is charged exactly once per video.
//
// When the charge would exceed the plan cap the asset is still charged and
// the ledger still incremented; the overage is logged and published for
// operator follow-up instead of orphaning an asset the provider already bills.
func (uc *UpdateDurationUseCase) Execute(ctx context.Context, assetID uuid.UUID) (*UpdateDurationOutput, error) {
	l := uc.logger.With(zap.String("asset_id", assetID.String()))

	a, err := uc.assetRepo.FindByID(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if a.Kind != asset.KindVideo {
		return nil, apperror.NewInvalidInput("asset is not a video", nil)
	}
	if a.ProviderID == "" {
		return nil, apperror.NewInvalidInput("asset has no provider identifier", nil)
	}
	if a.Charged() {
		return &UpdateDurationOutput{AlreadyCharged: true, DurationSec: *a.DurationSec}, nil
	}

	desc, err := uc.videoHost.FetchMetadata(ctx, a.ProviderID)
	if err != nil {
		return nil, err
	}
	if desc.DurationSec <= 0 {
		// Still transcoding. Not an error; the caller retries later.
		return &UpdateDurationOutput{Charged: false}, nil
	}

	set, err := uc.assetRepo.SetDurationIfUnset(ctx, a.ID, desc.DurationSec)
	if err != nil {
		return nil, err
	}
	if !set {
		// A concurrent reconciliation already charged this asset.
		l.Info("Asset duration already set by another worker, skipping charge")
		return &UpdateDurationOutput{AlreadyCharged: true, DurationSec: desc.DurationSec}, nil
	}

	teamID, err := uc.propertyRepo.TeamOf(ctx, a.PropertyID)
	if err != nil {
		return nil, err
	}

	minutes := quota.MinutesForSeconds(desc.DurationSec)

	allowed, reason, err := uc.quotaUC.CanConsume(ctx, teamID, minutes)
	if err != nil {
		return nil, err
	}
	if !allowed {
		l.Warn("Video minutes quota exceeded, charging anyway",
			zap.String("team_id", teamID.String()),
			zap.Int("minutes", minutes),
			zap.String("reason", reason))
		go func() {
			payload := event.VideoEventPayload{
				EventType:  event.VideoEventTypeQuotaExceeded,
				AssetID:    a.ID,
				TeamID:     teamID,
				ProviderID: a.ProviderID,
				Minutes:    minutes,
			}
			if err := uc.kafkaClient.PublishVideoEvent(context.Background(), payload); err != nil {
				uc.logger.Error("Failed to publish Kafka 'video.quota_exceeded' event", err)
			}
		}()
	}

	if err := uc.ledger.Add(ctx, teamID, minutes); err != nil {
		return nil, err
	}

	l.Info("Video charged against team quota",
		zap.String("team_id", teamID.String()),
		zap.Int("duration_sec", desc.DurationSec),
		zap.Int("minutes", minutes))

	go func() {
		payload := event.VideoEventPayload{
			EventType:   event.VideoEventTypeCharged,
			AssetID:     a.ID,
			TeamID:      teamID,
			ProviderID:  a.ProviderID,
			DurationSec: desc.DurationSec,
			Minutes:     minutes,
		}
		if err := uc.kafkaClient.PublishVideoEvent(context.Background(), payload); err != nil {
			uc.logger.Error("Failed to publish Kafka 'video.charged' event", err)
		}
	}()

	return &UpdateDurationOutput{Charged: true, DurationSec: desc.DurationSec, Minutes: minutes}, nil
}
