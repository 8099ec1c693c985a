package video

import (
	"context"

	"github.com/google/uuid"
	"github.com/maslima80/listingshow/adapters/event"
	"github.com/maslima80/listingshow/internal/application/service"
	"github.com/maslima80/listingshow/internal/domain/asset"
	"github.com/maslima80/listingshow/internal/domain/property"
	"github.com/maslima80/listingshow/internal/domain/quota"
	"github.com/maslima80/listingshow/pkg/apperror"
	"github.com/maslima80/listingshow/pkg/logger"
	"go.uber.org/zap"
)

type DeleteVideoUseCase struct {
	assetRepo    asset.Repository
	propertyRepo property.Repository
	videoHost    service.VideoHost
	ledger       quota.Ledger
	kafkaClient  EventPublisher
	logger       logger.Logger
}

func NewDeleteVideoUseCase(
	assetRepo asset.Repository,
	propertyRepo property.Repository,
	videoHost service.VideoHost,
	ledger quota.Ledger,
	kafkaClient EventPublisher,
	log logger.Logger,
) *DeleteVideoUseCase {
	return &DeleteVideoUseCase{
		assetRepo:    assetRepo,
		propertyRepo: propertyRepo,
		videoHost:    videoHost,
		ledger:       ledger,
		kafkaClient:  kafkaClient,
		logger:       log,
	}
}

type DeleteVideoInput struct {
	TeamID  uuid.UUID
	AssetID uuid.UUID
}

// Execute removes the video remotely and locally and refunds the ledger.
// Deleting an asset that never got charged (duration still unknown) performs
// no ledger adjustment. Deleting while transcoding is still in flight is the
// cancellation path and is safe at any state.
func (uc *DeleteVideoUseCase) Execute(ctx context.Context, input DeleteVideoInput) error {
	a, err := uc.assetRepo.FindByID(ctx, input.AssetID)
	if err != nil {
		return err
	}
	if a.Kind != asset.KindVideo {
		return apperror.NewInvalidInput("asset is not a video", nil)
	}

	// Ownership check through the owning property.
	if _, err := uc.propertyRepo.FindByID(ctx, a.PropertyID, input.TeamID); err != nil {
		return err
	}

	// Remote first: the adapter treats already-deleted as success, every
	// other provider failure aborts so local and remote state do not drift.
	if err := uc.videoHost.Delete(ctx, a.ProviderID); err != nil {
		return err
	}

	if err := uc.assetRepo.Delete(ctx, a.ID); err != nil {
		return err
	}

	refundMinutes := 0
	if a.Charged() {
		refundMinutes = quota.MinutesForSeconds(*a.DurationSec)
		if err := uc.ledger.Subtract(ctx, input.TeamID, refundMinutes); err != nil {
			// Row and remote asset are gone; the refund is the only thing
			// left, so surface it for operator follow-up.
			uc.logger.Error("Video deleted but quota refund failed", err,
				zap.String("asset_id", a.ID.String()),
				zap.Int("minutes", refundMinutes))
			return err
		}
	}

	go func() {
		payload := event.VideoEventPayload{
			EventType:  event.VideoEventTypeDeleted,
			AssetID:    a.ID,
			TeamID:     input.TeamID,
			ProviderID: a.ProviderID,
			Minutes:    refundMinutes,
		}
		if err := uc.kafkaClient.PublishVideoEvent(context.Background(), payload); err != nil {
			uc.logger.Error("Failed to publish Kafka 'video.deleted' event", err)
		}
	}()

	return nil
}
