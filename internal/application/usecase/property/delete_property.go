package property

import (
	"context"

	"github.com/google/uuid"
	"github.com/maslima80/listingshow/internal/application/service"
	"github.com/maslima80/listingshow/internal/domain/asset"
	"github.com/maslima80/listingshow/internal/domain/property"
	"github.com/maslima80/listingshow/internal/domain/quota"
	"github.com/maslima80/listingshow/pkg/logger"
	"go.uber.org/zap"
)

type DeletePropertyUseCase struct {
	propertyRepo property.Repository
	assetRepo    asset.Repository
	videoHost    service.VideoHost
	images       service.ImageStorage
	ledger       quota.Ledger
	logger       logger.Logger
}

func NewDeletePropertyUseCase(
	propertyRepo property.Repository,
	assetRepo asset.Repository,
	videoHost service.VideoHost,
	images service.ImageStorage,
	ledger quota.Ledger,
	log logger.Logger,
) *DeletePropertyUseCase {
	return &DeletePropertyUseCase{
		propertyRepo: propertyRepo,
		assetRepo:    assetRepo,
		videoHost:    videoHost,
		images:       images,
		ledger:       ledger,
		logger:       log,
	}
}

type DeletePropertyInput struct {
	TeamID     uuid.UUID
	PropertyID uuid.UUID
}

// Execute removes a property with all of its media. Remote deletions run per
// asset and charged videos refund their minutes, same as a standalone video
// delete. A remote failure on one asset does not strand the rest.
func (uc *DeletePropertyUseCase) Execute(ctx context.Context, in DeletePropertyInput) error {
	p, err := uc.propertyRepo.FindByID(ctx, in.PropertyID, in.TeamID)
	if err != nil {
		return err
	}

	assets, err := uc.assetRepo.ListByProperty(ctx, p.ID)
	if err != nil {
		return err
	}

	for _, a := range assets {
		switch a.Kind {
		case asset.KindVideo:
			if err := uc.videoHost.Delete(ctx, a.ProviderID); err != nil {
				uc.logger.Error("Failed to delete video at provider during property delete", err,
					zap.String("asset_id", a.ID.String()))
				continue
			}
			if err := uc.assetRepo.Delete(ctx, a.ID); err != nil {
				return err
			}
			if a.Charged() {
				if err := uc.ledger.Subtract(ctx, in.TeamID, quota.MinutesForSeconds(*a.DurationSec)); err != nil {
					return err
				}
			}
		case asset.KindImage:
			if err := uc.images.Delete(ctx, a.ProviderID); err != nil {
				uc.logger.Warn("Failed to delete image at provider during property delete",
					zap.String("asset_id", a.ID.String()), zap.Error(err))
			}
			if err := uc.assetRepo.Delete(ctx, a.ID); err != nil {
				return err
			}
		}
	}

	return uc.propertyRepo.Delete(ctx, in.PropertyID, in.TeamID)
}
