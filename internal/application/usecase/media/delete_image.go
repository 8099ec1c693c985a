package media

import (
	"context"

	"github.com/google/uuid"
	"github.com/maslima80/listingshow/internal/application/service"
	"github.com/maslima80/listingshow/internal/domain/asset"
	"github.com/maslima80/listingshow/internal/domain/property"
	"github.com/maslima80/listingshow/pkg/apperror"
	"github.com/maslima80/listingshow/pkg/logger"
	"go.uber.org/zap"
)

type DeleteImageUseCase struct {
	assetRepo    asset.Repository
	propertyRepo property.Repository
	images       service.ImageStorage
	logger       logger.Logger
}

func NewDeleteImageUseCase(
	assetRepo asset.Repository,
	propertyRepo property.Repository,
	images service.ImageStorage,
	log logger.Logger,
) *DeleteImageUseCase {
	return &DeleteImageUseCase{
		assetRepo:    assetRepo,
		propertyRepo: propertyRepo,
		images:       images,
		logger:       log,
	}
}

type DeleteImageInput struct {
	TeamID  uuid.UUID
	AssetID uuid.UUID
}

func (uc *DeleteImageUseCase) Execute(ctx context.Context, input DeleteImageInput) error {
	a, err := uc.assetRepo.FindByID(ctx, input.AssetID)
	if err != nil {
		return err
	}
	if a.Kind != asset.KindImage {
		return apperror.NewInvalidInput("asset is not an image", nil)
	}
	if _, err := uc.propertyRepo.FindByID(ctx, a.PropertyID, input.TeamID); err != nil {
		return err
	}

	if err := uc.images.Delete(ctx, a.ProviderID); err != nil {
		// Local cleanup still proceeds; the remote file can be reaped later.
		uc.logger.Warn("Failed to delete image at provider",
			zap.String("asset_id", a.ID.String()), zap.Error(err))
	}

	return uc.assetRepo.Delete(ctx, input.AssetID)
}
