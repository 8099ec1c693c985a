package video

import (
	"context"

	"github.com/google/uuid"
	"github.com/maslima80/listingshow/internal/application/service"
	"github.com/maslima80/listingshow/internal/domain/asset"
	"github.com/maslima80/listingshow/internal/domain/property"
	"github.com/maslima80/listingshow/pkg/apperror"
)

// Thumbnail options

type ThumbnailOptionsUseCase struct {
	assetRepo    asset.Repository
	propertyRepo property.Repository
	videoHost    service.VideoHost
}

func NewThumbnailOptionsUseCase(r asset.Repository, p property.Repository, v service.VideoHost) *ThumbnailOptionsUseCase {
	return &ThumbnailOptionsUseCase{assetRepo: r, propertyRepo: p, videoHost: v}
}

// Execute lists the five candidate thumbnails for a video. URL construction is
// deterministic, so this never touches the provider.
func (uc *ThumbnailOptionsUseCase) Execute(ctx context.Context, teamID, assetID uuid.UUID) ([]service.ThumbnailVariant, error) {
	a, err := uc.assetRepo.FindByID(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if a.Kind != asset.KindVideo {
		return nil, apperror.NewInvalidInput("asset is not a video", nil)
	}
	if _, err := uc.propertyRepo.FindByID(ctx, a.PropertyID, teamID); err != nil {
		return nil, err
	}

	durationSec := 0
	if a.DurationSec != nil {
		durationSec = *a.DurationSec
	}
	return uc.videoHost.ThumbnailVariants(a.ProviderID, durationSec), nil
}

// Set thumbnail

type SetThumbnailUseCase struct {
	assetRepo    asset.Repository
	propertyRepo property.Repository
}

func NewSetThumbnailUseCase(r asset.Repository, p property.Repository) *SetThumbnailUseCase {
	return &SetThumbnailUseCase{assetRepo: r, propertyRepo: p}
}

func (uc *SetThumbnailUseCase) Execute(ctx context.Context, teamID, assetID uuid.UUID, url string) error {
	if url == "" {
		return apperror.NewInvalidInput("'url' is required", nil)
	}
	a, err := uc.assetRepo.FindByID(ctx, assetID)
	if err != nil {
		return err
	}
	if _, err := uc.propertyRepo.FindByID(ctx, a.PropertyID, teamID); err != nil {
		return err
	}
	return uc.assetRepo.UpdateThumbnail(ctx, assetID, url)
}
