package video

import (
	"context"
	"strings"

	"github.com/maslima80/listingshow/internal/application/service"
	"github.com/maslima80/listingshow/internal/domain/asset"
	"github.com/maslima80/listingshow/pkg/logger"
	"go.uber.org/zap"
)

// RepairVideoURLsUseCase rewrites video asset URLs left in the legacy direct
// CDN path format to the current embed URL format. It is idempotent and runs
// out of band, not as part of the upload or reconciliation flows.
type RepairVideoURLsUseCase struct {
	assetRepo asset.Repository
	videoHost service.VideoHost
	logger    logger.Logger
}

func NewRepairVideoURLsUseCase(assetRepo asset.Repository, videoHost service.VideoHost, log logger.Logger) *RepairVideoURLsUseCase {
	return &RepairVideoURLsUseCase{assetRepo: assetRepo, videoHost: videoHost, logger: log}
}

type RepairVideoURLsOutput struct {
	Scanned   int `json:"scanned"`
	Rewritten int `json:"rewritten"`
	Failed    int `json:"failed"`
}

func (uc *RepairVideoURLsUseCase) Execute(ctx context.Context) (*RepairVideoURLsOutput, error) {
	videos, err := uc.assetRepo.FindVideosByProvider(ctx, asset.ProviderBunny)
	if err != nil {
		return nil, err
	}

	out := &RepairVideoURLsOutput{Scanned: len(videos)}
	for _, a := range videos {
		want := uc.videoHost.EmbedURL(a.ProviderID, service.EmbedOptions{Autoplay: false, Preload: true})
		if a.URL == want || strings.HasPrefix(a.URL, embedURLBase(want)) {
			continue
		}
		if err := uc.assetRepo.UpdateURL(ctx, a.ID, want); err != nil {
			uc.logger.Error("Failed to rewrite legacy video URL", err, zap.String("asset_id", a.ID.String()))
			out.Failed++
			continue
		}
		uc.logger.Info("Rewrote legacy video URL",
			zap.String("asset_id", a.ID.String()),
			zap.String("old_url", a.URL),
			zap.String("new_url", want))
		out.Rewritten++
	}
	return out, nil
}

// embedURLBase strips the query so assets that already point at the embed
// host are not rewritten just for differing player flags.
func embedURLBase(u string) string {
	if i := strings.IndexByte(u, '?'); i >= 0 {
		return u[:i]
	}
	return u
}
