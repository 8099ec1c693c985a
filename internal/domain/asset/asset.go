package asset

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Kind string

const (
	KindImage Kind = "image"
	KindVideo Kind = "video"
)

const (
	ProviderBunny      = "bunny"
	ProviderCloudinary = "cloudinary"
)

// MediaAsset is one uploaded file attached to a property. For video kind,
// DurationSec stays nil until the provider finishes transcoding and reports
// the media length; Processing is true for that whole window.
type MediaAsset struct {
	ID           uuid.UUID `json:"id"`
	PropertyID   uuid.UUID `json:"property_id"`
	Kind         Kind      `json:"kind"`
	Provider     string    `json:"provider"`
	ProviderID   string    `json:"provider_id"`
	URL          string    `json:"url"`
	ThumbnailURL *string   `json:"thumbnail_url"`
	Label        string    `json:"label"`
	Position     int       `json:"position"`
	DurationSec  *int      `json:"duration_sec"`
	Processing   bool      `json:"processing"`
	CreatedAt    time.Time `json:"created_at"`
}

// Charged reports whether the video has been billed against the team's
// minutes ledger. A video is charged exactly when its duration is known.
func (a *MediaAsset) Charged() bool {
	return a.Kind == KindVideo && a.DurationSec != nil
}

type Repository interface {
	Save(ctx context.Context, a *MediaAsset) error
	FindByID(ctx context.Context, id uuid.UUID) (*MediaAsset, error)
	ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]*MediaAsset, error)
	// FindPendingDurationVideos returns video assets of the given provider
	// whose duration is still unknown. Used by the reconciliation sweep.
	FindPendingDurationVideos(ctx context.Context, provider string) ([]*MediaAsset, error)
	// FindVideosByProvider returns every video asset stored at the given
	// provider, pending or charged. Used by the URL repair pass.
	FindVideosByProvider(ctx context.Context, provider string) ([]*MediaAsset, error)
	// SetDurationIfUnset persists the duration only when none is recorded yet
	// and reports whether this call was the one that set it. The conditional
	// update is what keeps concurrent charge attempts from double-billing.
	SetDurationIfUnset(ctx context.Context, id uuid.UUID, durationSec int) (bool, error)
	UpdateThumbnail(ctx context.Context, id uuid.UUID, url string) error
	UpdateURL(ctx context.Context, id uuid.UUID, url string) error
	Delete(ctx context.Context, id uuid.UUID) error
}
