package service

import (
	"context"
	"io"
)

// Bunny Stream status codes for a video.
const (
	VideoStatusQueued     = 0
	VideoStatusProcessing = 1
	VideoStatusEncoding   = 2
	VideoStatusFinished   = 3
	VideoStatusFailed     = 5
)

// VideoDescriptor is the provider's view of one remote video. DurationSec is
// frequently 0 right after upload because transcoding is asynchronous on the
// provider side; 0 means "not reported yet", never "empty video".
type VideoDescriptor struct {
	ProviderID           string
	PlayURL              string
	HLSURL               string
	ThumbnailURL         string
	DurationSec          int
	Status               int
	EncodeProgress       int
	AvailableResolutions []string
}

type ThumbnailVariant struct {
	URL   string `json:"url"`
	Label string `json:"label"`
	AtSec int    `json:"at_sec"`
}

// EmbedOptions are the recognized player flags. They are named here instead
// of being pasted into query strings at call sites.
type EmbedOptions struct {
	Autoplay bool
	Preload  bool
}

type VideoHost interface {
	Upload(ctx context.Context, file io.Reader, title string) (*VideoDescriptor, error)
	FetchMetadata(ctx context.Context, providerID string) (*VideoDescriptor, error)
	// Delete requests remote deletion. An asset the provider no longer knows
	// is treated as already deleted and reported as success.
	Delete(ctx context.Context, providerID string) error
	// EmbedURL is a pure function of the provider identifier and options.
	EmbedURL(providerID string, opts EmbedOptions) string
	// ThumbnailVariants derives five candidate thumbnails at 0/25/50/75/100%
	// of the duration. Computed, not fetched.
	ThumbnailVariants(providerID string, durationSec int) []ThumbnailVariant
}
