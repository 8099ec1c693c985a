package media_storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/maslima80/listingshow/internal/application/service"
	"github.com/maslima80/listingshow/internal/config"
	"github.com/maslima80/listingshow/pkg/apperror"
	"github.com/maslima80/listingshow/pkg/logger"
	"go.uber.org/zap"
)

const bunnyAPIBase = "https://video.bunnycdn.com"

type bunnyAdapter struct {
	httpClient  *http.Client
	baseURL     string
	apiKey      string
	libraryID   string
	cdnHostname string
	logger      logger.Logger
}

func NewBunnyAdapter(cfg config.Config, log logger.Logger) (service.VideoHost, error) {

	if cfg.Bunny.ApiKey == "" || cfg.Bunny.LibraryID == "" {
		return nil, fmt.Errorf("bunny api_key and library_id have not config")
	}
	if cfg.Bunny.CdnHostname == "" {
		return nil, fmt.Errorf("bunny cdn_hostname has not config")
	}

	log.Info("Bunny Stream adapter initialized.", zap.String("library_id", cfg.Bunny.LibraryID))
	return &bunnyAdapter{
		httpClient:  &http.Client{Timeout: 2 * time.Minute},
		baseURL:     bunnyAPIBase,
		apiKey:      cfg.Bunny.ApiKey,
		libraryID:   cfg.Bunny.LibraryID,
		cdnHostname: cfg.Bunny.CdnHostname,
		logger:      log,
	}, nil
}

// bunnyVideo is the wire shape of GET /library/{id}/videos/{guid}.
// Length and Status are pointers so a response missing them is detected
// and rejected instead of silently read as zero.
type bunnyVideo struct {
	Guid                 string `json:"guid"`
	Length               *int   `json:"length"`
	Status               *int   `json:"status"`
	EncodeProgress       int    `json:"encodeProgress"`
	AvailableResolutions string `json:"availableResolutions"`
}

func (a *bunnyAdapter) Upload(ctx context.Context, file io.Reader, title string) (*service.VideoDescriptor, error) {

	createBody, _ := json.Marshal(map[string]string{"title": title})
	createURL := fmt.Sprintf("%s/library/%s/videos", a.baseURL, a.libraryID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, createURL, bytes.NewReader(createBody))
	if err != nil {
		return nil, apperror.NewInternal("failed to build bunny create request", err)
	}
	req.Header.Set("AccessKey", a.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, apperror.NewUpstream("bunny", 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperror.NewUpstream("bunny", resp.StatusCode, nil)
	}

	var created struct {
		Guid string `json:"guid"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil || created.Guid == "" {
		return nil, apperror.NewUpstream("bunny", resp.StatusCode, fmt.Errorf("create response missing guid: %w", err))
	}

	uploadURL := fmt.Sprintf("%s/library/%s/videos/%s", a.baseURL, a.libraryID, created.Guid)
	putReq, err := http.NewRequestWithContext(ctx, http.MethodPut, uploadURL, file)
	if err != nil {
		return nil, apperror.NewInternal("failed to build bunny upload request", err)
	}
	putReq.Header.Set("AccessKey", a.apiKey)
	putReq.Header.Set("Content-Type", "application/octet-stream")

	putResp, err := a.httpClient.Do(putReq)
	if err != nil {
		return nil, apperror.NewUpstream("bunny", 0, err)
	}
	defer putResp.Body.Close()

	if putResp.StatusCode < 200 || putResp.StatusCode >= 300 {
		return nil, apperror.NewUpstream("bunny", putResp.StatusCode, nil)
	}

	// Duration is 0 here: transcoding has only just been queued.
	return &service.VideoDescriptor{
		ProviderID:   created.Guid,
		PlayURL:      a.playURL(created.Guid),
		HLSURL:       a.hlsURL(created.Guid),
		ThumbnailURL: a.thumbnailURL(created.Guid),
		DurationSec:  0,
		Status:       service.VideoStatusQueued,
	}, nil
}

func (a *bunnyAdapter) FetchMetadata(ctx context.Context, providerID string) (*service.VideoDescriptor, error) {

	metaURL := fmt.Sprintf("%s/library/%s/videos/%s", a.baseURL, a.libraryID, url.PathEscape(providerID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, metaURL, nil)
	if err != nil {
		return nil, apperror.NewInternal("failed to build bunny metadata request", err)
	}
	req.Header.Set("AccessKey", a.apiKey)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, apperror.NewUpstream("bunny", 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, apperror.NewNotFound("video", providerID)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperror.NewUpstream("bunny", resp.StatusCode, nil)
	}

	var v bunnyVideo
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		return nil, apperror.NewUpstream("bunny", resp.StatusCode, fmt.Errorf("undecodable metadata response: %w", err))
	}
	if v.Guid == "" || v.Length == nil || v.Status == nil {
		return nil, apperror.NewUpstream("bunny", resp.StatusCode, fmt.Errorf("metadata response missing required fields"))
	}

	var resolutions []string
	if v.AvailableResolutions != "" {
		resolutions = strings.Split(v.AvailableResolutions, ",")
	}

	return &service.VideoDescriptor{
		ProviderID:           v.Guid,
		PlayURL:              a.playURL(v.Guid),
		HLSURL:               a.hlsURL(v.Guid),
		ThumbnailURL:         a.thumbnailURL(v.Guid),
		DurationSec:          *v.Length,
		Status:               *v.Status,
		EncodeProgress:       v.EncodeProgress,
		AvailableResolutions: resolutions,
	}, nil
}

func (a *bunnyAdapter) Delete(ctx context.Context, providerID string) error {

	deleteURL := fmt.Sprintf("%s/library/%s/videos/%s", a.baseURL, a.libraryID, url.PathEscape(providerID))
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, deleteURL, nil)
	if err != nil {
		return apperror.NewInternal("failed to build bunny delete request", err)
	}
	req.Header.Set("AccessKey", a.apiKey)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return apperror.NewUpstream("bunny", 0, err)
	}
	defer resp.Body.Close()

	// Local and remote state can diverge; already-deleted is success.
	if resp.StatusCode == http.StatusNotFound {
		a.logger.Warn("Bunny video already deleted upstream", zap.String("provider_id", providerID))
		return nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apperror.NewUpstream("bunny", resp.StatusCode, nil)
	}
	return nil
}

func (a *bunnyAdapter) EmbedURL(providerID string, opts service.EmbedOptions) string {
	q := url.Values{}
	q.Set("autoplay", fmt.Sprintf("%t", opts.Autoplay))
	q.Set("preload", fmt.Sprintf("%t", opts.Preload))
	return fmt.Sprintf("https://iframe.mediadelivery.net/embed/%s/%s?%s", a.libraryID, providerID, q.Encode())
}

func (a *bunnyAdapter) ThumbnailVariants(providerID string, durationSec int) []service.ThumbnailVariant {
	percents := []int{0, 25, 50, 75, 100}
	variants := make([]service.ThumbnailVariant, 0, len(percents))
	for _, p := range percents {
		atSec := durationSec * p / 100
		variants = append(variants, service.ThumbnailVariant{
			URL:   fmt.Sprintf("https://%s/%s/thumbnail.jpg?time=%d", a.cdnHostname, providerID, atSec),
			Label: fmt.Sprintf("%d%%", p),
			AtSec: atSec,
		})
	}
	return variants
}

func (a *bunnyAdapter) playURL(guid string) string {
	return fmt.Sprintf("https://%s/%s/play_720p.mp4", a.cdnHostname, guid)
}

func (a *bunnyAdapter) hlsURL(guid string) string {
	return fmt.Sprintf("https://%s/%s/playlist.m3u8", a.cdnHostname, guid)
}

func (a *bunnyAdapter) thumbnailURL(guid string) string {
	return fmt.Sprintf("https://%s/%s/thumbnail.jpg", a.cdnHostname, guid)
}
