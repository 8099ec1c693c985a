package video

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/maslima80/listingshow/adapters/event"
	"github.com/maslima80/listingshow/internal/application/service"
	"github.com/maslima80/listingshow/internal/domain/asset"
	"github.com/maslima80/listingshow/internal/domain/property"
	"github.com/maslima80/listingshow/internal/domain/quota"
	"github.com/maslima80/listingshow/pkg/apperror"
)

// In-memory stand-ins for the repositories and services the video flows touch.

type fakeAssetRepo struct {
	mu              sync.Mutex
	assets          map[uuid.UUID]*asset.MediaAsset
	saveErr         error
	setReturnsFalse bool
}

func newFakeAssetRepo(assets ...*asset.MediaAsset) *fakeAssetRepo {
	r := &fakeAssetRepo{assets: make(map[uuid.UUID]*asset.MediaAsset)}
	for _, a := range assets {
		copied := *a
		r.assets[a.ID] = &copied
	}
	return r
}

func (r *fakeAssetRepo) Save(ctx context.Context, a *asset.MediaAsset) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	copied := *a
	r.assets[a.ID] = &copied
	return nil
}

func (r *fakeAssetRepo) FindByID(ctx context.Context, id uuid.UUID) (*asset.MediaAsset, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.assets[id]
	if !ok {
		return nil, apperror.NewNotFound("media asset", id.String())
	}
	copied := *a
	return &copied, nil
}

func (r *fakeAssetRepo) ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]*asset.MediaAsset, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*asset.MediaAsset, 0)
	for _, a := range r.assets {
		if a.PropertyID == propertyID {
			copied := *a
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeAssetRepo) FindPendingDurationVideos(ctx context.Context, provider string) ([]*asset.MediaAsset, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*asset.MediaAsset, 0)
	for _, a := range r.assets {
		if a.Kind == asset.KindVideo && a.Provider == provider && a.DurationSec == nil {
			copied := *a
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeAssetRepo) FindVideosByProvider(ctx context.Context, provider string) ([]*asset.MediaAsset, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*asset.MediaAsset, 0)
	for _, a := range r.assets {
		if a.Kind == asset.KindVideo && a.Provider == provider {
			copied := *a
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeAssetRepo) SetDurationIfUnset(ctx context.Context, id uuid.UUID, durationSec int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.setReturnsFalse {
		return false, nil
	}
	a, ok := r.assets[id]
	if !ok {
		return false, apperror.NewNotFound("media asset", id.String())
	}
	if a.DurationSec != nil {
		return false, nil
	}
	d := durationSec
	a.DurationSec = &d
	a.Processing = false
	return true, nil
}

func (r *fakeAssetRepo) UpdateThumbnail(ctx context.Context, id uuid.UUID, url string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.assets[id]
	if !ok {
		return apperror.NewNotFound("media asset", id.String())
	}
	a.ThumbnailURL = &url
	return nil
}

func (r *fakeAssetRepo) UpdateURL(ctx context.Context, id uuid.UUID, url string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.assets[id]
	if !ok {
		return apperror.NewNotFound("media asset", id.String())
	}
	a.URL = url
	return nil
}

func (r *fakeAssetRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.assets[id]; !ok {
		return apperror.NewNotFound("media asset", id.String())
	}
	delete(r.assets, id)
	return nil
}

func (r *fakeAssetRepo) get(id uuid.UUID) *asset.MediaAsset {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.assets[id]
}

type fakePropertyRepo struct {
	properties map[uuid.UUID]*property.Property
}

func newFakePropertyRepo(props ...*property.Property) *fakePropertyRepo {
	r := &fakePropertyRepo{properties: make(map[uuid.UUID]*property.Property)}
	for _, p := range props {
		r.properties[p.ID] = p
	}
	return r
}

func (r *fakePropertyRepo) Save(ctx context.Context, p *property.Property) error {
	r.properties[p.ID] = p
	return nil
}

func (r *fakePropertyRepo) Update(ctx context.Context, p *property.Property) error {
	r.properties[p.ID] = p
	return nil
}

func (r *fakePropertyRepo) Delete(ctx context.Context, id uuid.UUID, teamID uuid.UUID) error {
	delete(r.properties, id)
	return nil
}

func (r *fakePropertyRepo) FindByID(ctx context.Context, id uuid.UUID, teamID uuid.UUID) (*property.Property, error) {
	p, ok := r.properties[id]
	if !ok || p.TeamID != teamID {
		return nil, apperror.NewNotFound("property", id.String())
	}
	return p, nil
}

func (r *fakePropertyRepo) ListByTeam(ctx context.Context, teamID uuid.UUID, limit, offset int) ([]*property.Property, error) {
	out := make([]*property.Property, 0)
	for _, p := range r.properties {
		if p.TeamID == teamID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePropertyRepo) TeamOf(ctx context.Context, propertyID uuid.UUID) (uuid.UUID, error) {
	p, ok := r.properties[propertyID]
	if !ok {
		return uuid.Nil, apperror.NewNotFound("property", propertyID.String())
	}
	return p.TeamID, nil
}

type fakeVideoHost struct {
	mu            sync.Mutex
	uploadDesc    *service.VideoDescriptor
	uploadErr     error
	metaDurations []int
	metaErr       error
	metaCalls     int
	deleted       []string
	deleteErr     error
}

func (h *fakeVideoHost) Upload(ctx context.Context, file io.Reader, title string) (*service.VideoDescriptor, error) {
	if h.uploadErr != nil {
		return nil, h.uploadErr
	}
	if h.uploadDesc != nil {
		return h.uploadDesc, nil
	}
	return &service.VideoDescriptor{ProviderID: "vid-1", Status: service.VideoStatusQueued}, nil
}

func (h *fakeVideoHost) FetchMetadata(ctx context.Context, providerID string) (*service.VideoDescriptor, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.metaErr != nil {
		return nil, h.metaErr
	}
	duration := 0
	if len(h.metaDurations) > 0 {
		i := h.metaCalls
		if i >= len(h.metaDurations) {
			i = len(h.metaDurations) - 1
		}
		duration = h.metaDurations[i]
	}
	h.metaCalls++
	return &service.VideoDescriptor{
		ProviderID:  providerID,
		DurationSec: duration,
		Status:      service.VideoStatusFinished,
	}, nil
}

func (h *fakeVideoHost) Delete(ctx context.Context, providerID string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.deleteErr != nil {
		return h.deleteErr
	}
	h.deleted = append(h.deleted, providerID)
	return nil
}

func (h *fakeVideoHost) EmbedURL(providerID string, opts service.EmbedOptions) string {
	return fmt.Sprintf("https://iframe.test/embed/42/%s?autoplay=%t&preload=%t", providerID, opts.Autoplay, opts.Preload)
}

func (h *fakeVideoHost) ThumbnailVariants(providerID string, durationSec int) []service.ThumbnailVariant {
	variants := make([]service.ThumbnailVariant, 5)
	for i := range variants {
		variants[i] = service.ThumbnailVariant{
			URL:   fmt.Sprintf("https://cdn.test/%s/thumb_%d.jpg", providerID, i),
			Label: fmt.Sprintf("%d%%", i*25),
			AtSec: durationSec * i * 25 / 100,
		}
	}
	return variants
}

type fakeLedger struct {
	mu      sync.Mutex
	minutes map[uuid.UUID]int
	addErr  error
	subErr  error
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{minutes: make(map[uuid.UUID]int)}
}

func (l *fakeLedger) Get(ctx context.Context, teamID uuid.UUID) (*quota.VideoQuota, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return &quota.VideoQuota{TeamID: teamID, MinutesUsed: l.minutes[teamID], UpdatedAt: time.Now()}, nil
}

func (l *fakeLedger) Add(ctx context.Context, teamID uuid.UUID, minutes int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.addErr != nil {
		return l.addErr
	}
	if minutes < 0 {
		return errors.New("negative add")
	}
	l.minutes[teamID] += minutes
	return nil
}

func (l *fakeLedger) Subtract(ctx context.Context, teamID uuid.UUID, minutes int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.subErr != nil {
		return l.subErr
	}
	used := l.minutes[teamID] - minutes
	if used < 0 {
		used = 0
	}
	l.minutes[teamID] = used
	return nil
}

func (l *fakeLedger) used(teamID uuid.UUID) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.minutes[teamID]
}

type fakePlanResolver struct {
	cap int
}

func (p *fakePlanResolver) VideoMinutesCap(ctx context.Context, teamID uuid.UUID) (int, error) {
	return p.cap, nil
}

type fakePublisher struct {
	mu     sync.Mutex
	events []event.VideoEventPayload
}

func (p *fakePublisher) PublishVideoEvent(ctx context.Context, payload event.VideoEventPayload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, payload)
	return nil
}

func (p *fakePublisher) has(eventType event.VideoEventType) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, e := range p.events {
		if e.EventType == eventType {
			return true
		}
	}
	return false
}

type fakeLocker struct {
	mu   sync.Mutex
	held map[string]bool
}

func newFakeLocker() *fakeLocker {
	return &fakeLocker{held: make(map[string]bool)}
}

func (l *fakeLocker) TryLock(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held[key] {
		return false, nil
	}
	l.held[key] = true
	return true, nil
}

func (l *fakeLocker) Unlock(ctx context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.held, key)
	return nil
}
