package http

import (
	"time"

	"github.com/google/uuid"
	"github.com/maslima80/listingshow/internal/application/service"
	"github.com/maslima80/listingshow/internal/domain/asset"
	"github.com/maslima80/listingshow/internal/domain/lead"
	"github.com/maslima80/listingshow/internal/domain/property"
	"github.com/maslima80/listingshow/internal/domain/testimonial"
)

// Asset DTOs

type AssetDTO struct {
	ID           string    `json:"id"`
	Kind         string    `json:"kind"`
	Provider     string    `json:"provider"`
	URL          string    `json:"url"`
	ThumbnailURL *string   `json:"thumbnail_url,omitempty"`
	Label        string    `json:"label"`
	Position     int       `json:"position"`
	DurationSec  *int      `json:"duration_sec,omitempty"`
	Processing   bool      `json:"processing"`
	CreatedAt    time.Time `json:"created_at"`
}

func ToAssetDTO(a *asset.MediaAsset) AssetDTO {
	return AssetDTO{
		ID:           a.ID.String(),
		Kind:         string(a.Kind),
		Provider:     string(a.Provider),
		URL:          a.URL,
		ThumbnailURL: a.ThumbnailURL,
		Label:        a.Label,
		Position:     a.Position,
		DurationSec:  a.DurationSec,
		Processing:   a.Processing,
		CreatedAt:    a.CreatedAt,
	}
}

type ThumbnailVariantDTO struct {
	URL   string `json:"url"`
	Label string `json:"label"`
	AtSec int    `json:"at_sec"`
}

func ToThumbnailVariantDTO(v service.ThumbnailVariant) ThumbnailVariantDTO {
	return ThumbnailVariantDTO{URL: v.URL, Label: v.Label, AtSec: v.AtSec}
}

type SetThumbnailRequest struct {
	URL string `json:"url" binding:"required"`
}

// Property DTOs

type CreatePropertyRequest struct {
	Title       string `json:"title" binding:"required"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Description string `json:"description"`
	Slug        string `json:"slug"`
}

type UpdatePropertyRequest struct {
	Title        string  `json:"title" binding:"required"`
	Address      string  `json:"address"`
	City         string  `json:"city"`
	Description  string  `json:"description"`
	Status       string  `json:"status" binding:"required,oneof=draft published archived"`
	CoverAssetID *string `json:"cover_asset_id"`
}

func (r *UpdatePropertyRequest) ToDomainStatus() property.PropertyStatus {
	switch r.Status {
	case "published":
		return property.StatusPublished
	case "archived":
		return property.StatusArchived
	default:
		return property.StatusDraft
	}
}

type PropertySummaryDTO struct {
	ID        string    `json:"id"`
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	City      string    `json:"city"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToPropertySummaryDTO(p *property.Property) PropertySummaryDTO {
	return PropertySummaryDTO{
		ID:        p.ID.String(),
		Slug:      p.Slug,
		Title:     p.Title,
		City:      p.City,
		Status:    string(p.Status),
		UpdatedAt: p.UpdatedAt,
	}
}

type PropertyDTO struct {
	ID           string     `json:"id"`
	Slug         string     `json:"slug"`
	Title        string     `json:"title"`
	Address      string     `json:"address"`
	City         string     `json:"city"`
	Description  string     `json:"description"`
	Status       string     `json:"status"`
	CoverAssetID *string    `json:"cover_asset_id,omitempty"`
	Assets       []AssetDTO `json:"assets"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func ToPropertyDTO(p *property.Property, assets []*asset.MediaAsset) PropertyDTO {
	assetDTOs := make([]AssetDTO, len(assets))
	for i, a := range assets {
		assetDTOs[i] = ToAssetDTO(a)
	}
	var coverID *string
	if p.CoverAssetID != nil {
		s := p.CoverAssetID.String()
		coverID = &s
	}
	return PropertyDTO{
		ID:           p.ID.String(),
		Slug:         p.Slug,
		Title:        p.Title,
		Address:      p.Address,
		City:         p.City,
		Description:  p.Description,
		Status:       string(p.Status),
		CoverAssetID: coverID,
		Assets:       assetDTOs,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// Lead DTOs

type CaptureLeadRequest struct {
	TeamID     string  `json:"team_id" binding:"required"`
	PropertyID *string `json:"property_id"`
	Name       string  `json:"name" binding:"required"`
	Email      string  `json:"email" binding:"required"`
	Phone      string  `json:"phone"`
	Message    string  `json:"message"`
}

type UpdateLeadStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=new contacted closed"`
}

type LeadDTO struct {
	ID         string    `json:"id"`
	PropertyID *string   `json:"property_id,omitempty"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Message    string    `json:"message"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

func ToLeadDTO(l *lead.Lead) LeadDTO {
	var propertyID *string
	if l.PropertyID != nil {
		s := l.PropertyID.String()
		propertyID = &s
	}
	return LeadDTO{
		ID:         l.ID.String(),
		PropertyID: propertyID,
		Name:       l.Name,
		Email:      l.Email,
		Phone:      l.Phone,
		Message:    l.Message,
		Status:     string(l.Status),
		CreatedAt:  l.CreatedAt,
	}
}

// Testimonial DTOs

type SubmitTestimonialRequest struct {
	Token      string `json:"token" binding:"required"`
	AuthorName string `json:"author_name" binding:"required"`
	Quote      string `json:"quote" binding:"required"`
	Rating     int    `json:"rating" binding:"required,min=1,max=5"`
}

type ModerateTestimonialRequest struct {
	Approved bool `json:"approved"`
}

type TestimonialDTO struct {
	ID         string    `json:"id"`
	AuthorName string    `json:"author_name"`
	Quote      string    `json:"quote"`
	Rating     int       `json:"rating"`
	Approved   bool      `json:"approved"`
	CreatedAt  time.Time `json:"created_at"`
}

func ToTestimonialDTO(t *testimonial.Testimonial) TestimonialDTO {
	return TestimonialDTO{
		ID:         t.ID.String(),
		AuthorName: t.AuthorName,
		Quote:      t.Quote,
		Rating:     t.Rating,
		Approved:   t.Approved,
		CreatedAt:  t.CreatedAt,
	}
}

// Team DTOs

type UpdateThemeRequest struct {
	ThemeSettings map[string]any `json:"theme_settings" binding:"required"`
}

func parseOptionalUUID(s *string) (*uuid.UUID, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
