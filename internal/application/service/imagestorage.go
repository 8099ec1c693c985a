package service

import (
	"context"
	"io"
)

type ImageStorage interface {
	Upload(ctx context.Context, file io.Reader, folder string, publicID string) (string, error)
	Delete(ctx context.Context, publicID string) error
	// DeliveryURL builds a CDN URL for the stored image with the given
	// transformation applied.
	DeliveryURL(publicID string, transformation string) (string, error)
}
