package storage

import (
	"context"
	"errors"

	"webinars/internal/models"
)

var (
	ErrWebinarNotFound = errors.New("webinar not found")
	ErrWebinarExists   = errors.New("webinar already exists")
)

// WebinarRepository persists webinars.
// WebinarByID returns ErrWebinarNotFound when no row matches, never a nil webinar.
type WebinarRepository interface {
	CreateWebinar(ctx context.Context, webinar *models.Webinar) error
	WebinarByID(ctx context.Context, id string) (*models.Webinar, error)
	UpdateWebinar(ctx context.Context, webinar *models.Webinar) error
}
