package webinars

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"webinars/internal/lib/logger/sl"
	"webinars/internal/models"
	"webinars/internal/storage"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Repository
type Repository interface {
	WebinarByID(ctx context.Context, id string) (*models.Webinar, error)
	UpdateWebinar(ctx context.Context, webinar *models.Webinar) error
}

type Service struct {
	log  *slog.Logger
	repo Repository
}

func NewService(log *slog.Logger, repo Repository) *Service {
	return &Service{
		log:  log,
		repo: repo,
	}
}

// Webinar returns the webinar with the given id or models.ErrWebinarNotFound.
func (s *Service) Webinar(ctx context.Context, webinarID string) (*models.Webinar, error) {
	const op = "usecase.webinars.Webinar"

	webinar, err := s.repo.WebinarByID(ctx, webinarID)
	if err != nil {
		if errors.Is(err, storage.ErrWebinarNotFound) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrWebinarNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return webinar, nil
}

// UpdateSeats changes the seat count of a webinar on behalf of userID.
// Only the organizer may do it. The webinar is read once and written at most once.
func (s *Service) UpdateSeats(ctx context.Context, webinarID, userID string, seats int) error {
	const op = "usecase.webinars.UpdateSeats"

	log := s.log.With(
		slog.String("op", op),
		slog.String("webinar_id", webinarID),
		slog.String("user_id", userID),
	)

	webinar, err := s.Webinar(ctx, webinarID)
	if err != nil {
		return err
	}

	if !webinar.IsOrganizer(userID) {
		log.Warn("user is not the organizer", slog.String("organizer_id", webinar.OrganizerID()))
		return fmt.Errorf("%s: %w", op, models.ErrNotOrganizer)
	}

	if _, err = webinar.Update(models.WebinarPatch{Seats: &seats}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err = s.repo.UpdateWebinar(ctx, webinar); err != nil {
		log.Error("failed to save webinar", sl.Err(err))

		if errors.Is(err, storage.ErrWebinarNotFound) {
			return fmt.Errorf("%s: %w", op, models.ErrWebinarNotFound)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("seats updated", slog.Int("seats", seats))

	return nil
}
