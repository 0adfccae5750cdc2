package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"webinars/internal/config"
	"webinars/internal/models"
	"webinars/internal/storage"

	"github.com/lib/pq"
)

var _ storage.WebinarRepository = (*Storage)(nil)

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	const op = "storage.postgres.InitDB"

	db, err := sql.Open("postgres", dbCfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("%s: failed to connect to the database: %w", op, err)
	}

	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: failed to connect to the database: %w", op, err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) CreateWebinar(ctx context.Context, webinar *models.Webinar) error {
	const op = "storage.postgres.CreateWebinar"

	query := `
		INSERT INTO webinar (id, organizer_id, title, start_date, end_date, seats)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := s.DB.ExecContext(ctx, query,
		webinar.ID(),
		webinar.OrganizerID(),
		webinar.Title(),
		webinar.StartDate(),
		webinar.EndDate(),
		webinar.Seats(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%s: %w", op, storage.ErrWebinarExists)
		}
		return fmt.Errorf("%s: failed to create webinar: %w", op, err)
	}

	return nil
}

func (s *Storage) WebinarByID(ctx context.Context, id string) (*models.Webinar, error) {
	const op = "storage.postgres.WebinarByID"

	query := `
		SELECT id, organizer_id, title, start_date, end_date, seats
		FROM webinar
		WHERE id = $1`

	var props models.WebinarProps
	err := s.DB.QueryRowContext(ctx, query, id).Scan(
		&props.ID,
		&props.OrganizerID,
		&props.Title,
		&props.StartDate,
		&props.EndDate,
		&props.Seats,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrWebinarNotFound)
		}
		return nil, fmt.Errorf("%s: failed to get webinar: %w", op, err)
	}

	props.StartDate = props.StartDate.UTC()
	props.EndDate = props.EndDate.UTC()

	webinar, err := models.NewWebinar(props)
	if err != nil {
		return nil, fmt.Errorf("%s: corrupted webinar row %q: %w", op, id, err)
	}

	return webinar, nil
}

// UpdateWebinar writes every mutable column of the webinar. The organizer
// is immutable and is not part of the statement.
func (s *Storage) UpdateWebinar(ctx context.Context, webinar *models.Webinar) error {
	const op = "storage.postgres.UpdateWebinar"

	query := `
		UPDATE webinar
		SET title = $2, start_date = $3, end_date = $4, seats = $5
		WHERE id = $1`

	result, err := s.DB.ExecContext(ctx, query,
		webinar.ID(),
		webinar.Title(),
		webinar.StartDate(),
		webinar.EndDate(),
		webinar.Seats(),
	)
	if err != nil {
		return fmt.Errorf("%s: failed to update webinar: %w", op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: failed to get affected rows: %w", op, err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrWebinarNotFound)
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation"
}
