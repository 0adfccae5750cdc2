package webinars

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"webinars/internal/lib/logger/handlers/slogdiscard"
	"webinars/internal/models"
	"webinars/internal/storage"
	"webinars/internal/usecase/webinars/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newWebinar(t *testing.T, id, organizerID string, seats int) *models.Webinar {
	t.Helper()

	w, err := models.NewWebinar(models.WebinarProps{
		ID:          id,
		OrganizerID: organizerID,
		Title:       "Webinar Test",
		StartDate:   time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2024, 3, 1, 11, 0, 0, 0, time.UTC),
		Seats:       seats,
	})
	require.NoError(t, err)

	return w
}

func withSeats(seats int) interface{} {
	return mock.MatchedBy(func(w *models.Webinar) bool {
		return w.Seats() == seats
	})
}

func TestUpdateSeats(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name      string
		userID    string
		seats     int
		mockSetup func(repo *mocks.Repository, w *models.Webinar)
		wantErr   error
		wantSeats int
	}{
		{
			name:   "Success",
			userID: "test-user",
			seats:  30,
			mockSetup: func(repo *mocks.Repository, w *models.Webinar) {
				repo.On("WebinarByID", mock.Anything, "test-webinar").Return(w, nil).Once()
				repo.On("UpdateWebinar", mock.Anything, withSeats(30)).Return(nil).Once()
			},
			wantSeats: 30,
		},
		{
			name:   "Webinar not found",
			userID: "test-user",
			seats:  30,
			mockSetup: func(repo *mocks.Repository, _ *models.Webinar) {
				repo.On("WebinarByID", mock.Anything, "test-webinar").
					Return(nil, fmt.Errorf("storage: %w", storage.ErrWebinarNotFound)).Once()
			},
			wantErr:   models.ErrWebinarNotFound,
			wantSeats: 10,
		},
		{
			name:   "Not the organizer",
			userID: "another-user",
			seats:  30,
			mockSetup: func(repo *mocks.Repository, w *models.Webinar) {
				repo.On("WebinarByID", mock.Anything, "test-webinar").Return(w, nil).Once()
			},
			wantErr:   models.ErrNotOrganizer,
			wantSeats: 10,
		},
		{
			name:   "Zero seats",
			userID: "test-user",
			seats:  0,
			mockSetup: func(repo *mocks.Repository, w *models.Webinar) {
				repo.On("WebinarByID", mock.Anything, "test-webinar").Return(w, nil).Once()
			},
			wantErr:   models.ErrInvalidSeats,
			wantSeats: 10,
		},
		{
			name:   "Negative seats",
			userID: "test-user",
			seats:  -3,
			mockSetup: func(repo *mocks.Repository, w *models.Webinar) {
				repo.On("WebinarByID", mock.Anything, "test-webinar").Return(w, nil).Once()
			},
			wantErr:   models.ErrInvalidSeats,
			wantSeats: 10,
		},
		{
			name:   "Seats above column range",
			userID: "test-user",
			seats:  3000000000,
			mockSetup: func(repo *mocks.Repository, w *models.Webinar) {
				repo.On("WebinarByID", mock.Anything, "test-webinar").Return(w, nil).Once()
			},
			wantErr:   models.ErrInvalidSeats,
			wantSeats: 10,
		},
		{
			name:   "Deleted between read and write",
			userID: "test-user",
			seats:  30,
			mockSetup: func(repo *mocks.Repository, w *models.Webinar) {
				repo.On("WebinarByID", mock.Anything, "test-webinar").Return(w, nil).Once()
				repo.On("UpdateWebinar", mock.Anything, withSeats(30)).
					Return(fmt.Errorf("storage: %w", storage.ErrWebinarNotFound)).Once()
			},
			wantErr:   models.ErrWebinarNotFound,
			wantSeats: 30,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			w := newWebinar(t, "test-webinar", "test-user", 10)

			repo := mocks.NewRepository(t)
			tc.mockSetup(repo, w)

			svc := NewService(logger, repo)

			err := svc.UpdateSeats(context.Background(), "test-webinar", tc.userID, tc.seats)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}

			assert.Equal(t, tc.wantSeats, w.Seats())

			if tc.wantErr != nil && !errors.Is(tc.wantErr, models.ErrWebinarNotFound) {
				repo.AssertNotCalled(t, "UpdateWebinar", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestUpdateSeatsStorageFailure(t *testing.T) {
	t.Parallel()

	dbErr := errors.New("connection refused")

	repo := mocks.NewRepository(t)
	repo.On("WebinarByID", mock.Anything, "test-webinar").Return(nil, dbErr).Once()

	svc := NewService(slogdiscard.NewDiscardLogger(), repo)

	err := svc.UpdateSeats(context.Background(), "test-webinar", "test-user", 30)
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, models.ErrWebinarNotFound)
}

func TestUpdateSeatsSaveFailure(t *testing.T) {
	t.Parallel()

	dbErr := errors.New("connection reset")

	repo := mocks.NewRepository(t)
	repo.On("WebinarByID", mock.Anything, "test-webinar").
		Return(newWebinar(t, "test-webinar", "test-user", 10), nil).Once()
	repo.On("UpdateWebinar", mock.Anything, withSeats(30)).Return(dbErr).Once()

	svc := NewService(slogdiscard.NewDiscardLogger(), repo)

	err := svc.UpdateSeats(context.Background(), "test-webinar", "test-user", 30)
	assert.ErrorIs(t, err, dbErr)
}

func TestWebinar(t *testing.T) {
	t.Parallel()

	w := newWebinar(t, "test-webinar", "test-user", 10)

	repo := mocks.NewRepository(t)
	repo.On("WebinarByID", mock.Anything, "test-webinar").Return(w, nil).Once()
	repo.On("WebinarByID", mock.Anything, "missing").
		Return(nil, fmt.Errorf("storage: %w", storage.ErrWebinarNotFound)).Once()

	svc := NewService(slogdiscard.NewDiscardLogger(), repo)

	got, err := svc.Webinar(context.Background(), "test-webinar")
	require.NoError(t, err)
	assert.Same(t, w, got)

	_, err = svc.Webinar(context.Background(), "missing")
	assert.ErrorIs(t, err, models.ErrWebinarNotFound)
}

// fakeRepo keeps webinars by id and counts writes.
type fakeRepo struct {
	webinars map[string]*models.Webinar
	reads    int
	writes   int
}

func (f *fakeRepo) WebinarByID(_ context.Context, id string) (*models.Webinar, error) {
	f.reads++
	w, ok := f.webinars[id]
	if !ok {
		return nil, storage.ErrWebinarNotFound
	}
	return w, nil
}

func (f *fakeRepo) UpdateWebinar(_ context.Context, w *models.Webinar) error {
	f.writes++
	if _, ok := f.webinars[w.ID()]; !ok {
		return storage.ErrWebinarNotFound
	}
	f.webinars[w.ID()] = w
	return nil
}

func TestUpdateSeatsProperties(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	users := []string{"test-user", "another-user", "organizer-id"}
	seatCounts := []int{1, 2, 30, 100, 5000}

	for _, organizer := range users {
		for _, requester := range users {
			for _, seats := range seatCounts {
				repo := &fakeRepo{webinars: map[string]*models.Webinar{
					"w": newWebinar(t, "w", organizer, 10),
				}}
				svc := NewService(slogdiscard.NewDiscardLogger(), repo)

				err := svc.UpdateSeats(ctx, "w", requester, seats)
				assert.Equal(t, 1, repo.reads)

				if requester == organizer {
					require.NoError(t, err)
					assert.Equal(t, seats, repo.webinars["w"].Seats())
					assert.Equal(t, 1, repo.writes)
				} else {
					assert.ErrorIs(t, err, models.ErrNotOrganizer)
					assert.Equal(t, 10, repo.webinars["w"].Seats())
					assert.Zero(t, repo.writes)
				}

				err = svc.UpdateSeats(ctx, "missing", requester, seats)
				assert.ErrorIs(t, err, models.ErrWebinarNotFound)
			}
		}
	}
}
