package updateSeats

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"webinars/internal/http-server/middleware/requester"
	"webinars/internal/lib/api/response"
	"webinars/internal/lib/logger/sl"
	"webinars/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

const (
	msgSeatsUpdated  = "Seats updated"
	msgNotFound      = "Webinar not found"
	msgNotOrganizer  = "User is not allowed to update this webinar"
	msgInvalidSeats  = "seats must be a positive integer"
	msgUpdateFailure = "failed to update seats"
)

// Seats holds the raw seat count as sent by the client, either a JSON number
// or a numeric string.
type Seats string

func (s *Seats) UnmarshalJSON(data []byte) error {
	raw := string(data)
	if raw == "null" {
		return nil
	}

	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = unquoted
	}

	*s = Seats(strings.TrimSpace(raw))

	return nil
}

// Int parses the seat count. Values outside the 32-bit range are rejected.
func (s Seats) Int() (int, error) {
	n, err := strconv.ParseInt(string(s), 10, 32)
	if err != nil {
		return 0, err
	}

	return int(n), nil
}

type SeatsRequest struct {
	Seats Seats `json:"seats" validate:"required"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SeatsUpdater
type SeatsUpdater interface {
	UpdateSeats(ctx context.Context, webinarID, userID string, seats int) error
}

func New(log *slog.Logger, updater SeatsUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.webinar.updateSeats.New"

		log := log.With(slog.String("op", op))

		webinarID := chi.URLParam(r, "id")
		if webinarID == "" {
			log.Error("webinar id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("webinar id is required"))
			return
		}

		userID, ok := requester.UserID(r.Context())
		if !ok {
			log.Error("user id is missing")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("user id is required"))
			return
		}

		log = log.With(
			slog.String("webinar_id", webinarID),
			slog.String("user_id", userID),
		)

		var req SeatsRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		seats, err := req.Seats.Int()
		if err != nil {
			log.Error("seats is not an integer", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(msgInvalidSeats))
			return
		}

		err = updater.UpdateSeats(r.Context(), webinarID, userID, seats)
		if err != nil {
			log.Error("failed to update seats", sl.Err(err))

			switch {
			case errors.Is(err, models.ErrWebinarNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error(msgNotFound))
			case errors.Is(err, models.ErrNotOrganizer):
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error(msgNotOrganizer))
			case errors.Is(err, models.ErrInvalidSeats):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(msgInvalidSeats))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error(msgUpdateFailure))
			}
			return
		}

		log.Info("seats updated", slog.Int("seats", seats))

		responseOK(w, r)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, response.OK(msgSeatsUpdated))
}
