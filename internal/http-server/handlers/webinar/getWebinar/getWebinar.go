package getWebinar

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"webinars/internal/lib/api/response"
	"webinars/internal/lib/logger/sl"
	"webinars/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type Webinar struct {
	ID          string    `json:"id"`
	OrganizerID string    `json:"organizerId"`
	Title       string    `json:"title"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	Seats       int       `json:"seats"`
}

type WebinarResponse struct {
	response.Response
	Webinar *Webinar `json:"webinar,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=WebinarGetter
type WebinarGetter interface {
	Webinar(ctx context.Context, webinarID string) (*models.Webinar, error)
}

func New(log *slog.Logger, getter WebinarGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.webinar.getWebinar.New"

		log := log.With(slog.String("op", op))

		webinarID := chi.URLParam(r, "id")
		if webinarID == "" {
			log.Error("webinar id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("webinar id is required"))
			return
		}

		log = log.With(slog.String("webinar_id", webinarID))

		webinar, err := getter.Webinar(r.Context(), webinarID)
		if err != nil {
			log.Error("failed to get webinar", sl.Err(err))

			if errors.Is(err, models.ErrWebinarNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("Webinar not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get webinar"))
			return
		}

		log.Info("webinar successfully received")

		responseOK(w, r, webinar)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, webinar *models.Webinar) {
	render.JSON(w, r, WebinarResponse{
		Webinar: &Webinar{
			ID:          webinar.ID(),
			OrganizerID: webinar.OrganizerID(),
			Title:       webinar.Title(),
			StartDate:   webinar.StartDate(),
			EndDate:     webinar.EndDate(),
			Seats:       webinar.Seats(),
		},
	})
}
