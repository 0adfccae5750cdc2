package router

import (
	"log/slog"
	"net/http"

	"webinars/internal/config"
	"webinars/internal/http-server/handlers/webinar/getWebinar"
	"webinars/internal/http-server/handlers/webinar/updateSeats"
	"webinars/internal/http-server/middleware/mwlogger"
	"webinars/internal/http-server/middleware/requester"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type WebinarService interface {
	updateSeats.SeatsUpdater
	getWebinar.WebinarGetter
}

func New(log *slog.Logger, auth config.Auth, webinars WebinarService) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/health"))

	router.Route("/webinars", func(r chi.Router) {
		r.Use(requester.New(log, auth.DefaultUserID))

		r.Get("/{id}", getWebinar.New(log, webinars))
		r.Post("/{id}/seats", updateSeats.New(log, webinars))
	})

	return router
}
