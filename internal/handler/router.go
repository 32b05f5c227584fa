package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	intakeHandler "github.com/oakfieldhealth/reception/backend/internal/handler/intake"
	middlewarePkg "github.com/oakfieldhealth/reception/backend/internal/middleware"
	intakeService "github.com/oakfieldhealth/reception/backend/internal/service/intake"
)

// NewRouter wires HTTP routes to the intake service.
func NewRouter(intakeSvc *intakeService.Service) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	chatHandler := intakeHandler.New(intakeSvc)
	wsHandler := intakeHandler.NewWebSocketHandler(intakeSvc)

	r.Route("/api", func(api chi.Router) {
		chatHandler.RegisterRoutes(api)
		wsHandler.RegisterRoutes(api)
	})

	return r
}
