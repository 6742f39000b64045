package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	apiMiddleware "github.com/phrazzld/lingua-api/internal/api/middleware"
	"github.com/phrazzld/lingua-api/internal/api/shared"
)

// setupRouter creates the router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{app.config.Server.FrontendOrigin},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", shared.TraceIDHeader},
		ExposedHeaders: []string{shared.TraceIDHeader},
		MaxAge:         300,
	}))

	protected := app.authMiddleware.Require

	r.Route("/api", func(r chi.Router) {
		r.Post("/signup", app.authHandler.Signup)
		r.Post("/login", app.authHandler.Login)
		r.Post("/send_reminder", app.reminderHandler.SendReminder)

		r.Get("/languages", protected(app.ledgerHandler.ListLanguages))
		r.Get("/user/languages", protected(app.ledgerHandler.ListEnrollments))
		r.Post("/user/languages", protected(app.ledgerHandler.Enroll))

		r.Get("/lessons/{lang_id}", protected(app.practiceHandler.Lessons))
		r.Get("/exercises/{lang_id}", protected(app.practiceHandler.Exercises))
		r.Post("/exercise/submit", protected(app.practiceHandler.Submit))

		r.Post("/translate", protected(app.proxyHandler.Translate))
		r.Post("/chatbot", protected(app.proxyHandler.Chat))
	})

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
