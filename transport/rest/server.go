package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

const shutdownTimeout = 5 * time.Second

// NewRouter - routes of the REST API.
func NewRouter(logger *slog.Logger, uGame uGame, defaultDifficulty entity.Difficulty) http.Handler {
	handlers := NewHandlers(logger, uGame, defaultDifficulty)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)

	router.Get("/ping", PingHandler)

	router.Route("/games", func(r chi.Router) {
		r.Post("/", handlers.NewGame)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", handlers.GetGame)
			r.Delete("/", handlers.DeleteGame)
			r.Post("/turns", handlers.MakeTurn)
			r.Post("/reset", handlers.Reset)
			r.Put("/difficulty", handlers.SetDifficulty)
		})
	})

	return router
}

// Start - serves the REST API until ctx is canceled.
func Start(ctx context.Context, port string, handler http.Handler) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
