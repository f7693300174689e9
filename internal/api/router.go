// internal/api/router.go
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"casinobuddy/internal/api/handler"
	"casinobuddy/internal/apperr"
)

// apiFunc is a handler that returns a typed failure instead of writing error
// bodies itself. The recovery stage in wrap is the only place error bodies
// are produced.
type apiFunc func(http.ResponseWriter, *http.Request) *apperr.Error

// NewRouter sets up and returns a new HTTP router. Routes are declared in a
// fixed order; anything unmatched falls through to the NotFound renderer.
func NewRouter(ledgerHandler *handler.LedgerHandler, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(recoverer(logger)) // Renders panics through the error taxonomy

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, apperr.New(apperr.NotFound))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, apperr.New(apperr.NotFound))
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// Ledger API routes
	r.Get("/user/{id}", wrap(logger, ledgerHandler.GetUser))
	r.Post("/user", wrap(logger, ledgerHandler.CreateUser))
	r.Get("/casino", wrap(logger, ledgerHandler.ListCasinos))
	r.Get("/transaction/{userID}", wrap(logger, ledgerHandler.ListTransactions))
	r.Post("/transaction/{userID}/{casinoID}", wrap(logger, ledgerHandler.CreateTransaction))

	return r
}

// wrap adapts an apiFunc into an http.HandlerFunc, rendering any typed
// failure via the error taxonomy.
func wrap(logger *slog.Logger, fn apiFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		appErr := fn(w, r)
		if appErr == nil {
			return
		}
		if appErr.Kind == apperr.InternalServerError {
			logger.Error("Request failed", "method", r.Method, "path", r.URL.Path, "error", appErr)
		} else {
			logger.Warn("Request rejected", "method", r.Method, "path", r.URL.Path, "error", appErr)
		}
		writeError(w, appErr)
	}
}

// writeError renders the one-field error envelope. Encoding a Body cannot
// fail, so this stage never does.
func writeError(w http.ResponseWriter, appErr *apperr.Error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.Kind.HTTPStatus())
	_ = json.NewEncoder(w).Encode(appErr.Body())
}

// recoverer converts panics into 500 responses carrying the taxonomy body
// instead of chi's plain-text recoverer output.
func recoverer(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("Panic recovered", "method", r.Method, "path", r.URL.Path, "panic", rec)
					writeError(w, apperr.New(apperr.InternalServerError))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
