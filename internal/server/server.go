// Package server exposes the curved-beam and straight-beam solvers as a
// small JSON API, for callers that render results elsewhere.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"

	"github.com/alexiusacademia/gocurve/internal/curved"
	"github.com/alexiusacademia/gocurve/internal/straight"
)

// errorResponse is the failure body. Kind is filled for solver failures
// so clients can discriminate without parsing the message.
type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// NewRouter builds the API routes. All analysis endpoints are POST with a
// JSON body and return either the result record or an errorResponse.
func NewRouter(logger *log.Logger) *mux.Router {
	r := mux.NewRouter()
	r.Use(requestLogger(logger))

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", handleHealth).Methods(http.MethodGet)
	api.HandleFunc("/curved", handleCurved).Methods(http.MethodPost)
	api.HandleFunc("/straight", handleStraight).Methods(http.MethodPost)

	return r
}

// Run serves the API on addr until ctx is canceled, then shuts down
// gracefully.
func Run(ctx context.Context, addr string, logger *log.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func handleCurved(w http.ResponseWriter, r *http.Request) {
	var in curved.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request payload"})
		return
	}

	res, err := curved.Analyze(in)
	if err != nil {
		var cerr *curved.Error
		if errors.As(err, &cerr) {
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
				Error: cerr.Message,
				Kind:  string(cerr.Kind),
			})
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, res)
}

func handleStraight(w http.ResponseWriter, r *http.Request) {
	var in straight.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request payload"})
		return
	}

	res, err := straight.Evaluate(in)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, res)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func requestLogger(logger *log.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Debug("request",
				"method", r.Method,
				"path", r.URL.Path,
				"elapsed", time.Since(start),
			)
		})
	}
}
