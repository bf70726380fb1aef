// Package server wires the HTTP routes and middleware.
package server

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/shivansh-2003/color-UI/internal/suggest"
)

const version = "1.0.0"

// Health describes credential availability.
type Health struct {
	GeminiConfigured bool
	GroqConfigured   bool
}

// New constructs the HTTP server with routes and middleware.
func New(addr string, suggestHandler suggest.Handler, health Health) *http.Server {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors)

	router.Get("/", rootHandler)
	router.Get("/health", health.handler)

	router.Route("/api", func(r chi.Router) {
		r.Post("/suggest-colors", suggestHandler.SuggestColors)
	})

	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Println("server ready on", srv.Addr)
	return srv
}

func rootHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]any{
		"message": "AI Color Suggester API",
		"version": version,
		"endpoints": map[string]string{
			"/api/suggest-colors": "POST - Get color suggestions based on image and description",
			"/health":             "GET - Check API health",
		},
	})
}

func (h Health) handler(w http.ResponseWriter, _ *http.Request) {
	status := "ok"
	var issues []string
	if !h.GeminiConfigured {
		issues = append(issues, "GEMINI_API_KEY not configured")
		status = "warning"
	}
	if !h.GroqConfigured {
		issues = append(issues, "GROQ_API_KEY not configured")
		status = "warning"
	}

	writeJSON(w, map[string]any{
		"status":    status,
		"timestamp": time.Now().Unix(),
		"issues":    issues,
	})
}

// cors allows browser and mobile clients from any origin.
func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
