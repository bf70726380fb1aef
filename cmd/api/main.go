package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/oauth2"

	"github.com/shivansh-2003/color-UI/internal/config"
	"github.com/shivansh-2003/color-UI/internal/llm"
	"github.com/shivansh-2003/color-UI/internal/media"
	"github.com/shivansh-2003/color-UI/internal/preview"
	"github.com/shivansh-2003/color-UI/internal/server"
	"github.com/shivansh-2003/color-UI/internal/suggest"
	"github.com/shivansh-2003/color-UI/internal/vision"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("could not load .env: %v", err)
	}
	cfg := config.FromEnv()

	if !cfg.HasGemini() {
		log.Println("warning: GEMINI_API_KEY not configured, extraction disabled")
	}
	if !cfg.HasGroq() {
		log.Println("warning: GROQ_API_KEY not configured, suggestions disabled")
	}

	var tokenSource oauth2.TokenSource
	if cfg.GeminiAccessToken != "" {
		tokenSource = oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.GeminiAccessToken})
	}
	extractor := vision.NewGeminiExtractor(cfg.GeminiAPIKey, cfg.GeminiVisionModel, 60*time.Second, tokenSource)
	suggester := suggest.NewGroqSuggester(llm.NewGroqClient(cfg.GroqAPIKey, cfg.GroqModel))

	var aiRenderer preview.Renderer
	switch {
	case cfg.HasImagen():
		aiRenderer = preview.NewVertexImagen(preview.VertexImagenConfig{
			ProjectID:          cfg.Imagen.ProjectID,
			Location:           cfg.Imagen.Location,
			Model:              cfg.Imagen.Model,
			APIKey:             cfg.GeminiAPIKey,
			ServiceAccount:     cfg.Imagen.ServiceAccount,
			ServiceAccountJSON: cfg.Imagen.ServiceAccountJSON,
		})
		log.Println("preview renderer: Vertex Imagen with local fallback")
	case cfg.HasGemini():
		aiRenderer = preview.NewGeminiRenderer(cfg.GeminiAPIKey, cfg.GeminiImageModel, 60*time.Second)
		log.Println("preview renderer: Gemini with local fallback")
	default:
		log.Println("preview renderer: local fallback only")
	}

	scratch, err := media.NewScratchStore("")
	if err != nil {
		log.Fatalf("failed to init scratch storage: %v", err)
	}

	handler := suggest.Handler{
		Service: suggest.Service{
			Extractor:        extractor,
			Suggester:        suggester,
			AIRenderer:       aiRenderer,
			FallbackRenderer: preview.NewFallbackRenderer(),
		},
		Scratch:          scratch,
		GeminiConfigured: cfg.HasGemini(),
		GroqConfigured:   cfg.HasGroq(),
	}

	srv := server.New(cfg.Addr(), handler, server.Health{
		GeminiConfigured: cfg.HasGemini(),
		GroqConfigured:   cfg.HasGroq(),
	})

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-shutdownChan
		log.Println("shutting down server...")
		if err := srv.Close(); err != nil {
			log.Printf("server close error: %v", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server failed: %v", err)
	}
}
