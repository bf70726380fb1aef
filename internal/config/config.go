// Package config loads process-wide configuration once at startup.
package config

import (
	"os"
	"strings"
)

// Config holds runtime configuration values. It is constructed once in
// main and passed down; nothing reads the environment afterwards.
type Config struct {
	GeminiAPIKey      string
	GroqAPIKey        string
	GeminiVisionModel string
	GeminiImageModel  string
	GroqModel         string
	// GeminiAccessToken switches the vision adapter to bearer-token auth
	// when set (service account deployments).
	GeminiAccessToken string

	Imagen ImagenConfig

	Port       string
	Production bool
}

// ImagenConfig selects the Vertex AI Imagen preview renderer when a
// project is configured.
type ImagenConfig struct {
	ProjectID          string
	Location           string
	Model              string
	ServiceAccount     string
	ServiceAccountJSON string
}

// FromEnv loads configuration from environment variables and applies
// defaults.
func FromEnv() Config {
	return Config{
		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		GroqAPIKey:        os.Getenv("GROQ_API_KEY"),
		GeminiVisionModel: os.Getenv("GEMINI_VISION_MODEL"),
		GeminiImageModel:  os.Getenv("GEMINI_IMAGE_MODEL"),
		GroqModel:         os.Getenv("GROQ_MODEL"),
		GeminiAccessToken: os.Getenv("GEMINI_ACCESS_TOKEN"),
		Imagen: ImagenConfig{
			ProjectID:          os.Getenv("IMAGEN_PROJECT_ID"),
			Location:           getenv("IMAGEN_LOCATION", "us-central1"),
			Model:              getenv("IMAGEN_MODEL", "imagegeneration@006"),
			ServiceAccount:     os.Getenv("IMAGEN_SERVICE_ACCOUNT"),
			ServiceAccountJSON: os.Getenv("IMAGEN_SERVICE_ACCOUNT_JSON"),
		},
		Port:       getenv("PORT", "8000"),
		Production: strings.EqualFold(os.Getenv("ENVIRONMENT"), "production"),
	}
}

// Addr returns the listen address; production deployments bind all
// interfaces, development binds loopback only.
func (c Config) Addr() string {
	host := "127.0.0.1"
	if c.Production {
		host = "0.0.0.0"
	}
	return host + ":" + c.Port
}

// HasGemini reports whether the vision credential is configured.
func (c Config) HasGemini() bool {
	return strings.TrimSpace(c.GeminiAPIKey) != "" || strings.TrimSpace(c.GeminiAccessToken) != ""
}

// HasGroq reports whether the language model credential is configured.
func (c Config) HasGroq() bool {
	return strings.TrimSpace(c.GroqAPIKey) != ""
}

// HasImagen reports whether the Vertex Imagen renderer can be used.
func (c Config) HasImagen() bool {
	return c.Imagen.ProjectID != "" && c.Imagen.Location != "" && c.Imagen.Model != ""
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
