package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	FrontendURL string
	// Upload handling
	UploadDir    string
	DefaultLogo  string
	MaxLogoWidth int
	// Optional JSON snapshot of the record store. Empty means memory only.
	DataFile string
}

func LoadConfig() (*Config, error) {
	// Load .env file (only effective locally, ignored when the file is absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		FrontendURL:  getEnv("FRONTEND_URL", "http://localhost:3000"),
		UploadDir:    getEnv("UPLOAD_DIR", "uploads"),
		DefaultLogo:  getEnv("DEFAULT_LOGO", "default.jpg"),
		MaxLogoWidth: getEnvInt("MAX_LOGO_WIDTH", 512),
		DataFile:     getEnv("DATA_FILE", ""),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
