package config

import "os"

// Config is the whole configuration surface of the client: where the
// inventory API lives and where to listen. Everything else belongs to the
// backend.
type Config struct {
	AppName    string
	Port       string
	APIBaseURL string
}

func Load() *Config {
	return &Config{
		AppName:    getEnv("APP_NAME", "Inventory Web Client"),
		Port:       getEnv("PORT", "3000"),
		APIBaseURL: getEnv("API_BASE_URL", "http://localhost:8080/api"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
