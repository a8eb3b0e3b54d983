package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort string
	MongoURI   string
	MongoDB    string
	CORSOrigin string
	StateDir   string
}

// Load builds Config from the environment with sensible defaults. A .env
// file in the working directory is honored when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort: getEnv("PORT", "3000"),
		MongoURI:   getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:    getEnv("MONGO_DB", "schoolportal"),
		CORSOrigin: getEnv("CORS_ORIGIN", "http://localhost:5173"),
		StateDir:   os.Getenv("PORTAL_STATE_DIR"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
