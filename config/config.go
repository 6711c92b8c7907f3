package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// DefaultAuthSecret is the insecure development fallback for the token
// signing key. Deployments must set AUTH_SECRET_KEY.
const DefaultAuthSecret = "dev-auth-secret-change-me"

type Config struct {
	ServerPort int
	AuthSecret string
	TokenTTL   time.Duration
	StaticDir  string
}

func LoadConfig() Config {
	if os.Getenv("ENV") == "dev" {
		godotenv.Load()
	}

	return Config{
		ServerPort: getEnvInt("SERVER_PORT", 8080),
		AuthSecret: getEnv("AUTH_SECRET_KEY", DefaultAuthSecret),
		TokenTTL:   time.Duration(getEnvInt("TOKEN_TTL_HOURS", 24)) * time.Hour,
		StaticDir:  getEnv("STATIC_DIR", "static"),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if valueStr, exists := os.LookupEnv(key); exists {
		var value int
		fmt.Sscanf(valueStr, "%d", &value)
		return value
	}
	return defaultValue
}
