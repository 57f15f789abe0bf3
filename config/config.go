package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds process-wide settings read once at startup.
// Nothing in the request path reads the environment directly.
type Config struct {
	Port        string
	DatabaseURL string
	AuthSecret  string

	// DevMode enables the trusted development identity header.
	DevMode bool

	// AdminAllowlist grants the admin role to external identities.
	AdminAllowlist *AdminAllowlist

	// ReviewZoneOffsetHours is the fixed reference timezone offset (in hours
	// east of UTC) used by the review eligibility rule alongside UTC.
	ReviewZoneOffsetHours int
}

// LoadEnv loads environment variables from .env file
func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}
}

// GetEnv gets an environment variable or returns a default value if not present
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Load builds the application config from the environment.
func Load() *Config {
	offset, err := strconv.Atoi(GetEnv("REVIEW_ZONE_OFFSET_HOURS", "4"))
	if err != nil {
		log.Println("Warning: invalid REVIEW_ZONE_OFFSET_HOURS, using default of 4")
		offset = 4
	}

	cfg := &Config{
		Port:                  GetEnv("PORT", "8080"),
		DatabaseURL:           GetEnv("DATABASE_URL", ""),
		AuthSecret:            GetEnv("AUTH_SECRET", ""),
		DevMode:               GetEnv("DEV_MODE", "false") == "true",
		AdminAllowlist:        NewAdminAllowlist(GetEnv("ADMIN_UIDS", "")),
		ReviewZoneOffsetHours: offset,
	}

	if cfg.DevMode {
		log.Println("⚠️ DEV_MODE enabled: the X-Dev-User identity header is trusted")
	}

	return cfg
}
