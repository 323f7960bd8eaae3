// config/config.go
package config

import (
	"os"
	"strconv"
	"time"
)

const (
	defaultMongoURI    = "mongodb://localhost:27017"
	defaultDBName      = "ecommerce"
	defaultTTLHours    = 24
	defaultPort        = "8080"
	defaultAdminUser   = "admin"
	defaultAdminPasswd = "password123"
)

// Config holds every environment-configured value, read once at startup and
// passed by reference to the components that need it.
type Config struct {
	Port          string
	MongoURI      string
	DBName        string
	AdminUsername string
	AdminPassword string
	SessionTTL    time.Duration
}

// Load reads the configuration from the environment. MongoURI and DBName keep
// their raw values (possibly empty) so the diagnostic endpoint can report
// whether they were actually set; use ConnectionURI and DatabaseName when a
// usable value is needed.
func Load() *Config {
	cfg := &Config{
		Port:          getEnv("PORT", defaultPort),
		MongoURI:      firstEnv("MONGO_URI", "MONGODB_URI", "DATABASE_URL"),
		DBName:        firstEnv("DB_NAME", "DATABASE_NAME"),
		AdminUsername: getEnv("ADMIN_USERNAME", defaultAdminUser),
		AdminPassword: getEnv("ADMIN_PASSWORD", defaultAdminPasswd),
	}

	ttlHours := defaultTTLHours
	if raw := os.Getenv("ADMIN_SESSION_TTL_HOURS"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			ttlHours = parsed
		}
	}
	cfg.SessionTTL = time.Duration(ttlHours) * time.Hour

	return cfg
}

// ConnectionURI returns the configured MongoDB URI, falling back to a local
// instance when none was provided.
func (c *Config) ConnectionURI() string {
	if c.MongoURI == "" {
		return defaultMongoURI
	}
	return c.MongoURI
}

// DatabaseName returns the configured database name or the default.
func (c *Config) DatabaseName() string {
	if c.DBName == "" {
		return defaultDBName
	}
	return c.DBName
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func firstEnv(keys ...string) string {
	for _, key := range keys {
		if value := os.Getenv(key); value != "" {
			return value
		}
	}
	return ""
}
