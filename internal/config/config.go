// Package config loads application configuration from environment variables.
package config

import (
	"log"
	"os"
	"strconv"
)

// Config holds all runtime configuration values. Each field corresponds to an
// environment variable; required variables are enforced by must() and missing
// values halt startup.
type Config struct {
	Env           string // application environment (e.g. "dev", "prod")
	Port          string // HTTP port to listen on
	MongoURI      string // connection string for the document store
	MongoDBName   string // database name
	JWTSecret     string // secret used to sign access tokens
	TokenTTLHours int    // access token time-to-live in hours
	BcryptCost    int    // bcrypt cost for password hashing
	AdminEmail    string // well-known administrator account email
	AdminPassword string // initial administrator password, hashed before storage
	AMQPURL       string // broker URL for domain events; empty means the local default
}

// Load reads configuration values from environment variables and returns a
// Config. Optional knobs fall back to sensible defaults.
func Load() Config {
	return Config{
		Env:           must("APP_ENV"),
		Port:          must("APP_PORT"),
		MongoURI:      must("MONGO_URI"),
		MongoDBName:   must("MONGO_DB"),
		JWTSecret:     must("JWT_SECRET"),
		TokenTTLHours: intOr("TOKEN_TTL_HOURS", 24),
		BcryptCost:    intOr("BCRYPT_COST", 10),
		AMQPURL:       getenv("RABBITMQ_URL", os.Getenv("AMQP_URL")),
		AdminEmail:    getenv("ADMIN_EMAIL", "admin@homevista.io"),
		AdminPassword: getenv("ADMIN_PASSWORD", "admin123"),
	}
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// intOr reads an integer environment variable. An unset variable yields the
// default. A value that does not parse as an integer is rejected loudly and
// the default is used instead, so a typo in TOKEN_TTL_HOURS cannot silently
// collapse the TTL to zero and expire every issued token on arrival.
func intOr(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid int for %s: %q, falling back to %d", key, v, def)
		return def
	}
	return n
}
