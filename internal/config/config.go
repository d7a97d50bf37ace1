package config // package config loads application configuration from environment variables

import (
	"log" // log is used to report configuration errors and halt execution
	"os"  // os provides access to environment variables
)

// Config holds all runtime configuration values. Each field corresponds
// to an environment variable. Redis, cache, rate-limit and broker
// settings are loaded separately (see redis.go, cache.go, ratelimit.go)
// because the service degrades gracefully without them; everything here
// is required for the process to start at all.
type Config struct {
	Env       string // application environment (e.g. "dev", "prod")
	Port      string // HTTP port to listen on
	DBUser    string // document database username
	DBPass    string // document database password (optional)
	DBHost    string // cluster host, e.g. "cluster0.k5v5ibx.mongodb.net"
	DBName    string // database name holding the users and rooms collections
	JWTSecret string // secret used to sign access tokens
}

// Load reads configuration values from environment variables and returns
// a Config. Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:       must("APP_ENV"),             // environment (dev/test/prod)
		Port:      must("APP_PORT"),            // port to bind the HTTP server
		DBUser:    must("DB_USER"),             // database user
		DBPass:    os.Getenv("DB_PASS"),        // database password (empty allowed)
		DBHost:    must("DB_HOST"),             // cluster host
		DBName:    must("DB_NAME"),             // database name
		JWTSecret: must("ACCESS_TOKEN_SECRET"), // token signing secret
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
