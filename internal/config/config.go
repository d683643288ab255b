package config // package config loads application configuration from environment variables

import (
	"log"
	"os"
	"strconv"
	"time"
)

// DefaultJWTSecret is the signing secret used when JWT_SECRET is unset.
// It exists so the service can start in development without any setup;
// Load refuses to run in production with this value still in place.
const DefaultJWTSecret = "dev-insecure-secret"

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The types reflect how the values are used in
// the application: strings for identifiers and secrets, durations for
// lifetimes, ints for costs.
type Config struct {
	Env        string        // application environment ("dev" or "production")
	Port       string        // HTTP port to listen on
	DBUser     string        // database username
	DBPass     string        // database password (optional)
	DBHost     string        // database host address
	DBPort     string        // database port number
	DBName     string        // database name
	JWTSecret  string        // secret used to sign session tokens
	TokenTTL   time.Duration // session token (and cookie) lifetime
	BcryptCost int           // bcrypt cost for password hashing
	RabbitURL  string        // AMQP broker URL for signup events (empty disables publishing)
}

// Load reads configuration values from environment variables and returns a
// Config.  Every value has a development-friendly default; the only hard
// requirement is that the signing secret is overridden when running in
// production.
func Load() Config {
	cfg := Config{
		Env:        envStr("APP_ENV", "dev"),
		Port:       envStr("APP_PORT", "8080"),
		DBUser:     envStr("DB_USER", "planner"),
		DBPass:     os.Getenv("DB_PASS"), // empty allowed
		DBHost:     envStr("DB_HOST", "localhost"),
		DBPort:     envStr("DB_PORT", "3306"),
		DBName:     envStr("DB_NAME", "planner"),
		JWTSecret:  envStr("JWT_SECRET", DefaultJWTSecret),
		TokenTTL:   envDur("TOKEN_TTL", 7*24*time.Hour),
		BcryptCost: envInt("BCRYPT_COST", 10),
		RabbitURL:  os.Getenv("RABBITMQ_URL"),
	}
	if cfg.IsProduction() && cfg.JWTSecret == DefaultJWTSecret {
		log.Fatal("JWT_SECRET must be set when APP_ENV=production")
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 7 * 24 * time.Hour
	}
	return cfg
}

// IsProduction reports whether the service runs with production hardening:
// secure cookies and generic error messages.
func (c Config) IsProduction() bool {
	return c.Env == "production" || c.Env == "prod"
}

func envStr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func envInt(k string, d int) int {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return d
}

func envDur(k string, d time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if dur, err := time.ParseDuration(v); err == nil {
		return dur
	}
	return d
}

func envBool(k string, d bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	switch v {
	case "1", "true", "TRUE", "True", "yes", "YES", "on", "ON":
		return true
	case "0", "false", "FALSE", "False", "no", "NO", "off", "OFF":
		return false
	}
	return d
}
