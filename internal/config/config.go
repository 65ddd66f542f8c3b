package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Load reads the .env file named by RESOLUTE_ENV (or .env by default),
// then the corresponding .secret sidecar if it exists. All config is flat
// env vars read via os.Getenv after loading.
func Load() error {
	envFile := os.Getenv("RESOLUTE_ENV")
	if envFile == "" {
		envFile = ".env"
	}

	_ = godotenv.Load(envFile)
	_ = godotenv.Load(envFile + ".secret")

	return nil
}

func ServerPort() int {
	port, err := strconv.Atoi(os.Getenv("SERVER_PORT"))
	if err != nil {
		return 8080
	}
	return port
}

func ServerAddr() string {
	return fmt.Sprintf(":%d", ServerPort())
}

func DatabaseURL() string {
	return os.Getenv("DATABASE_URL")
}

// MaxRounds is the saturation round bound applied to API-triggered runs.
// Defaults to 1000; 0 disables the bound.
func MaxRounds() int {
	v := os.Getenv("MAX_ROUNDS")
	if v == "" {
		return 1000
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 1000
	}
	return n
}

// RunRetention is how long run records are kept before the reaper
// deletes them. Defaults to 30 days.
func RunRetention() time.Duration {
	d, err := time.ParseDuration(os.Getenv("RUN_RETENTION"))
	if err != nil || d <= 0 {
		return 30 * 24 * time.Hour
	}
	return d
}

// RateLimitRPS returns the requests-per-second limit.
// Defaults to 100 if not set.
func RateLimitRPS() float64 {
	rps, err := strconv.ParseFloat(os.Getenv("RATE_LIMIT_RPS"), 64)
	if err != nil || rps <= 0 {
		return 100
	}
	return rps
}

// RateLimitBurst returns the burst size for rate limiting.
// Defaults to 20 if not set.
func RateLimitBurst() int {
	burst, err := strconv.Atoi(os.Getenv("RATE_LIMIT_BURST"))
	if err != nil || burst <= 0 {
		return 20
	}
	return burst
}

// LogLevel returns the log level (debug, info, warn, error).
// Defaults to "info" if not set.
func LogLevel() string {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		return "info"
	}
	return level
}
