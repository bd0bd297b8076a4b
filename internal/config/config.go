package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// MaxBatchWrites is the store's hard cap on writes per committed batch.
const MaxBatchWrites = 500

type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string

	MailFunctionURL string

	ReconcileTimeout   time.Duration
	ReconcileBatchSize int
}

// Load reads configuration from the environment, picking up a .env file
// when one is present. DATABASE_URL is required; everything else has a
// default or is validated by the binary that needs it.
func Load() (Config, error) {
	_ = godotenv.Load()

	var c Config

	c.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if c.DatabaseURL == "" {
		return Config{}, errors.New("DATABASE_URL is required")
	}

	c.Port = getenv("APP_PORT", "8080")
	c.JWTSecret = strings.TrimSpace(os.Getenv("JWT_SECRET"))
	c.MailFunctionURL = strings.TrimSpace(os.Getenv("MAIL_FUNCTION_URL"))

	c.ReconcileTimeout = getenvDuration("RECONCILE_TIMEOUT", 10*time.Minute)
	c.ReconcileBatchSize = getenvInt("RECONCILE_BATCH_SIZE", MaxBatchWrites)
	if c.ReconcileBatchSize <= 0 || c.ReconcileBatchSize > MaxBatchWrites {
		c.ReconcileBatchSize = MaxBatchWrites
	}

	return c, nil
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
