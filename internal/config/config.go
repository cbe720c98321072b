package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress  string
	DatabaseURI string

	AuthSecret string
	SessionTTL time.Duration

	RazorpayBaseURL   string
	RazorpayKeyID     string
	RazorpayKeySecret string
	Currency          string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	DeliveryFee      float64
	MinOrderSubtotal float64

	CleanupPollInterval time.Duration
	CleanupBatchSize    int
	WorkerPoolSize      int
	ShutdownTimeout     time.Duration
}

const (
	defaultRunAddress          = ":8080"
	defaultAuthSecret          = "change-me-in-production"
	defaultSessionTTL          = 72 * time.Hour
	defaultRazorpayBaseURL     = "https://api.razorpay.com"
	defaultCurrency            = "INR"
	defaultDeliveryFee         = 70.0
	defaultCleanupPollInterval = time.Minute
	defaultCleanupBatchSize    = 16
	defaultWorkerPoolSize      = 2
	defaultShutdownTimeout     = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:          getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:         getString(lookup, "DATABASE_URI", ""),
		AuthSecret:          getString(lookup, "AUTH_SECRET", defaultAuthSecret),
		SessionTTL:          getDuration(lookup, "SESSION_TTL", defaultSessionTTL),
		RazorpayBaseURL:     getString(lookup, "RAZORPAY_BASE_URL", defaultRazorpayBaseURL),
		RazorpayKeyID:       getString(lookup, "RAZORPAY_KEY_ID", ""),
		RazorpayKeySecret:   getString(lookup, "RAZORPAY_KEY_SECRET", ""),
		Currency:            getString(lookup, "CURRENCY", defaultCurrency),
		CloudinaryCloudName: getString(lookup, "CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryAPIKey:    getString(lookup, "CLOUDINARY_API_KEY", ""),
		CloudinaryAPISecret: getString(lookup, "CLOUDINARY_API_SECRET", ""),
		DeliveryFee:         getFloat(lookup, "DELIVERY_FEE", defaultDeliveryFee),
		MinOrderSubtotal:    getFloat(lookup, "MIN_ORDER_SUBTOTAL", 0),
		CleanupPollInterval: getDuration(lookup, "CLEANUP_POLL_INTERVAL", defaultCleanupPollInterval),
		CleanupBatchSize:    getInt(lookup, "CLEANUP_BATCH_SIZE", defaultCleanupBatchSize),
		WorkerPoolSize:      getInt(lookup, "WORKER_POOL_SIZE", defaultWorkerPoolSize),
		ShutdownTimeout:     getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("printeasy", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		pollIntervalStr    = cfg.CleanupPollInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "Secret for signing auth tokens")
	fs.Float64Var(&cfg.DeliveryFee, "delivery-fee", cfg.DeliveryFee, "Flat per-order delivery fee")
	fs.Float64Var(&cfg.MinOrderSubtotal, "min-subtotal", cfg.MinOrderSubtotal, "Minimum order subtotal, 0 disables the check")
	fs.IntVar(&cfg.WorkerPoolSize, "worker-pool", cfg.WorkerPoolSize, "Number of concurrent cleanup workers")
	fs.StringVar(&pollIntervalStr, "cleanup-interval", pollIntervalStr, "Interval between media cleanup polls")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.IntVar(&cfg.CleanupBatchSize, "cleanup-batch", cfg.CleanupBatchSize, "Maximum deletions per cleanup batch")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.CleanupPollInterval, err = time.ParseDuration(pollIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid cleanup interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("AUTH_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read auth secret file: %w", err)
		}
		cfg.AuthSecret = string(content)
	}

	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = defaultWorkerPoolSize
	}

	if cfg.CleanupBatchSize <= 0 {
		cfg.CleanupBatchSize = defaultCleanupBatchSize
	}

	if cfg.CleanupPollInterval <= 0 {
		cfg.CleanupPollInterval = defaultCleanupPollInterval
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}

	if cfg.DeliveryFee < 0 {
		return nil, fmt.Errorf("delivery fee must not be negative")
	}

	if cfg.MinOrderSubtotal < 0 {
		return nil, fmt.Errorf("minimum subtotal must not be negative")
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.RazorpayKeyID == "" || cfg.RazorpayKeySecret == "" {
		return nil, fmt.Errorf("razorpay credentials must be provided")
	}

	if cfg.CloudinaryCloudName == "" || cfg.CloudinaryAPIKey == "" || cfg.CloudinaryAPISecret == "" {
		return nil, fmt.Errorf("cloudinary credentials must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getFloat(lookup envLookup, key string, def float64) float64 {
	if v, ok := lookup(key); ok && v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
