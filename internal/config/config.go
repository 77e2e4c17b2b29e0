package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure. It contains
// settings for the environment, HTTP server, database connection, corpus
// location, linter behavior, JWT auth and graceful shutdown.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// RateLimitRequests is the number of requests allowed per client IP per RateLimitWindow
		RateLimitRequests int `env:"HTTP_RATE_LIMIT_REQUESTS" env-default:"100" yaml:"rateLimitRequests"`
		// RateLimitWindow is the sliding window used for per-IP rate limiting
		RateLimitWindow time.Duration `env:"HTTP_RATE_LIMIT_WINDOW" env-default:"1m" yaml:"rateLimitWindow"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"corpus" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Corpus describes where the Markdown notes live and how they are watched.
	Corpus struct {
		// Root is the directory containing the Markdown corpus
		Root string `env:"CORPUS_ROOT" env-default:"./notes" yaml:"root"`
		// IgnoreGlobs are path patterns (relative to Root) excluded from ingestion
		IgnoreGlobs []string `env:"CORPUS_IGNORE_GLOBS" yaml:"ignoreGlobs"`
		// WatchDebounce is how long the watcher waits for a file to settle
		// before re-ingesting it
		WatchDebounce time.Duration `env:"CORPUS_WATCH_DEBOUNCE" env-default:"500ms" yaml:"watchDebounce"`
	} `yaml:"corpus"`

	// Linter controls background lint processing.
	Linter struct {
		// MaxAttempts is how many times a lint job may be retried before the
		// report is marked failed
		MaxAttempts int `env:"LINTER_MAX_ATTEMPTS" env-default:"3" yaml:"maxAttempts"`
		// ResultCacheTTL is the window during which a completed report for the
		// same checksum is reused instead of enqueueing a duplicate job
		ResultCacheTTL time.Duration `env:"LINTER_RESULT_CACHE_TTL" env-default:"24h" yaml:"resultCacheTTL"`
		// QueueMaxWorkers caps concurrent lint jobs
		QueueMaxWorkers int `env:"LINTER_QUEUE_MAX_WORKERS" env-default:"16" yaml:"queueMaxWorkers"`
	} `yaml:"linter"`

	// JWT holds the RS256 key pair used to mint and verify API tokens.
	JWT struct {
		// PrivateKey is the PEM-encoded RSA private key used by the jwt command
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
		// PublicKey is the PEM-encoded RSA public key used to verify bearer tokens
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
	} `yaml:"jwt"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
