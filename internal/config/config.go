package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, probing defaults, the fingerprint
// database, storage, queue, cache, tracing, the ops HTTP server and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level when set
	LogLevel string `env:"LOG_LEVEL" env-default:"" yaml:"logLevel"`

	// Request contains the defaults applied to every probe
	Request struct {
		// Timeout bounds a single probe, from dial to the end of the body
		Timeout time.Duration `env:"REQUEST_TIMEOUT" env-default:"30s" yaml:"timeout"`
		// UserAgent is sent with every probe
		UserAgent string `env:"REQUEST_USER_AGENT" env-default:"Mozilla/5.0 (compatible; cmsscan/1.0)" yaml:"userAgent"`
		// MaxBodyBytes caps how much of a response body is read
		MaxBodyBytes int64 `env:"REQUEST_MAX_BODY_BYTES" env-default:"5242880" yaml:"maxBodyBytes"`
		// MaxIdleConnsPerHost sizes the keep-alive pool per target
		MaxIdleConnsPerHost int `env:"REQUEST_MAX_IDLE_CONNS_PER_HOST" env-default:"16" yaml:"maxIdleConnsPerHost"`
		// RateLimit is the maximum number of probes per second across all targets; 0 disables it
		RateLimit float64 `env:"REQUEST_RATE_LIMIT" env-default:"0" yaml:"rateLimit"`
		// RateBurst is the token bucket size used with RateLimit
		RateBurst int `env:"REQUEST_RATE_BURST" env-default:"1" yaml:"rateBurst"`
	} `yaml:"request"`

	// Scan contains identification related configurations
	Scan struct {
		// FingerprintsPath is the YAML fingerprint database
		FingerprintsPath string `env:"SCAN_FINGERPRINTS_PATH" env-default:"fingerprints.yml" yaml:"fingerprintsPath"`
		// Plugins lists the active plugins; empty means every plugin of the database
		Plugins []string `env:"SCAN_PLUGINS" env-separator:"," yaml:"plugins"`
		// MaxConcurrentLines caps the number of lines processed at once; 0 means unbounded
		MaxConcurrentLines int `env:"SCAN_MAX_CONCURRENT_LINES" env-default:"0" yaml:"maxConcurrentLines"`
	} `yaml:"scan"`

	// Cache contains the redis tally cache configurations
	Cache struct {
		// Enabled turns the cache on
		Enabled bool `env:"CACHE_ENABLED" env-default:"false" yaml:"enabled"`
		// Addr is the redis address
		Addr string `env:"CACHE_ADDR" env-default:"localhost:6379" yaml:"addr"`
		// Password for redis authentication
		Password string `env:"CACHE_PASSWORD" env-default:"" yaml:"password"`
		// DB is the redis logical database
		DB int `env:"CACHE_DB" env-default:"0" yaml:"db"`
		// TTL is how long an identification tally is reused
		TTL time.Duration `env:"CACHE_TTL" env-default:"1h" yaml:"ttl"`
	} `yaml:"cache"`

	// Tracing contains the OpenTelemetry tracing configurations
	Tracing struct {
		// Enabled installs a tracer provider that writes finished spans to the log
		Enabled bool `env:"TRACING_ENABLED" env-default:"false" yaml:"enabled"`
		// SampleRatio is the fraction of identifications traced, between 0 and 1
		SampleRatio float64 `env:"TRACING_SAMPLE_RATIO" env-default:"1" yaml:"sampleRatio"`
	} `yaml:"tracing"`

	// HTTP contains the ops HTTP server configurations
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
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
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
		DatabaseName string `env:"DATABASE_NAME" env-default:"cmsscan" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Queue contains the river batch queue configurations
	Queue struct {
		// MaxWorkers is the number of batches processed concurrently by one worker process
		MaxWorkers int `env:"QUEUE_MAX_WORKERS" env-default:"4" yaml:"maxWorkers"`
		// MaxAttempts is how many times a batch is retried on storage errors
		MaxAttempts int `env:"QUEUE_MAX_ATTEMPTS" env-default:"3" yaml:"maxAttempts"`
		// JobTimeout bounds one batch; 0 lets a batch run as long as it needs
		JobTimeout time.Duration `env:"QUEUE_JOB_TIMEOUT" env-default:"0" yaml:"jobTimeout"`
	} `yaml:"queue"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing work to complete during shutdown
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

// LoadEnv fills a Config from environment variables and defaults only. It is
// used when no config file exists, so the scan command works out of the box.
func LoadEnv() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("could not read config from env: %w", err)
	}

	return &cfg, nil
}
