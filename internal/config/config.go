// Package config manages environment variables.
//
// It reads variables from the process environment (and a `.env` file when
// present), loads them into structured Go types, and validates that required
// values are present so they can be reused across the application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad/missing config.
//   - Provide sane defaults for optional config blocks (e.g. observability).
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists, it gets loaded into the
	// process env before any config is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

/*
	Env vars are read using the YARD_ prefix. Keys are lowercased, the prefix
	is removed and a double underscore marks nesting:

		YARD_SERVER__PORT            -> server.port      -> Config.Server.Port
		YARD_STORAGE__PUBLIC_BASE_URL -> storage.public_base_url

	List values (CORS origins, health checks) are comma-separated.
*/

const (
	// EnvPrefix is the prefix every configuration variable must carry.
	EnvPrefix = "YARD_"

	// ServiceName labels logs, traces and New Relic data.
	ServiceName = "yardsolutions"

	// DefaultSiteHost is the origin used in links embedded in emails.
	DefaultSiteHost = "https://yardsolutionskc.com"

	// DefaultImageBucket is the object-store bucket holding quote images.
	DefaultImageBucket = "quote-images"

	EmailDeliverySync  = "sync"
	EmailDeliveryQueue = "queue"
)

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags specify where koanf should map values from.
// The `validate:"..."` tags are enforced by go-playground/validator.
//
// Observability is a pointer because it is optional. If not provided,
// defaults are injected at load time.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Redis         RedisConfig          `koanf:"redis"`
	Storage       StorageConfig        `koanf:"storage" validate:"required"`
	Integration   IntegrationConfig    `koanf:"integration" validate:"required"`
	Email         EmailConfig          `koanf:"email" validate:"required"`
	Site          SiteConfig           `koanf:"site"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
//
// Timeouts are seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required,min=1"`

	// BodyLimit caps multipart uploads, in echo's size notation ("20M").
	BodyLimit string `koanf:"body_limit"`

	// RateLimit is the allowed requests per second per client IP on /api.
	// Zero disables rate limiting.
	RateLimit float64 `koanf:"rate_limit" validate:"gte=0"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password" validate:"required"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required"`
}

// RedisConfig contains Redis connection details.
//
// Redis is optional: it only backs queued email delivery. An empty Address
// disables the Redis client and the job service.
type RedisConfig struct {
	Address string `koanf:"address"`
}

// StorageConfig points at the S3-compatible object store holding quote images.
type StorageConfig struct {
	// Endpoint is the S3 API endpoint (e.g. https://<project>.supabase.co/storage/v1/s3).
	Endpoint        string `koanf:"endpoint" validate:"required,url"`
	Region          string `koanf:"region" validate:"required"`
	AccessKeyID     string `koanf:"access_key_id" validate:"required"`
	SecretAccessKey string `koanf:"secret_access_key" validate:"required"`
	Bucket          string `koanf:"bucket"`

	// PublicBaseURL prefixes public object URLs: <base>/<bucket>/<dir>/<name>.
	PublicBaseURL string `koanf:"public_base_url" validate:"required,url"`
}

// IntegrationConfig stores third-party API keys.
type IntegrationConfig struct {
	ResendAPIKey string `koanf:"resend_api_key" validate:"required"`
}

// EmailConfig controls who sends and who receives quote confirmations.
type EmailConfig struct {
	From            string `koanf:"from" validate:"required"`
	BusinessAddress string `koanf:"business_address" validate:"required,email"`
	BusinessName    string `koanf:"business_name"`

	// Delivery is "sync" (one attempt inside the request) or "queue" (asynq task).
	Delivery string `koanf:"delivery" validate:"omitempty,oneof=sync queue"`
}

// SiteConfig describes the public website the API serves.
type SiteConfig struct {
	// Host overrides the origin used in links embedded in emails.
	Host string `koanf:"host" validate:"omitempty,url"`
}

// LoadConfig loads configuration from environment variables, unmarshals it into
// Config structs, validates it, applies defaults, and returns the resulting config.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envValue), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	mainConfig := &Config{}

	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	mainConfig.applyDefaults()

	// Service name and environment are forced so tracing/logging sees
	// consistent service naming.
	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := validator.New().Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if mainConfig.Email.Delivery == EmailDeliveryQueue && mainConfig.Redis.Address == "" {
		return nil, fmt.Errorf("email delivery %q requires redis.address", EmailDeliveryQueue)
	}

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}

// envKey maps YARD_SERVER__READ_TIMEOUT to server.read_timeout.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

// listKeys are read as comma-separated lists.
var listKeys = map[string]bool{
	"server.cors_allowed_origins":        true,
	"observability.health_checks.checks": true,
}

// envValue maps the variable name through envKey and splits list values.
func envValue(name, value string) (string, any) {
	key := envKey(name)
	if !listKeys[key] {
		return key, value
	}

	items := []string{}
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return key, items
}

func (c *Config) applyDefaults() {
	if c.Observability == nil {
		c.Observability = DefaultObservabilityConfig()
	}
	c.Observability.fillDefaults()
	if c.Storage.Bucket == "" {
		c.Storage.Bucket = DefaultImageBucket
	}
	if c.Email.Delivery == "" {
		c.Email.Delivery = EmailDeliverySync
	}
	if c.Email.BusinessName == "" {
		c.Email.BusinessName = "Yard Solutions LLC"
	}
	if c.Site.Host == "" {
		c.Site.Host = DefaultSiteHost
	}
	if c.Server.BodyLimit == "" {
		c.Server.BodyLimit = "20M"
	}
}

// SiteHost returns the configured site origin without a trailing slash.
func (c *Config) SiteHost() string {
	return strings.TrimRight(c.Site.Host, "/")
}
