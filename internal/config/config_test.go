package config

import (
	"strings"
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()

	vars := map[string]string{
		"YARD_PRIMARY__ENV":                 "local",
		"YARD_SERVER__PORT":                 "8080",
		"YARD_SERVER__READ_TIMEOUT":         "30",
		"YARD_SERVER__WRITE_TIMEOUT":        "30",
		"YARD_SERVER__IDLE_TIMEOUT":         "60",
		"YARD_SERVER__CORS_ALLOWED_ORIGINS": "https://yardsolutionskc.com,http://localhost:3000",
		"YARD_DATABASE__HOST":               "localhost",
		"YARD_DATABASE__PORT":               "5432",
		"YARD_DATABASE__USER":               "postgres",
		"YARD_DATABASE__PASSWORD":           "postgres",
		"YARD_DATABASE__NAME":               "yard",
		"YARD_DATABASE__SSL_MODE":           "disable",
		"YARD_DATABASE__MAX_OPEN_CONNS":     "10",
		"YARD_DATABASE__MAX_IDLE_CONNS":     "2",
		"YARD_DATABASE__CONN_MAX_LIFETIME":  "300",
		"YARD_DATABASE__CONN_MAX_IDLE_TIME": "60",
		"YARD_STORAGE__ENDPOINT":            "http://localhost:54321/storage/v1/s3",
		"YARD_STORAGE__REGION":              "us-east-2",
		"YARD_STORAGE__ACCESS_KEY_ID":       "key",
		"YARD_STORAGE__SECRET_ACCESS_KEY":   "secret",
		"YARD_STORAGE__PUBLIC_BASE_URL":     "http://localhost:54321/storage/v1/object/public",
		"YARD_INTEGRATION__RESEND_API_KEY":  "re_test",
		"YARD_EMAIL__FROM":                  "Yard Solutions <quotes@yardsolutionskc.com>",
		"YARD_EMAIL__BUSINESS_ADDRESS":      "owner@yardsolutionskc.com",
	}
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestLoadConfigAppliesDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("expected port 8080, got %s", cfg.Server.Port)
	}
	if cfg.Database.Port != 5432 {
		t.Errorf("expected database port 5432, got %d", cfg.Database.Port)
	}
	if len(cfg.Server.CORSAllowedOrigins) != 2 {
		t.Errorf("expected 2 CORS origins, got %v", cfg.Server.CORSAllowedOrigins)
	}
	if cfg.Storage.Bucket != DefaultImageBucket {
		t.Errorf("expected default bucket, got %s", cfg.Storage.Bucket)
	}
	if cfg.Email.Delivery != EmailDeliverySync {
		t.Errorf("expected sync delivery, got %s", cfg.Email.Delivery)
	}
	if cfg.SiteHost() != DefaultSiteHost {
		t.Errorf("expected default site host, got %s", cfg.SiteHost())
	}
	if cfg.Observability == nil || cfg.Observability.Environment != "local" {
		t.Fatalf("observability environment should follow primary env, got %+v", cfg.Observability)
	}
	if cfg.Observability.ServiceName != ServiceName {
		t.Errorf("expected service name %s, got %s", ServiceName, cfg.Observability.ServiceName)
	}
}

func TestLoadConfigSiteHostOverride(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("YARD_SITE__HOST", "https://staging.yardsolutionskc.com/")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.SiteHost() != "https://staging.yardsolutionskc.com" {
		t.Errorf("unexpected site host %s", cfg.SiteHost())
	}
}

func TestLoadConfigPartialObservability(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("YARD_OBSERVABILITY__LOGGING__LEVEL", "debug")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Observability.Logging.Level != "debug" {
		t.Errorf("expected debug level, got %s", cfg.Observability.Logging.Level)
	}
	if cfg.Observability.Logging.Format != "json" {
		t.Errorf("expected format default, got %s", cfg.Observability.Logging.Format)
	}
	if cfg.Observability.HealthChecks.Timeout != 5*time.Second {
		t.Errorf("expected timeout default, got %s", cfg.Observability.HealthChecks.Timeout)
	}
}

func TestLoadConfigQueueRequiresRedis(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("YARD_EMAIL__DELIVERY", "queue")

	_, err := LoadConfig()
	if err == nil {
		t.Fatal("expected error for queue delivery without redis")
	}
	if !strings.Contains(err.Error(), "redis.address") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadConfigMissingRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("YARD_INTEGRATION__RESEND_API_KEY", "")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected validation error for missing resend api key")
	}
}

func TestEnvKey(t *testing.T) {
	cases := map[string]string{
		"YARD_SERVER__PORT":                  "server.port",
		"YARD_STORAGE__PUBLIC_BASE_URL":      "storage.public_base_url",
		"YARD_OBSERVABILITY__LOGGING__LEVEL": "observability.logging.level",
	}
	for in, want := range cases {
		if got := envKey(in); got != want {
			t.Errorf("envKey(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLoadConfigSplitsLists(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("YARD_SERVER__CORS_ALLOWED_ORIGINS", " https://yardsolutionskc.com , ,http://localhost:3000")
	t.Setenv("YARD_OBSERVABILITY__HEALTH_CHECKS__CHECKS", "database")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	origins := cfg.Server.CORSAllowedOrigins
	if len(origins) != 2 || origins[0] != "https://yardsolutionskc.com" || origins[1] != "http://localhost:3000" {
		t.Errorf("unexpected origins %q", origins)
	}
	if checks := cfg.Observability.HealthChecks.Checks; len(checks) != 1 || checks[0] != "database" {
		t.Errorf("unexpected health checks %q", checks)
	}
}

func TestLoadConfigRejectsEmptyOrigins(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("YARD_SERVER__CORS_ALLOWED_ORIGINS", " , ")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected validation error for empty CORS origins")
	}
}

func TestEnvValue(t *testing.T) {
	key, value := envValue("YARD_SERVER__CORS_ALLOWED_ORIGINS", "a,b")
	if key != "server.cors_allowed_origins" {
		t.Errorf("unexpected key %q", key)
	}
	if list, ok := value.([]string); !ok || len(list) != 2 {
		t.Errorf("expected a two-element list, got %#v", value)
	}

	if _, value := envValue("YARD_SERVER__PORT", "8080"); value != "8080" {
		t.Errorf("scalar values must pass through, got %#v", value)
	}
}
