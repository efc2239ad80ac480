package config

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET": "dev-secret",
	}))
	if err != nil {
		t.Fatalf("LoadFrom returned error: %v", err)
	}
	if cfg.Port != "5000" || cfg.Env != EnvDevelopment {
		t.Fatalf("unexpected defaults: port=%s env=%s", cfg.Port, cfg.Env)
	}
	if cfg.Auth.JWTTTL != 30*24*time.Hour {
		t.Fatalf("JWT_TTL default = %v, want 30 days", cfg.Auth.JWTTTL)
	}
	if cfg.Redis.CacheTTL != 5*time.Minute {
		t.Fatalf("CACHE_TTL default = %v", cfg.Redis.CacheTTL)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Fatalf("CORS_ORIGINS default = %v", cfg.CORSOrigins)
	}
	if cfg.Addr() != ":5000" {
		t.Fatalf("Addr = %q", cfg.Addr())
	}
}

func TestLoadFrom_MissingSecret(t *testing.T) {
	if _, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{})); err == nil {
		t.Fatalf("expected error when JWT_SECRET is unset")
	}
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET":   "a-long-production-secret",
		"ENV":          "production",
		"PORT":         "8080",
		"JWT_TTL":      "1h",
		"CORS_ORIGINS": "https://a.example,https://b.example",
		"REDIS_DB":     "2",
	}))
	if err != nil {
		t.Fatalf("LoadFrom returned error: %v", err)
	}
	if !cfg.IsProduction() || cfg.Auth.JWTTTL != time.Hour || cfg.Redis.DB != 2 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if len(cfg.CORSOrigins) != 2 {
		t.Fatalf("CORS_ORIGINS = %v", cfg.CORSOrigins)
	}
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{
			Port:  "5000",
			Env:   EnvDevelopment,
			Auth:  AuthConfig{JWTSecret: "s", JWTTTL: time.Hour},
			Mongo: MongoConfig{Database: "marketplace"},
		}
	}

	cases := map[string]struct {
		mutate func(*Config)
		want   string
	}{
		"bad port":          {func(c *Config) { c.Port = "http" }, "PORT"},
		"unknown env":       {func(c *Config) { c.Env = "staging" }, "ENV"},
		"short prod secret": {func(c *Config) { c.Env = EnvProduction }, "JWT_SECRET"},
		"non-positive ttl":  {func(c *Config) { c.Auth.JWTTTL = 0 }, "JWT_TTL"},
		"empty database":    {func(c *Config) { c.Mongo.Database = "" }, "MONGO_DB"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := base()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("Validate() = %v, want error mentioning %s", err, tc.want)
			}
		})
	}

	ok := base()
	if err := ok.Validate(); err != nil {
		t.Fatalf("Validate() on valid config = %v", err)
	}
}
