package config

import (
	"testing"
)

func TestOverrideFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", ":9090")
	t.Setenv("REDIS_ADDR", "cache:6379")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("GEMINI_MODELS", "model-a,model-b")

	cfg := &Config{
		Server: ServerConfig{Port: ":8080"},
		Redis:  RedisConfig{Addr: "localhost:6379", DB: 0},
		JWT:    JWTConfig{Secret: "file-secret"},
	}
	OverrideFromEnv(cfg)

	if cfg.Server.Port != ":9090" {
		t.Fatalf("port = %q", cfg.Server.Port)
	}
	if cfg.Redis.Addr != "cache:6379" || cfg.Redis.DB != 3 {
		t.Fatalf("redis = %+v", cfg.Redis)
	}
	if cfg.JWT.Secret != "env-secret" {
		t.Fatalf("jwt secret not overridden")
	}
	if cfg.Assistant.APIKey != "env-key" {
		t.Fatalf("api key not overridden")
	}
	if len(cfg.Assistant.Models) != 2 || cfg.Assistant.Models[0] != "model-a" {
		t.Fatalf("models = %v", cfg.Assistant.Models)
	}
}

func TestOverrideFromEnvIgnoresBadValues(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")

	cfg := &Config{Redis: RedisConfig{DB: 2}}
	OverrideFromEnv(cfg)

	if cfg.Redis.DB != 2 {
		t.Fatalf("malformed REDIS_DB applied: %d", cfg.Redis.DB)
	}
}

func TestOverrideFromEnvLeavesFileValues(t *testing.T) {
	cfg := &Config{
		Server: ServerConfig{Port: ":8080"},
		JWT:    JWTConfig{Secret: "file-secret"},
	}
	OverrideFromEnv(cfg)

	if cfg.Server.Port != ":8080" || cfg.JWT.Secret != "file-secret" {
		t.Fatalf("unset env vars clobbered file values: %+v", cfg)
	}
}
