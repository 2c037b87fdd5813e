package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadConfig(t *testing.T) {
	os.Setenv("MONGODB_URI", "mongodb://localhost:27017/testdb")
	os.Setenv("MONGODB_DATABASE", "portfolio_test")
	os.Setenv("JWT_SECRET", "testsecret123456789012345678901234")
	os.Setenv("JWT_EXPIRES_IN", "30")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.MongoDB.URI == "" || cfg.MongoDB.Database != "portfolio_test" {
		t.Fatalf("unexpected mongo config: %+v", cfg.MongoDB)
	}
	if cfg.JWT.ExpiresIn != 30*time.Minute {
		t.Fatalf("unexpected token TTL: %v", cfg.JWT.ExpiresIn)
	}
	if cfg.Server.Port == "" {
		t.Fatalf("expected default server port to be set")
	}
	if cfg.Auth.ProtectRoutes {
		t.Fatalf("route protection should default to off")
	}
}

func TestLoadConfig_MissingMongoURI(t *testing.T) {
	orig, had := os.LookupEnv("MONGODB_URI")
	os.Unsetenv("MONGODB_URI")
	defer func() {
		if had {
			os.Setenv("MONGODB_URI", orig)
		}
	}()

	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected an error when MONGODB_URI is missing")
	}
}
