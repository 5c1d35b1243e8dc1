package config

import (
	"testing"
	"time"

	"github.com/riskibarqy/fifa-roster/internal/platform/logging"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("DB_PATH", "")
	t.Setenv("STORAGE_DRIVER", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.AppEnv != EnvDev {
		t.Fatalf("unexpected AppEnv: %q", cfg.AppEnv)
	}
	if cfg.DBPath != "FIFA24.db" {
		t.Fatalf("unexpected DBPath: %q", cfg.DBPath)
	}
	if cfg.StorageDriver != StorageSQLite {
		t.Fatalf("unexpected StorageDriver: %q", cfg.StorageDriver)
	}
	if !cfg.DBAutoMigrate || cfg.RosterSeedOnStart || cfg.RosterClearOnShutdown {
		t.Fatalf("unexpected roster lifecycle defaults: %+v", cfg)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected HTTPAddr: %q", cfg.HTTPAddr)
	}
	if cfg.LogFormat != logging.FormatJSON || cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("unexpected log settings: format=%q level=%v", cfg.LogFormat, cfg.LogLevel)
	}
}

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_StorageDriverValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("STORAGE_DRIVER", "postgres")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid STORAGE_DRIVER")
	}
}

func TestLoad_RosterSettings(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("STORAGE_DRIVER", "Memory")
	t.Setenv("DB_PATH", " /var/lib/roster/FIFA24.db ")
	t.Setenv("DB_BUSY_TIMEOUT", "2s")
	t.Setenv("ROSTER_SEED_ON_START", "true")
	t.Setenv("ROSTER_CLEAR_ON_SHUTDOWN", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, ,https://roster.example.com")
	t.Setenv("APP_LOG_LEVEL", "warning")
	t.Setenv("APP_LOG_FORMAT", "console")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.StorageDriver != StorageMemory {
		t.Fatalf("unexpected StorageDriver: %q", cfg.StorageDriver)
	}
	if cfg.DBPath != "/var/lib/roster/FIFA24.db" {
		t.Fatalf("unexpected DBPath: %q", cfg.DBPath)
	}
	if cfg.DBBusyTimeout != 2*time.Second {
		t.Fatalf("unexpected DBBusyTimeout: %s", cfg.DBBusyTimeout)
	}
	if !cfg.RosterSeedOnStart || !cfg.RosterClearOnShutdown {
		t.Fatalf("expected seed and clear flags to be set")
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://roster.example.com" {
		t.Fatalf("unexpected CORSAllowedOrigins: %v", cfg.CORSAllowedOrigins)
	}
	if cfg.LogLevel != logging.LevelWarn || cfg.LogFormat != logging.FormatConsole {
		t.Fatalf("unexpected log settings: format=%q level=%v", cfg.LogFormat, cfg.LogLevel)
	}
}

func TestLoad_CacheTTLValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("CACHE_ENABLED", "true")
	t.Setenv("CACHE_TTL", "0s")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for non-positive CACHE_TTL")
	}

	t.Setenv("CACHE_TTL", "1m")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.CacheEnabled || cfg.CacheTTL != time.Minute {
		t.Fatalf("unexpected cache settings: enabled=%v ttl=%s", cfg.CacheEnabled, cfg.CacheTTL)
	}
}

func TestLoad_InvalidBool(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("ROSTER_SEED_ON_START", "sometimes")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid ROSTER_SEED_ON_START")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `foo=bar, uptrace-dsn="https://token@api.uptrace.dev?grpc=4317"`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected UptraceDSN: %q", cfg.UptraceDSN)
	}
}

func TestLoad_PyroscopeRequiresServerAddress(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}
