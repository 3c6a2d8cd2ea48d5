package config

import "testing"

func TestLoadServerDefaults(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "postgres://localhost:5432/crew?sslmode=disable")

	cfg, err := LoadServer()
	if err != nil {
		t.Fatalf("LoadServer() error = %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("HTTPAddr = %q, want :8080", cfg.HTTPAddr)
	}
	if cfg.InitialBalanceCC != 500 {
		t.Fatalf("InitialBalanceCC = %d, want 500", cfg.InitialBalanceCC)
	}
	if cfg.DailySpinCooldownMins != 1440 {
		t.Fatalf("DailySpinCooldownMins = %d, want 1440", cfg.DailySpinCooldownMins)
	}
}

func TestLoadServerRequiresPostgresDSN(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "")

	_, err := LoadServer()
	if err == nil {
		t.Fatal("LoadServer() expected error, got nil")
	}
}

func TestLoadServerParseTypes(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "postgres://localhost:5432/crew?sslmode=disable")
	t.Setenv("INITIAL_BALANCE_CC", "2500")
	t.Setenv("DAILY_SPIN_MAX_CC", "600")
	t.Setenv("RESULT_PUSH_ENABLED", "true")
	t.Setenv("RESULT_PUSH_WORKERS", "2")

	cfg, err := LoadServer()
	if err != nil {
		t.Fatalf("LoadServer() error = %v", err)
	}
	if cfg.InitialBalanceCC != 2500 {
		t.Fatalf("InitialBalanceCC = %d, want 2500", cfg.InitialBalanceCC)
	}
	if cfg.DailySpinMaxCC != 600 {
		t.Fatalf("DailySpinMaxCC = %d, want 600", cfg.DailySpinMaxCC)
	}
	if !cfg.ResultPushEnabled {
		t.Fatal("ResultPushEnabled = false, want true")
	}
	if cfg.ResultPushWorkers != 2 {
		t.Fatalf("ResultPushWorkers = %d, want 2", cfg.ResultPushWorkers)
	}
}
