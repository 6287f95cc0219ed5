package config

import (
	"testing"
	"time"
)

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("JWT_ACCESS_EXPIRY", "30m")
	t.Setenv("SCHEDULER_HORIZON_DAYS", "28")
	t.Setenv("LOCK_WAIT", "not-a-duration")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.App.Port != "9090" {
		t.Errorf("App.Port = %q, want 9090", cfg.App.Port)
	}
	if cfg.DB.Host != "db.internal" {
		t.Errorf("DB.Host = %q, want db.internal", cfg.DB.Host)
	}
	if cfg.JWT.AccessExpiry != 30*time.Minute {
		t.Errorf("JWT.AccessExpiry = %v, want 30m", cfg.JWT.AccessExpiry)
	}
	if cfg.Scheduler.HorizonDays != 28 {
		t.Errorf("Scheduler.HorizonDays = %d, want 28", cfg.Scheduler.HorizonDays)
	}
	if cfg.Lock.Wait != 5*time.Second {
		t.Errorf("Lock.Wait = %v, want fallback 5s", cfg.Lock.Wait)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Scheduler.Cron != "0 2 * * *" {
		t.Errorf("Scheduler.Cron = %q", cfg.Scheduler.Cron)
	}
	if cfg.Scheduler.Concurrency != 4 {
		t.Errorf("Scheduler.Concurrency = %d, want 4", cfg.Scheduler.Concurrency)
	}
	if cfg.RabbitMQ.URL != "" {
		t.Errorf("RabbitMQ.URL = %q, want empty", cfg.RabbitMQ.URL)
	}
	if cfg.IsProduction() {
		t.Error("default environment should not be production")
	}
}
