package config

import (
	"strings"
	"testing"
)

func validEnv(t *testing.T) {
	t.Helper()
	t.Setenv("MYSQL_HOST", "db.local")
	t.Setenv("MYSQL_PORT", "3307")
	t.Setenv("MYSQL_DB", "crm_test")
	t.Setenv("MYSQL_USER", "crm")
	t.Setenv("MYSQL_PASS", "pw")
	t.Setenv("JWT_SECRET", "s3cret")
}

func TestLoad_DefaultsAndOverrides(t *testing.T) {
	validEnv(t)
	t.Setenv("REDIS_DB", "3")
	t.Setenv("IDEMPOTENCY_TTL_SECONDS", "120")
	t.Setenv("DB_AUTO_MIGRATE", "false")
	t.Setenv("LOG_FORMAT", "Console")

	c := Load()
	if c.AppPort != "8080" {
		t.Fatalf("AppPort default = %q", c.AppPort)
	}
	if c.RedisDB != 3 || c.IdempTTLSecs != 120 {
		t.Fatalf("int overrides not applied: %+v", c)
	}
	if c.DBAutoMigrate {
		t.Fatalf("DB_AUTO_MIGRATE=false ignored")
	}
	if c.LogFormat != "console" {
		t.Fatalf("LogFormat = %q", c.LogFormat)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestLoad_BadNumbersFallBack(t *testing.T) {
	validEnv(t)
	t.Setenv("REDIS_DB", "two")
	t.Setenv("IDEMPOTENCY_TTL_SECONDS", "soon")

	c := Load()
	if c.RedisDB != 0 || c.IdempTTLSecs != 86400 {
		t.Fatalf("bad numbers should keep defaults: %+v", c)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"missing host", func(c *Config) { c.MySQLHost = "" }, "missing MySQL"},
		{"bad port", func(c *Config) { c.MySQLPort = "not-a-port" }, "invalid MYSQL_PORT"},
		{"missing jwt", func(c *Config) { c.JWTSecret = "" }, "JWT_SECRET"},
		{"zero ttl", func(c *Config) { c.IdempTTLSecs = 0 }, "IDEMPOTENCY_TTL_SECONDS"},
		{"bad format", func(c *Config) { c.LogFormat = "xml" }, "LOG_FORMAT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validEnv(t)
			c := Load()
			tt.mutate(c)
			err := c.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("err = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestMySQLDSN(t *testing.T) {
	validEnv(t)
	got := Load().MySQLDSN()
	want := "crm:pw@tcp(db.local:3307)/crm_test?parseTime=true&loc=UTC&charset=utf8mb4"
	if got != want {
		t.Fatalf("DSN = %q, want %q", got, want)
	}
}
