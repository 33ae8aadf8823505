package config

import (
	"reflect"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoadConfigDefaults(t *testing.T) {
	viper.Reset()
	t.Setenv("ENV", "development")
	t.Setenv("JWT_SECRET", "")

	LoadConfig()

	if AppConfig.AppPort != "8080" {
		t.Errorf("expected default port 8080, got %q", AppConfig.AppPort)
	}
	if AppConfig.TokenTTL != time.Hour {
		t.Errorf("expected default token ttl 1h, got %v", AppConfig.TokenTTL)
	}
	if AppConfig.AuthCookieName != "auth_token" {
		t.Errorf("expected auth_token cookie, got %q", AppConfig.AuthCookieName)
	}
	if AppConfig.DatabaseName != "college_appointments" {
		t.Errorf("unexpected database name %q", AppConfig.DatabaseName)
	}
	if AppConfig.JWTSecret == "" {
		t.Error("expected a development secret to be filled in")
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	viper.Reset()
	t.Setenv("APP_PORT", "9090")
	t.Setenv("TOKEN_TTL", "30m")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DATABASE_DRIVER", "memory")

	LoadConfig()

	if AppConfig.AppPort != "9090" {
		t.Errorf("expected port 9090, got %q", AppConfig.AppPort)
	}
	if AppConfig.TokenTTL != 30*time.Minute {
		t.Errorf("expected 30m ttl, got %v", AppConfig.TokenTTL)
	}
	if AppConfig.JWTSecret != "s3cret" {
		t.Errorf("expected secret from env, got %q", AppConfig.JWTSecret)
	}
	if AppConfig.DatabaseDriver != "memory" {
		t.Errorf("expected memory driver, got %q", AppConfig.DatabaseDriver)
	}
}

func TestAllowedOrigins(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{"*"}},
		{"*", []string{"*"}},
		{"https://a.edu, https://b.edu", []string{"https://a.edu", "https://b.edu"}},
		{" , ", []string{"*"}},
	}
	for _, tt := range tests {
		AppConfig.CORSAllowedOrigins = tt.in
		if got := AllowedOrigins(); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("AllowedOrigins(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
