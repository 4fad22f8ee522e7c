package config_test

import (
	"testing"

	"github.com/shelfsync/shelfsync/internal/config"
)

func TestReady(t *testing.T) {
	cfg := &config.Config{}
	if cfg.Ready() {
		t.Error("empty config should not be ready")
	}
	cfg.API.BaseURL = "https://api.example.com/prod"
	cfg.Identity.Issuer = "https://auth.example.com"
	cfg.Identity.ClientID = "client-1"
	if !cfg.Ready() {
		t.Error("fully populated config should be ready")
	}
}

func TestExpandHome(t *testing.T) {
	if got := config.ExpandHome("/abs/path"); got != "/abs/path" {
		t.Errorf("ExpandHome(/abs/path) = %q", got)
	}
	if got := config.ExpandHome("~/state.yml"); got == "~/state.yml" {
		t.Error("leading ~/ should expand")
	}
}
