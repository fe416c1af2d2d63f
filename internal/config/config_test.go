package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != "5000" {
		t.Errorf("Expected default port 5000, got %s", cfg.Port)
	}
	if cfg.Host != "0.0.0.0" {
		t.Errorf("Expected default host 0.0.0.0, got %s", cfg.Host)
	}
	if cfg.Function.SourceEnv != "FUNCTION_CODE" {
		t.Errorf("Expected default source variable FUNCTION_CODE, got %s", cfg.Function.SourceEnv)
	}
	if cfg.Invoke.TimeoutSeconds != 0 {
		t.Errorf("Expected no invoke timeout by default, got %d", cfg.Invoke.TimeoutSeconds)
	}
}

func TestLoadFunctionSource(t *testing.T) {
	t.Setenv("FUNCTION_CODE", "def user_function():\n    return 1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Function.Source == "" {
		t.Error("Function source not read from FUNCTION_CODE")
	}
}

func TestLoadFunctionSourceFromAlternateVariable(t *testing.T) {
	t.Setenv("FUNCTION_CODE_ENV", "FUN_CODE")
	t.Setenv("FUN_CODE", "def user_function():\n    return 2")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Function.SourceEnv != "FUN_CODE" {
		t.Errorf("Expected source variable FUN_CODE, got %s", cfg.Function.SourceEnv)
	}
	if cfg.Function.Source != "def user_function():\n    return 2" {
		t.Errorf("Function source not read from FUN_CODE, got %q", cfg.Function.Source)
	}
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("TEST_STRING", "value")
	t.Setenv("TEST_INT", "42")
	t.Setenv("TEST_BOOL", "true")

	if got := GetEnv("TEST_STRING", "fallback"); got != "value" {
		t.Errorf("GetEnv: expected value, got %s", got)
	}
	if got := GetEnv("TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("GetEnv fallback: expected fallback, got %s", got)
	}
	if got := GetEnvAsInt("TEST_INT", 0); got != 42 {
		t.Errorf("GetEnvAsInt: expected 42, got %d", got)
	}
	if got := GetEnvAsInt("TEST_MISSING", 7); got != 7 {
		t.Errorf("GetEnvAsInt fallback: expected 7, got %d", got)
	}
	if got := GetEnvAsBool("TEST_BOOL", false); !got {
		t.Error("GetEnvAsBool: expected true")
	}
}
