package config

import (
	"strings"
	"testing"
)

func TestLoadFromDefaults(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{"VIGENERE_KEY": "lemon"})
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Cipher.Key != "lemon" {
		t.Errorf("Key: got %q, want %q", cfg.Cipher.Key, "lemon")
	}
	if cfg.Cipher.Mode != ModeEncrypt {
		t.Errorf("Mode: got %q, want %q", cfg.Cipher.Mode, ModeEncrypt)
	}
	if cfg.Logger.Level != "info" {
		t.Errorf("Logger.Level: got %q, want %q", cfg.Logger.Level, "info")
	}
	if cfg.Logger.Encoding != "console" {
		t.Errorf("Logger.Encoding: got %q, want %q", cfg.Logger.Encoding, "console")
	}
}

func TestLoadFromOverrides(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"VIGENERE_KEY":          "KEY",
		"VIGENERE_MODE":         "decrypt",
		"VIGENERE_LOG_LEVEL":    "debug",
		"VIGENERE_LOG_ENCODING": "json",
	})
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Cipher.Mode != ModeDecrypt {
		t.Errorf("Mode: got %q, want %q", cfg.Cipher.Mode, ModeDecrypt)
	}
	if cfg.Logger.Level != "debug" || cfg.Logger.Encoding != "json" {
		t.Errorf("Logger: got %+v", cfg.Logger)
	}
}

func TestLoadFromMissingKey(t *testing.T) {
	_, err := LoadFrom(map[string]string{})
	if err == nil {
		t.Fatal("expected error for missing VIGENERE_KEY")
	}
	if !strings.Contains(err.Error(), "VIGENERE_KEY") {
		t.Errorf("error %q does not name VIGENERE_KEY", err)
	}
}

func TestLoadFromEmptyKey(t *testing.T) {
	_, err := LoadFrom(map[string]string{"VIGENERE_KEY": ""})
	if err == nil {
		t.Error("expected error for empty VIGENERE_KEY")
	}
}

func TestLoadFromInvalidMode(t *testing.T) {
	_, err := LoadFrom(map[string]string{
		"VIGENERE_KEY":  "KEY",
		"VIGENERE_MODE": "rot13",
	})
	if err == nil {
		t.Error("expected error for invalid VIGENERE_MODE")
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("VIGENERE_KEY", "secret")
	t.Setenv("VIGENERE_MODE", "decrypt")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Cipher.Key != "secret" || cfg.Cipher.Mode != ModeDecrypt {
		t.Errorf("Cipher: got %+v", cfg.Cipher)
	}
}
