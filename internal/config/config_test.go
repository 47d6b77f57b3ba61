package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFileEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := LoadFile("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":9091" || cfg.Mode != "release" || cfg.ShutdownSeconds != 5 {
		t.Fatalf("defaults: %+v", cfg)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, "addr: \":8080\"\nmode: debug\n")
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Fatalf("addr: %q", cfg.Addr)
	}
	if cfg.Mode != "debug" {
		t.Fatalf("mode: %q", cfg.Mode)
	}
	// Не указанное в файле поле остаётся дефолтным.
	if cfg.ShutdownSeconds != 5 {
		t.Fatalf("shutdown: %d", cfg.ShutdownSeconds)
	}
}

func TestLoadFileRejectsBadMode(t *testing.T) {
	path := writeConfig(t, "mode: verbose\n")
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected error for invalid mode")
	}
}

func TestLoadFileMissingFile(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
