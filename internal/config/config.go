package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config параметры запуска панели
type Config struct {
	Addr            string `yaml:"addr"`
	Mode            string `yaml:"mode"` // debug или release
	ShutdownSeconds int    `yaml:"shutdown_seconds"`
}

// New конфигурация по умолчанию
func New() *Config {
	return &Config{
		Addr:            ":9091",
		Mode:            "release",
		ShutdownSeconds: 5,
	}
}

// LoadFile читает yaml-файл и накладывает его поверх значений по умолчанию.
// Пустой путь возвращает дефолты без ошибки.
func LoadFile(path string) (*Config, error) {
	cfg := New()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr is required")
	}
	if c.Mode != "debug" && c.Mode != "release" {
		return fmt.Errorf("mode must be debug or release, got %q", c.Mode)
	}
	if c.ShutdownSeconds <= 0 {
		return fmt.Errorf("shutdown_seconds must be positive")
	}
	return nil
}
