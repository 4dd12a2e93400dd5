package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvConfig holds QWER_* overrides. Nil pointers are unset variables.
type EnvConfig struct {
	Batch  *int    `env:"QWER_BATCH"`
	Diff   *string `env:"QWER_DIFF"`
	Length *int    `env:"QWER_LENGTH"`
	Name   *string `env:"QWER_NAME"`
	Vocab  *string `env:"QWER_VOCAB"`
	Home   string  `env:"QWER_HOME"`
	Debug  bool    `env:"QWER_DEBUG"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := env.Parse(&cfg); err != nil {
		return EnvConfig{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Merge layers environment values over file values.
func Merge(file GameConfig, envCfg EnvConfig) GameConfig {
	out := file
	if envCfg.Batch != nil {
		out.Batch = envCfg.Batch
	}
	if envCfg.Diff != nil {
		out.Diff = envCfg.Diff
	}
	if envCfg.Length != nil {
		out.Length = envCfg.Length
	}
	if envCfg.Name != nil {
		out.Name = envCfg.Name
	}
	if envCfg.Vocab != nil {
		out.Vocab = envCfg.Vocab
	}
	return out
}

// HistoryDir returns the QWER_HOME override or the default directory.
func (e EnvConfig) HistoryDir() (string, error) {
	if e.Home != "" {
		return e.Home, nil
	}
	dir, err := DefaultHistoryDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return dir, nil
}
