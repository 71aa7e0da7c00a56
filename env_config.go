package ygggo_building

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every configuration variable, e.g. YGGGO_BUILDING_HOST.
const EnvPrefix = "YGGGO_BUILDING_"

// applyEnv overlays set environment variables onto cfg; unset variables keep cfg's values.
func applyEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return newError(ErrConfiguration, "parse env", err)
	}
	return nil
}

// LoadEnvFiles loads .env style files into the process environment without overriding
// variables that are already set. Missing files are skipped. With no names, ".env" is tried.
func LoadEnvFiles(names ...string) error {
	if len(names) == 0 {
		names = []string{".env"}
	}
	for _, name := range names {
		if err := godotenv.Load(name); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return newError(ErrConfiguration, "load env file", err)
		}
	}
	return nil
}

// ConfigFromEnv starts from DefaultConfig, loads the given env files and applies
// YGGGO_BUILDING_* variables on top.
func ConfigFromEnv(files ...string) (Config, error) {
	if err := LoadEnvFiles(files...); err != nil {
		return Config{}, err
	}
	cfg := DefaultConfig()
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
