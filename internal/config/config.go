package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/structmsg/internal/logging"
)

const (
	InputHex    = "hex"
	InputBase64 = "base64"
)

// DumpConfig drives the structdump inspector.
type DumpConfig struct {
	Input            string
	SkipUnregistered bool
	ShowBody         bool
	LogLevel         string
}

// dumpFile is the structdump config.toml key mapping.
type dumpFile struct {
	Input            string `toml:"input"`
	SkipUnregistered bool   `toml:"skip_unregistered"`
	ShowBody         bool   `toml:"show_body"`
	LogLevel         string `toml:"log_level"`
}

func DefaultDumpConfig() DumpConfig {
	return DumpConfig{
		Input:    InputHex,
		LogLevel: "info",
	}
}

// LoadDumpConfig overlays the keys defined in path onto the defaults.
func LoadDumpConfig(path string) (DumpConfig, error) {
	cfg := DefaultDumpConfig()

	var raw dumpFile
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return DumpConfig{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return DumpConfig{}, fmt.Errorf("config parse failed (%s): unknown key %q", path, undecoded[0].String())
	}

	if meta.IsDefined("input") {
		cfg.Input = strings.ToLower(strings.TrimSpace(raw.Input))
	}
	if meta.IsDefined("skip_unregistered") {
		cfg.SkipUnregistered = raw.SkipUnregistered
	}
	if meta.IsDefined("show_body") {
		cfg.ShowBody = raw.ShowBody
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}

	if err := ValidateDumpConfig(cfg); err != nil {
		return DumpConfig{}, err
	}
	return cfg, nil
}

func ValidateDumpConfig(cfg DumpConfig) error {
	switch cfg.Input {
	case InputHex, InputBase64:
	default:
		return fmt.Errorf("dump config: unsupported input %q (expected hex or base64)", cfg.Input)
	}
	if _, ok := logging.ParseLevel(cfg.LogLevel); !ok {
		return fmt.Errorf("dump config: unknown log_level %q", cfg.LogLevel)
	}
	return nil
}
