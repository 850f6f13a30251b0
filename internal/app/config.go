package app

import (
	"fmt"
	"os"
	"strconv"
)

const (
	EnvOutDir      = "CORDSHOT_ICON_OUT"
	EnvDebug       = "CORDSHOT_ICON_DEBUG"
	EnvStdioLog    = "CORDSHOT_ICON_STDIO_LOG"
	EnvPreview     = "CORDSHOT_ICON_PREVIEW"
	EnvFramebuffer = "CORDSHOT_ICON_FB"
)

// Config contains settings for one generator run. Flags override the
// environment; the zero value writes the default sizes into the working
// directory.
type Config struct {
	OutDir      string
	Debug       bool
	StdioLog    string
	Preview     string
	Framebuffer string
	Sizes       []int
}

func DefaultConfigFromEnv() (Config, error) {
	cfg := Config{
		OutDir:      os.Getenv(EnvOutDir),
		StdioLog:    os.Getenv(EnvStdioLog),
		Preview:     os.Getenv(EnvPreview),
		Framebuffer: os.Getenv(EnvFramebuffer),
	}
	if cfg.OutDir == "" {
		cfg.OutDir = "."
	}

	if raw := os.Getenv(EnvDebug); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%s must be a boolean (got %q): %w", EnvDebug, raw, err)
		}
		cfg.Debug = parsed
	}

	return cfg, nil
}
