// Purpose: Load tool configuration from file, .env and environment.
// Exports: Config, LoadConfig, DefaultConfigFile.
// Role: Single source for palette, strictness and service settings.
// Invariants: Missing files are not errors; flags override loaded values.
// Notes: Environment overrides use the TMPFMT_ prefix (TMPFMT_SERVE_ADDR).
package app

import (
	"fmt"
	"os"
	"time"

	"github.com/jinzhu/configor"
	"github.com/joho/godotenv"
	"github.com/sandover/tmpfmt"
	"github.com/sandover/tmpfmt/internal/compose"
)

const (
	DefaultConfigFile = ".tmpfmt.yml"
	envFile           = ".env"
	envPrefix         = "TMPFMT"
)

type Config struct {
	Strict  bool              `yaml:"strict"`
	Palette map[string]string `yaml:"palette"`

	Markdown struct {
		CodeFont     string `yaml:"code_font" default:"LiberationMono SDF"`
		HeadingSizes []int  `yaml:"heading_sizes"`
		Bullet       string `yaml:"bullet"`
	} `yaml:"markdown"`

	Serve struct {
		Addr        string        `yaml:"addr" default:"localhost:8088"`
		ReadTimeout time.Duration `yaml:"read_timeout" default:"10s"`
		BodyLimit   int           `yaml:"body_limit" default:"1048576"`
	} `yaml:"serve"`

	Watch struct {
		Debounce time.Duration `yaml:"debounce" default:"200ms"`
	} `yaml:"watch"`
}

// LoadConfig reads .env (when present) and the config file named by
// opts.ConfigPath, or DefaultConfigFile when that exists.
func LoadConfig(opts GlobalOptions) (Config, error) {
	var cfg Config

	if fileExists(envFile) {
		if err := godotenv.Load(envFile); err != nil {
			return cfg, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var files []string
	switch {
	case opts.ConfigPath != "":
		if !fileExists(opts.ConfigPath) {
			return cfg, fmt.Errorf("config %s: %w", opts.ConfigPath, os.ErrNotExist)
		}
		files = append(files, opts.ConfigPath)
	case fileExists(DefaultConfigFile):
		files = append(files, DefaultConfigFile)
	}

	loader := configor.New(&configor.Config{ENVPrefix: envPrefix, Silent: true})
	if err := loader.Load(&cfg, files...); err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}

	if opts.Strict {
		cfg.Strict = true
	}
	return cfg, nil
}

func (c Config) palette() tmpfmt.Palette {
	return tmpfmt.DefaultPalette().Merge(c.Palette)
}

func (c Config) renderOptions() compose.RenderOptions {
	return compose.RenderOptions{Palette: c.palette(), Strict: c.Strict}
}

func (c Config) markdownOptions() compose.MarkdownOptions {
	opts := compose.DefaultMarkdownOptions()
	opts.CodeFont = c.Markdown.CodeFont
	if len(c.Markdown.HeadingSizes) > 0 {
		opts.HeadingSizes = c.Markdown.HeadingSizes
	}
	if c.Markdown.Bullet != "" {
		opts.Bullet = c.Markdown.Bullet
	}
	return opts
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
