// Package config loads layout constants from a TOML file.
//
// Every key is optional; missing keys keep the values of
// [render.DefaultConfig]:
//
//	key_width  = 80
//	key_height = 80
//	margin     = 20
//	font_size  = 24.0
//	font       = "arial.ttf"
//	line_width = 2.0
//
// Unknown keys are rejected so that typos do not silently fall back to
// defaults.
package config

import (
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/keygrid/pkg/errors"
	"github.com/matzehuels/keygrid/pkg/render"
)

type file struct {
	KeyWidth  *int     `toml:"key_width"`
	KeyHeight *int     `toml:"key_height"`
	Margin    *int     `toml:"margin"`
	FontSize  *float64 `toml:"font_size"`
	Font      *string  `toml:"font"`
	LineWidth *float64 `toml:"line_width"`
}

// Parse decodes TOML data over the defaults and validates the result.
func Parse(data []byte) (render.Config, error) {
	cfg := render.DefaultConfig()

	var f file
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return cfg, errors.New(errors.ErrCodeInvalidConfig, "unknown config keys: %s", strings.Join(keys, ", "))
	}

	if f.KeyWidth != nil {
		cfg.KeyWidth = *f.KeyWidth
	}
	if f.KeyHeight != nil {
		cfg.KeyHeight = *f.KeyHeight
	}
	if f.Margin != nil {
		cfg.Margin = *f.Margin
	}
	if f.FontSize != nil {
		cfg.FontSize = *f.FontSize
	}
	if f.Font != nil {
		cfg.FontName = *f.Font
	}
	if f.LineWidth != nil {
		cfg.LineWidth = *f.LineWidth
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Load reads the config file at path. An empty path returns the defaults.
func Load(path string) (render.Config, error) {
	if path == "" {
		return render.DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return render.DefaultConfig(), errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	return Parse(data)
}
