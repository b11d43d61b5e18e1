package config

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/xaionaro-go/xrectsel/pkg/rectsel"
	"github.com/xaionaro-go/xrectsel/pkg/regionformat"
)

const DefaultPath = "~/.xrectsel.yaml"

type Config struct {
	Display   string `yaml:"display,omitempty"`
	Format    string `yaml:"format"`
	LineWidth uint   `yaml:"line_width"`
	Cursor    string `yaml:"cursor"`
}

func DefaultConfig() Config {
	return Config{
		Format:    regionformat.DefaultTemplate,
		LineWidth: 1,
		Cursor:    rectsel.CursorStyleCrosshair.String(),
	}
}

func (cfg Config) CursorStyle() (rectsel.CursorStyle, error) {
	style, ok := rectsel.ParseCursorStyle(cfg.Cursor)
	if !ok {
		return rectsel.UndefinedCursorStyle, fmt.Errorf("unknown cursor style '%s'", cfg.Cursor)
	}
	return style, nil
}

func (cfg Config) SelectorOptions() (rectsel.Options, error) {
	style, err := cfg.CursorStyle()
	if err != nil {
		return nil, err
	}
	return rectsel.Options{
		rectsel.OptionLineWidth(cfg.LineWidth),
		rectsel.OptionCursorStyle(style),
	}, nil
}

func ReadConfigFromPath(
	cfgPath string,
	cfg *Config,
) error {
	b, err := os.ReadFile(cfgPath)
	if err != nil {
		return fmt.Errorf("unable to read file '%s': %w", cfgPath, err)
	}

	if _, err := cfg.Read(b); err != nil {
		return fmt.Errorf("unable to unserialize config '%s': %w", cfgPath, err)
	}
	return nil
}

// ReadOrDefault returns the default config overlaid with the file at
// cfgPath. A missing file is not an error.
func ReadOrDefault(
	ctx context.Context,
	cfgPath string,
) (Config, error) {
	cfg := DefaultConfig()
	err := ReadConfigFromPath(cfgPath, &cfg)
	switch {
	case err == nil:
		logger.Debugf(ctx, "read config from '%s': %#+v", cfgPath, cfg)
		return cfg, nil
	case errors.Is(err, os.ErrNotExist):
		logger.Debugf(ctx, "config '%s' does not exist, using the defaults", cfgPath)
		return DefaultConfig(), nil
	default:
		return Config{}, err
	}
}

func WriteConfigToPath(
	ctx context.Context,
	cfgPath string,
	cfg Config,
) error {
	pathNew := cfgPath + ".new"
	f, err := os.OpenFile(pathNew, os.O_WRONLY|os.O_TRUNC|os.O_CREATE, 0640)
	if err != nil {
		return fmt.Errorf("unable to open the data file '%s': %w", pathNew, err)
	}
	_, err = cfg.WriteTo(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("unable to write data to file '%s': %w", pathNew, err)
	}
	err = os.Rename(pathNew, cfgPath)
	if err != nil {
		return fmt.Errorf("cannot move '%s' to '%s': %w", pathNew, cfgPath, err)
	}
	logger.Infof(ctx, "wrote to '%s' config %#+v", cfgPath, cfg)
	return nil
}
