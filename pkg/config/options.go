package config

type Option interface {
	Apply(cfg *Config)
}

type Options []Option

func (options Options) ApplyOverrides(cfg Config) Config {
	for _, option := range options {
		option.Apply(&cfg)
	}
	return cfg
}

type OptionDisplay string

func (o OptionDisplay) Apply(cfg *Config) {
	cfg.Display = string(o)
}

type OptionFormat string

func (o OptionFormat) Apply(cfg *Config) {
	cfg.Format = string(o)
}

type OptionLineWidth uint

func (o OptionLineWidth) Apply(cfg *Config) {
	cfg.LineWidth = uint(o)
}

type OptionCursor string

func (o OptionCursor) Apply(cfg *Config) {
	cfg.Cursor = string(o)
}
