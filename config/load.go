package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type fileConfig struct {
	Host                      string `toml:"host"`
	Port                      int    `toml:"port"`
	ReadBufferSize            int    `toml:"read_buffer_size"`
	ReadTimeout               string `toml:"read_timeout"`
	AcceptLoopInterruptPeriod string `toml:"accept_loop_interrupt_period"`
	RequestLineSize           int    `toml:"request_line_size"`
	MaxRequestLineSize        int    `toml:"max_request_line_size"`
}

// Load reads a TOML file and overlays the values it defines on top of the Default().
func Load(path string) (*Config, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	return apply(Default(), raw, meta)
}

// Decode is the same as Load, but reads the TOML document from a string.
func Decode(data string) (*Config, error) {
	var raw fileConfig
	meta, err := toml.Decode(data, &raw)
	if err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	return apply(Default(), raw, meta)
}

func apply(cfg *Config, raw fileConfig, meta toml.MetaData) (*Config, error) {
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown config key: %s", undecoded[0])
	}

	if meta.IsDefined("host") {
		cfg.NET.Host = strings.TrimSpace(raw.Host)
	}

	if meta.IsDefined("port") {
		if raw.Port <= 0 || raw.Port > 65535 {
			return nil, fmt.Errorf("invalid port: %d", raw.Port)
		}

		cfg.NET.Port = uint16(raw.Port)
	}

	if meta.IsDefined("read_buffer_size") {
		if raw.ReadBufferSize <= 0 {
			return nil, fmt.Errorf("invalid read_buffer_size: %d", raw.ReadBufferSize)
		}

		cfg.NET.ReadBufferSize = raw.ReadBufferSize
	}

	if meta.IsDefined("read_timeout") {
		d, err := parseDuration(raw.ReadTimeout)
		if err != nil {
			return nil, fmt.Errorf("parse read_timeout: %w", err)
		}

		cfg.NET.ReadTimeout = d
	}

	if meta.IsDefined("accept_loop_interrupt_period") {
		d, err := parseDuration(raw.AcceptLoopInterruptPeriod)
		if err != nil {
			return nil, fmt.Errorf("parse accept_loop_interrupt_period: %w", err)
		}

		cfg.NET.AcceptLoopInterruptPeriod = d
	}

	if meta.IsDefined("request_line_size") {
		cfg.URI.RequestLineSize.Default = raw.RequestLineSize
	}

	if meta.IsDefined("max_request_line_size") {
		cfg.URI.RequestLineSize.Maximal = raw.MaxRequestLineSize
	}

	if cfg.URI.RequestLineSize.Default <= 0 || cfg.URI.RequestLineSize.Maximal < cfg.URI.RequestLineSize.Default {
		return nil, fmt.Errorf(
			"invalid request line size: default %d, maximal %d",
			cfg.URI.RequestLineSize.Default, cfg.URI.RequestLineSize.Maximal,
		)
	}

	return cfg, nil
}

func parseDuration(str string) (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(str))
	if err != nil {
		return 0, err
	}

	if d <= 0 {
		return 0, fmt.Errorf("must be positive, got %s", d)
	}

	return d, nil
}
