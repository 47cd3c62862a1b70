// Package config loads frame codec settings from YAML.
//
//	# rpcwire.yaml
//	compression: s2
//	max_payload_size: 1048576
//
//	cfg, err := config.LoadConfig("rpcwire.yaml")
//	...
//	codec, err := frame.NewCodec(cfg.Options()...)
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/rpcwire/errs"
	"github.com/arloliu/rpcwire/format"
	"github.com/arloliu/rpcwire/frame"
)

// Config holds the settings of a frame.Codec.
type Config struct {
	// Compression names the payload codec: none, zstd, s2 or lz4 (case-insensitive).
	Compression string `yaml:"compression"`
	// MaxPayloadSize is the largest on-wire payload in bytes.
	MaxPayloadSize uint32 `yaml:"max_payload_size"`
}

// DefaultConfig returns the settings used by frame.NewCodec without options.
func DefaultConfig() *Config {
	return &Config{
		Compression:    format.CompressionNone.String(),
		MaxPayloadSize: frame.DefaultMaxPayloadSize,
	}
}

// Parse decodes YAML data on top of DefaultConfig and validates the result.
// Keys missing from data keep their default values.
func Parse(data []byte) (*Config, error) {
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("%w: failed to parse config: %w", errs.ErrInvalidConfig, err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// LoadConfig reads and parses the YAML file at configPath.
func LoadConfig(configPath string) (*Config, error) {
	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// SaveConfig writes config to configPath as YAML.
func SaveConfig(config *Config, configPath string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate reports whether the settings can build a codec.
func (c *Config) Validate() error {
	if _, ok := format.ParseCompression(c.Compression); !ok {
		return fmt.Errorf("%w: unknown compression %q", errs.ErrInvalidConfig, c.Compression)
	}
	if c.MaxPayloadSize == 0 {
		return fmt.Errorf("%w: max_payload_size must be positive", errs.ErrInvalidConfig)
	}

	return nil
}

// Options converts the settings into frame codec options. Call Validate
// first; an unknown compression name falls back to none.
func (c *Config) Options() []frame.CodecOption {
	compression, _ := format.ParseCompression(c.Compression)

	return []frame.CodecOption{
		frame.WithCompression(compression),
		frame.WithMaxPayloadSize(c.MaxPayloadSize),
	}
}

// NewCodec validates the settings and builds a frame.Codec from them.
func (c *Config) NewCodec() (*frame.Codec, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return frame.NewCodec(c.Options()...)
}
