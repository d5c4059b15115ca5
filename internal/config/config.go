/*
Package config contains the huffstat configuration file format and loader.
*/
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Supported values of Config.Encoding.
const (
	EncodingBytes  = "bytes"
	EncodingLatin1 = "latin1"
	EncodingCP1252 = "cp1252"
	EncodingUTF8   = "utf8"
)

const (
	// DefaultTopSymbols is the number of most frequent symbols reported.
	DefaultTopSymbols = 20
	// DefaultFixedWidth is the baseline width of an uncompressed symbol.
	DefaultFixedWidth = 8
)

// Config is the top level huffstat configuration.
type Config struct {
	// TopSymbols limits the frequency and code tables to the N most
	// frequent symbols.  Zero lists every symbol.
	TopSymbols int `yaml:"TopSymbols"`
	// FixedWidth is the number of bits per uncompressed symbol.
	FixedWidth uint `yaml:"FixedWidth"`
	// Encoding selects how the source is split into symbols.
	Encoding string `yaml:"Encoding"`
	// Canonical reports canonical codes instead of tree-walk codes.
	Canonical bool   `yaml:"Canonical"`
	LogLevel  string `yaml:"LogLevel"`
	LogPath   string `yaml:"LogPath"`
}

var errUnknownEncoding = errors.New("unknown encoding")

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		TopSymbols: DefaultTopSymbols,
		FixedWidth: DefaultFixedWidth,
		Encoding:   EncodingBytes,
		LogLevel:   "info",
	}
}

// LoadFile loads the configuration from the given YAML file.  Keys missing
// from the file keep their default values.
func LoadFile(configPath string) (Config, error) {
	configData, err := os.ReadFile(configPath)
	if err != nil {
		return Config{}, fmt.Errorf("unable to read config: %w", err)
	}
	cfg, err := Decode(bytes.NewReader(configData))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", configPath, err)
	}
	return cfg, nil
}

// Decode reads a YAML configuration from r on top of the defaults and
// validates it.  Unknown keys are an error.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	err := decoder.Decode(&cfg)
	if err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to unmarshal config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for consistency.
func (c Config) Validate() error {
	if c.TopSymbols < 0 {
		return fmt.Errorf("TopSymbols must not be negative, got %d", c.TopSymbols)
	}
	switch c.Encoding {
	case EncodingBytes, EncodingLatin1, EncodingCP1252, EncodingUTF8:
	default:
		return fmt.Errorf("%w: %q (want one of %s, %s, %s, %s)", errUnknownEncoding, c.Encoding,
			EncodingBytes, EncodingLatin1, EncodingCP1252, EncodingUTF8)
	}
	return nil
}
