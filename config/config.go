// Package config loads the qram CLI's TOML configuration file, in the
// struct-of-sections-plus-loader shape koria-core's config package uses,
// with github.com/BurntSushi/toml doing the parsing.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Codec holds the fountain-codec-facing defaults the CLI applies unless
// overridden by a flag.
type Codec struct {
	BlockSize uint32 `toml:"block_size"`
}

// Envelope toggles the two optional envelope wrappers: compression and
// the filename carrier.
type Envelope struct {
	Compress bool `toml:"compress"`
	Filename bool `toml:"filename"`
}

// Logging controls the build package's backend.
type Logging struct {
	Level string `toml:"level"`
}

// Config is the top-level shape of a qram.toml file.
type Config struct {
	Codec    Codec    `toml:"codec"`
	Envelope Envelope `toml:"envelope"`
	Logging  Logging  `toml:"logging"`
}

// Default returns the configuration the CLI uses when no file is
// supplied: a 512-byte block size, both envelopes enabled, info logging.
func Default() *Config {
	return &Config{
		Codec:    Codec{BlockSize: 512},
		Envelope: Envelope{Compress: true, Filename: true},
		Logging:  Logging{Level: "info"},
	}
}

// Load reads and parses the TOML file at path, layering it over Default
// so an omitted section falls back to its default rather than a zero
// value. A missing file is not an error: Load returns the defaults
// unchanged, since the CLI treats a config file as optional.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrapf(err, "reading config file %q", path)
	}

	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing config file %q", path)
	}

	return cfg, nil
}
