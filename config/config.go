package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wfstdecode/decoder"
)

// Config mirrors spec section 6's configuration table. A zero value for
// any tuning field means "use the decoder's built-in default" — the same
// override-if-nonzero convention wingthing's config.Manager uses for its
// settings, carried over here since there is no distinct "unset" state in
// a decoded YAML document without reaching for pointers the rest of this
// package doesn't otherwise need.
type Config struct {
	FSTPath       string  `yaml:"fst_path"`
	AcousticScale float64 `yaml:"acoustic_scale"`
	Beam          float64 `yaml:"beam"`
	MaxActive     int     `yaml:"max_active"`
	MinActive     int     `yaml:"min_active"`
	BeamDelta     float64 `yaml:"beam_delta"`
	SOS           int32   `yaml:"sos"`
	EOS           int32   `yaml:"eos"`
	MaxSeqLen     int     `yaml:"max_seq_len"`
	LogLevel      string  `yaml:"log_level"`
	LogFile       string  `yaml:"log_file"`
}

// Load reads and parses a YAML config file from path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &cfg, nil
}

// Options translates the non-zero fields of cfg into decoder.Option
// values. Fields left at zero fall through to decoder.DefaultOptions.
func (cfg *Config) Options() []decoder.Option {
	var opts []decoder.Option

	if cfg.AcousticScale != 0 {
		opts = append(opts, decoder.WithAcousticScale(cfg.AcousticScale))
	}
	if cfg.Beam != 0 {
		opts = append(opts, decoder.WithBeam(cfg.Beam))
	}
	if cfg.MaxActive != 0 {
		opts = append(opts, decoder.WithMaxActive(cfg.MaxActive))
	}
	if cfg.MinActive != 0 {
		opts = append(opts, decoder.WithMinActive(cfg.MinActive))
	}
	if cfg.BeamDelta != 0 {
		opts = append(opts, decoder.WithBeamDelta(cfg.BeamDelta))
	}
	if cfg.SOS != 0 {
		opts = append(opts, decoder.WithSOS(cfg.SOS))
	}
	if cfg.EOS != 0 {
		opts = append(opts, decoder.WithEOS(cfg.EOS))
	}
	if cfg.MaxSeqLen != 0 {
		opts = append(opts, decoder.WithMaxSeqLen(cfg.MaxSeqLen))
	}

	return opts
}
