// Package config layers textstat settings: defaults, an optional YAML config
// file, TEXTSTAT_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/chriscorrea/textstat/internal/report"
	"github.com/chriscorrea/textstat/internal/segment"
)

// configName is the config file name without extension.
const configName = ".textstat"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix for textstat settings.
const envPrefix = "TEXTSTAT"

// Defaults.
const (
	DefaultFormat    = "text"
	DefaultSegmenter = "uax29"
	DefaultHTML      = "auto"
)

// HTML handling modes.
const (
	HTMLAuto = "auto" // extract main content when the input looks like HTML
	HTMLMain = "main" // always extract main content
	HTMLAll  = "all"  // always keep the whole body text
	HTMLOff  = "off"  // never treat the input as HTML
)

// Validation errors.
var (
	ErrInvalidFormat    = errors.New("format must be one of text, markdown, json, yaml")
	ErrInvalidSegmenter = errors.New("segmenter must be uax29 or prose")
	ErrInvalidHTML      = errors.New("html must be one of auto, main, all, off")
)

// Settings are the options that do not come from positional arguments.
// Field tags use mapstructure for viper unmarshalling.
type Settings struct {
	Format    string `mapstructure:"format"`
	Segmenter string `mapstructure:"segmenter"`
	Selector  string `mapstructure:"selector"`
	HTML      string `mapstructure:"html"`
	Quiet     bool   `mapstructure:"quiet"`
	Debug     bool   `mapstructure:"debug"`
}

// RegisterFlags defines the flags Load understands on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP("format", "f", DefaultFormat, "report format: text, markdown, json or yaml")
	fs.String("segmenter", DefaultSegmenter, "sentence segmenter: uax29 (any language) or prose (English)")
	fs.StringP("selector", "s", "", "CSS selector restricting which part of an HTML input is analyzed")
	fs.String("html", DefaultHTML, "HTML handling: auto, main, all or off")
	fs.String("config", "", "config file (default is ./.textstat.yaml or ~/.textstat.yaml)")
	fs.BoolP("quiet", "q", false, "suppress the progress spinner")
	fs.BoolP("debug", "D", false, "enable debug logging")
}

// Load resolves settings. If configPath is non-empty it must exist; otherwise
// .textstat.yaml is searched in the working directory and $HOME, and a missing
// file is not an error. flags may be nil.
func Load(configPath string, flags *pflag.FlagSet) (*Settings, error) {
	v := viper.New()

	applyDefaults(v)

	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	s.normalize()
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &s, nil
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("format", DefaultFormat)
	v.SetDefault("segmenter", DefaultSegmenter)
	v.SetDefault("selector", "")
	v.SetDefault("html", DefaultHTML)
	v.SetDefault("quiet", false)
	v.SetDefault("debug", false)
}

func (s *Settings) normalize() {
	s.Format = strings.ToLower(strings.TrimSpace(s.Format))
	s.Segmenter = strings.ToLower(strings.TrimSpace(s.Segmenter))
	s.HTML = strings.ToLower(strings.TrimSpace(s.HTML))
	s.Selector = strings.TrimSpace(s.Selector)
}

// Validate checks enumerated settings.
func (s *Settings) Validate() error {
	if _, err := report.ParseFormat(s.Format); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	if _, err := segment.ParseKind(s.Segmenter); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSegmenter, err)
	}

	switch s.HTML {
	case HTMLAuto, HTMLMain, HTMLAll, HTMLOff:
	default:
		return fmt.Errorf("%w, got %q", ErrInvalidHTML, s.HTML)
	}

	return nil
}
