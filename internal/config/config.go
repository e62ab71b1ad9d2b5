package config

import (
	"os"
	"strings"

	"github.com/denismitr/intset/internal/laws"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const EnvPrefix = "INTSET"

var envKeyReplacer = strings.NewReplacer(".", "_")

type LawsConfig struct {
	Trials         int      `mapstructure:"trials"`
	Concurrency    int      `mapstructure:"concurrency"`
	Seed           int64    `mapstructure:"seed"`
	MaxSize        int      `mapstructure:"max_size"`
	MaxValue       int      `mapstructure:"max_value"`
	ErrorThreshold int      `mapstructure:"error_threshold"`
	Only           []string `mapstructure:"only"`
}

type OutputConfig struct {
	Color bool `mapstructure:"color"`
}

type Config struct {
	Debug  bool         `mapstructure:"debug"`
	Laws   LawsConfig   `mapstructure:"laws"`
	Output OutputConfig `mapstructure:"output"`
}

// LawsCheck converts the laws section into a checker config.
func (c *Config) LawsCheck() laws.Config {
	return laws.Config{
		Trials:         c.Laws.Trials,
		Concurrency:    c.Laws.Concurrency,
		Seed:           c.Laws.Seed,
		MaxSize:        c.Laws.MaxSize,
		MaxValue:       c.Laws.MaxValue,
		ErrorThreshold: c.Laws.ErrorThreshold,
		Laws:           c.Laws.Only,
	}
}

// New returns a viper instance carrying defaults and environment bindings.
// Flags are bound on top of it by the command line layer.
func New() *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(envKeyReplacer)
	v.AutomaticEnv()

	return v
}

// Load reads an optional config file into v and decodes the result. An
// empty path looks for .intset.yaml in the home and working directories.
func Load(v *viper.Viper, configPath string) (*Config, error) {
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigName(".intset")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "could not read config")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "could not decode config")
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := laws.DefaultConfig()

	v.SetDefault("debug", false)
	v.SetDefault("laws.trials", d.Trials)
	v.SetDefault("laws.concurrency", d.Concurrency)
	v.SetDefault("laws.seed", d.Seed)
	v.SetDefault("laws.max_size", d.MaxSize)
	v.SetDefault("laws.max_value", d.MaxValue)
	v.SetDefault("laws.error_threshold", d.ErrorThreshold)
	v.SetDefault("laws.only", []string{})
	v.SetDefault("output.color", true)
}
