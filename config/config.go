package config

import (
	"io"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

type Config struct {
	LogLevel string        `mapstructure:"log_level"`
	Display  DisplayConfig `mapstructure:"display"`
}

type DisplayConfig struct {
	Format         string `mapstructure:"format"`
	MaxScriptChars int    `mapstructure:"max_script_chars"`
}

func ReadConfig(r io.Reader) (*Config, error) {
	decoder := toml.NewDecoder(r)
	decoder.SetTagName("mapstructure")
	config := &Config{}
	if err := decoder.Decode(config); err != nil {
		return nil, errors.Wrap(err, "error decoding config file")
	}
	return config, nil
}
