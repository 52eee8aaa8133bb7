package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

const Prefix = "RFC_LOOKUP_"

type Config struct {
	Logger Logger `envPrefix:"LOGGER_"`
	HTTP   HTTP   `envPrefix:"HTTP_"`
}

func Parse() (*Config, error) {
	return ParseWithEnvironment(nil)
}

// ParseWithEnvironment reads the configuration from the given variables
// instead of the process environment when environment is not nil.
func ParseWithEnvironment(environment map[string]string) (*Config, error) {
	conf, err := env.ParseAsWithOptions[Config](env.Options{
		Prefix:      Prefix,
		Environment: environment,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &conf, nil
}
