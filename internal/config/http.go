package config

import "time"

type HTTP struct {
	Timeout   time.Duration `env:"TIMEOUT,expand" envDefault:"10s"`
	RateLimit RateLimit     `envPrefix:"RATE_"`
}

// RateLimit throttles outgoing requests. A zero interval disables it.
type RateLimit struct {
	Interval time.Duration `env:"INTERVAL,expand" envDefault:"0s"`
	Burst    int           `env:"BURST,expand" envDefault:"1"`
}
