package config

type Logger struct {
	Level string `env:"LEVEL,expand" envDefault:"warn"`
}
