package config

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"warn" validate:"oneof=debug info warn error DEBUG INFO WARN ERROR"`
	Format string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
}
