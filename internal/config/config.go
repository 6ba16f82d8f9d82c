package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App     App
	Log     Log
	Metrics Metrics
}

// App настройки интерактивной сессии. Значения по умолчанию дают
// поведение без какой-либо конфигурации.
type App struct {
	Name         string `env:"PASSCHECK_APP_NAME" envDefault:"passcheck" validate:"required"`
	Version      string `env:"PASSCHECK_APP_VERSION" envDefault:"dev"`
	ExitKeyword  string `env:"PASSCHECK_EXIT_KEYWORD" envDefault:"quit" validate:"required,alphanum"`
	OutputFormat string `env:"PASSCHECK_OUTPUT_FORMAT" envDefault:"text" validate:"oneof=text json"`
	NoColor      string `env:"NO_COLOR"`
}

// ColorDisabled любое непустое NO_COLOR отключает цвет (https://no-color.org).
func (a App) ColorDisabled() bool {
	return a.NoColor != ""
}

func Load() (Config, error) {
	_ = godotenv.Load()

	return Parse()
}

// Parse читает только переменные окружения, без .env.
func Parse() (Config, error) {
	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	if err := validator.New().Struct(config); err != nil {
		return Config{}, fmt.Errorf("validate: %w", err)
	}

	return config, nil
}
