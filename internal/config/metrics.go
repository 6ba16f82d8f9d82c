package config

// Metrics сервер /metrics поднимается только если задан адрес.
type Metrics struct {
	ListenAddress string `env:"METRICS_LISTEN_ADDRESS" validate:"omitempty,hostname_port"`
}

func (m Metrics) Enabled() bool {
	return m.ListenAddress != ""
}
