package config

import "github.com/caarlos0/env/v11"

type BotConfig struct {
	ServerURL string `env:"SERVER_URL" envDefault:"http://localhost:8080"`
	APIKey    string `env:"API_KEY" envDefault:""`
	Hands     int    `env:"HANDS" envDefault:"10"`
	BetCC     int64  `env:"BET_CC" envDefault:"10"`
}

func LoadBot() (BotConfig, error) {
	var cfg BotConfig
	err := env.Parse(&cfg)
	return cfg, err
}
