package config

import "github.com/caarlos0/env/v11"

type ServerConfig struct {
	PostgresDSN string `env:"POSTGRES_DSN,required,notEmpty"`
	HTTPAddr    string `env:"HTTP_ADDR" envDefault:":8080"`

	AdminAPIKey string `env:"ADMIN_API_KEY"`

	InitialBalanceCC int64 `env:"INITIAL_BALANCE_CC" envDefault:"500"`

	DailySpinMinCC        int64 `env:"DAILY_SPIN_MIN_CC" envDefault:"100"`
	DailySpinMaxCC        int64 `env:"DAILY_SPIN_MAX_CC" envDefault:"1000"`
	DailySpinCooldownMins int   `env:"DAILY_SPIN_COOLDOWN_MINUTES" envDefault:"1440"`

	SeedPlayerName string `env:"SEED_PLAYER_NAME"`
	SeedPlayerKey  string `env:"SEED_PLAYER_KEY"`

	ResultPushEnabled     bool   `env:"RESULT_PUSH_ENABLED" envDefault:"false"`
	ResultPushConfigPath  string `env:"RESULT_PUSH_CONFIG_PATH"`
	ResultPushConfigJSON  string `env:"RESULT_PUSH_CONFIG_JSON"`
	ResultPushWorkers     int    `env:"RESULT_PUSH_WORKERS" envDefault:"4"`
	ResultPushRetryMax    int    `env:"RESULT_PUSH_RETRY_MAX" envDefault:"3"`
	ResultPushRetryBaseMS int    `env:"RESULT_PUSH_RETRY_BASE_MS" envDefault:"500"`
}

func LoadServer() (ServerConfig, error) {
	var cfg ServerConfig
	err := env.Parse(&cfg)
	return cfg, err
}
