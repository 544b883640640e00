package config

import (
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"seoaudit/internal/log"
)

type Config struct {
	ListenAddr       string `mapstructure:"LISTEN_ADDR"`
	MetricsAddr      string `mapstructure:"METRICS_ADDR"`
	IsDev            string `mapstructure:"IS_DEV"`
	FetchTimeoutSec  int    `mapstructure:"FETCH_TIMEOUT_SEC"`
	ProbeTimeoutSec  int    `mapstructure:"PROBE_TIMEOUT_SEC"`
	LinkWorkers      int    `mapstructure:"LINK_WORKERS"`
	ImageWorkers     int    `mapstructure:"IMAGE_WORKERS"`
	ProbeCacheTTLMin int    `mapstructure:"PROBE_CACHE_TTL_MIN"`
	UserAgent        string `mapstructure:"USER_AGENT"`
}

var AppConfig *Config

func LoadEnv() {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		log.Logger.Info(".env file not found, using environment and defaults")
	}

	v.AutomaticEnv()

	v.SetDefault(LISTEN_ADDR, ":8080")
	v.SetDefault(METRICS_ADDR, ":8081")
	v.SetDefault(IS_DEV, "false")
	v.SetDefault(FETCH_TIMEOUT_SEC, 10)
	v.SetDefault(PROBE_TIMEOUT_SEC, 5)
	v.SetDefault(LINK_WORKERS, 20)
	v.SetDefault(IMAGE_WORKERS, 10)
	v.SetDefault(PROBE_CACHE_TTL_MIN, 10)
	v.SetDefault(USER_AGENT, "SEOAudit/1.0")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Logger.Fatal("Failed to unmarshal config", zap.Error(err))
	}

	AppConfig = &cfg
}
