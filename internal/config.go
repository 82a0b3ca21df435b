package internal

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/tuannm99/novapool/internal/bufferpool"
	"github.com/tuannm99/novapool/internal/storage"
)

type NovaPoolConfig struct {
	AppName string `mapstructure:"app_name"`

	Storage struct {
		Workdir  string `mapstructure:"workdir"`
		PageSize int    `mapstructure:"page_size"`
	} `mapstructure:"storage"`

	Buffer struct {
		Capacity int    `mapstructure:"capacity"`
		Policy   string `mapstructure:"policy"` // "lru" or "clock"
	} `mapstructure:"buffer"`
}

func DefaultConfig() *NovaPoolConfig {
	cfg := &NovaPoolConfig{AppName: "novapool"}
	cfg.Storage.Workdir = "./data"
	cfg.Storage.PageSize = storage.DefaultPageSize
	cfg.Buffer.Capacity = bufferpool.DefaultCapacity
	cfg.Buffer.Policy = "lru"
	return cfg
}

func LoadConfig(path string) (*NovaPoolConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return cfg, nil
}
