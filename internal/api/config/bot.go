package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// BotConfig 压测机器人配置
type BotConfig struct {
	BaseURL         string        `mapstructure:"base_url"`
	NumberOfUsers   int           `mapstructure:"number_of_users"`
	MaxPostsPerUser int           `mapstructure:"max_posts_per_user"`
	MaxLikesPerUser int           `mapstructure:"max_likes_per_user"`
	Concurrency     int           `mapstructure:"concurrency"`
	Timeout         time.Duration `mapstructure:"timeout"`
}

// LoadBot 读取 bot.yaml，环境变量 SN_BOT_* 覆盖文件中的值
func LoadBot(paths ...string) (*BotConfig, error) {
	v := viper.New()
	v.SetConfigName("bot")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix("SN_BOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("base_url", "http://127.0.0.1:8080/api")
	v.SetDefault("number_of_users", 10)
	v.SetDefault("max_posts_per_user", 5)
	v.SetDefault("max_likes_per_user", 10)
	v.SetDefault("concurrency", 8)
	v.SetDefault("timeout", 10*time.Second)

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read bot config: %w", err)
		}
	}

	var cfg BotConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal bot config: %w", err)
	}
	if cfg.NumberOfUsers < 1 || cfg.MaxPostsPerUser < 1 || cfg.MaxLikesPerUser < 1 {
		return nil, errors.New("number_of_users, max_posts_per_user and max_likes_per_user must be positive")
	}
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	return &cfg, nil
}
