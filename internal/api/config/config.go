package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Cfg 全局可访问的配置实例
var Cfg *Config

// LoadConfig 从文件加载配置并填充到 Cfg
func LoadConfig() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")

	viper.SetDefault("server.port", 5000)
	viper.SetDefault("xiaohongshu.title_max_length", 20)
	viper.SetDefault("xiaohongshu.timeout_seconds", 300)
	viper.SetDefault("wechat.title_max_length", 64)
	viper.SetDefault("data.dir", "./data")
	viper.SetDefault("data.content_dir", "./content")
	viper.SetDefault("schedule.morning", "0 0 8 * * *")
	viper.SetDefault("schedule.evening", "0 0 20 * * *")
	viper.SetDefault("schedule.report", "0 30 21 * * *")

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("config file not found: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	Cfg = &cfg

	return nil
}
