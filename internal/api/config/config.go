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

	viper.SetDefault("server.port", 3100)
	viper.SetDefault("database.path", "../data/x_agent_os.db")
	viper.SetDefault("database.busy_timeout", 5000)
	viper.SetDefault("pipeline.python", "python")
	viper.SetDefault("pipeline.script_dir", "../agent-service")
	viper.SetDefault("pipeline.reply_timeout", 120)
	viper.SetDefault("pipeline.capture_timeout", 900)
	viper.SetDefault("pipeline.daily_timeout", 3600)

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	Cfg = &cfg

	return nil
}
