package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Port                 string `mapstructure:"PORT"`
	DatabasePath         string `mapstructure:"DATABASE_PATH"`
	TelegramBotToken     string `mapstructure:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID       int64  `mapstructure:"TELEGRAM_CHAT_ID"`
	JWTSecret            string `mapstructure:"JWT_SECRET"`
	AdminUsername        string `mapstructure:"ADMIN_USERNAME"`
	AdminPassword        string `mapstructure:"ADMIN_PASSWORD"`
	NotifyTimeoutSeconds int    `mapstructure:"NOTIFY_TIMEOUT_SECONDS"`
}

func LoadConfig() *Config {
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DATABASE_PATH", "tours.db")
	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("NOTIFY_TIMEOUT_SECONDS", 5)

	viper.BindEnv("TELEGRAM_BOT_TOKEN")
	viper.BindEnv("TELEGRAM_CHAT_ID")
	viper.BindEnv("JWT_SECRET")
	viper.BindEnv("ADMIN_USERNAME")
	viper.BindEnv("ADMIN_PASSWORD")
	viper.BindEnv("NOTIFY_TIMEOUT_SECONDS")

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}

	return &config
}
