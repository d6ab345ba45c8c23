package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	App AppConfig
	DB  DBConfig
	S3  S3Config
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type S3Config struct {
	Bucket string
	Region string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		S3: S3Config{
			Bucket: viper.GetString("S3_BUCKET"),
			Region: viper.GetString("S3_REGION"),
		},
	}

	if config.S3.Bucket == "" {
		config.S3.Bucket = "famlink-uploads"
	}

	return config, nil
}
