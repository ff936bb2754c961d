package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	DatabaseDriver    string        `mapstructure:"DATABASE_DRIVER"`
	DatabaseURL       string        `mapstructure:"DATABASE_URL"`
	HTTPAddr          string        `mapstructure:"HTTP_ADDR"`
	JWTSecret         string        `mapstructure:"JWT_SECRET"`
	AdminPasswordHash string        `mapstructure:"ADMIN_PASSWORD_HASH"`
	BGGAPIURL         string        `mapstructure:"BGG_API_URL"`
	QueryTimeout      time.Duration `mapstructure:"QUERY_TIMEOUT"`
	SeedOnStart       bool          `mapstructure:"SEED_ON_START"`
}

var AppConfig *Config

func setDefaults(v *viper.Viper) {
	v.SetDefault("DATABASE_DRIVER", "postgres")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("ADMIN_PASSWORD_HASH", "")
	v.SetDefault("BGG_API_URL", "https://boardgamegeek.com/xmlapi2")
	v.SetDefault("QUERY_TIMEOUT", 5*time.Second)
	v.SetDefault("SEED_ON_START", false)
}

// LoadConfig loads the configuration from a .env file and environment variables.
func LoadConfig() *Config {
	v := viper.New()
	v.AddConfigPath(".")
	v.SetConfigName(".env")
	v.SetConfigType("env")
	setDefaults(v)

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		log.Println("Warning: .env file not found, loading from environment variables")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
	if cfg.QueryTimeout <= 0 {
		cfg.QueryTimeout = 5 * time.Second
	}

	AppConfig = &cfg
	return AppConfig
}
