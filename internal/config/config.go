package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// DSN returns the GORM/pgx connection string.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// BreedAPIConfig holds the settings for one upstream breed provider.
type BreedAPIConfig struct {
	BaseURL string
	APIKey  string
}

// ServiceConfig holds all configuration for the adoption service.
type ServiceConfig struct {
	Port         string
	AppEnv       string
	DBConfig     DatabaseConfig
	DogAPI       BreedAPIConfig
	CatAPI       BreedAPIConfig
	CORSOrigin   string
	KafkaBrokers []string
}

// Load reads configuration from ADOPTION_-prefixed environment variables.
func Load() (*ServiceConfig, error) {
	v := viper.New()
	v.SetEnvPrefix("ADOPTION")
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "adoteumpet")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DOG_API_URL", "https://api.thedogapi.com/v1/breeds")
	v.SetDefault("CAT_API_URL", "https://api.thecatapi.com/v1/breeds")
	v.SetDefault("CORS_ORIGIN", "*")
	v.SetDefault("KAFKA_BROKERS", "")

	cfg := &ServiceConfig{
		Port:   ":" + strings.TrimPrefix(v.GetString("PORT"), ":"),
		AppEnv: v.GetString("APP_ENV"),
		DBConfig: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			DBName:   v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		DogAPI: BreedAPIConfig{
			BaseURL: v.GetString("DOG_API_URL"),
			APIKey:  v.GetString("DOG_API_KEY"),
		},
		CatAPI: BreedAPIConfig{
			BaseURL: v.GetString("CAT_API_URL"),
			APIKey:  v.GetString("CAT_API_KEY"),
		},
		CORSOrigin: v.GetString("CORS_ORIGIN"),
	}

	if brokers := v.GetString("KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}

	return cfg, nil
}
