package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	App    AppConfig
	DB     DBConfig
	Redis  RedisConfig
	Upload UploadConfig
	Lookup LookupConfig
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

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type UploadConfig struct {
	Dir string
}

// LookupConfig is the static city/area reference data. Cities keeps the
// presentation order; Areas maps each city to its ordered area list.
// Built once at startup and never mutated afterwards.
type LookupConfig struct {
	Cities []string
	Areas  map[string][]string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("APP_PORT", "9090")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DB_HOST", "127.0.0.1")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "project")
	viper.SetDefault("REDIS_HOST", "127.0.0.1")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("UPLOAD_DIR", "uploads")

	// The .env file is optional; environment variables and defaults cover
	// every setting.
	_ = viper.ReadInConfig()

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
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Upload: UploadConfig{
			Dir: viper.GetString("UPLOAD_DIR"),
		},
		Lookup: DefaultLookup(),
	}

	return config, nil
}

// DefaultLookup returns the built-in city/area table.
func DefaultLookup() LookupConfig {
	return LookupConfig{
		Cities: []string{"Coimbatore", "Chennai", "Madurai"},
		Areas: map[string][]string{
			"Coimbatore": {"Gandhipuram", "Peelamedu", "RS Puram"},
			"Chennai":    {"Anna Nagar", "T. Nagar", "Mylapore"},
			"Madurai":    {"Tallakulam", "Anna Nagar", "K.K. Nagar"},
		},
	}
}
