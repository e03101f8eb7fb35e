package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"./configs/.env",
	"../.env",
	"../../.env",
}

// LoadConfig loads configuration from the environment's YAML file with
// PT_-prefixed environment variable overrides
func LoadConfig() (*Config, error) {
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: could not load .env file:", err)
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")

	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetEnvPrefix("PT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env

	return &config, nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return nil
			} else {
				lastError = err
			}
		}
	}

	return lastError
}

// getEnvironment resolves the active environment, defaulting to development
func getEnvironment() string {
	env := strings.ToLower(os.Getenv("PT_ENV"))
	switch env {
	case Production, Test:
		return env
	default:
		return Development
	}
}

// setDefaults sets default values for non-critical settings
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 10*time.Second)
	v.SetDefault("server.writeTimeout", 10*time.Second)
	v.SetDefault("server.idleTimeout", 60*time.Second)
	v.SetDefault("server.readHeaderTimeout", 5*time.Second)
	v.SetDefault("server.shutdownTimeout", 15*time.Second)

	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 5)
	v.SetDefault("database.connMaxLifetime", 30*time.Minute)
	v.SetDefault("database.connMaxIdleTime", 10*time.Minute)
	v.SetDefault("database.queryTimeout", 5*time.Second)

	v.SetDefault("logger.level", "info")

	v.SetDefault("auth.tokenTTL", 24*time.Hour)

	v.SetDefault("scheduler.sweepInterval", time.Minute)

	v.SetDefault("economy.initialPoints", 1000)
	v.SetDefault("economy.freeClaimPoints", 500)
	v.SetDefault("economy.claimCooldown", 24*time.Hour)

	v.SetDefault("rateLimit.requestsPerSecond", 20)
	v.SetDefault("rateLimit.burst", 40)
}

// processEnvOverrides maps sensitive values from environment variables so
// they never need to live in the YAML files
func processEnvOverrides(v *viper.Viper) {
	overrides := map[string]string{
		"database.host":     "PT_DB_HOST",
		"database.port":     "PT_DB_PORT",
		"database.username": "PT_DB_USERNAME",
		"database.password": "PT_DB_PASSWORD",
		"database.database": "PT_DB_NAME",
		"auth.jwtSecret":    "PT_JWT_SECRET",
		"auth.adminKey":     "PT_ADMIN_KEY",
	}

	for key, envVar := range overrides {
		if value := os.Getenv(envVar); value != "" {
			v.Set(key, value)
		}
	}
}
