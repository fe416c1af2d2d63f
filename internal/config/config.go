package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Host        string
	Port        string
	Function    FunctionConfig
	Invoke      InvokeConfig
	Log         LogConfig
}

// FunctionConfig holds the user function source. SourceEnv names the
// environment variable the source was read from; different deployments of
// the base image historically used different names, so the name itself is
// configurable.
type FunctionConfig struct {
	SourceEnv string
	Source    string
}

// InvokeConfig holds per-request limits for the invoke endpoint
type InvokeConfig struct {
	TimeoutSeconds  int
	MaxRequestBytes int64
	RateLimitRPS    float64
	RateLimitBurst  int
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string
	Format string
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Set up Viper
	viper.AutomaticEnv()
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("PORT", "5000")
	viper.SetDefault("FUNCTION_CODE_ENV", "FUNCTION_CODE")
	viper.SetDefault("INVOKE_TIMEOUT_SECONDS", 0)
	viper.SetDefault("MAX_REQUEST_BYTES", 1024*1024)
	viper.SetDefault("RATE_LIMIT_RPS", 0.0)
	viper.SetDefault("RATE_LIMIT_BURST", 10)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "text")

	sourceEnv := viper.GetString("FUNCTION_CODE_ENV")

	config := &Config{
		Environment: viper.GetString("ENVIRONMENT"),
		Host:        viper.GetString("HOST"),
		Port:        viper.GetString("PORT"),
		Function: FunctionConfig{
			SourceEnv: sourceEnv,
			Source:    os.Getenv(sourceEnv),
		},
		Invoke: InvokeConfig{
			TimeoutSeconds:  viper.GetInt("INVOKE_TIMEOUT_SECONDS"),
			MaxRequestBytes: viper.GetInt64("MAX_REQUEST_BYTES"),
			RateLimitRPS:    viper.GetFloat64("RATE_LIMIT_RPS"),
			RateLimitBurst:  viper.GetInt("RATE_LIMIT_BURST"),
		},
		Log: LogConfig{
			Level:  viper.GetString("LOG_LEVEL"),
			Format: viper.GetString("LOG_FORMAT"),
		},
	}

	return config, nil
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// GetEnvAsInt gets an environment variable as integer with a fallback value
func GetEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// GetEnvAsBool gets an environment variable as boolean with a fallback value
func GetEnvAsBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
