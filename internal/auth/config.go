package auth

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// AuthConfig holds authentication configuration for the application
type AuthConfig struct {
	JWTSecret     string        `mapstructure:"jwt_secret" json:"jwt_secret"`
	Issuer        string        `mapstructure:"issuer" json:"issuer"`
	Audience      string        `mapstructure:"audience" json:"audience"`
	TokenLifetime time.Duration `mapstructure:"token_lifetime" json:"token_lifetime"`
	BCryptCost    int           `mapstructure:"bcrypt_cost" json:"bcrypt_cost"`
}

// LoadAuthConfig loads and validates authentication configuration
func LoadAuthConfig(configPath string) (*AuthConfig, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("auth")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setAuthDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading auth config file: %w", err)
		}
		// Config file not found, use defaults and environment variables
	}

	v.AutomaticEnv()

	var config AuthConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling auth config: %w", err)
	}

	// Secrets come from the environment, never from the config file
	if jwtSecret := os.Getenv("JWT_SECRET"); jwtSecret != "" {
		config.JWTSecret = jwtSecret
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("auth config validation failed: %w", err)
	}
	return &config, nil
}

// Validate validates the authentication configuration
func (c *AuthConfig) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.TokenLifetime <= 0 {
		return fmt.Errorf("token lifetime must be positive")
	}
	return nil
}

// setAuthDefaults sets default values for auth configuration
func setAuthDefaults(v *viper.Viper) {
	v.SetDefault("issuer", "projects-manager-backend")
	v.SetDefault("audience", "projects-manager")
	v.SetDefault("token_lifetime", time.Hour)
	v.SetDefault("bcrypt_cost", 12)
	// No default JWT secret - must be provided via environment variable
}
