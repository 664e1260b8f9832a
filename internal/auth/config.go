package auth

import (
	"fmt"

	"github.com/spf13/viper"
)

// AuthConfig holds authentication configuration for the application
type AuthConfig struct {
	JWTSecret     string       `yaml:"jwt_secret" mapstructure:"jwt_secret"`
	TokenTTLHours int          `yaml:"token_ttl_hours" mapstructure:"token_ttl_hours"`
	Admins        []AdminEntry `yaml:"admins" mapstructure:"admins"`
}

// AdminEntry is one administrator allowed to mutate league data
type AdminEntry struct {
	Username string `yaml:"username" mapstructure:"username"`
	Password string `yaml:"password" mapstructure:"password"`
}

// LoadAuthConfig loads authentication configuration from a YAML file,
// with environment variables taking precedence
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

	v.SetDefault("token_ttl_hours", 24)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading auth config file: %w", err)
		}
	}

	v.AutomaticEnv()

	var config AuthConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling auth config: %w", err)
	}

	if secret := v.GetString("JWT_SECRET"); secret != "" {
		config.JWTSecret = secret
	}
	if config.JWTSecret == "" {
		return nil, fmt.Errorf("auth config requires a jwt_secret")
	}

	return &config, nil
}
