package configs

import (
	"github.com/spf13/viper"
)

// EnvConfig carries the process-level settings read straight from the
// environment, as opposed to the application.yml properties.
type EnvConfig struct {
	ApplicationName string
	LogLevel        string
}

var Env *EnvConfig

func init() {
	viper.AutomaticEnv()

	Env = &EnvConfig{
		ApplicationName: getStringOrDefault("APPLICATION_NAME", "go-health"),
		LogLevel:        getStringOrDefault("LOG_LEVEL", "info"),
	}
}

func getStringOrDefault(key, defaultValue string) string {
	value := viper.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
