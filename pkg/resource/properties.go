// Package resource loads the application properties file (Spring-style
// application.yml) through viper and exposes typed accessors. String
// values may reference environment variables as ${NAME} or ${NAME:default}.
package resource

import (
	"log"
	"os"
	"regexp"
	"time"

	"github.com/spf13/viper"
)

var envPattern = regexp.MustCompile(`\$\{([^:}]+)(?::([^}]+))?}`)

func init() {
	path, ok := os.LookupEnv("PROPERTIES_FILE_PATH")
	if !ok {
		path = "configs/application.yml"
	}
	// Properties are optional outside a deployed tree (unit tests run from
	// package directories); accessors then return zero values until Init
	// is called with a real file.
	if _, err := os.Stat(path); err != nil {
		return
	}
	Init(path)
}

// Init loads the properties file at the given path, resolving environment
// variable placeholders in string values. It is called automatically at
// import time; tests may call it again with a fixture file.
func Init(filepath string) {
	viper.SetConfigFile(filepath)
	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("Fail to read properties: %v", err)
	}

	resolved := make(map[string]any)
	resolveMap("", viper.AllSettings(), resolved)

	if err := viper.MergeConfigMap(resolved); err != nil {
		log.Fatalf("Fail to load properties: %v", err)
	}
}

// resolveMap walks the settings tree and flattens it to dotted keys,
// substituting ${ENV:default} placeholders in string leaves.
func resolveMap(prefix string, data map[string]any, result map[string]any) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			if resolved := resolveEnvVariable(v); resolved != nil {
				result[fullKey] = resolved
			}
		case map[string]any:
			resolveMap(fullKey, v, result)
		}
	}
}

func resolveEnvVariable(value string) any {
	matches := envPattern.FindStringSubmatch(value)
	if len(matches) == 0 {
		return nil
	}

	if envValue, exists := os.LookupEnv(matches[1]); exists {
		return envValue
	}
	if len(matches) > 2 && matches[2] != "" {
		return matches[2]
	}
	return ""
}

func Get(key string) any {
	return viper.Get(key)
}

func GetString(key string) string {
	return viper.GetString(key)
}

func GetBool(key string) bool {
	return viper.GetBool(key)
}

func GetInt(key string) int {
	return viper.GetInt(key)
}

func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

func GetStringMap(key string) map[string]any {
	return viper.GetStringMap(key)
}

func GetStringSlice(key string) []string {
	return viper.GetStringSlice(key)
}
