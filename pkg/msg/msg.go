// Package msg provides the externalized message catalog (messages.yml).
// Messages use positional placeholders: "group {0} resolved to {1} checks".
package msg

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"
)

var messages map[string]string

func init() {
	path, ok := os.LookupEnv("MESSAGES_FILE_PATH")
	if !ok {
		path = "configs/messages.yml"
	}
	// The catalog is optional outside a deployed tree; lookups then fall
	// back to the message-not-found placeholder.
	if _, err := os.Stat(path); err != nil {
		return
	}
	Init(path)
}

// Init loads the message catalog from the given file. It is called
// automatically at import time; tests may call it again with a fixture.
func Init(filepath string) {
	catalog := viper.New()
	catalog.SetConfigFile(filepath)
	catalog.SetConfigType("yml")

	if err := catalog.ReadInConfig(); err != nil {
		log.Fatalf("Fail to read messages: %v", err)
	}

	messages = make(map[string]string)
	flatten("", catalog.AllSettings(), messages)
}

// flatten walks the catalog tree collecting string leaves under dotted keys.
func flatten(prefix string, data map[string]any, result map[string]string) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]any:
			flatten(fullKey, v, result)
		}
	}
}

// GetMessage looks up a message by key and substitutes the positional
// placeholders with the given arguments.
func GetMessage(key string, args ...any) string {
	message, exists := messages[key]
	if !exists {
		return fmt.Sprintf("Message not found: %s", key)
	}

	for i, arg := range args {
		placeholder := fmt.Sprintf("{%d}", i)
		message = strings.ReplaceAll(message, placeholder, fmt.Sprintf("%v", arg))
	}
	return message
}
