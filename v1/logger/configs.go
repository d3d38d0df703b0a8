package logger

import "os"

// Log levels accepted by Config.Level.
const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

// Config controls logger construction.
type Config struct {
	// Level is the minimum level that will be emitted.
	// One of the level constants above; anything else means Info.
	Level string `yaml:"level" envconfig:"ZAP_LOGGER_LEVEL"`

	// ServiceName is attached to every entry as the "service" field.
	ServiceName string `yaml:"service_name" envconfig:"LOGGER_SERVICE_NAME"`

	// EnableTracing turns on trace/span ID extraction in the
	// *WithContext logging methods.
	EnableTracing bool `yaml:"enable_tracing" envconfig:"LOGGER_ENABLE_TRACING"`
}

// NewConfig reads logger configuration from environment variables.
func NewConfig() Config {
	return Config{
		Level:         os.Getenv("ZAP_LOGGER_LEVEL"),
		ServiceName:   os.Getenv("LOGGER_SERVICE_NAME"),
		EnableTracing: os.Getenv("LOGGER_ENABLE_TRACING") == "true",
	}
}
