package tracer

import "os"

// Config controls tracer construction.
type Config struct {
	// ServiceName is reported as the otel service.name resource attribute.
	ServiceName string `yaml:"service_name" envconfig:"TRACER_SERVICE_NAME"`

	// AppEnv tags spans with the deployment environment (e.g. "production").
	AppEnv string `yaml:"app_env" envconfig:"APP_ENV"`

	// EnableExport turns on the OTLP/HTTP exporter. When false, spans are
	// created and propagated but never leave the process.
	EnableExport bool `yaml:"enable_export" envconfig:"TRACER_ENABLE_EXPORT"`
}

// NewConfig reads tracer configuration from environment variables.
func NewConfig() Config {
	return Config{
		ServiceName:  os.Getenv("TRACER_SERVICE_NAME"),
		AppEnv:       os.Getenv("APP_ENV"),
		EnableExport: os.Getenv("TRACER_ENABLE_EXPORT") == "true",
	}
}
