package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds runtime configuration for the planner service.
type Config struct {
	Port    string
	Log     LogConfig
	Metrics MetricsConfig
}

// LogConfig controls logger construction.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from defaults, an optional ./config.yaml, and
// PLANNER_-prefixed environment variables, in increasing precedence.
func Load() Config {
	return LoadFile("")
}

// LoadFile is Load with an explicit config file path. An empty path falls
// back to the default search locations.
func LoadFile(path string) Config {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// A missing config file is fine; defaults and env still apply.
	_ = v.ReadInConfig()

	return Config{
		Port: v.GetString(keyPort),
		Log: LogConfig{
			Level:  v.GetString(keyLogLevel),
			Format: v.GetString(keyLogFormat),
		},
		Metrics: MetricsConfig{
			Enabled:      v.GetBool(keyMetricsEnabled),
			Port:         v.GetString(keyMetricsPort),
			ServiceName:  v.GetString(keyMetricsService),
			OtlpEndpoint: v.GetString(keyOtlpEndpoint),
			OtlpInsecure: v.GetBool(keyOtlpInsecure),
		},
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyPort, defaultPort)
	v.SetDefault(keyLogLevel, defaultLogLevel)
	v.SetDefault(keyLogFormat, defaultLogFormat)
	v.SetDefault(keyMetricsEnabled, true)
	v.SetDefault(keyMetricsPort, defaultMetricsPort)
	v.SetDefault(keyMetricsService, ServiceName)
	v.SetDefault(keyOtlpEndpoint, "")
	v.SetDefault(keyOtlpInsecure, true)
}
