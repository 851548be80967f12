package config

// ServiceName is the canonical name used in logs and telemetry.
const ServiceName = "alliance-war-planner"

const (
	envPrefix = "PLANNER"

	keyPort           = "port"
	keyLogLevel       = "log.level"
	keyLogFormat      = "log.format"
	keyMetricsEnabled = "metrics.enabled"
	keyMetricsPort    = "metrics.port"
	keyMetricsService = "metrics.service_name"
	keyOtlpEndpoint   = "metrics.otlp_endpoint"
	keyOtlpInsecure   = "metrics.otlp_insecure"

	defaultPort        = "4000"
	defaultLogLevel    = "info"
	defaultLogFormat   = "json"
	defaultMetricsPort = "9090"
)
