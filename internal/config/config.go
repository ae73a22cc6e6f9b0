// Package config handles runtime configuration for the plugin's Lambda
// handlers and AWS adapters, including defaults and environment overrides.
package config

// Config holds runtime settings shared by the Lambda handlers and the
// provider adapters.
//
// Fields:
//   - SignupsTable: DynamoDB table holding credential records.
//   - CharactersTable: DynamoDB table holding per-user character configuration.
//   - AWSRegion: region for all SDK clients.
//   - AWSAccessKeyID / AWSSecretAccessKey: optional static credentials; when
//     empty the SDK's default credential chain is used.
//   - DynamoBaseEndpoint: optional endpoint override (e.g. DynamoDB Local).
//   - LambdaFunction: default function name for the invocation provider.
//   - LogLevel: slog level string (debug, info, warn, error).
type Config struct {
	SignupsTable       string
	CharactersTable    string
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoBaseEndpoint string
	LambdaFunction     string
	LogLevel           string
}

// LoadDefaults populates Config with development defaults.
// NOTE: Table names follow the {stage}-signups convention from the
// infrastructure template and should be overridden per deployment.
func (c *Config) LoadDefaults() {
	c.SignupsTable = "dev-signups"
	c.CharactersTable = "dev-characters"
	c.AWSRegion = "us-east-1"
	c.LambdaFunction = ""
	c.LogLevel = "info"
}

// LoadConfig builds a Config by applying defaults and then overlaying values
// from environment variables. Lambda runtimes carry configuration exclusively
// through the environment, so no flag or file layer exists here.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	return cfg
}
