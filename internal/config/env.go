package config

import "os"

// parseEnv overlays Config fields from environment variables. Empty variables
// leave the current value untouched.
//
// Supported variables:
//
//	SIGNUPS_TABLE          DynamoDB credential table name
//	CHARACTERS_TABLE       DynamoDB character configuration table name
//	AWS_REGION             SDK region
//	AWS_ACCESS_KEY_ID      static access key (optional)
//	AWS_SECRET_ACCESS_KEY  static secret key (optional)
//	DYNAMODB_ENDPOINT      base endpoint override (optional)
//	LAMBDA_FUNCTION        default function name for the provider
//	LOG_LEVEL              slog level string
func parseEnv(config *Config) {
	config.SignupsTable = getEnv("SIGNUPS_TABLE", config.SignupsTable)
	config.CharactersTable = getEnv("CHARACTERS_TABLE", config.CharactersTable)
	config.AWSRegion = getEnv("AWS_REGION", config.AWSRegion)
	config.AWSAccessKeyID = getEnv("AWS_ACCESS_KEY_ID", config.AWSAccessKeyID)
	config.AWSSecretAccessKey = getEnv("AWS_SECRET_ACCESS_KEY", config.AWSSecretAccessKey)
	config.DynamoBaseEndpoint = getEnv("DYNAMODB_ENDPOINT", config.DynamoBaseEndpoint)
	config.LambdaFunction = getEnv("LAMBDA_FUNCTION", config.LambdaFunction)
	config.LogLevel = getEnv("LOG_LEVEL", config.LogLevel)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
