package store

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/dmitrijs2005/agentgate/internal/config"
)

// NewDynamoClient constructs the shared DynamoDB client for the process.
// Static credentials are used when the config carries both keys; otherwise
// the SDK's default credential chain applies (the usual case in Lambda).
func NewDynamoClient(ctx context.Context, c *config.Config) (*dynamodb.Client, error) {

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(c.AWSRegion),
	}
	if c.AWSAccessKeyID != "" && c.AWSSecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(c.AWSAccessKeyID, c.AWSSecretAccessKey, ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	client := dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if c.DynamoBaseEndpoint != "" {
			o.BaseEndpoint = aws.String(c.DynamoBaseEndpoint)
		}
	})

	return client, nil
}
