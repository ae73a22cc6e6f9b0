// Package provider implements the agent provider that forwards opaque
// payloads to a named Lambda function and returns the function's result.
package provider

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/agentgate/internal/config"
	"github.com/dmitrijs2005/agentgate/internal/logging"
)

// LambdaAPI is the subset of the Lambda client used by the invoker.
type LambdaAPI interface {
	Invoke(ctx context.Context, params *lambda.InvokeInput, optFns ...func(*lambda.Options)) (*lambda.InvokeOutput, error)
}

// Invoker forwards payloads to remote functions. It carries no retry,
// batching, or backpressure logic; a failed invocation is the caller's
// problem.
type Invoker struct {
	client LambdaAPI
	logger logging.Logger
}

func NewInvoker(client LambdaAPI, logger logging.Logger) *Invoker {
	return &Invoker{client: client, logger: logger}
}

// NewLambdaClient constructs the shared Lambda client for the process.
func NewLambdaClient(ctx context.Context, c *config.Config) (*lambda.Client, error) {

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

	return lambda.NewFromConfig(cfg), nil
}

// Invoke sends payload to functionName and returns the response payload. A
// function-side error (the FunctionError marker on the response) surfaces as
// an error; the payload is returned as-is otherwise, nil included.
func (i *Invoker) Invoke(ctx context.Context, functionName string, payload []byte) ([]byte, error) {

	correlationID := uuid.NewString()
	i.logger.Info(ctx, "invoking function", "function", functionName, "correlation_id", correlationID)

	out, err := i.client.Invoke(ctx, &lambda.InvokeInput{
		FunctionName: aws.String(functionName),
		Payload:      payload,
	})
	if err != nil {
		i.logger.Error(ctx, "invocation failed", "function", functionName, "correlation_id", correlationID, "error", err)
		return nil, fmt.Errorf("invoke %s: %w", functionName, err)
	}

	if out.FunctionError != nil {
		i.logger.Error(ctx, "function returned error", "function", functionName, "correlation_id", correlationID, "function_error", *out.FunctionError)
		return nil, fmt.Errorf("invoke %s: function error: %s", functionName, *out.FunctionError)
	}

	return out.Payload, nil
}
