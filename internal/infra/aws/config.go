package aws

import (
	"context"
	"fmt"

	"sqs-seeder/configs"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

// NewConfig loads the AWS configuration from the default chain, overridden by
// whatever region, endpoint and credentials are present in env
func NewConfig(ctx context.Context, env *configs.EnvConfig) (aws.Config, error) {
	var opts []func(*config.LoadOptions) error

	if env.AwsRegion != "" {
		opts = append(opts, config.WithRegion(env.AwsRegion))
	}

	if env.AwsMaxAttempts > 0 {
		opts = append(opts, config.WithRetryMaxAttempts(env.AwsMaxAttempts))
	}

	// Check if custom credentials are provided
	if env.AwsAccessKeyID != "" && env.AwsSecretAccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(env.AwsAccessKeyID, env.AwsSecretAccessKey, env.AwsSessionToken),
		))
	}
	// If no custom credentials are provided, AWS SDK will use default credential chain
	// (environment variables, IAM roles, etc.)

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config: %w", err)
	}

	// LocalStack and other emulators
	if env.AwsEndpoint != "" {
		cfg.BaseEndpoint = aws.String(env.AwsEndpoint)
	}

	return cfg, nil
}
