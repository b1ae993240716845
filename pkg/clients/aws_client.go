package clients

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"go.uber.org/zap"

	awsiam "github.com/jeffscottlevine/aws-idempotent-create-service-linked-role/internal/adapters/aws/iam"
	"github.com/jeffscottlevine/aws-idempotent-create-service-linked-role/internal/ports"
	iamuc "github.com/jeffscottlevine/aws-idempotent-create-service-linked-role/internal/usecases/iam"
	"github.com/jeffscottlevine/aws-idempotent-create-service-linked-role/pkg/config"
)

// AWSClientFactory creates AWS SDK clients from environment configuration
type AWSClientFactory struct {
	cfg *config.Config
}

// NewAWSClientFactory creates a new factory
func NewAWSClientFactory(cfg *config.Config) *AWSClientFactory {
	return &AWSClientFactory{
		cfg: cfg,
	}
}

// GetAWSConfig builds the AWS SDK config. Credentials come from the default
// chain (Lambda execution role in production, env vars or profiles locally).
func (f *AWSClientFactory) GetAWSConfig(ctx context.Context) (aws.Config, error) {
	configOptions := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(f.cfg.Region),
	}

	// LocalStack accepts any static key pair; supply one when an endpoint
	// override is set and the environment carries no credentials.
	if f.cfg.Endpoint != "" && os.Getenv("AWS_ACCESS_KEY_ID") == "" {
		configOptions = append(configOptions, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider("test", "test", ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, configOptions...)
	if err != nil {
		return awsCfg, fmt.Errorf("failed to load config: %w", err)
	}

	// If custom endpoint is provided (for LocalStack or custom AWS endpoint)
	if f.cfg.Endpoint != "" {
		awsCfg.BaseEndpoint = aws.String(f.cfg.Endpoint)
	}

	return awsCfg, nil
}

// GetServiceLinkedRoleUseCase wires the IAM repository and the ensure use case
func (f *AWSClientFactory) GetServiceLinkedRoleUseCase(ctx context.Context, logger *zap.Logger) (ports.ServiceLinkedRoleUseCase, error) {
	awsConfig, err := f.GetAWSConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get AWS config: %w", err)
	}

	iamRepo := awsiam.NewRepository(awsConfig)

	return iamuc.NewRoleEnsurer(iamRepo, logger), nil
}
