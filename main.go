package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/cfn"
	"github.com/aws/aws-lambda-go/lambda"

	slrhandler "github.com/jeffscottlevine/aws-idempotent-create-service-linked-role/handler"
	"github.com/jeffscottlevine/aws-idempotent-create-service-linked-role/pkg/clients"
	"github.com/jeffscottlevine/aws-idempotent-create-service-linked-role/pkg/config"
	"github.com/jeffscottlevine/aws-idempotent-create-service-linked-role/pkg/logging"
)

var handle cfn.CustomResourceLambdaFunction

func init() {
	// Build the handler once and store it in global space so warm
	// invocations reuse the IAM client.
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %s", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %s", err)
	}

	factory := clients.NewAWSClientFactory(cfg)
	ensurer, err := factory.GetServiceLinkedRoleUseCase(ctx, logger)
	if err != nil {
		log.Fatalf("failed to build ensure use case: %s", err)
	}

	handle = cfn.LambdaWrap(slrhandler.New(ensurer, logger).Handle)
}

func main() {
	lambda.Start(handle)
}
