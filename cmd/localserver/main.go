// Command localserver runs the invocation harness for local development.
// It wires the same handler the Lambda uses, fronted by HTTP instead of the
// custom-resource protocol, typically against LocalStack:
//
//	AWS_ENDPOINT_URL=http://localhost:4566 go run ./cmd/localserver
//	curl -XPOST localhost:8080/invoke -d '{"RequestType":"Create","ResourceProperties":{"AWSServiceName":"inspector.amazonaws.com"}}'
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	slrhandler "github.com/jeffscottlevine/aws-idempotent-create-service-linked-role/handler"
	"github.com/jeffscottlevine/aws-idempotent-create-service-linked-role/pkg/api"
	"github.com/jeffscottlevine/aws-idempotent-create-service-linked-role/pkg/clients"
	"github.com/jeffscottlevine/aws-idempotent-create-service-linked-role/pkg/config"
	"github.com/jeffscottlevine/aws-idempotent-create-service-linked-role/pkg/logging"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %s", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %s", err)
	}
	defer logger.Sync()

	factory := clients.NewAWSClientFactory(cfg)
	ensurer, err := factory.GetServiceLinkedRoleUseCase(ctx, logger)
	if err != nil {
		log.Fatalf("failed to build ensure use case: %s", err)
	}

	server := api.NewServer(cfg.ListenAddr, slrhandler.New(ensurer, logger), logger)

	errs := make(chan error, 1)
	go func() {
		errs <- server.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errs:
		if err != nil {
			log.Fatalf("server error: %s", err)
		}
	case <-stop:
		shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Fatalf("shutdown error: %s", err)
		}
	}
}
