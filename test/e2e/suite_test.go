// Package e2e_test provides end-to-end tests for the provisioner.
//
// This test suite validates the full path — AWS config, IAM adapter, ensure
// use case, custom-resource handler — against LocalStack (or real AWS when
// AWS_ENDPOINT_URL is unset and RUN_E2E=true).
package e2e_test

import (
	"context"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/jeffscottlevine/aws-idempotent-create-service-linked-role/internal/ports"
	"github.com/jeffscottlevine/aws-idempotent-create-service-linked-role/pkg/clients"
	"github.com/jeffscottlevine/aws-idempotent-create-service-linked-role/pkg/config"
)

var (
	ctx     context.Context
	cancel  context.CancelFunc
	ensurer ports.ServiceLinkedRoleUseCase
)

func TestE2E(t *testing.T) {
	if os.Getenv("RUN_E2E") != "true" {
		t.Skip("set RUN_E2E=true to run end-to-end tests")
	}
	RegisterFailHandler(Fail)
	RunSpecs(t, "E2E Suite")
}

var _ = BeforeSuite(func() {
	ctx, cancel = context.WithCancel(context.Background())

	cfg, err := config.Load()
	Expect(err).NotTo(HaveOccurred())

	logger := zap.NewExample()

	factory := clients.NewAWSClientFactory(cfg)
	ensurer, err = factory.GetServiceLinkedRoleUseCase(ctx, logger)
	Expect(err).NotTo(HaveOccurred())
})

var _ = AfterSuite(func() {
	cancel()
})
