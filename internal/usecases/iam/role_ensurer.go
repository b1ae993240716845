package iam

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/jeffscottlevine/aws-idempotent-create-service-linked-role/internal/domain/iam"
	"github.com/jeffscottlevine/aws-idempotent-create-service-linked-role/internal/ports"
	"github.com/jeffscottlevine/aws-idempotent-create-service-linked-role/pkg/metrics"
)

// RoleEnsurer makes sure a service-linked role exists for a given AWS
// service, creating it when absent and reporting the same identity either
// way. It performs exactly one lookup and at most one create per call, with
// no retries; concurrent calls for the same service are not coordinated.
type RoleEnsurer struct {
	repo   ports.ServiceLinkedRoleRepository
	logger *zap.Logger
}

func NewRoleEnsurer(repo ports.ServiceLinkedRoleRepository, logger *zap.Logger) *RoleEnsurer {
	return &RoleEnsurer{
		repo:   repo,
		logger: logger,
	}
}

// EnsureRole ensures the service-linked role for serviceName exists and
// returns its identity attributes.
func (uc *RoleEnsurer) EnsureRole(ctx context.Context, serviceName string) (*iam.ServiceLinkedRole, error) {
	if serviceName == "" {
		return nil, iam.ErrInvalidServiceName
	}

	recorder := metrics.NewEnsureMetricsRecorder(serviceName)

	roleName, ok := iam.RoleNameForService(serviceName)
	if !ok {
		recorder.Record(metrics.ResultUnsupported)
		return nil, fmt.Errorf("%w: %s (supported: %v)",
			iam.ErrUnsupportedService, serviceName, iam.SupportedServices())
	}

	role, err := uc.repo.Get(ctx, roleName)
	if err == nil {
		role.ServiceName = serviceName
		uc.logger.Info("service-linked role already exists",
			zap.String("service", serviceName),
			zap.String("roleName", roleName),
			zap.String("roleArn", role.RoleArn))
		recorder.Record(metrics.ResultPreExisting)
		return role, nil
	}

	// Any lookup failure is answered with a create attempt. A true NotFound
	// and a transient or permission error land on the same path; only the
	// log line tells them apart.
	if errors.Is(err, iam.ErrRoleNotFound) {
		uc.logger.Info("service-linked role not found, creating",
			zap.String("service", serviceName),
			zap.String("roleName", roleName))
	} else {
		uc.logger.Warn("role lookup failed, treating role as absent",
			zap.String("service", serviceName),
			zap.String("roleName", roleName),
			zap.Error(err))
	}

	role, err = uc.repo.CreateServiceLinkedRole(ctx, serviceName)
	if err != nil {
		recorder.Record(metrics.ResultCreateFailed)
		return nil, fmt.Errorf("failed to create service-linked role for %s: %w", serviceName, err)
	}
	role.ServiceName = serviceName

	uc.logger.Info("service-linked role created",
		zap.String("service", serviceName),
		zap.String("roleName", role.RoleName),
		zap.String("roleArn", role.RoleArn),
		zap.String("roleId", role.RoleId))
	recorder.Record(metrics.ResultCreated)

	return role, nil
}
