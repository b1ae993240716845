// Package ports define as interfaces de portas seguindo Clean Architecture.
//
// Este package contém as abstrações que desacoplam a lógica de negócio das
// implementações concretas, permitindo testabilidade e flexibilidade.
package ports

import (
	"context"

	"github.com/jeffscottlevine/aws-idempotent-create-service-linked-role/internal/domain/iam"
)

// ServiceLinkedRoleRepository defines the interface for IAM service-linked role operations
type ServiceLinkedRoleRepository interface {
	Get(ctx context.Context, roleName string) (*iam.ServiceLinkedRole, error)
	CreateServiceLinkedRole(ctx context.Context, serviceName string) (*iam.ServiceLinkedRole, error)
}

// ServiceLinkedRoleUseCase defines the use case interface for ensuring a role exists
type ServiceLinkedRoleUseCase interface {
	EnsureRole(ctx context.Context, serviceName string) (*iam.ServiceLinkedRole, error)
}
