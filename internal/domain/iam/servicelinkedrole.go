package iam

import (
	"errors"
	"time"
)

// Common errors
var (
	ErrInvalidServiceName = errors.New("service name is required")
	ErrUnsupportedService = errors.New("no service-linked role is known for service")
	ErrRoleNotFound       = errors.New("role not found")
)

// ServiceLinkedRole represents an IAM service-linked role in the domain model.
// AWS owns the role's name, permissions and lifecycle; this model only carries
// the identifying attributes reported back to the caller.
type ServiceLinkedRole struct {
	// Core identifiers
	ServiceName string
	RoleName    string
	RoleArn     string
	RoleId      string

	// Metadata
	CreatedAt *time.Time
}

// Validate validates the role attributes
func (r *ServiceLinkedRole) Validate() error {
	if r.ServiceName == "" {
		return ErrInvalidServiceName
	}
	return nil
}
