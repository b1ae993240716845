package iam_test

import (
	"errors"
	"testing"

	"github.com/jeffscottlevine/aws-idempotent-create-service-linked-role/internal/domain/iam"
)

func TestServiceLinkedRole_Validate(t *testing.T) {
	role := &iam.ServiceLinkedRole{ServiceName: "inspector.amazonaws.com"}
	if err := role.Validate(); err != nil {
		t.Error(err)
	}

	empty := &iam.ServiceLinkedRole{}
	if err := empty.Validate(); !errors.Is(err, iam.ErrInvalidServiceName) {
		t.Errorf("expected ErrInvalidServiceName, got %v", err)
	}
}
