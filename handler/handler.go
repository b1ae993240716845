// Package handler maps CloudFormation custom-resource events onto the
// ensure-role use case.
package handler

import (
	"context"
	"fmt"

	"github.com/aws/aws-lambda-go/cfn"
	"go.uber.org/zap"

	"github.com/jeffscottlevine/aws-idempotent-create-service-linked-role/internal/ports"
)

// AWSServiceNameProperty is the resource property carrying the service
// identifier, e.g. "inspector.amazonaws.com".
const AWSServiceNameProperty = "AWSServiceName"

// Handler answers CloudFormation custom-resource requests. Create ensures the
// service-linked role exists and reports its Arn and RoleId; Update and
// Delete succeed without touching IAM, so the role outlives the stack.
type Handler struct {
	ensurer ports.ServiceLinkedRoleUseCase
	logger  *zap.Logger
}

func New(ensurer ports.ServiceLinkedRoleUseCase, logger *zap.Logger) *Handler {
	return &Handler{
		ensurer: ensurer,
		logger:  logger,
	}
}

// Handle implements the cfn.CustomResourceFunction signature. Returned errors
// surface to CloudFormation as a FAILED response with an empty data payload;
// success carries {"Arn": ..., "RoleId": ...}.
func (h *Handler) Handle(ctx context.Context, event cfn.Event) (string, map[string]interface{}, error) {
	switch event.RequestType {
	case cfn.RequestDelete, cfn.RequestUpdate:
		// The role is retained on stack delete and left untouched on update.
		h.logger.Info("retaining service-linked role",
			zap.String("requestType", string(event.RequestType)),
			zap.String("stackId", event.StackID),
			zap.String("physicalResourceId", event.PhysicalResourceID))
		return physicalResourceID(event), map[string]interface{}{}, nil

	case cfn.RequestCreate:
		serviceName, _ := event.ResourceProperties[AWSServiceNameProperty].(string)
		if serviceName == "" {
			return physicalResourceID(event), nil,
				fmt.Errorf("resource property %s must be a non-empty string", AWSServiceNameProperty)
		}

		role, err := h.ensurer.EnsureRole(ctx, serviceName)
		if err != nil {
			return physicalResourceID(event), nil, err
		}

		return role.RoleName, map[string]interface{}{
			"Arn":    role.RoleArn,
			"RoleId": role.RoleId,
		}, nil

	default:
		return physicalResourceID(event), nil,
			fmt.Errorf("unexpected request type %q", event.RequestType)
	}
}

// physicalResourceID keeps the ID CloudFormation already knows, falling back
// to a synthetic one for first-time failures (CloudFormation rejects
// responses without a physical resource ID).
func physicalResourceID(event cfn.Event) string {
	if event.PhysicalResourceID != "" {
		return event.PhysicalResourceID
	}
	return "service-linked-role:" + event.LogicalResourceID
}
