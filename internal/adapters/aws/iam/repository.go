package iam

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsiam "github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/iam/types"

	"github.com/jeffscottlevine/aws-idempotent-create-service-linked-role/internal/domain/iam"
	"github.com/jeffscottlevine/aws-idempotent-create-service-linked-role/pkg/metrics"
)

// iamAPI is the subset of the IAM client used by the repository.
// Narrowed to an interface so tests can substitute a fake client.
type iamAPI interface {
	GetRole(ctx context.Context, params *awsiam.GetRoleInput, optFns ...func(*awsiam.Options)) (*awsiam.GetRoleOutput, error)
	CreateServiceLinkedRole(ctx context.Context, params *awsiam.CreateServiceLinkedRoleInput, optFns ...func(*awsiam.Options)) (*awsiam.CreateServiceLinkedRoleOutput, error)
}

type Repository struct {
	client iamAPI
}

func NewRepository(cfg aws.Config) *Repository {
	return &Repository{
		client: awsiam.NewFromConfig(cfg),
	}
}

func newRepositoryWithClient(client iamAPI) *Repository {
	return &Repository{client: client}
}

// Get fetches a role by name. A missing role is reported as a wrapped
// iam.ErrRoleNotFound so callers can tell true absence apart from other
// lookup failures.
func (r *Repository) Get(ctx context.Context, roleName string) (*iam.ServiceLinkedRole, error) {
	recorder := metrics.NewAWSAPIMetricsRecorder(metrics.OperationGetRole)
	output, err := r.client.GetRole(ctx, &awsiam.GetRoleInput{
		RoleName: aws.String(roleName),
	})
	recorder.Record(err)
	if err != nil {
		var nfe *types.NoSuchEntityException
		if errors.As(err, &nfe) {
			return nil, fmt.Errorf("%w: %s", iam.ErrRoleNotFound, roleName)
		}
		return nil, fmt.Errorf("failed to get role %s: %w", roleName, err)
	}

	return roleFromAPI(output.Role), nil
}

// CreateServiceLinkedRole creates the service-linked role for the given
// service. AWS assigns the role name; the response carries the identity.
func (r *Repository) CreateServiceLinkedRole(ctx context.Context, serviceName string) (*iam.ServiceLinkedRole, error) {
	recorder := metrics.NewAWSAPIMetricsRecorder(metrics.OperationCreateServiceLinkedRole)
	output, err := r.client.CreateServiceLinkedRole(ctx, &awsiam.CreateServiceLinkedRoleInput{
		AWSServiceName: aws.String(serviceName),
	})
	recorder.Record(err)
	if err != nil {
		return nil, fmt.Errorf("failed to create service-linked role: %w", err)
	}

	role := roleFromAPI(output.Role)
	role.ServiceName = serviceName
	return role, nil
}

func roleFromAPI(apiRole *types.Role) *iam.ServiceLinkedRole {
	if apiRole == nil {
		return &iam.ServiceLinkedRole{}
	}

	role := &iam.ServiceLinkedRole{
		RoleName: aws.ToString(apiRole.RoleName),
		RoleArn:  aws.ToString(apiRole.Arn),
		RoleId:   aws.ToString(apiRole.RoleId),
	}

	if apiRole.CreateDate != nil {
		t := *apiRole.CreateDate
		role.CreatedAt = &t
	}

	return role
}
