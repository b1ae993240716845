package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	slrhandler "github.com/jeffscottlevine/aws-idempotent-create-service-linked-role/handler"
	domainiam "github.com/jeffscottlevine/aws-idempotent-create-service-linked-role/internal/domain/iam"
	"github.com/jeffscottlevine/aws-idempotent-create-service-linked-role/pkg/api"
)

type staticEnsurer struct {
	role *domainiam.ServiceLinkedRole
}

func (s *staticEnsurer) EnsureRole(ctx context.Context, serviceName string) (*domainiam.ServiceLinkedRole, error) {
	return s.role, nil
}

func newTestServer() *api.Server {
	ensurer := &staticEnsurer{
		role: &domainiam.ServiceLinkedRole{
			ServiceName: "inspector.amazonaws.com",
			RoleName:    "AWSServiceRoleForAmazonInspector",
			RoleArn:     "arn:aws:iam::123456789012:role/aws-service-role/inspector.amazonaws.com/AWSServiceRoleForAmazonInspector",
			RoleId:      "AROAEXAMPLE",
		},
	}
	resource := slrhandler.New(ensurer, zap.NewNop())
	return api.NewServer(":0", resource, zap.NewNop())
}

func TestHealth(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
}

func TestInvoke_Create(t *testing.T) {
	srv := newTestServer()

	body := `{"RequestType":"Create","LogicalResourceId":"InspectorSLR","ResourceProperties":{"AWSServiceName":"inspector.amazonaws.com"}}`
	req := httptest.NewRequest(http.MethodPost, "/invoke", strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", rec.Code, rec.Body.String())
	}

	var resp api.InvokeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Status != "SUCCESS" {
		t.Errorf("unexpected status %q (reason: %s)", resp.Status, resp.Reason)
	}
	if resp.Data["RoleId"] != "AROAEXAMPLE" {
		t.Errorf("unexpected data: %v", resp.Data)
	}
	if resp.PhysicalResourceID != "AWSServiceRoleForAmazonInspector" {
		t.Errorf("unexpected physical resource id %q", resp.PhysicalResourceID)
	}
}

func TestInvoke_Delete(t *testing.T) {
	srv := newTestServer()

	body := `{"RequestType":"Delete","LogicalResourceId":"InspectorSLR","PhysicalResourceId":"AWSServiceRoleForAmazonInspector"}`
	req := httptest.NewRequest(http.MethodPost, "/invoke", strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	var resp api.InvokeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Status != "SUCCESS" {
		t.Errorf("unexpected status %q", resp.Status)
	}
	if len(resp.Data) != 0 {
		t.Errorf("expected empty data on delete, got %v", resp.Data)
	}
}

func TestInvoke_BadPayload(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/invoke", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status %d", rec.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
}
