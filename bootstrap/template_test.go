package bootstrap_test

import (
	"encoding/json"
	"testing"

	"github.com/jeffscottlevine/aws-idempotent-create-service-linked-role/bootstrap"
)

func TestCFTemplate_IsValidJSON(t *testing.T) {
	var template struct {
		Resources map[string]struct {
			Type string `json:"Type"`
		} `json:"Resources"`
		Outputs map[string]json.RawMessage `json:"Outputs"`
	}
	if err := json.Unmarshal([]byte(bootstrap.CFTemplate), &template); err != nil {
		t.Fatalf("template is not valid JSON: %v", err)
	}

	for name, resourceType := range map[string]string{
		"FunctionRole":                    "AWS::IAM::Role",
		"EnsureServiceLinkedRoleFunction": "AWS::Lambda::Function",
		"ServiceLinkedRole":               "Custom::ServiceLinkedRole",
	} {
		resource, ok := template.Resources[name]
		if !ok {
			t.Errorf("missing resource %s", name)
			continue
		}
		if resource.Type != resourceType {
			t.Errorf("resource %s has type %q, want %q", name, resource.Type, resourceType)
		}
	}

	for _, output := range []string{"RoleArn", "RoleId"} {
		if _, ok := template.Outputs[output]; !ok {
			t.Errorf("missing output %s", output)
		}
	}
}
