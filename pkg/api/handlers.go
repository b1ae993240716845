package api

import (
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/cfn"
	"go.uber.org/zap"

	slrhandler "github.com/jeffscottlevine/aws-idempotent-create-service-linked-role/handler"
)

// InvokeResponse espelha a resposta que a função enviaria ao CloudFormation
type InvokeResponse struct {
	Status             string                 `json:"Status"`
	Reason             string                 `json:"Reason,omitempty"`
	PhysicalResourceID string                 `json:"PhysicalResourceId,omitempty"`
	Data               map[string]interface{} `json:"Data,omitempty"`
}

// Handlers agrupa os handlers HTTP do harness
type Handlers struct {
	resource *slrhandler.Handler
	logger   *zap.Logger
}

// NewHandlers cria os handlers
func NewHandlers(resource *slrhandler.Handler, logger *zap.Logger) *Handlers {
	return &Handlers{
		resource: resource,
		logger:   logger,
	}
}

// Health responde o health check
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Invoke executa o handler com um evento no formato do CloudFormation e
// devolve a resposta diretamente, sem o round trip da response URL
func (h *Handlers) Invoke(w http.ResponseWriter, r *http.Request) {
	var event cfn.Event
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		writeJSON(w, http.StatusBadRequest, InvokeResponse{
			Status: string(cfn.StatusFailed),
			Reason: "invalid event payload: " + err.Error(),
		})
		return
	}

	physicalID, data, err := h.resource.Handle(r.Context(), event)
	if err != nil {
		writeJSON(w, http.StatusOK, InvokeResponse{
			Status:             string(cfn.StatusFailed),
			Reason:             err.Error(),
			PhysicalResourceID: physicalID,
		})
		return
	}

	writeJSON(w, http.StatusOK, InvokeResponse{
		Status:             string(cfn.StatusSuccess),
		PhysicalResourceID: physicalID,
		Data:               data,
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
