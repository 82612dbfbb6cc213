package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/wortle/wortle-server/internal/api/apierr"
	"github.com/wortle/wortle-server/internal/api/request"
	"github.com/wortle/wortle-server/internal/api/response"
	"github.com/wortle/wortle-server/internal/model"
	"github.com/wortle/wortle-server/internal/services/example"
)

// ExampleHandler handles the generation endpoint
type ExampleHandler struct {
	exampleService *example.Service
}

// NewExampleHandler creates a new example handler
func NewExampleHandler(exampleService *example.Service) *ExampleHandler {
	return &ExampleHandler{
		exampleService: exampleService,
	}
}

// Generate handles POST /api/v1/example
func (h *ExampleHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req request.ExampleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Missing or empty word parameter"))
		return
	}

	word := strings.TrimSpace(req.Word)
	if word == "" {
		WriteError(w, NewInvalidRequestError("Missing or empty word parameter"))
		return
	}

	result, fromCache, err := h.exampleService.Example(r.Context(), request.ClientKey(r), word)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrRateLimited), errors.Is(err, example.ErrNotConfigured):
			WriteError(w, err)
		default:
			WriteError(w, apierr.NewGenerationFailedError(err))
		}
		return
	}

	response.JSON(w, http.StatusOK, response.ExampleResponse{
		FromCache: fromCache,
		Result:    *result,
	})
}
