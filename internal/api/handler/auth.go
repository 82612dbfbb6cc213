package handler

import (
	"encoding/json"
	"net/http"

	"github.com/wortle/wortle-server/internal/api/apierr"
	"github.com/wortle/wortle-server/internal/api/request"
	"github.com/wortle/wortle-server/internal/api/response"
	"github.com/wortle/wortle-server/internal/services/identity"
)

// AuthHandler handles the identity endpoint
type AuthHandler struct {
	identityService *identity.Service
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(identityService *identity.Service) *AuthHandler {
	return &AuthHandler{
		identityService: identityService,
	}
}

// ResolveGoogle handles POST /api/v1/auth/google
func (h *AuthHandler) ResolveGoogle(w http.ResponseWriter, r *http.Request) {
	var req request.AuthGoogleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Missing access_token"))
		return
	}

	if req.AccessToken == "" {
		WriteError(w, NewInvalidRequestError("Missing access_token"))
		return
	}

	profile, err := h.identityService.Resolve(r.Context(), req.AccessToken)
	if err != nil {
		// Verification and store failures alike surface as one generic
		// authentication failure with a diagnostic detail
		WriteError(w, apierr.NewAuthFailedError(err))
		return
	}

	response.JSON(w, http.StatusOK, response.AuthResponse{User: response.UserFromModel(profile)})
}
