package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/salarybook/salarybook-backend-go/internal/domain/user"
	"github.com/salarybook/salarybook-backend-go/internal/handler/http/response"
)

type ProfileHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type ProfileHandlerImpl struct {
	userService user.UserService
}

func NewProfileHandler(userService user.UserService) ProfileHandler {
	return &ProfileHandlerImpl{userService: userService}
}

// Get implements ProfileHandler.
func (p *ProfileHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	profile, err := p.userService.GetProfile(r.Context())
	if err != nil {
		slog.Error("GetProfile service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, profile)
}

// Update implements ProfileHandler.
func (p *ProfileHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req user.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateProfile decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	profile, err := p.userService.UpdateProfile(r.Context(), req)
	if err != nil {
		slog.Error("UpdateProfile service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Profile updated successfully", profile)
}
