package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/nucleobets/backend/internal/api/middleware"
	"github.com/nucleobets/backend/internal/api/request"
	"github.com/nucleobets/backend/internal/api/response"
	"github.com/nucleobets/backend/internal/model"
	"github.com/nucleobets/backend/internal/services/user"
)

// UserHandler handles admin user-management endpoints
type UserHandler struct {
	userService *user.Service
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *user.Service) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// List handles GET /api/v1/admin/users
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.UsersFromModel(users))
}

// Create handles POST /api/v1/admin/users
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Username == "" || req.Password == "" {
		WriteError(w, NewInvalidRequestError("username and password are required"))
		return
	}

	role := model.Role(req.Role)
	if role == "" {
		role = model.RoleUser
	}
	if role != model.RoleUser && role != model.RoleAdmin {
		WriteError(w, NewInvalidRequestError("invalid role"))
		return
	}

	// Admin-created accounts are approved unless stated otherwise
	approved := true
	if req.Approved != nil {
		approved = *req.Approved
	}

	created, err := h.userService.Create(r.Context(), req.Username, req.Email, req.Password, role, approved)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.UserFromModel(created))
}

// Approve handles POST /api/v1/admin/users/{id}/approve
func (h *UserHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id := model.UserID(mux.Vars(r)["id"])

	approved, err := h.userService.Approve(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.UserFromModel(approved))
}

// Deactivate handles POST /api/v1/admin/users/{id}/deactivate
func (h *UserHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	id := model.UserID(mux.Vars(r)["id"])

	deactivated, err := h.userService.Deactivate(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.UserFromModel(deactivated))
}

// Delete handles DELETE /api/v1/admin/users/{id}
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.UserID(mux.Vars(r)["id"])
	actor := middleware.MustGetUser(r.Context())

	if err := h.userService.Delete(r.Context(), actor, id); err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.Message{Message: "User deleted"})
}
