package http

import (
	"encoding/json"
	"net/http"

	"github.com/worklog-hq/timesheet-backend-go/internal/domain/auth"
	"github.com/worklog-hq/timesheet-backend-go/internal/domain/user"
	"github.com/worklog-hq/timesheet-backend-go/internal/handler/http/middleware"
	"github.com/worklog-hq/timesheet-backend-go/internal/handler/http/response"
	"golang.org/x/crypto/bcrypt"
)

type UserHandler interface {
	Me(w http.ResponseWriter, r *http.Request)
	ListEmployees(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
}

type UserHandlerImpl struct {
	users user.UserRepository
}

func NewUserHandler(users user.UserRepository) UserHandler {
	return &UserHandlerImpl{users: users}
}

// Me implements UserHandler.
func (h *UserHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.UserID(r)
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}

	u, err := h.users.GetByID(r.Context(), actorID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, auth.UserResponse{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Role:     string(u.Role),
		IsActive: u.IsActive,
	})
}

// Create implements UserHandler. Manager-only user provisioning.
func (h *UserHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req user.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		response.InternalServerError(w, "Failed to hash password")
		return
	}

	u, err := h.users.Create(r.Context(), user.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         user.Role(req.Role),
		IsActive:     true,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "User created successfully", auth.UserResponse{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Role:     string(u.Role),
		IsActive: u.IsActive,
	})
}

// ListEmployees implements UserHandler.
func (h *UserHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.users.ListActiveEmployees(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]auth.UserResponse, 0, len(employees))
	for _, u := range employees {
		responses = append(responses, auth.UserResponse{
			ID:       u.ID,
			Name:     u.Name,
			Email:    u.Email,
			Role:     string(u.Role),
			IsActive: u.IsActive,
		})
	}
	response.Success(w, responses)
}
