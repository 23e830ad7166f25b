package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/worklog-hq/timesheet-backend-go/internal/domain/project"
	"github.com/worklog-hq/timesheet-backend-go/internal/handler/http/response"
)

type ProjectHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Activate(w http.ResponseWriter, r *http.Request)
	Deactivate(w http.ResponseWriter, r *http.Request)
}

type ProjectHandlerImpl struct {
	projectService project.ProjectService
}

func NewProjectHandler(projectService project.ProjectService) ProjectHandler {
	return &ProjectHandlerImpl{projectService: projectService}
}

// Create implements ProjectHandler.
func (h *ProjectHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req project.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	p, err := h.projectService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Project created successfully", toProjectResponse(p))
}

// Get implements ProjectHandler.
func (h *ProjectHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Project ID is required", nil)
		return
	}

	p, err := h.projectService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, toProjectResponse(p))
}

// List implements ProjectHandler. ?active=true narrows to active projects.
func (h *ProjectHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	projects, err := h.projectService.List(r.Context(), activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]project.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		responses = append(responses, toProjectResponse(p))
	}
	response.Success(w, responses)
}

// Update implements ProjectHandler.
func (h *ProjectHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Project ID is required", nil)
		return
	}

	var req project.UpdateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	p, err := h.projectService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Project updated successfully", toProjectResponse(p))
}

// Activate implements ProjectHandler.
func (h *ProjectHandlerImpl) Activate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Project ID is required", nil)
		return
	}

	if err := h.projectService.Activate(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Project activated", nil)
}

// Deactivate implements ProjectHandler.
func (h *ProjectHandlerImpl) Deactivate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Project ID is required", nil)
		return
	}

	if err := h.projectService.Deactivate(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Project deactivated", nil)
}

func toProjectResponse(p project.Project) project.ProjectResponse {
	resp := project.ProjectResponse{
		ID:         p.ID,
		Code:       p.Code,
		Name:       p.Name,
		ClientName: p.ClientName,
		IsBillable: p.IsBillable,
		IsActive:   p.IsActive,
		CreatedAt:  p.CreatedAt.Format(time.RFC3339),
	}
	if p.UpdatedAt != nil {
		s := p.UpdatedAt.Format(time.RFC3339)
		resp.UpdatedAt = &s
	}
	return resp
}
