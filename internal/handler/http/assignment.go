package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/worklog-hq/timesheet-backend-go/internal/domain/assignment"
	"github.com/worklog-hq/timesheet-backend-go/internal/handler/http/middleware"
	"github.com/worklog-hq/timesheet-backend-go/internal/handler/http/response"
)

type AssignmentHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	CreateBatch(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetMy(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type AssignmentHandlerImpl struct {
	assignmentService assignment.AssignmentService
}

func NewAssignmentHandler(assignmentService assignment.AssignmentService) AssignmentHandler {
	return &AssignmentHandlerImpl{assignmentService: assignmentService}
}

// Create implements AssignmentHandler.
func (h *AssignmentHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req assignment.CreateAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	a, err := h.assignmentService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Assignment created successfully", toAssignmentResponse(a))
}

// CreateBatch implements AssignmentHandler.
func (h *AssignmentHandlerImpl) CreateBatch(w http.ResponseWriter, r *http.Request) {
	var reqs []assignment.CreateAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if len(reqs) == 0 {
		response.BadRequest(w, "At least one assignment is required", nil)
		return
	}

	created, err := h.assignmentService.CreateBatch(r.Context(), reqs)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]assignment.AssignmentResponse, 0, len(created))
	for _, a := range created {
		responses = append(responses, toAssignmentResponse(a))
	}
	response.Created(w, "Assignments created successfully", responses)
}

// List implements AssignmentHandler.
func (h *AssignmentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	assignments, err := h.assignmentService.ListActive(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]assignment.AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		responses = append(responses, toAssignmentResponse(a))
	}
	response.Success(w, responses)
}

// GetMy implements AssignmentHandler.
func (h *AssignmentHandlerImpl) GetMy(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.UserID(r)
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}

	assignments, err := h.assignmentService.ListActiveByUser(r.Context(), actorID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]assignment.AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		responses = append(responses, toAssignmentResponse(a))
	}
	response.Success(w, responses)
}

// Update implements AssignmentHandler.
func (h *AssignmentHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Assignment ID is required", nil)
		return
	}

	var req assignment.UpdateAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	a, err := h.assignmentService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Assignment updated successfully", toAssignmentResponse(a))
}

// Delete implements AssignmentHandler.
func (h *AssignmentHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Assignment ID is required", nil)
		return
	}

	if err := h.assignmentService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Assignment deleted successfully", nil)
}

func toAssignmentResponse(a assignment.ProjectAssignment) assignment.AssignmentResponse {
	resp := assignment.AssignmentResponse{
		ID:          a.ID,
		UserID:      a.UserID,
		UserName:    a.UserName,
		ProjectID:   a.ProjectID,
		ProjectName: a.ProjectName,
		ProjectCode: a.ProjectCode,
		StartDate:   a.StartDate.Format("2006-01-02"),
		IsActive:    a.IsActive,
	}
	if a.EndDate != nil {
		s := a.EndDate.Format("2006-01-02")
		resp.EndDate = &s
	}
	return resp
}
