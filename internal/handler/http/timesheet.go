package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/worklog-hq/timesheet-backend-go/internal/domain/timesheet"
	"github.com/worklog-hq/timesheet-backend-go/internal/handler/http/middleware"
	"github.com/worklog-hq/timesheet-backend-go/internal/handler/http/response"
)

type TimesheetHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	GetMy(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
}

type TimesheetHandlerImpl struct {
	timesheetService timesheet.TimesheetService
}

func NewTimesheetHandler(timesheetService timesheet.TimesheetService) TimesheetHandler {
	return &TimesheetHandlerImpl{timesheetService: timesheetService}
}

// Create implements TimesheetHandler.
func (h *TimesheetHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.UserID(r)
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}

	var req timesheet.CreateTimesheetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	ts, err := h.timesheetService.Create(r.Context(), req, actorID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Timesheet created successfully", timesheet.ToResponse(ts))
}

// Update implements TimesheetHandler.
func (h *TimesheetHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.UserID(r)
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Timesheet ID is required", nil)
		return
	}

	var req timesheet.UpdateTimesheetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	ts, err := h.timesheetService.Update(r.Context(), id, req, actorID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Timesheet updated successfully", timesheet.ToResponse(ts))
}

// Delete implements TimesheetHandler.
func (h *TimesheetHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.UserID(r)
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Timesheet ID is required", nil)
		return
	}

	if err := h.timesheetService.Delete(r.Context(), id, actorID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Timesheet deleted successfully", nil)
}

// Submit implements TimesheetHandler.
func (h *TimesheetHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.UserID(r)
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}

	var req timesheet.SubmitTimesheetsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.timesheetService.Submit(r.Context(), req.TimesheetIDs, actorID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Timesheets submitted successfully", nil)
}

// Approve implements TimesheetHandler.
func (h *TimesheetHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.UserID(r)
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Timesheet ID is required", nil)
		return
	}

	ts, err := h.timesheetService.Approve(r.Context(), id, actorID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Timesheet approved", timesheet.ToResponse(ts))
}

// Reject implements TimesheetHandler.
func (h *TimesheetHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.UserID(r)
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Timesheet ID is required", nil)
		return
	}

	var req timesheet.RejectTimesheetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	ts, err := h.timesheetService.Reject(r.Context(), id, req.RejectionComments, actorID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Timesheet rejected", timesheet.ToResponse(ts))
}

// Get implements TimesheetHandler. Owners can read their own entries;
// managers can read anyone's.
func (h *TimesheetHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.UserID(r)
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Timesheet ID is required", nil)
		return
	}

	ts, err := h.timesheetService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if ts.OwnerUserID != actorID && !middleware.IsManager(r) {
		response.HandleError(w, timesheet.ErrNotOwner)
		return
	}

	response.Success(w, timesheet.ToResponse(ts))
}

// GetMy implements TimesheetHandler.
func (h *TimesheetHandlerImpl) GetMy(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.UserID(r)
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}

	timesheets, err := h.timesheetService.ListForUser(r.Context(), actorID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, toResponses(timesheets))
}

// ListPending implements TimesheetHandler.
func (h *TimesheetHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	timesheets, err := h.timesheetService.ListPending(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, toResponses(timesheets))
}

func toResponses(timesheets []timesheet.Timesheet) []timesheet.TimesheetResponse {
	responses := make([]timesheet.TimesheetResponse, 0, len(timesheets))
	for _, ts := range timesheets {
		responses = append(responses, timesheet.ToResponse(ts))
	}
	return responses
}
