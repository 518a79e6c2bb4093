package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/attendsys/attendance-backend-go/internal/domain/leave"
	"github.com/attendsys/attendance-backend-go/internal/handler/http/middleware"
	"github.com/attendsys/attendance-backend-go/internal/handler/http/response"
	leaveService "github.com/attendsys/attendance-backend-go/internal/service/leave"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	CreateType(w http.ResponseWriter, r *http.Request)
	GetType(w http.ResponseWriter, r *http.Request)
	ListTypes(w http.ResponseWriter, r *http.Request)
	UpdateType(w http.ResponseWriter, r *http.Request)
	DeleteType(w http.ResponseWriter, r *http.Request)

	GetMyBalances(w http.ResponseWriter, r *http.Request)
	ListBalances(w http.ResponseWriter, r *http.Request)

	CreateRequest(w http.ResponseWriter, r *http.Request)
	GetRequest(w http.ResponseWriter, r *http.Request)
	GetMyRequests(w http.ResponseWriter, r *http.Request)
	ListRequests(w http.ResponseWriter, r *http.Request)
	ListPendingRequests(w http.ResponseWriter, r *http.Request)
	ReviewRequest(w http.ResponseWriter, r *http.Request)
	CancelRequest(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService   *leaveService.Service
	requestService *leaveService.RequestService
}

func NewLeaveHandler(service *leaveService.Service, requestService *leaveService.RequestService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: service, requestService: requestService}
}

// CreateType implements LeaveHandler.
func (h *LeaveHandlerImpl) CreateType(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveTypeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateType decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	leaveType, err := h.leaveService.CreateLeaveType(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave type created successfully", leaveType)
}

// GetType implements LeaveHandler.
func (h *LeaveHandlerImpl) GetType(w http.ResponseWriter, r *http.Request) {
	leaveType, err := h.leaveService.GetLeaveType(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, leaveType)
}

// ListTypes implements LeaveHandler.
func (h *LeaveHandlerImpl) ListTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.leaveService.GetLeaveTypes(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, types)
}

// UpdateType implements LeaveHandler.
func (h *LeaveHandlerImpl) UpdateType(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveTypeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateType decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	leaveType, err := h.leaveService.UpdateLeaveType(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave type updated successfully", leaveType)
}

// DeleteType implements LeaveHandler.
func (h *LeaveHandlerImpl) DeleteType(w http.ResponseWriter, r *http.Request) {
	if err := h.leaveService.DeleteLeaveType(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave type deleted successfully", nil)
}

// GetMyBalances implements LeaveHandler.
func (h *LeaveHandlerImpl) GetMyBalances(w http.ResponseWriter, r *http.Request) {
	actor := middleware.Actor(r.Context())

	balances, err := h.leaveService.GetMyBalances(r.Context(), actor.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]leave.LeaveBalanceResponse, len(balances))
	for i, b := range balances {
		responses[i] = leave.ToLeaveBalanceResponse(b)
	}

	response.Success(w, responses)
}

// ListBalances implements LeaveHandler.
func (h *LeaveHandlerImpl) ListBalances(w http.ResponseWriter, r *http.Request) {
	balances, err := h.leaveService.GetAllBalances(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]leave.LeaveBalanceResponse, len(balances))
	for i, b := range balances {
		responses[i] = leave.ToLeaveBalanceResponse(b)
	}

	response.Success(w, responses)
}

// CreateRequest implements LeaveHandler.
func (h *LeaveHandlerImpl) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveRequestRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	actor := middleware.Actor(r.Context())

	request, err := h.requestService.CreateRequest(r.Context(), actor, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted successfully", leave.ToLeaveRequestResponse(request))
}

// GetRequest implements LeaveHandler.
func (h *LeaveHandlerImpl) GetRequest(w http.ResponseWriter, r *http.Request) {
	actor := middleware.Actor(r.Context())

	request, err := h.requestService.GetRequest(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, leave.ToLeaveRequestResponse(request))
}

// GetMyRequests implements LeaveHandler.
func (h *LeaveHandlerImpl) GetMyRequests(w http.ResponseWriter, r *http.Request) {
	actor := middleware.Actor(r.Context())

	requests, err := h.requestService.GetMyRequests(r.Context(), actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]leave.LeaveRequestResponse, len(requests))
	for i, req := range requests {
		responses[i] = leave.ToLeaveRequestResponse(req)
	}

	response.Success(w, responses)
}

// ListRequests implements LeaveHandler.
func (h *LeaveHandlerImpl) ListRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.requestService.GetAllRequests(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// ListPendingRequests implements LeaveHandler.
func (h *LeaveHandlerImpl) ListPendingRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.requestService.GetPendingRequests(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// ReviewRequest implements LeaveHandler.
func (h *LeaveHandlerImpl) ReviewRequest(w http.ResponseWriter, r *http.Request) {
	var req leave.ReviewLeaveRequestRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ReviewRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	actor := middleware.Actor(r.Context())

	request, err := h.requestService.Review(r.Context(), actor, chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request reviewed successfully", leave.ToLeaveRequestResponse(request))
}

// CancelRequest implements LeaveHandler.
func (h *LeaveHandlerImpl) CancelRequest(w http.ResponseWriter, r *http.Request) {
	actor := middleware.Actor(r.Context())

	if err := h.requestService.CancelRequest(r.Context(), actor, chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request cancelled successfully", nil)
}
