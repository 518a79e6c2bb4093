package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/attendsys/attendance-backend-go/internal/domain/employee"
	"github.com/attendsys/attendance-backend-go/internal/handler/http/middleware"
	"github.com/attendsys/attendance-backend-go/internal/handler/http/response"
	employeeService "github.com/attendsys/attendance-backend-go/internal/service/employee"
	"github.com/go-chi/chi/v5"
)

type EmployeeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	GetMe(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Deactivate(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService *employeeService.Service
}

func NewEmployeeHandler(service *employeeService.Service) EmployeeHandler {
	return &EmployeeHandlerImpl{employeeService: service}
}

// Create implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create employee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	emp, err := h.employeeService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created successfully", employee.ToEmployeeResponse(emp))
}

// Get implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	emp, err := h.employeeService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, employee.ToEmployeeResponse(emp))
}

// GetMe implements EmployeeHandler.
func (h *EmployeeHandlerImpl) GetMe(w http.ResponseWriter, r *http.Request) {
	actor := middleware.Actor(r.Context())

	emp, err := h.employeeService.GetByID(r.Context(), actor.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, employee.ToEmployeeResponse(emp))
}

// List implements EmployeeHandler.
func (h *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employeeService.GetAll(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]employee.EmployeeResponse, len(employees))
	for i, emp := range employees {
		responses[i] = employee.ToEmployeeResponse(emp)
	}

	response.Success(w, responses)
}

// Update implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update employee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	emp, err := h.employeeService.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated successfully", employee.ToEmployeeResponse(emp))
}

// Deactivate implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Deactivate(w http.ResponseWriter, r *http.Request) {
	if err := h.employeeService.Deactivate(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deactivated successfully", nil)
}
