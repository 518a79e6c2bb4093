package http

import (
	"net/http"

	"github.com/attendsys/attendance-backend-go/internal/domain/attendance"
	"github.com/attendsys/attendance-backend-go/internal/handler/http/middleware"
	"github.com/attendsys/attendance-backend-go/internal/handler/http/response"
	attendanceService "github.com/attendsys/attendance-backend-go/internal/service/attendance"
)

type AttendanceHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	GetMyLogs(w http.ResponseWriter, r *http.Request)
	ListLogs(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService *attendanceService.Service
}

func NewAttendanceHandler(service *attendanceService.Service) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: service}
}

// ClockIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	actor := middleware.Actor(r.Context())

	log, err := h.attendanceService.ClockIn(r.Context(), actor.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Clocked in", attendance.ToAttendanceLogResponse(log))
}

// ClockOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	actor := middleware.Actor(r.Context())

	log, err := h.attendanceService.ClockOut(r.Context(), actor.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Clocked out", attendance.ToAttendanceLogResponse(log))
}

// GetMyLogs implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetMyLogs(w http.ResponseWriter, r *http.Request) {
	actor := middleware.Actor(r.Context())

	logs, err := h.attendanceService.GetMyLogs(r.Context(), actor.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]attendance.AttendanceLogResponse, len(logs))
	for i, log := range logs {
		responses[i] = attendance.ToAttendanceLogResponse(log)
	}

	response.Success(w, responses)
}

// ListLogs implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListLogs(w http.ResponseWriter, r *http.Request) {
	logs, err := h.attendanceService.GetAllLogs(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]attendance.AttendanceLogResponse, len(logs))
	for i, log := range logs {
		responses[i] = attendance.ToAttendanceLogResponse(log)
	}

	response.Success(w, responses)
}
