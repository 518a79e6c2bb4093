package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/attendsys/attendance-backend-go/internal/domain/notification"
	"github.com/attendsys/attendance-backend-go/internal/handler/http/middleware"
	"github.com/attendsys/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type NotificationHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	UnreadCount(w http.ResponseWriter, r *http.Request)
	MarkAsRead(w http.ResponseWriter, r *http.Request)
	MarkAllAsRead(w http.ResponseWriter, r *http.Request)
	Stream(w http.ResponseWriter, r *http.Request)
}

type NotificationHandlerImpl struct {
	notifService notification.Service
}

func NewNotificationHandler(service notification.Service) NotificationHandler {
	return &NotificationHandlerImpl{notifService: service}
}

// List implements NotificationHandler.
func (h *NotificationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	actor := middleware.Actor(r.Context())
	unreadOnly := r.URL.Query().Get("unread_only") == "true"

	notifications, err := h.notifService.List(r.Context(), actor.EmployeeID, unreadOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, notifications)
}

// UnreadCount implements NotificationHandler.
func (h *NotificationHandlerImpl) UnreadCount(w http.ResponseWriter, r *http.Request) {
	actor := middleware.Actor(r.Context())

	count, err := h.notifService.UnreadCount(r.Context(), actor.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]int{"unread_count": count})
}

// MarkAsRead implements NotificationHandler.
func (h *NotificationHandlerImpl) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	actor := middleware.Actor(r.Context())

	if err := h.notifService.MarkAsRead(r.Context(), actor.EmployeeID, chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Notification marked as read", nil)
}

// MarkAllAsRead implements NotificationHandler.
func (h *NotificationHandlerImpl) MarkAllAsRead(w http.ResponseWriter, r *http.Request) {
	actor := middleware.Actor(r.Context())

	if err := h.notifService.MarkAllAsRead(r.Context(), actor.EmployeeID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "All notifications marked as read", nil)
}

// Stream implements NotificationHandler. It keeps an SSE connection open and
// pushes notifications as they are created.
func (h *NotificationHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	actor := middleware.Actor(r.Context())

	flusher, ok := w.(http.Flusher)
	if !ok {
		response.InternalServerError(w, "Streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	events, cleanup := h.notifService.Subscribe(r.Context(), actor.EmployeeID)
	defer cleanup()

	fmt.Fprintf(w, "event: connected\ndata: {\"status\":\"connected\",\"employee_id\":\"%s\"}\n\n", actor.EmployeeID)
	flusher.Flush()

	keepalive := time.NewTicker(30 * time.Second)
	defer keepalive.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(event)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: notification\ndata: %s\n\n", data)
			flusher.Flush()

		case <-keepalive.C:
			fmt.Fprintf(w, "event: ping\ndata: {\"timestamp\":%d}\n\n", time.Now().Unix())
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}
