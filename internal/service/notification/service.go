package notification

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/attendsys/attendance-backend-go/internal/domain/notification"
	"github.com/attendsys/attendance-backend-go/internal/pkg/sse"
	"github.com/google/uuid"
)

// Config holds notification service configuration
type Config struct {
	BatchSize     int           // default: 100
	FlushInterval time.Duration // default: 5 seconds
	WorkerCount   int           // default: 2
	QueueSize     int           // default: 1000
}

type queuedNotification struct {
	EmployeeID string
	Title      string
	Message    string
}

type service struct {
	repo   notification.Repository
	hub    *sse.Hub
	config Config

	queue  chan queuedNotification
	wg     sync.WaitGroup
	stopCh chan struct{}
}

// NewNotificationService creates a new notification service with background workers
func NewNotificationService(repo notification.Repository, hub *sse.Hub, cfg Config) notification.Service {
	if cfg.BatchSize == 0 {
		cfg.BatchSize = 100
	}
	if cfg.FlushInterval == 0 {
		cfg.FlushInterval = 5 * time.Second
	}
	if cfg.WorkerCount == 0 {
		cfg.WorkerCount = 2
	}
	if cfg.QueueSize == 0 {
		cfg.QueueSize = 1000
	}

	s := &service{
		repo:   repo,
		hub:    hub,
		config: cfg,
		queue:  make(chan queuedNotification, cfg.QueueSize),
		stopCh: make(chan struct{}),
	}

	for i := 0; i < cfg.WorkerCount; i++ {
		s.wg.Add(1)
		go s.worker(i)
	}

	log.Printf("[NotificationService] Started with %d workers, batch size %d, flush interval %v",
		cfg.WorkerCount, cfg.BatchSize, cfg.FlushInterval)

	return s
}

// worker is the background worker that processes the notification queue
func (s *service) worker(id int) {
	defer s.wg.Done()

	batch := make([]queuedNotification, 0, s.config.BatchSize)
	ticker := time.NewTicker(s.config.FlushInterval)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		notifications := make([]*notification.Notification, len(batch))
		for i, req := range batch {
			notifications[i] = &notification.Notification{
				ID:         uuid.New().String(),
				EmployeeID: req.EmployeeID,
				Title:      req.Title,
				Message:    req.Message,
				IsRead:     false,
				CreatedAt:  time.Now(),
			}
		}

		if err := s.repo.CreateBatch(ctx, notifications); err != nil {
			log.Printf("[NotificationWorker-%d] Failed to batch insert: %v", id, err)
		} else {
			for _, n := range notifications {
				s.hub.Publish(n.EmployeeID, sse.Event{
					EmployeeID: n.EmployeeID,
					Event:      "notification",
					Data:       notification.ToResponse(n),
				})
			}
		}

		batch = batch[:0]
	}

	for {
		select {
		case req := <-s.queue:
			batch = append(batch, req)
			if len(batch) >= s.config.BatchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		case <-s.stopCh:
			flush()
			return
		}
	}
}

// Enqueue queues a notification for async processing. Delivery problems are
// logged and swallowed; the triggering operation already succeeded.
func (s *service) Enqueue(ctx context.Context, employeeID, title, message string) {
	req := queuedNotification{EmployeeID: employeeID, Title: title, Message: message}

	select {
	case s.queue <- req:
	default:
		// Queue full, fall back to a direct insert
		if err := s.directInsert(ctx, req); err != nil {
			log.Printf("[NotificationService] Failed to deliver notification for %s: %v", employeeID, err)
		}
	}
}

// directInsert inserts a notification directly when the queue is full
func (s *service) directInsert(ctx context.Context, req queuedNotification) error {
	n := &notification.Notification{
		ID:         uuid.New().String(),
		EmployeeID: req.EmployeeID,
		Title:      req.Title,
		Message:    req.Message,
		IsRead:     false,
		CreatedAt:  time.Now(),
	}

	if err := s.repo.Create(ctx, n); err != nil {
		return err
	}

	s.hub.Publish(n.EmployeeID, sse.Event{
		EmployeeID: n.EmployeeID,
		Event:      "notification",
		Data:       notification.ToResponse(n),
	})

	return nil
}

// List retrieves notifications for an employee
func (s *service) List(ctx context.Context, employeeID string, unreadOnly bool) ([]notification.NotificationResponse, error) {
	notifications, err := s.repo.GetByEmployee(ctx, employeeID, unreadOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]notification.NotificationResponse, len(notifications))
	for i, n := range notifications {
		responses[i] = notification.ToResponse(n)
	}

	return responses, nil
}

// UnreadCount returns the count of unread notifications
func (s *service) UnreadCount(ctx context.Context, employeeID string) (int, error) {
	return s.repo.GetUnreadCount(ctx, employeeID)
}

// MarkAsRead marks one notification as read
func (s *service) MarkAsRead(ctx context.Context, employeeID, notificationID string) error {
	return s.repo.MarkAsRead(ctx, notificationID, employeeID)
}

// MarkAllAsRead marks all notifications as read for an employee
func (s *service) MarkAllAsRead(ctx context.Context, employeeID string) error {
	return s.repo.MarkAllAsRead(ctx, employeeID)
}

// Subscribe creates an SSE subscription for an employee
func (s *service) Subscribe(ctx context.Context, employeeID string) (<-chan notification.NotificationResponse, func()) {
	ch, cleanup := s.hub.Subscribe(employeeID)

	out := make(chan notification.NotificationResponse, 10)

	go func() {
		defer close(out)
		for {
			select {
			case event, ok := <-ch:
				if !ok {
					return
				}
				if resp, ok := event.Data.(notification.NotificationResponse); ok {
					out <- resp
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, cleanup
}

// Stop gracefully stops the notification service
func (s *service) Stop() {
	close(s.stopCh)
	s.wg.Wait()
	log.Println("[NotificationService] Stopped")
}
