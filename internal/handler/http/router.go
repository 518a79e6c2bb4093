package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/attendsys/attendance-backend-go/internal/config"
	"github.com/attendsys/attendance-backend-go/internal/handler/http/middleware"
	"github.com/attendsys/attendance-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	leaveHandler LeaveHandler,
	attendanceHandler AttendanceHandler,
	notificationHandler NotificationHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/me", employeeHandler.GetMe)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", employeeHandler.List)
					r.Post("/", employeeHandler.Create)
					r.Get("/{id}", employeeHandler.Get)
					r.Put("/{id}", employeeHandler.Update)
					r.Delete("/{id}", employeeHandler.Deactivate)
				})
			})

			r.Route("/leave-types", func(r chi.Router) {
				r.Get("/", leaveHandler.ListTypes)
				r.Get("/{id}", leaveHandler.GetType)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", leaveHandler.CreateType)
					r.Put("/{id}", leaveHandler.UpdateType)
					r.Delete("/{id}", leaveHandler.DeleteType)
				})
			})

			r.Route("/leave-balances", func(r chi.Router) {
				r.Get("/my", leaveHandler.GetMyBalances)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", leaveHandler.ListBalances)
				})
			})

			r.Route("/leave-requests", func(r chi.Router) {
				r.Post("/", leaveHandler.CreateRequest)
				r.Get("/my", leaveHandler.GetMyRequests)
				r.Get("/{id}", leaveHandler.GetRequest)
				r.Delete("/{id}", leaveHandler.CancelRequest)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", leaveHandler.ListRequests)
					r.Get("/pending", leaveHandler.ListPendingRequests)
					r.Put("/{id}/review", leaveHandler.ReviewRequest)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/clock-in", attendanceHandler.ClockIn)
				r.Post("/clock-out", attendanceHandler.ClockOut)
				r.Get("/my", attendanceHandler.GetMyLogs)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", attendanceHandler.ListLogs)
				})
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", notificationHandler.List)
				r.Get("/unread-count", notificationHandler.UnreadCount)
				r.Get("/stream", notificationHandler.Stream)
				r.Put("/{id}/read", notificationHandler.MarkAsRead)
				r.Put("/read-all", notificationHandler.MarkAllAsRead)
			})
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	return r
}
