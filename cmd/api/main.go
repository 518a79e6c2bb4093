package main

import (
	"fmt"
	"net/http"

	"github.com/attendsys/attendance-backend-go/internal/config"
	appHTTP "github.com/attendsys/attendance-backend-go/internal/handler/http"
	"github.com/attendsys/attendance-backend-go/internal/pkg/database"
	"github.com/attendsys/attendance-backend-go/internal/pkg/jwt"
	"github.com/attendsys/attendance-backend-go/internal/pkg/sse"
	"github.com/attendsys/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/attendsys/attendance-backend-go/internal/service/attendance"
	serviceAuth "github.com/attendsys/attendance-backend-go/internal/service/auth"
	employeeService "github.com/attendsys/attendance-backend-go/internal/service/employee"
	"github.com/attendsys/attendance-backend-go/internal/service/leave"
	notificationService "github.com/attendsys/attendance-backend-go/internal/service/notification"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	txManager := postgresql.NewTxManager(db)

	employeeRepo := postgresql.NewEmployeeRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)
	leaveTypeRepo := postgresql.NewLeaveTypeRepository(db)
	leaveBalanceRepo := postgresql.NewLeaveBalanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	hub := sse.NewHub()

	notifService := notificationService.NewNotificationService(notificationRepo, hub, notificationService.Config{})
	defer notifService.Stop()

	authService := serviceAuth.NewAuthService(txManager, employeeRepo, refreshTokenRepo, jwtService)
	empService := employeeService.NewService(employeeRepo)
	leaveSvc := leave.NewService(leaveTypeRepo, leaveBalanceRepo)
	requestService := leave.NewRequestService(txManager, leaveTypeRepo, leaveBalanceRepo, leaveRequestRepo, notifService, cfg.Leave.DefaultDays)
	attendanceSvc := attendanceService.NewService(attendanceRepo)

	authHandler := appHTTP.NewAuthHandler(authService, jwtService)
	employeeHandler := appHTTP.NewEmployeeHandler(empService)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc, requestService)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	notificationHandler := appHTTP.NewNotificationHandler(notifService)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		authHandler,
		employeeHandler,
		leaveHandler,
		attendanceHandler,
		notificationHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
