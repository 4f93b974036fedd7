package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/intek-hris/attendance-backend-go/internal/config"
	domainAttendance "github.com/intek-hris/attendance-backend-go/internal/domain/attendance"
	domainEmployee "github.com/intek-hris/attendance-backend-go/internal/domain/employee"
	domainEvent "github.com/intek-hris/attendance-backend-go/internal/domain/event"
	domainLeave "github.com/intek-hris/attendance-backend-go/internal/domain/leave"
	domainNotification "github.com/intek-hris/attendance-backend-go/internal/domain/notification"
	"github.com/intek-hris/attendance-backend-go/internal/fixtures"
	appHTTP "github.com/intek-hris/attendance-backend-go/internal/handler/http"
	"github.com/intek-hris/attendance-backend-go/internal/pkg/cron"
	"github.com/intek-hris/attendance-backend-go/internal/pkg/database"
	"github.com/intek-hris/attendance-backend-go/internal/pkg/email"
	"github.com/intek-hris/attendance-backend-go/internal/pkg/jwt"
	"github.com/intek-hris/attendance-backend-go/internal/pkg/oauth"
	"github.com/intek-hris/attendance-backend-go/internal/pkg/sse"
	"github.com/intek-hris/attendance-backend-go/internal/repository/memory"
	"github.com/intek-hris/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/intek-hris/attendance-backend-go/internal/service/attendance"
	authService "github.com/intek-hris/attendance-backend-go/internal/service/auth"
	dashboardService "github.com/intek-hris/attendance-backend-go/internal/service/dashboard"
	employeeService "github.com/intek-hris/attendance-backend-go/internal/service/employee"
	eventService "github.com/intek-hris/attendance-backend-go/internal/service/event"
	leaveService "github.com/intek-hris/attendance-backend-go/internal/service/leave"
	notificationService "github.com/intek-hris/attendance-backend-go/internal/service/notification"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	var (
		employeeRepo     domainEmployee.EmployeeRepository
		attendanceRepo   domainAttendance.AttendanceRepository
		leaveRequestRepo domainLeave.LeaveRequestRepository
		notificationRepo domainNotification.Repository
		eventRepo        domainEvent.EventRepository
		transactor       domainLeave.Transactor
	)

	switch cfg.Store.Driver {
	case "memory":
		store := memory.NewStore()
		employeeRepo = memory.NewEmployeeRepository(store)
		attendanceRepo = memory.NewAttendanceRepository(store)
		leaveRequestRepo = memory.NewLeaveRequestRepository(store)
		notificationRepo = memory.NewNotificationRepository(store)
		eventRepo = memory.NewEventRepository(store)
		transactor = memory.NewTransactor(store)
	case "postgres":
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			fmt.Println("Error connecting to database:", err)
			return
		}
		employeeRepo = postgresql.NewEmployeeRepository(db)
		attendanceRepo = postgresql.NewAttendanceRepository(db)
		leaveRequestRepo = postgresql.NewLeaveRequestRepository(db)
		notificationRepo = postgresql.NewNotificationRepository(db)
		eventRepo = postgresql.NewEventRepository(db)
		transactor = postgresql.NewTransactor(db)
	default:
		log.Fatal("Unsupported store driver: ", cfg.Store.Driver)
	}

	// The memory driver starts empty every boot, so seed the demo data.
	if cfg.Store.Driver == "memory" {
		err := fixtures.Seed(context.Background(), fixtures.Repositories{
			Employees:     employeeRepo,
			Attendance:    attendanceRepo,
			Notifications: notificationRepo,
			Events:        eventRepo,
		})
		if err != nil {
			log.Fatal("Failed to seed store: ", err)
		}
	}

	jwtService := jwt.NewJWTService(cfg.Session.Secret, cfg.Session.Expiration)
	googleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	hub := sse.NewHub()

	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service: ", err)
	}

	notifSvc := notificationService.NewNotificationService(notificationRepo, hub)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRequestRepo, employeeRepo, transactor, notifSvc, emailService)
	eventSvc := eventService.NewEventService(eventRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	authSvc := authService.NewAuthService(employeeRepo)
	dashboardSvc := dashboardService.NewDashboardService(employeeRepo, attendanceRepo, leaveRequestRepo)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceRepo, employeeRepo, notifSvc).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(jwtService, appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(authSvc, jwtService, googleService, cfg.App.FrontendURL),
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:        appHTTP.NewLeaveHandler(leaveSvc),
		Notification: appHTTP.NewNotificationHandler(notifSvc, hub),
		Event:        appHTTP.NewEventHandler(eventSvc),
		Employee:     appHTTP.NewEmployeeHandler(employeeSvc),
		Dashboard:    appHTTP.NewDashboardHandler(dashboardSvc),
	}, cfg.App.FrontendURL, cfg.App.Env)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
