package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/attendhub/attendhub-backend-go/internal/config"
	"github.com/attendhub/attendhub-backend-go/internal/fixtures"
	appHTTP "github.com/attendhub/attendhub-backend-go/internal/handler/http"
	"github.com/attendhub/attendhub-backend-go/internal/pkg/database"
	"github.com/attendhub/attendhub-backend-go/internal/pkg/jwt"
	"github.com/attendhub/attendhub-backend-go/internal/pkg/sse"
	"github.com/attendhub/attendhub-backend-go/internal/repository/postgresql"
	attendanceService "github.com/attendhub/attendhub-backend-go/internal/service/attendance"
	correctionService "github.com/attendhub/attendhub-backend-go/internal/service/correction"
	leaveService "github.com/attendhub/attendhub-backend-go/internal/service/leave"
	notificationService "github.com/attendhub/attendhub-backend-go/internal/service/notification"
	userService "github.com/attendhub/attendhub-backend-go/internal/service/user"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

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

	ctx := context.Background()

	userRepo := postgresql.NewUserRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	correctionRepo := postgresql.NewCorrectionRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)

	if err := holidayRepo.Seed(ctx, fixtures.DefaultHolidays2026()); err != nil {
		logger.Warn("failed to seed holiday calendar", slog.Any("error", err))
	}

	verifier := jwt.NewVerifier(cfg.JWT.Secret)
	hub := sse.NewHub()

	notifSvc := notificationService.NewService(ctx, notificationRepo, hub, logger)
	userSvc := userService.NewService(userRepo)
	attendanceSvc := attendanceService.NewService(attendanceRepo, userRepo, holidayRepo, correctionRepo)
	leaveSvc := leaveService.NewService(leaveRequestRepo, userRepo, notifSvc)
	correctionSvc := correctionService.NewService(
		correctionRepo,
		attendanceRepo,
		userRepo,
		notifSvc,
		func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	)

	userHandler := appHTTP.NewUserHandler(userSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	correctionHandler := appHTTP.NewCorrectionHandler(correctionSvc)
	notificationHandler := appHTTP.NewNotificationHandler(notifSvc)

	router := appHTTP.NewRouter(
		cfg,
		verifier,
		userHandler,
		attendanceHandler,
		leaveHandler,
		correctionHandler,
		notificationHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
