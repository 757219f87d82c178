package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/attendhub/attendhub-backend-go/internal/config"
	"github.com/attendhub/attendhub-backend-go/internal/handler/http/middleware"
	"github.com/attendhub/attendhub-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	cfg *config.Config,
	verifier *jwt.Verifier,
	userHandler UserHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	correctionHandler CorrectionHandler,
	notificationHandler NotificationHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendhub"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/users/register", userHandler.Register)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(verifier.JWTAuth()))
			r.Use(middleware.AuthRequired(verifier.JWTAuth()))

			r.Route("/users", func(r chi.Router) {
				r.Get("/me", userHandler.GetMe)
				r.Put("/me", userHandler.UpdateMe)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/", userHandler.List)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Put("/{id}/assign", userHandler.Assign)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/check-in", attendanceHandler.CheckIn)
				r.Post("/check-out", attendanceHandler.CheckOut)
				r.Get("/today", attendanceHandler.Today)
				r.Get("/my", attendanceHandler.ListMine)
				r.Get("/calendar", attendanceHandler.Calendar)
				r.Get("/report", attendanceHandler.Report)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/team", attendanceHandler.ListTeam)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Get("/company-report", attendanceHandler.CompanyReport)
				})
			})

			r.Route("/leave-requests", func(r chi.Router) {
				r.Post("/", leaveHandler.Submit)
				r.Get("/", leaveHandler.List)
				r.Put("/{id}", leaveHandler.Edit)
				r.Delete("/{id}", leaveHandler.Delete)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/{id}/approve", leaveHandler.Approve)
					r.Post("/{id}/reject", leaveHandler.Reject)
				})
			})

			r.Route("/corrections", func(r chi.Router) {
				r.Post("/", correctionHandler.Submit)
				r.Get("/", correctionHandler.List)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/{id}/approve", correctionHandler.Approve)
					r.Post("/{id}/reject", correctionHandler.Reject)
				})
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", notificationHandler.List)
				r.Get("/stream", notificationHandler.Stream)
				r.Put("/{id}/read", notificationHandler.MarkRead)
				r.Put("/read-all", notificationHandler.MarkAllRead)
			})
		})
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	return r
}
