package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/worklog-hq/timesheet-backend-go/internal/config"
	"github.com/worklog-hq/timesheet-backend-go/internal/handler/http/middleware"
	"github.com/worklog-hq/timesheet-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	userHandler UserHandler,
	projectHandler ProjectHandler,
	assignmentHandler AssignmentHandler,
	timesheetHandler TimesheetHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timesheet-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
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
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/me", userHandler.Me)

			r.Route("/timesheets", func(r chi.Router) {
				r.Post("/", timesheetHandler.Create)
				r.Get("/my", timesheetHandler.GetMy)
				r.Post("/submit", timesheetHandler.Submit)
				r.Get("/{id}", timesheetHandler.Get)
				r.Put("/{id}", timesheetHandler.Update)
				r.Delete("/{id}", timesheetHandler.Delete)

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/pending", timesheetHandler.ListPending)
					r.Post("/{id}/approve", timesheetHandler.Approve)
					r.Post("/{id}/reject", timesheetHandler.Reject)
				})
			})

			r.Route("/projects", func(r chi.Router) {
				r.Get("/", projectHandler.List)
				r.Get("/{id}", projectHandler.Get)

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", projectHandler.Create)
					r.Put("/{id}", projectHandler.Update)
					r.Post("/{id}/activate", projectHandler.Activate)
					r.Post("/{id}/deactivate", projectHandler.Deactivate)
				})
			})

			r.Route("/assignments", func(r chi.Router) {
				r.Get("/my", assignmentHandler.GetMy)

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/", assignmentHandler.List)
					r.Post("/", assignmentHandler.Create)
					r.Post("/batch", assignmentHandler.CreateBatch)
					r.Put("/{id}", assignmentHandler.Update)
					r.Delete("/{id}", assignmentHandler.Delete)
				})
			})

			// Manager only
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireManager)
				r.Get("/employees", userHandler.ListEmployees)
				r.Post("/users", userHandler.Create)

				r.Route("/reports", func(r chi.Router) {
					r.Get("/employee-hours", reportHandler.EmployeeHours)
					r.Get("/project-hours", reportHandler.ProjectHours)
					r.Get("/billable-summary", reportHandler.BillableSummary)
				})
			})
		})
	})
	return r
}
