package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/worklog-hq/timesheet-backend-go/internal/config"
	appHTTP "github.com/worklog-hq/timesheet-backend-go/internal/handler/http"
	"github.com/worklog-hq/timesheet-backend-go/internal/pkg/database"
	"github.com/worklog-hq/timesheet-backend-go/internal/pkg/jwt"
	"github.com/worklog-hq/timesheet-backend-go/internal/repository/postgresql"
	assignmentService "github.com/worklog-hq/timesheet-backend-go/internal/service/assignment"
	serviceAuth "github.com/worklog-hq/timesheet-backend-go/internal/service/auth"
	projectService "github.com/worklog-hq/timesheet-backend-go/internal/service/project"
	reportService "github.com/worklog-hq/timesheet-backend-go/internal/service/report"
	timesheetService "github.com/worklog-hq/timesheet-backend-go/internal/service/timesheet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)
	assignmentRepo := postgresql.NewAssignmentRepository(db)
	timesheetRepo := postgresql.NewTimesheetRepository(db)
	reportRepo := postgresql.NewReportRepository(db)
	txManager := postgresql.NewTxManager(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authService := serviceAuth.NewAuthService(userRepo, JWTService)
	projectSvc := projectService.NewProjectService(projectRepo)
	assignmentSvc := assignmentService.NewAssignmentService(txManager, assignmentRepo, userRepo, projectRepo)
	timesheetValidator := timesheetService.NewValidator(timesheetRepo, assignmentRepo)
	approvalPolicy := timesheetService.NewManagerApprovalPolicy(userRepo)
	timesheetSvc := timesheetService.NewTimesheetService(txManager, timesheetRepo, timesheetValidator, approvalPolicy)
	reportSvc := reportService.NewReportService(reportRepo)

	authHandler := appHTTP.NewAuthHandler(authService, JWTService)
	userHandler := appHTTP.NewUserHandler(userRepo)
	projectHandler := appHTTP.NewProjectHandler(projectSvc)
	assignmentHandler := appHTTP.NewAssignmentHandler(assignmentSvc)
	timesheetHandler := appHTTP.NewTimesheetHandler(timesheetSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		authHandler,
		userHandler,
		projectHandler,
		assignmentHandler,
		timesheetHandler,
		reportHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server starting on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error:", err)
	}
}
