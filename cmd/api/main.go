package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/hrworks/hr-backend-go/internal/config"
	appHTTP "github.com/hrworks/hr-backend-go/internal/handler/http"
	"github.com/hrworks/hr-backend-go/internal/pkg/database"
	"github.com/hrworks/hr-backend-go/internal/pkg/jwt"
	"github.com/hrworks/hr-backend-go/internal/pkg/oauth"
	"github.com/hrworks/hr-backend-go/internal/repository/postgresql"
	assignmentService "github.com/hrworks/hr-backend-go/internal/service/assignment"
	authService "github.com/hrworks/hr-backend-go/internal/service/auth"
	notificationService "github.com/hrworks/hr-backend-go/internal/service/notification"
	projectService "github.com/hrworks/hr-backend-go/internal/service/project"
	timesheetService "github.com/hrworks/hr-backend-go/internal/service/timesheet"
	userService "github.com/hrworks/hr-backend-go/internal/service/user"
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

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	userRepo := postgresql.NewUserRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)
	assignmentRepo := postgresql.NewAssignmentRepository(db)
	timesheetRepo := postgresql.NewTimesheetRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)

	// Stale sessions accumulate between deploys; prune them at boot.
	if removed, err := refreshTokenRepo.DeleteExpired(context.Background()); err != nil {
		logger.Warn("failed to prune expired refresh tokens", "error", err)
	} else if removed > 0 {
		logger.Info("pruned expired refresh tokens", "count", removed)
	}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	var GoogleService oauth.GoogleService
	if cfg.GoogleLoginEnabled() {
		GoogleService = oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	}

	notificationSvc := notificationService.NewNotificationService(db, logger, notificationRepo)
	authSvc := authService.NewAuthService(db, userRepo, refreshTokenRepo, JWTService, GoogleService)
	userSvc := userService.NewUserService(db, userRepo, refreshTokenRepo)
	projectSvc := projectService.NewProjectService(db, projectRepo, userRepo)
	assignmentSvc := assignmentService.NewAssignmentService(db, assignmentRepo, userRepo, projectRepo)
	timesheetSvc := timesheetService.NewTimesheetService(db, timesheetRepo, userRepo, assignmentRepo, notificationSvc)

	handlers := appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(JWTService, authSvc, cfg.App.FrontendURL),
		User:         appHTTP.NewUserHandler(userSvc),
		Project:      appHTTP.NewProjectHandler(projectSvc),
		Assignment:   appHTTP.NewAssignmentHandler(assignmentSvc),
		Timesheet:    appHTTP.NewTimesheetHandler(timesheetSvc),
		Manager:      appHTTP.NewManagerHandler(userSvc, timesheetSvc),
		Notification: appHTTP.NewNotificationHandler(notificationSvc),
	}

	router := appHTTP.NewRouter(cfg, JWTService, handlers)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
