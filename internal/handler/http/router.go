package http

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/httprate"
	"github.com/go-chi/jwtauth/v5"
	"github.com/hrworks/hr-backend-go/internal/config"
	"github.com/hrworks/hr-backend-go/internal/domain/user"
	"github.com/hrworks/hr-backend-go/internal/handler/http/middleware"
	"github.com/hrworks/hr-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth         AuthHandler
	User         UserHandler
	Project      ProjectHandler
	Assignment   AssignmentHandler
	Timesheet    TimesheetHandler
	Manager      ManagerHandler
	Notification NotificationHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hr-backend"),
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
			// Credential endpoints are brute-forceable; throttle per IP.
			r.Use(httprate.LimitByIP(20, 1*time.Minute))

			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)

			r.Route("/login/oauth", func(r chi.Router) {
				r.Get("/google", h.Auth.LoginWithGoogle)
			})
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", h.Auth.OAuthCallbackGoogle)
			})

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
				r.Get("/me", h.Auth.Me)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/timesheets", func(r chi.Router) {
				r.Get("/", h.Timesheet.ListOwn)
				r.Post("/", h.Timesheet.Create)
				r.Get("/summary", h.Timesheet.Summarize)

				// Admin and HR see the full ledger
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionTimesheetViewAll))
					r.Get("/all", h.Timesheet.ListAll)
				})

				r.Get("/{id}", h.Timesheet.GetByID)
				r.Put("/{id}", h.Timesheet.Update)
				r.Delete("/{id}", h.Timesheet.Delete)
			})

			r.Route("/manager", func(r chi.Router) {
				r.Use(middleware.RequireManager)

				r.Get("/employees", h.Manager.ListTeam)
				r.Get("/timesheets", h.Manager.ListTeamTimesheets)
				r.Get("/timesheets/pending", h.Manager.ListPendingTimesheets)
				r.Get("/timesheets/status/{status}", h.Manager.ListTimesheetsByStatus)
				r.Get("/timesheets/employee/{id}", h.Manager.ListEmployeeTimesheets)
				r.Put("/timesheets/{id}/approve", h.Manager.Approve)
				r.Put("/timesheets/{id}/reject", h.Manager.Reject)
			})

			r.Route("/profile", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionViewOwnProfile))
					r.Get("/", h.User.GetProfile)
				})
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionEditOwnProfile))
					r.Put("/", h.User.UpdateProfile)
				})
			})

			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionUserViewAll))

				r.Get("/", h.User.List)
				r.Get("/departments", h.User.ListDepartments)
				r.Get("/{id}", h.User.GetByID)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionUserManage))

					r.Post("/", h.User.Create)
					r.Put("/{id}", h.User.Update)
					r.Put("/{id}/deactivate", h.User.Deactivate)
					r.Put("/{id}/activate", h.User.Activate)
					r.Put("/{id}/manager", h.User.AssignManager)
					r.Delete("/{id}/manager", h.User.UnassignManager)
				})

				// Hard delete stays admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Delete("/{id}", h.User.Delete)
				})
			})

			r.Route("/projects", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionProjectView))

				r.Get("/", h.Project.List)
				r.Get("/{id}", h.Project.GetByID)

				// Edit rights are resolved in the service: HR/admin or
				// the assigned project manager.
				r.Put("/{id}", h.Project.Update)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionProjectManage))

					r.Post("/", h.Project.Create)
					r.Delete("/{id}", h.Project.Delete)
				})
			})

			r.Route("/assignments", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionAssignmentView))

				r.Get("/", h.Assignment.List)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionAssignmentManage))

					r.Post("/", h.Assignment.Create)
					r.Delete("/{id}", h.Assignment.Delete)
				})
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.Notification.List)
				r.Get("/unread-count", h.Notification.CountUnread)
				r.Put("/read-all", h.Notification.MarkAllRead)
				r.Put("/{id}/read", h.Notification.MarkRead)
			})
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	return r
}
