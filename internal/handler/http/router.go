package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/stafftrack/activity-backend-go/internal/handler/http/middleware"
	"github.com/stafftrack/activity-backend-go/internal/pkg/jwt"
)

type RouterConfig struct {
	AppEnv      string
	FrontendURL string

	JWTService jwt.Service

	AuthHandler         *AuthHandler
	ActivityHandler     *ActivityHandler
	CalendarHandler     *CalendarHandler
	AvailabilityHandler *AvailabilityHandler
	EmployeeHandler     *EmployeeHandler
}

// NewRouter assembles the HTTP router with logging, CORS, and the
// authenticated API surface.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(cfg.AppEnv != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "activity-backend"),
		slog.String("env", cfg.AppEnv),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: logFormat,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", cfg.AuthHandler.Register)
			r.Post("/logout", cfg.AuthHandler.Logout)
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", cfg.AuthHandler.GoogleCallback)
			})

			r.Route("/login", func(r chi.Router) {
				r.Post("/", cfg.AuthHandler.Login)
				r.Route("/oauth", func(r chi.Router) {
					r.Get("/google", cfg.AuthHandler.GoogleLogin)
				})
			})
		})

		// The SSE stream authenticates with its own short-lived token in
		// the query string, outside the bearer-token middleware.
		r.Get("/availability/stream", cfg.AvailabilityHandler.Stream)

		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(cfg.JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(cfg.JWTService))

			r.Route("/activities", func(r chi.Router) {
				r.Get("/", cfg.ActivityHandler.List)
				r.Post("/", cfg.ActivityHandler.Create)
				r.Get("/types", cfg.ActivityHandler.Types)
				r.Get("/user/{employeeID}", cfg.ActivityHandler.ListByEmployee)
			})

			r.Route("/calendar", func(r chi.Router) {
				r.Get("/", cfg.CalendarHandler.Month)
				r.Get("/export.ics", cfg.CalendarHandler.Export)
			})

			r.Route("/availability", func(r chi.Router) {
				r.Get("/next", cfg.AvailabilityHandler.Next)
				r.Post("/stream-token", cfg.AvailabilityHandler.StreamToken)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/me", cfg.EmployeeHandler.Me)
				r.Put("/me", cfg.EmployeeHandler.UpdateMe)

				r.Group(func(r chi.Router) {
					r.Use(middleware.HROnly)
					r.Get("/", cfg.EmployeeHandler.List)
					r.Get("/{employeeID}", cfg.EmployeeHandler.Get)
					r.Put("/{employeeID}", cfg.EmployeeHandler.Update)
				})
			})
		})
	})

	return r
}
