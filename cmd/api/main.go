package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/stafftrack/activity-backend-go/internal/config"
	appHTTP "github.com/stafftrack/activity-backend-go/internal/handler/http"
	"github.com/stafftrack/activity-backend-go/internal/pkg/cron"
	"github.com/stafftrack/activity-backend-go/internal/pkg/database"
	"github.com/stafftrack/activity-backend-go/internal/pkg/jwt"
	"github.com/stafftrack/activity-backend-go/internal/pkg/oauth"
	"github.com/stafftrack/activity-backend-go/internal/pkg/sse"
	"github.com/stafftrack/activity-backend-go/internal/repository/postgresql"
	activityService "github.com/stafftrack/activity-backend-go/internal/service/activity"
	authService "github.com/stafftrack/activity-backend-go/internal/service/auth"
	"github.com/stafftrack/activity-backend-go/internal/service/availability"
	"github.com/stafftrack/activity-backend-go/internal/service/calendar"
	employeeService "github.com/stafftrack/activity-backend-go/internal/service/employee"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgresDB(ctx, cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	activityRepo := postgresql.NewActivityRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, fmt.Sprintf("%dh", cfg.JWT.AccessExpiryHours))
	googleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL)

	store := activityService.NewStore()
	hub := sse.NewHub()

	activitySvc := activityService.NewActivityService(activityRepo, store)
	calendarBuilder := calendar.NewBuilder(store)
	countdown := availability.NewCountdown(store, hub, availability.WithTickInterval(cfg.App.CountdownTick))
	authSvc := authService.NewAuthService(userRepo, employeeRepo, jwtService, googleService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)

	// Every store repopulation, periodic or create-driven, pushes fresh
	// countdown state to stream subscribers.
	activitySvc.OnRefresh(countdown.Recompute)

	scheduler := cron.NewScheduler()
	scheduler.AddJob("activity-store-refresh", cfg.App.StoreRefreshInterval, activitySvc.Refresh)
	scheduler.Start()
	defer scheduler.Stop()

	countdown.Start()
	defer countdown.Stop()

	router := appHTTP.NewRouter(appHTTP.RouterConfig{
		AppEnv:              cfg.App.Env,
		FrontendURL:         cfg.App.FrontendURL,
		JWTService:          jwtService,
		AuthHandler:         appHTTP.NewAuthHandler(authSvc, googleService, cfg.App.FrontendURL),
		ActivityHandler:     appHTTP.NewActivityHandler(activitySvc),
		CalendarHandler:     appHTTP.NewCalendarHandler(calendarBuilder, store),
		AvailabilityHandler: appHTTP.NewAvailabilityHandler(countdown, hub, jwtService),
		EmployeeHandler:     appHTTP.NewEmployeeHandler(employeeSvc),
	})

	server := &http.Server{
		Addr:    ":" + cfg.App.Port,
		Handler: router,
	}

	go func() {
		slog.Info("Server starting", "port", cfg.App.Port, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}
	slog.Info("Server stopped")
}
