package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"servana/config"
	"servana/database"
	appointmentRepoPkg "servana/database/repository/appointment"
	servicerRepoPkg "servana/database/repository/servicer"
	userRepoPkg "servana/database/repository/user"
	"servana/handlers"
	"servana/middleware"
	"servana/routes"
	"servana/services/admin"
	"servana/services/booking"
	"servana/services/servicer"
	"servana/services/user"
	"servana/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	servicerRepo := servicerRepoPkg.NewMongoServicerRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	appointmentRepo := appointmentRepoPkg.NewMongoAppointmentRepo()

	// services.
	bookingService := &booking.DefaultBookingService{
		Servicers:    servicerRepo,
		Appointments: appointmentRepo,
		Users:        userRepo,
		Cache:        utils.GetCacheClient(),
		Now:          time.Now,
	}
	lifecycleService := &booking.DefaultLifecycleService{
		Servicers:    servicerRepo,
		Appointments: appointmentRepo,
		Cache:        utils.GetCacheClient(),
	}
	userService := &user.DefaultUserService{
		Repo:            userRepo,
		AppointmentRepo: appointmentRepo,
	}
	servicerService := &servicer.DefaultServicerService{
		Repo:            servicerRepo,
		AppointmentRepo: appointmentRepo,
	}
	adminService := &admin.DefaultAdminService{
		Users:        userRepo,
		Servicers:    servicerRepo,
		Appointments: appointmentRepo,
	}

	// handlers.
	userHandler := handlers.NewUserHandler(userService, bookingService, lifecycleService)
	servicerHandler := handlers.NewServicerHandler(servicerService, lifecycleService)
	adminHandler := handlers.NewAdminHandler(adminService, lifecycleService)

	routes.RegisterRoutes(router, userHandler, servicerHandler, adminHandler)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
