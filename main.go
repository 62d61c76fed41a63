package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinibook/config"
	"clinibook/database"
	appointmentRepoPkg "clinibook/database/repository/appointment"
	availabilityRepoPkg "clinibook/database/repository/availability"
	userRepoPkg "clinibook/database/repository/user"
	"clinibook/handlers"
	"clinibook/middleware"
	"clinibook/routes"
	appointmentSvc "clinibook/services/appointment"
	"clinibook/services/booking"
	"clinibook/services/scheduling"
	"clinibook/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	users := userRepoPkg.NewMongoUserRepo()
	availability := availabilityRepoPkg.NewMongoAvailabilityRepo()
	appointments := appointmentRepoPkg.NewMongoAppointmentRepo()

	// services.
	availabilityService := &scheduling.DefaultAvailabilityService{
		Availability:         availability,
		Appointments:         appointments,
		RejectedSlotsAreFree: config.AppConfig.RejectedSlotsAreFree,
	}
	bookingService := &booking.DefaultBookingService{
		Users:                users,
		Availability:         availabilityService,
		Appointments:         appointments,
		Sessions:             booking.NewRedisSessionStore(),
		HorizonDays:          config.AppConfig.BookingHorizonDays,
		RejectedSlotsAreFree: config.AppConfig.RejectedSlotsAreFree,
	}
	appointmentService := &appointmentSvc.DefaultAppointmentService{
		Appointments: appointments,
	}

	handlers.Users = users
	handlers.AvailabilitySvc = availabilityService
	handlers.BookingSvc = bookingService
	handlers.AppointmentSvc = appointmentService

	routes.SetupRoutes(router)

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
