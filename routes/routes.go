package routes

import (
	"clinibook/handlers"
	"clinibook/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers specialty and doctor lookup endpoints.
func RegisterCatalogRoutes(r *gin.Engine) {
	api := r.Group("/api/catalog")
	api.Use(middleware.ActorMiddleware())
	{
		api.GET("/specialties", handlers.ListSpecialties)
		api.GET("/doctors", handlers.ListDoctorsBySpecialty)
		api.GET("/patients", handlers.ListPatients)
	}
}

// RegisterAvailabilityRoutes registers availability management endpoints.
func RegisterAvailabilityRoutes(r *gin.Engine) {
	api := r.Group("/api/availability")
	api.Use(middleware.ActorMiddleware())
	{
		api.PUT("", handlers.RegisterAvailability)
		api.GET("/doctor/:doctorID", handlers.GetDoctorAvailability)
		api.GET("/doctor/:doctorID/slots", handlers.GetOpenSlots)
	}
}

// RegisterBookingRoutes registers the step-by-step booking flow.
func RegisterBookingRoutes(r *gin.Engine) {
	api := r.Group("/api/booking")
	api.Use(middleware.ActorMiddleware())
	{
		api.POST("/session", handlers.StartBookingSession)
		api.PUT("/session/:sessionID", handlers.UpdateBookingSession)
		api.POST("/session/:sessionID/confirm", handlers.ConfirmBooking)
		api.DELETE("/session/:sessionID", handlers.CancelBookingSession)
	}
}

// RegisterAppointmentRoutes registers appointment lifecycle endpoints.
func RegisterAppointmentRoutes(r *gin.Engine) {
	api := r.Group("/api/appointments")
	api.Use(middleware.ActorMiddleware())
	{
		api.GET("/doctor/:doctorID", handlers.ListDoctorAppointments)
		api.GET("/patient/:patientID", handlers.ListPatientAppointments)
		api.GET("/:id", handlers.GetAppointment)
		api.POST("/:id/accept", handlers.AcceptAppointment)
		api.POST("/:id/reject", handlers.RejectAppointment)
		api.POST("/:id/cancel", handlers.CancelAppointment)
		api.POST("/:id/finalize", handlers.FinalizeAppointment)
		api.POST("/:id/rating", handlers.RateAppointment)
		api.POST("/:id/survey", handlers.SubmitAppointmentSurvey)
	}
}

// SetupRoutes registers every route group on the router.
func SetupRoutes(r *gin.Engine) {
	RegisterCatalogRoutes(r)
	RegisterAvailabilityRoutes(r)
	RegisterBookingRoutes(r)
	RegisterAppointmentRoutes(r)
}
