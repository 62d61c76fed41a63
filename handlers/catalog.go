package handlers

import (
	"net/http"

	userRepo "clinibook/database/repository/user"
	"clinibook/models"
	"clinibook/utils"

	"github.com/gin-gonic/gin"
)

// Users is wired by main before the routes are registered.
var Users userRepo.UserRepository

// ListSpecialties returns the distinct specialties doctors practice.
func ListSpecialties(c *gin.Context) {
	specialties, err := Users.ListSpecialties(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"specialties": specialties})
}

// ListDoctorsBySpecialty returns the doctors practicing a specialty.
func ListDoctorsBySpecialty(c *gin.Context) {
	specialty := c.Query("specialty")
	if specialty == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", "'specialty' query parameter is required")
		return
	}
	doctors, err := Users.GetDoctorsBySpecialty(c.Request.Context(), specialty)
	if err != nil {
		respondError(c, err)
		return
	}
	summaries := make([]models.DoctorSummary, 0, len(doctors))
	for _, d := range doctors {
		summaries = append(summaries, models.DoctorSummary{ID: d.ID, FullName: d.FullName()})
	}
	c.JSON(http.StatusOK, gin.H{"doctors": summaries})
}

// ListPatients returns all patients. Admin only.
func ListPatients(c *gin.Context) {
	if actorFrom(c).Role != models.RoleAdmin {
		utils.JSONError(c, http.StatusForbidden, "Forbidden", "only admins may list patients")
		return
	}
	patients, err := Users.ListPatients(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"patients": patients})
}
