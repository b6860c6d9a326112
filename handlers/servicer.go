package handlers

import (
	"net/http"

	"servana/models"
	"servana/schedule"
	"servana/services/booking"
	"servana/services/servicer"
	"servana/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ServicerHandler exposes service-provider endpoints.
type ServicerHandler struct {
	ServicerService  servicer.ServicerService
	LifecycleService booking.LifecycleService
}

func NewServicerHandler(ss servicer.ServicerService, ls booking.LifecycleService) *ServicerHandler {
	return &ServicerHandler{ServicerService: ss, LifecycleService: ls}
}

func (h *ServicerHandler) requesterID(c *gin.Context) (string, bool) {
	id, ok := contextID(c.Get("servicerID"))
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing servicer identity"})
		return "", false
	}
	return id, true
}

// RegisterHandler handles POST /api/servicer/register.
func (h *ServicerHandler) RegisterHandler(c *gin.Context) {
	var s models.Servicer
	if err := c.ShouldBindJSON(&s); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	id, err := h.ServicerService.Register(s)
	if err != nil {
		utils.GetLogger().Warn("Servicer registration failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id, "message": "Registration received, awaiting approval"})
}

// LoginHandler handles POST /api/servicer/login.
func (h *ServicerHandler) LoginHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	resp, err := h.ServicerService.Authenticate(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListApprovedHandler handles GET /api/servicer/list. Public customer-facing
// directory of bookable servicers.
func (h *ServicerHandler) ListApprovedHandler(c *gin.Context) {
	servicers, err := h.ServicerService.ListApproved()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"servicers": servicers})
}

// ProfileHandler handles GET /api/servicer/profile.
func (h *ServicerHandler) ProfileHandler(c *gin.Context) {
	id, ok := h.requesterID(c)
	if !ok {
		return
	}

	s, err := h.ServicerService.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, s.Snapshot())
}

// UpdateProfileHandler handles PUT /api/servicer/profile.
func (h *ServicerHandler) UpdateProfileHandler(c *gin.Context) {
	id, ok := h.requesterID(c)
	if !ok {
		return
	}

	var s models.Servicer
	if err := c.ShouldBindJSON(&s); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}
	s.ID = id

	updated, err := h.ServicerService.UpdateProfile(s)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated.Snapshot())
}

// UpdateWorkingHoursHandler handles PUT /api/servicer/working-hours.
func (h *ServicerHandler) UpdateWorkingHoursHandler(c *gin.Context) {
	id, ok := h.requesterID(c)
	if !ok {
		return
	}

	var hours map[string]schedule.DayHours
	if err := c.ShouldBindJSON(&hours); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	wh, err := h.ServicerService.UpdateWorkingHours(id, hours)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"working_hours": wh})
}

// ToggleDayHandler handles PUT /api/servicer/working-hours/:day/toggle.
func (h *ServicerHandler) ToggleDayHandler(c *gin.Context) {
	id, ok := h.requesterID(c)
	if !ok {
		return
	}

	wh, err := h.ServicerService.ToggleDay(id, c.Param("day"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"working_hours": wh})
}

// ToggleAvailableHandler handles PUT /api/servicer/availability/toggle.
func (h *ServicerHandler) ToggleAvailableHandler(c *gin.Context) {
	id, ok := h.requesterID(c)
	if !ok {
		return
	}

	available, err := h.ServicerService.ToggleAvailable(id)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"available": available})
}

// ListAppointmentsHandler handles GET /api/servicer/appointments.
func (h *ServicerHandler) ListAppointmentsHandler(c *gin.Context) {
	id, ok := h.requesterID(c)
	if !ok {
		return
	}

	appointments, err := h.ServicerService.ListAppointments(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appointments})
}

// UpdateAppointmentStatusHandler handles PUT /api/servicer/appointments/:id/status.
func (h *ServicerHandler) UpdateAppointmentStatusHandler(c *gin.Context) {
	id, ok := h.requesterID(c)
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status is required"})
		return
	}

	if err := h.LifecycleService.UpdateStatus(id, c.Param("id"), req.Status); err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Status updated"})
}

// DeleteAppointmentHandler handles DELETE /api/servicer/appointments/:id.
func (h *ServicerHandler) DeleteAppointmentHandler(c *gin.Context) {
	id, ok := h.requesterID(c)
	if !ok {
		return
	}

	if err := h.LifecycleService.Delete(id, c.Param("id"), booking.RoleServicer); err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted"})
}
