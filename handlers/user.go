package handlers

import (
	"net/http"

	"servana/models"
	"servana/services/booking"
	"servana/services/user"
	"servana/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler exposes customer account and booking endpoints.
type UserHandler struct {
	UserService      user.UserService
	BookingService   booking.BookingService
	LifecycleService booking.LifecycleService
}

func NewUserHandler(us user.UserService, bs booking.BookingService, ls booking.LifecycleService) *UserHandler {
	return &UserHandler{UserService: us, BookingService: bs, LifecycleService: ls}
}

func (h *UserHandler) requesterID(c *gin.Context) (string, bool) {
	id, ok := contextID(c.Get("userID"))
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing user identity"})
		return "", false
	}
	return id, true
}

// RegisterHandler handles POST /api/user/register.
func (h *UserHandler) RegisterHandler(c *gin.Context) {
	var u models.User
	if err := c.ShouldBindJSON(&u); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	resp, err := h.UserService.Register(u)
	if err != nil {
		utils.GetLogger().Warn("User registration failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// LoginHandler handles POST /api/user/login.
func (h *UserHandler) LoginHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	resp, err := h.UserService.Authenticate(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ProfileHandler handles GET /api/user/profile.
func (h *UserHandler) ProfileHandler(c *gin.Context) {
	id, ok := h.requesterID(c)
	if !ok {
		return
	}

	u, err := h.UserService.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, u.Snapshot())
}

// UpdateProfileHandler handles PUT /api/user/profile.
func (h *UserHandler) UpdateProfileHandler(c *gin.Context) {
	id, ok := h.requesterID(c)
	if !ok {
		return
	}

	var u models.User
	if err := c.ShouldBindJSON(&u); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}
	u.ID = id

	updated, err := h.UserService.UpdateProfile(u)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated.Snapshot())
}

// AvailabilityHandler handles GET /api/user/servicers/:id/availability.
func (h *UserHandler) AvailabilityHandler(c *gin.Context) {
	servicerID := c.Param("id")
	board, err := h.BookingService.Availability(servicerID)
	if err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": board})
}

// BookHandler handles POST /api/user/appointments.
func (h *UserHandler) BookHandler(c *gin.Context) {
	id, ok := h.requesterID(c)
	if !ok {
		return
	}

	var req booking.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}
	req.UserID = id

	appt, err := h.BookingService.Book(req)
	if err != nil {
		utils.GetLogger().Warn("Booking failed",
			zap.String("userID", id), zap.String("servicerID", req.ServicerID), zap.Error(err))
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// ListAppointmentsHandler handles GET /api/user/appointments.
func (h *UserHandler) ListAppointmentsHandler(c *gin.Context) {
	id, ok := h.requesterID(c)
	if !ok {
		return
	}

	appointments, err := h.UserService.ListAppointments(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appointments})
}

// CancelAppointmentHandler handles PUT /api/user/appointments/:id/cancel.
func (h *UserHandler) CancelAppointmentHandler(c *gin.Context) {
	id, ok := h.requesterID(c)
	if !ok {
		return
	}

	if err := h.LifecycleService.Cancel(id, c.Param("id"), false); err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment cancelled"})
}

// DeleteAppointmentHandler handles DELETE /api/user/appointments/:id.
func (h *UserHandler) DeleteAppointmentHandler(c *gin.Context) {
	id, ok := h.requesterID(c)
	if !ok {
		return
	}

	if err := h.LifecycleService.Delete(id, c.Param("id"), booking.RoleCustomer); err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted"})
}
