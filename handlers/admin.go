package handlers

import (
	"net/http"

	"servana/models"
	"servana/services/admin"
	"servana/services/booking"
	"servana/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler exposes the back-office endpoints.
type AdminHandler struct {
	AdminService     admin.AdminService
	LifecycleService booking.LifecycleService
}

func NewAdminHandler(as admin.AdminService, ls booking.LifecycleService) *AdminHandler {
	return &AdminHandler{AdminService: as, LifecycleService: ls}
}

// LoginHandler handles POST /api/admin/login.
func (h *AdminHandler) LoginHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	token, err := h.AdminService.Authenticate(req.Email, req.Password)
	if err != nil {
		utils.GetLogger().Warn("Admin login failed", zap.String("email", req.Email))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// DashboardHandler handles GET /api/admin/dashboard.
func (h *AdminHandler) DashboardHandler(c *gin.Context) {
	d, err := h.AdminService.GetDashboard()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, d)
}

// ListPendingServicersHandler handles GET /api/admin/servicers/pending.
func (h *AdminHandler) ListPendingServicersHandler(c *gin.Context) {
	servicers, err := h.AdminService.ListPendingServicers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"servicers": servicers})
}

// ApproveServicerHandler handles PUT /api/admin/servicers/:id/approve.
func (h *AdminHandler) ApproveServicerHandler(c *gin.Context) {
	if err := h.AdminService.ApproveServicer(c.Param("id")); err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Servicer approved"})
}

// RejectServicerHandler handles PUT /api/admin/servicers/:id/reject.
func (h *AdminHandler) RejectServicerHandler(c *gin.Context) {
	if err := h.AdminService.RejectServicer(c.Param("id")); err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Servicer rejected"})
}

// BlockServicerHandler handles PUT /api/admin/servicers/:id/block.
func (h *AdminHandler) BlockServicerHandler(c *gin.Context) {
	if err := h.AdminService.SetServicerBlocked(c.Param("id"), true); err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Servicer blocked"})
}

// UnblockServicerHandler handles PUT /api/admin/servicers/:id/unblock.
func (h *AdminHandler) UnblockServicerHandler(c *gin.Context) {
	if err := h.AdminService.SetServicerBlocked(c.Param("id"), false); err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Servicer unblocked"})
}

// UpdateServicerHandler handles PUT /api/admin/servicers/:id.
func (h *AdminHandler) UpdateServicerHandler(c *gin.Context) {
	var s models.Servicer
	if err := c.ShouldBindJSON(&s); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}
	s.ID = c.Param("id")

	updated, err := h.AdminService.UpdateServicer(s)
	if err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated.Snapshot())
}

// DeleteServicerHandler handles DELETE /api/admin/servicers/:id.
func (h *AdminHandler) DeleteServicerHandler(c *gin.Context) {
	if err := h.AdminService.DeleteServicer(c.Param("id")); err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Servicer deleted"})
}

// ListServicersHandler handles GET /api/admin/servicers.
func (h *AdminHandler) ListServicersHandler(c *gin.Context) {
	servicers, err := h.AdminService.ListServicers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"servicers": servicers})
}

// ListUsersHandler handles GET /api/admin/users.
func (h *AdminHandler) ListUsersHandler(c *gin.Context) {
	users, err := h.AdminService.ListUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// DeleteUserHandler handles DELETE /api/admin/users/:id. Removes the user and
// every appointment the user made.
func (h *AdminHandler) DeleteUserHandler(c *gin.Context) {
	removed, err := h.AdminService.DeleteUser(c.Param("id"))
	if err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted", "appointmentsRemoved": removed})
}

// ListAppointmentsHandler handles GET /api/admin/appointments.
func (h *AdminHandler) ListAppointmentsHandler(c *gin.Context) {
	appointments, err := h.AdminService.ListAppointments()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appointments})
}

// CancelAppointmentHandler handles PUT /api/admin/appointments/:id/cancel.
func (h *AdminHandler) CancelAppointmentHandler(c *gin.Context) {
	if err := h.LifecycleService.Cancel("", c.Param("id"), true); err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment cancelled"})
}

// DeleteAppointmentHandler handles DELETE /api/admin/appointments/:id.
func (h *AdminHandler) DeleteAppointmentHandler(c *gin.Context) {
	if err := h.LifecycleService.Delete("", c.Param("id"), booking.RoleAdmin); err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted"})
}
