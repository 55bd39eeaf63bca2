package handlers

import (
	"net/http"

	"ems-backend/internal/auth"
	"ems-backend/internal/authz"
	"ems-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LeaveTypeHandler handles HTTP requests for leave types
type LeaveTypeHandler struct {
	leaveTypeService service.LeaveTypeServiceInterface
}

// NewLeaveTypeHandler creates a new leave type handler
func NewLeaveTypeHandler(leaveTypeService service.LeaveTypeServiceInterface) *LeaveTypeHandler {
	return &LeaveTypeHandler{leaveTypeService: leaveTypeService}
}

// CreateLeaveType creates a new leave type
// @Summary Create a leave type
// @Description HR only. Registers a leave category (annual, sick, ...).
// @Tags leave-types
// @Accept json
// @Produce json
// @Param request body service.CreateLeaveTypeRequest true "Leave type data"
// @Success 201 {object} service.LeaveTypeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /leave-types [post]
func (h *LeaveTypeHandler) CreateLeaveType(c *gin.Context) {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	if !authz.CanManageAllocations(actor) {
		c.JSON(http.StatusForbidden, gin.H{"error": "only HR can manage leave types"})
		return
	}

	var req service.CreateLeaveTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	leaveType, err := h.leaveTypeService.CreateLeaveType(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, leaveType)
}

// GetLeaveType retrieves a leave type by ID
// @Summary Get leave type by ID
// @Tags leave-types
// @Produce json
// @Param id path string true "Leave type ID (UUID)"
// @Success 200 {object} service.LeaveTypeResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /leave-types/{id} [get]
func (h *LeaveTypeHandler) GetLeaveType(c *gin.Context) {
	if _, ok := auth.ActorFromContext(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid leave type ID"})
		return
	}

	leaveType, err := h.leaveTypeService.GetLeaveType(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, leaveType)
}

// UpdateLeaveType updates a leave type
// @Summary Update a leave type
// @Tags leave-types
// @Accept json
// @Produce json
// @Param id path string true "Leave type ID (UUID)"
// @Param request body service.UpdateLeaveTypeRequest true "Fields to update"
// @Success 200 {object} service.LeaveTypeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /leave-types/{id} [put]
func (h *LeaveTypeHandler) UpdateLeaveType(c *gin.Context) {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	if !authz.CanManageAllocations(actor) {
		c.JSON(http.StatusForbidden, gin.H{"error": "only HR can manage leave types"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid leave type ID"})
		return
	}

	var req service.UpdateLeaveTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	leaveType, err := h.leaveTypeService.UpdateLeaveType(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, leaveType)
}

// ListLeaveTypes lists all active leave types
// @Summary List leave types
// @Tags leave-types
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /leave-types [get]
func (h *LeaveTypeHandler) ListLeaveTypes(c *gin.Context) {
	if _, ok := auth.ActorFromContext(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	leaveTypes, err := h.leaveTypeService.ListLeaveTypes()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"leave_types": leaveTypes,
		"total":       len(leaveTypes),
	})
}

// DeleteLeaveType soft-removes a leave type
// @Summary Delete a leave type
// @Tags leave-types
// @Produce json
// @Param id path string true "Leave type ID (UUID)"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /leave-types/{id} [delete]
func (h *LeaveTypeHandler) DeleteLeaveType(c *gin.Context) {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	if !authz.CanManageAllocations(actor) {
		c.JSON(http.StatusForbidden, gin.H{"error": "only HR can manage leave types"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid leave type ID"})
		return
	}

	if err := h.leaveTypeService.DeleteLeaveType(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
