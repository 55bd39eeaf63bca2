package handlers

import (
	"net/http"

	"ems-backend/internal/auth"
	"ems-backend/internal/authz"
	"ems-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LeaveRequestHandler handles HTTP requests for leave requests
type LeaveRequestHandler struct {
	requestService service.LeaveRequestServiceInterface
}

// NewLeaveRequestHandler creates a new leave request handler
func NewLeaveRequestHandler(requestService service.LeaveRequestServiceInterface) *LeaveRequestHandler {
	return &LeaveRequestHandler{requestService: requestService}
}

// CreateLeaveRequest creates a new leave request
// @Summary Create a leave request
// @Description Submit a leave request. Employees can only request leave for themselves.
// @Tags leave-requests
// @Accept json
// @Produce json
// @Param request body service.CreateLeaveRequestRequest true "Leave request data"
// @Success 201 {object} service.LeaveRequestResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /leave-requests [post]
func (h *LeaveRequestHandler) CreateLeaveRequest(c *gin.Context) {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req service.CreateLeaveRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Only HR and admins may file on someone else's behalf.
	if req.EmployeeID != actor.ID && !authz.CanManageRequests(actor) {
		c.JSON(http.StatusForbidden, gin.H{"error": "can only request leave for yourself"})
		return
	}

	request, err := h.requestService.CreateLeaveRequest(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, request)
}

// GetLeaveRequest retrieves a leave request by ID
// @Summary Get leave request by ID
// @Tags leave-requests
// @Produce json
// @Param id path string true "Leave request ID (UUID)"
// @Success 200 {object} service.LeaveRequestResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /leave-requests/{id} [get]
func (h *LeaveRequestHandler) GetLeaveRequest(c *gin.Context) {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid leave request ID"})
		return
	}

	request, err := h.requestService.GetLeaveRequestModel(id)
	if err != nil {
		respondError(c, err)
		return
	}

	if !authz.CanViewRequest(actor, request) {
		c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to view this leave request"})
		return
	}

	response, err := h.requestService.GetLeaveRequest(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// ListLeaveRequests lists leave requests visible to the caller
// @Summary List leave requests
// @Description Employees see their own requests, team leads their team's, HR everything.
// @Tags leave-requests
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /leave-requests [get]
func (h *LeaveRequestHandler) ListLeaveRequests(c *gin.Context) {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	limit, offset := parsePagination(c)
	requests, total, err := h.requestService.ListLeaveRequestsFor(actor, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"leave_requests": requests,
		"total":          total,
		"limit":          limit,
		"offset":         offset,
	})
}

// DeleteLeaveRequest soft-removes a leave request
// @Summary Delete a leave request
// @Tags leave-requests
// @Produce json
// @Param id path string true "Leave request ID (UUID)"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /leave-requests/{id} [delete]
func (h *LeaveRequestHandler) DeleteLeaveRequest(c *gin.Context) {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	if !authz.CanManageRequests(actor) {
		c.JSON(http.StatusForbidden, gin.H{"error": "only HR can delete leave requests"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid leave request ID"})
		return
	}

	if err := h.requestService.DeleteLeaveRequest(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
