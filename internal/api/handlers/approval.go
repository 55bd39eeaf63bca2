package handlers

import (
	"net/http"

	"ems-backend/internal/auth"
	"ems-backend/internal/authz"
	"ems-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ApprovalHandler handles HTTP requests for the approval workflow
type ApprovalHandler struct {
	approvalService service.ApprovalServiceInterface
	requestService  service.LeaveRequestServiceInterface
}

// NewApprovalHandler creates a new approval handler
func NewApprovalHandler(
	approvalService service.ApprovalServiceInterface,
	requestService service.LeaveRequestServiceInterface,
) *ApprovalHandler {
	return &ApprovalHandler{
		approvalService: approvalService,
		requestService:  requestService,
	}
}

// Decide records an approve or reject decision on a leave request
// @Summary Approve or reject a leave request
// @Description Team leads decide at the team_lead stage for their own team, HR at the hr stage. An HR approval debits the employee's allocation.
// @Tags approvals
// @Accept json
// @Produce json
// @Param id path string true "Leave request ID (UUID)"
// @Param request body service.DecideRequest true "Decision data"
// @Success 200 {object} service.ApprovalResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /leave-requests/{id}/decisions [post]
func (h *ApprovalHandler) Decide(c *gin.Context) {
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

	var req service.DecideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	approval, err := h.approvalService.Decide(id, actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, approval)
}

// Withdraw withdraws an HR-approved leave request
// @Summary Withdraw an approved leave request
// @Description HR only. Credits the debited days back to the employee's allocation.
// @Tags approvals
// @Accept json
// @Produce json
// @Param id path string true "Leave request ID (UUID)"
// @Param request body service.WithdrawRequest false "Withdrawal notes"
// @Success 200 {object} service.ApprovalResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /leave-requests/{id}/withdraw [post]
func (h *ApprovalHandler) Withdraw(c *gin.Context) {
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

	var req service.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	approval, err := h.approvalService.Withdraw(id, actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, approval)
}

// ListApprovals lists the approval history of a leave request
// @Summary List approvals for a leave request
// @Tags approvals
// @Produce json
// @Param id path string true "Leave request ID (UUID)"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /leave-requests/{id}/approvals [get]
func (h *ApprovalHandler) ListApprovals(c *gin.Context) {
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

	approvals, err := h.approvalService.ListApprovals(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"approvals": approvals,
		"total":     len(approvals),
	})
}
