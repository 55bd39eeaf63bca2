package handlers

import (
	"net/http"
	"time"

	"ems-backend/internal/auth"
	"ems-backend/internal/authz"
	"ems-backend/internal/database/models"
	"ems-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AllocationHandler handles HTTP requests for leave allocations
type AllocationHandler struct {
	allocationService service.AllocationServiceInterface
}

// NewAllocationHandler creates a new allocation handler
func NewAllocationHandler(allocationService service.AllocationServiceInterface) *AllocationHandler {
	return &AllocationHandler{allocationService: allocationService}
}

// CreateAllocation provisions a monthly allocation
// @Summary Create an allocation
// @Description HR only. Provisions a monthly leave allocation for an employee and leave type.
// @Tags allocations
// @Accept json
// @Produce json
// @Param request body service.CreateAllocationRequest true "Allocation data"
// @Success 201 {object} service.AllocationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /allocations [post]
func (h *AllocationHandler) CreateAllocation(c *gin.Context) {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	if !authz.CanManageAllocations(actor) {
		c.JSON(http.StatusForbidden, gin.H{"error": "only HR can manage allocations"})
		return
	}

	var req service.CreateAllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	allocation, err := h.allocationService.CreateAllocation(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, allocation)
}

// GetAllocation retrieves an allocation by ID
// @Summary Get allocation by ID
// @Tags allocations
// @Produce json
// @Param id path string true "Allocation ID (UUID)"
// @Success 200 {object} service.AllocationResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /allocations/{id} [get]
func (h *AllocationHandler) GetAllocation(c *gin.Context) {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid allocation ID"})
		return
	}

	allocation, err := h.allocationService.GetAllocationModel(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !authz.CanViewAllocation(actor, allocation) {
		c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to view this allocation"})
		return
	}

	response, err := h.allocationService.GetAllocation(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// UpdateAllocation updates an allocation's quota
// @Summary Update an allocation
// @Description HR only. Adjusts allocated days; used days are owned by the approval workflow.
// @Tags allocations
// @Accept json
// @Produce json
// @Param id path string true "Allocation ID (UUID)"
// @Param request body service.UpdateAllocationRequest true "Fields to update"
// @Success 200 {object} service.AllocationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /allocations/{id} [put]
func (h *AllocationHandler) UpdateAllocation(c *gin.Context) {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	if !authz.CanManageAllocations(actor) {
		c.JSON(http.StatusForbidden, gin.H{"error": "only HR can manage allocations"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid allocation ID"})
		return
	}

	var req service.UpdateAllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	allocation, err := h.allocationService.UpdateAllocation(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, allocation)
}

// ListAllocations lists allocations
// @Summary List allocations
// @Description HR sees all allocations; everyone else sees their own.
// @Tags allocations
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /allocations [get]
func (h *AllocationHandler) ListAllocations(c *gin.Context) {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	if !authz.CanManageAllocations(actor) {
		allocations, err := h.allocationService.ListAllocationsByEmployee(actor.ID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"allocations": allocations,
			"total":       len(allocations),
		})
		return
	}

	limit, offset := parsePagination(c)
	allocations, total, err := h.allocationService.ListAllocations(limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"allocations": allocations,
		"total":       total,
		"limit":       limit,
		"offset":      offset,
	})
}

// GetBalance returns the caller's remaining days for a leave type and month
// @Summary Get remaining balance
// @Tags allocations
// @Produce json
// @Param leave_type_id query string true "Leave type ID (UUID)"
// @Param month query string false "Month (YYYY-MM), defaults to the current month"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /allocations/balance [get]
func (h *AllocationHandler) GetBalance(c *gin.Context) {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	leaveTypeID, err := uuid.Parse(c.Query("leave_type_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid leave type ID"})
		return
	}

	employeeID := actor.ID
	if raw := c.Query("employee_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee ID"})
			return
		}
		if parsed != actor.ID && !authz.CanManageAllocations(actor) {
			c.JSON(http.StatusForbidden, gin.H{"error": "can only query your own balance"})
			return
		}
		employeeID = parsed
	}

	month := models.MonthStart(time.Now().UTC())
	if raw := c.Query("month"); raw != "" {
		parsed, err := time.Parse(service.MonthLayout, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month, expected YYYY-MM"})
			return
		}
		month = models.MonthStart(parsed)
	}

	remaining, err := h.allocationService.RemainingDays(employeeID, leaveTypeID, month)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"employee_id":    employeeID,
		"leave_type_id":  leaveTypeID,
		"valid_month":    month.Format(service.MonthLayout),
		"remaining_days": remaining,
	})
}

// DeleteAllocation soft-removes an allocation
// @Summary Delete an allocation
// @Tags allocations
// @Produce json
// @Param id path string true "Allocation ID (UUID)"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /allocations/{id} [delete]
func (h *AllocationHandler) DeleteAllocation(c *gin.Context) {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	if !authz.CanManageAllocations(actor) {
		c.JSON(http.StatusForbidden, gin.H{"error": "only HR can manage allocations"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid allocation ID"})
		return
	}

	if err := h.allocationService.DeleteAllocation(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
