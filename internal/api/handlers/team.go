package handlers

import (
	"net/http"

	"ems-backend/internal/auth"
	"ems-backend/internal/authz"
	"ems-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TeamHandler handles HTTP requests for teams
type TeamHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

// CreateTeam creates a new team
// @Summary Create a team
// @Tags teams
// @Accept json
// @Produce json
// @Param request body service.CreateTeamRequest true "Team data"
// @Success 201 {object} service.TeamResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	if !authz.CanManageDirectory(actor) {
		c.JSON(http.StatusForbidden, gin.H{"error": "only HR can manage teams"})
		return
	}

	var req service.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.teamService.CreateTeam(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, team)
}

// GetTeam retrieves a team by ID
// @Summary Get team by ID
// @Tags teams
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {object} service.TeamResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /teams/{id} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	if _, ok := auth.ActorFromContext(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team ID"})
		return
	}

	team, err := h.teamService.GetTeam(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// UpdateTeam updates a team
// @Summary Update a team
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param request body service.UpdateTeamRequest true "Fields to update"
// @Success 200 {object} service.TeamResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /teams/{id} [put]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	if !authz.CanManageDirectory(actor) {
		c.JSON(http.StatusForbidden, gin.H{"error": "only HR can manage teams"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team ID"})
		return
	}

	var req service.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.teamService.UpdateTeam(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// ListTeams lists teams
// @Summary List teams
// @Tags teams
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	if _, ok := auth.ActorFromContext(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	limit, offset := parsePagination(c)
	teams, total, err := h.teamService.ListTeams(limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"teams":  teams,
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}

// DeleteTeam soft-removes a team
// @Summary Delete a team
// @Tags teams
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /teams/{id} [delete]
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	if !authz.CanManageDirectory(actor) {
		c.JSON(http.StatusForbidden, gin.H{"error": "only HR can manage teams"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team ID"})
		return
	}

	if err := h.teamService.DeleteTeam(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
