package handlers

import (
	"net/http"
	"strconv"

	"league-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LeagueHandler handles HTTP requests for league operations
type LeagueHandler struct {
	leagueService service.LeagueServiceInterface
	seasonService service.SeasonServiceInterface
}

// NewLeagueHandler creates a new league handler
func NewLeagueHandler(leagueService service.LeagueServiceInterface, seasonService service.SeasonServiceInterface) *LeagueHandler {
	return &LeagueHandler{
		leagueService: leagueService,
		seasonService: seasonService,
	}
}

// ListLeagues handles GET /leagues
// @Summary List all leagues
// @Description Get all leagues with pagination support
// @Tags leagues
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.LeagueListResponse "Successfully retrieved leagues"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /leagues [get]
func (h *LeagueHandler) ListLeagues(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	resp, err := h.leagueService.GetAllLeagues(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateLeague handles POST /leagues
// @Summary Create a new league
// @Description Create a new league of type regular or cup
// @Tags leagues
// @Accept json
// @Produce json
// @Param league body service.CreateLeagueRequest true "League data"
// @Success 201 {object} service.LeagueResponse "Successfully created league"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Security BearerAuth
// @Router /leagues [post]
func (h *LeagueHandler) CreateLeague(c *gin.Context) {
	var req service.CreateLeagueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	league, err := h.leagueService.CreateLeague(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, league)
}

// GetLeague handles GET /leagues/:id
// @Summary Get league by ID
// @Description Get a specific league by its UUID
// @Tags leagues
// @Accept json
// @Produce json
// @Param id path string true "League ID"
// @Success 200 {object} service.LeagueResponse "Successfully retrieved league"
// @Failure 400 {object} map[string]interface{} "Invalid league ID"
// @Failure 404 {object} map[string]interface{} "League not found"
// @Security BearerAuth
// @Router /leagues/{id} [get]
func (h *LeagueHandler) GetLeague(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid league ID"})
		return
	}

	league, err := h.leagueService.GetLeagueByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, league)
}

// GetLeagueSeasons handles GET /leagues/:id/seasons
// @Summary List seasons of a league
// @Description Get all seasons of a league, most recent first
// @Tags leagues
// @Accept json
// @Produce json
// @Param id path string true "League ID"
// @Success 200 {array} service.SeasonResponse "Successfully retrieved seasons"
// @Failure 404 {object} map[string]interface{} "League not found"
// @Security BearerAuth
// @Router /leagues/{id}/seasons [get]
func (h *LeagueHandler) GetLeagueSeasons(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid league ID"})
		return
	}

	seasons, err := h.seasonService.GetSeasonsByLeague(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, seasons)
}

// UpdateLeague handles PUT /leagues/:id
// @Summary Update a league
// @Description Update an existing league's name or type
// @Tags leagues
// @Accept json
// @Produce json
// @Param id path string true "League ID"
// @Param league body service.UpdateLeagueRequest true "League data"
// @Success 200 {object} service.LeagueResponse "Successfully updated league"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "League not found"
// @Security BearerAuth
// @Router /leagues/{id} [put]
func (h *LeagueHandler) UpdateLeague(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid league ID"})
		return
	}

	var req service.UpdateLeagueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	league, err := h.leagueService.UpdateLeague(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, league)
}

// DeleteLeague handles DELETE /leagues/:id
// @Summary Delete a league
// @Description Delete a league and everything it owns
// @Tags leagues
// @Accept json
// @Produce json
// @Param id path string true "League ID"
// @Success 204 "Successfully deleted league"
// @Failure 404 {object} map[string]interface{} "League not found"
// @Security BearerAuth
// @Router /leagues/{id} [delete]
func (h *LeagueHandler) DeleteLeague(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid league ID"})
		return
	}

	if err := h.leagueService.DeleteLeague(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
