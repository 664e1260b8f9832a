package handlers

import (
	"net/http"
	"strconv"

	"league-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PlayerHandler handles HTTP requests for player operations
type PlayerHandler struct {
	playerService service.PlayerServiceInterface
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(playerService service.PlayerServiceInterface) *PlayerHandler {
	return &PlayerHandler{
		playerService: playerService,
	}
}

// ListPlayers handles GET /players
// @Summary List all players
// @Description Get all players with pagination, optionally filtered by a name search query
// @Tags players
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Param q query string false "Name search query"
// @Success 200 {object} service.PlayerListResponse "Successfully retrieved players"
// @Security BearerAuth
// @Router /players [get]
func (h *PlayerHandler) ListPlayers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	var resp *service.PlayerListResponse
	var err error
	if query := c.Query("q"); query != "" {
		resp, err = h.playerService.SearchPlayers(query, page, pageSize)
	} else {
		resp, err = h.playerService.GetAllPlayers(page, pageSize)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreatePlayer handles POST /players
// @Summary Create a new player
// @Description Register a new player with the league
// @Tags players
// @Accept json
// @Produce json
// @Param player body service.CreatePlayerRequest true "Player data"
// @Success 201 {object} service.PlayerResponse "Successfully created player"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Security BearerAuth
// @Router /players [post]
func (h *PlayerHandler) CreatePlayer(c *gin.Context) {
	var req service.CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	player, err := h.playerService.CreatePlayer(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, player)
}

// GetPlayer handles GET /players/:id
// @Summary Get player by ID
// @Description Get a specific player by their UUID
// @Tags players
// @Accept json
// @Produce json
// @Param id path string true "Player ID"
// @Success 200 {object} service.PlayerResponse "Successfully retrieved player"
// @Failure 404 {object} map[string]interface{} "Player not found"
// @Security BearerAuth
// @Router /players/{id} [get]
func (h *PlayerHandler) GetPlayer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid player ID"})
		return
	}

	player, err := h.playerService.GetPlayerByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, player)
}

// GetPlayerTeam handles GET /players/:id/team
// @Summary Get a player's team for a season
// @Description Get the team whose roster the player belongs to in the given season
// @Tags players
// @Accept json
// @Produce json
// @Param id path string true "Player ID"
// @Param season_id query string true "Season ID"
// @Success 200 {object} service.TeamResponse "Successfully retrieved team"
// @Failure 404 {object} map[string]interface{} "Player or team not found"
// @Security BearerAuth
// @Router /players/{id}/team [get]
func (h *PlayerHandler) GetPlayerTeam(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid player ID"})
		return
	}
	seasonID, err := uuid.Parse(c.Query("season_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "season_id query parameter is required"})
		return
	}

	team, err := h.playerService.GetCurrentTeam(seasonID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// UpdatePlayer handles PUT /players/:id
// @Summary Update a player
// @Description Update an existing player's name
// @Tags players
// @Accept json
// @Produce json
// @Param id path string true "Player ID"
// @Param player body service.UpdatePlayerRequest true "Player data"
// @Success 200 {object} service.PlayerResponse "Successfully updated player"
// @Failure 404 {object} map[string]interface{} "Player not found"
// @Security BearerAuth
// @Router /players/{id} [put]
func (h *PlayerHandler) UpdatePlayer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid player ID"})
		return
	}

	var req service.UpdatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	player, err := h.playerService.UpdatePlayer(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, player)
}

// DeletePlayer handles DELETE /players/:id
// @Summary Delete a player
// @Description Delete a player
// @Tags players
// @Accept json
// @Produce json
// @Param id path string true "Player ID"
// @Success 204 "Successfully deleted player"
// @Failure 404 {object} map[string]interface{} "Player not found"
// @Security BearerAuth
// @Router /players/{id} [delete]
func (h *PlayerHandler) DeletePlayer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid player ID"})
		return
	}

	if err := h.playerService.DeletePlayer(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
