package handlers

import (
	"net/http"
	"strconv"

	"league-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SeasonHandler handles HTTP requests for seasons, rosters and schedule
// generation
type SeasonHandler struct {
	seasonService   service.SeasonServiceInterface
	scheduleService service.ScheduleServiceInterface
	matchService    service.MatchServiceInterface
}

// NewSeasonHandler creates a new season handler
func NewSeasonHandler(
	seasonService service.SeasonServiceInterface,
	scheduleService service.ScheduleServiceInterface,
	matchService service.MatchServiceInterface,
) *SeasonHandler {
	return &SeasonHandler{
		seasonService:   seasonService,
		scheduleService: scheduleService,
		matchService:    matchService,
	}
}

// ListSeasons handles GET /seasons
// @Summary List all seasons
// @Description Get all seasons with pagination support, newest first
// @Tags seasons
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.SeasonListResponse "Successfully retrieved seasons"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /seasons [get]
func (h *SeasonHandler) ListSeasons(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	resp, err := h.seasonService.GetAllSeasons(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateSeason handles POST /seasons
// @Summary Create a new season
// @Description Create a season of a league; a league runs one season per starting year
// @Tags seasons
// @Accept json
// @Produce json
// @Param season body service.CreateSeasonRequest true "Season data"
// @Success 201 {object} service.SeasonResponse "Successfully created season"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Season already exists"
// @Security BearerAuth
// @Router /seasons [post]
func (h *SeasonHandler) CreateSeason(c *gin.Context) {
	var req service.CreateSeasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	season, err := h.seasonService.CreateSeason(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, season)
}

// GetSeason handles GET /seasons/:id
// @Summary Get season by ID
// @Description Get a specific season by its UUID
// @Tags seasons
// @Accept json
// @Produce json
// @Param id path string true "Season ID"
// @Success 200 {object} service.SeasonResponse "Successfully retrieved season"
// @Failure 404 {object} map[string]interface{} "Season not found"
// @Security BearerAuth
// @Router /seasons/{id} [get]
func (h *SeasonHandler) GetSeason(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid season ID"})
		return
	}

	season, err := h.seasonService.GetSeasonByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, season)
}

// UpdateSeason handles PUT /seasons/:id
// @Summary Update a season
// @Description Update a season's active flag
// @Tags seasons
// @Accept json
// @Produce json
// @Param id path string true "Season ID"
// @Param season body service.UpdateSeasonRequest true "Season data"
// @Success 200 {object} service.SeasonResponse "Successfully updated season"
// @Failure 404 {object} map[string]interface{} "Season not found"
// @Security BearerAuth
// @Router /seasons/{id} [put]
func (h *SeasonHandler) UpdateSeason(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid season ID"})
		return
	}

	var req service.UpdateSeasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	season, err := h.seasonService.UpdateSeason(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, season)
}

// DeleteSeason handles DELETE /seasons/:id
// @Summary Delete a season
// @Description Delete a season with its rounds, matches and standings
// @Tags seasons
// @Accept json
// @Produce json
// @Param id path string true "Season ID"
// @Success 204 "Successfully deleted season"
// @Failure 404 {object} map[string]interface{} "Season not found"
// @Security BearerAuth
// @Router /seasons/{id} [delete]
func (h *SeasonHandler) DeleteSeason(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid season ID"})
		return
	}

	if err := h.seasonService.DeleteSeason(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AddTeam handles POST /seasons/:id/teams
// @Summary Enter a team into a season
// @Description Add a team to a season; each team participates at most once per season
// @Tags seasons
// @Accept json
// @Produce json
// @Param id path string true "Season ID"
// @Param team body service.AddTeamToSeasonRequest true "Team reference"
// @Success 201 {object} service.SeasonTeamResponse "Successfully added team"
// @Failure 409 {object} map[string]interface{} "Team already in season"
// @Security BearerAuth
// @Router /seasons/{id}/teams [post]
func (h *SeasonHandler) AddTeam(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid season ID"})
		return
	}

	var req service.AddTeamToSeasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	seasonTeam, err := h.seasonService.AddTeamToSeason(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, seasonTeam)
}

// ListTeams handles GET /seasons/:id/teams
// @Summary List the teams of a season
// @Description Get all teams entered into a season
// @Tags seasons
// @Accept json
// @Produce json
// @Param id path string true "Season ID"
// @Success 200 {array} service.SeasonTeamResponse "Successfully retrieved teams"
// @Failure 404 {object} map[string]interface{} "Season not found"
// @Security BearerAuth
// @Router /seasons/{id}/teams [get]
func (h *SeasonHandler) ListTeams(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid season ID"})
		return
	}

	teams, err := h.seasonService.GetSeasonTeams(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, teams)
}

// GenerateSchedule handles POST /seasons/:id/schedule
// @Summary Generate a season's fixtures
// @Description Build the double round-robin schedule for all entered teams
// @Tags seasons
// @Accept json
// @Produce json
// @Param id path string true "Season ID"
// @Param schedule body service.GenerateScheduleRequest true "Schedule parameters"
// @Success 201 {object} service.GenerateScheduleResponse "Schedule generated"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Security BearerAuth
// @Router /seasons/{id}/schedule [post]
func (h *SeasonHandler) GenerateSchedule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid season ID"})
		return
	}

	var req service.GenerateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.scheduleService.GenerateSchedule(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListMatchDays handles GET /seasons/:id/match-days
// @Summary List the rounds of a season
// @Description Get all match days of a season in round order
// @Tags seasons
// @Accept json
// @Produce json
// @Param id path string true "Season ID"
// @Success 200 {array} service.MatchDayResponse "Successfully retrieved match days"
// @Security BearerAuth
// @Router /seasons/{id}/match-days [get]
func (h *SeasonHandler) ListMatchDays(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid season ID"})
		return
	}

	matchDays, err := h.matchService.GetMatchDaysBySeason(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, matchDays)
}

// AddPlayerToRoster handles POST /season-teams/:id/players
// @Summary Register a player on a roster
// @Description Add a player to a team's season roster; one roster per player per season
// @Tags rosters
// @Accept json
// @Produce json
// @Param id path string true "Season team ID"
// @Param player body service.AddPlayerToRosterRequest true "Player reference"
// @Success 200 {object} service.SeasonTeamResponse "Successfully added player"
// @Failure 409 {object} map[string]interface{} "Player already rostered this season"
// @Security BearerAuth
// @Router /season-teams/{id}/players [post]
func (h *SeasonHandler) AddPlayerToRoster(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid season team ID"})
		return
	}

	var req service.AddPlayerToRosterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	roster, err := h.seasonService.AddPlayerToRoster(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, roster)
}

// GetRoster handles GET /season-teams/:id
// @Summary Get a roster
// @Description Get a season roster entry with its player list
// @Tags rosters
// @Accept json
// @Produce json
// @Param id path string true "Season team ID"
// @Success 200 {object} service.SeasonTeamResponse "Successfully retrieved roster"
// @Failure 404 {object} map[string]interface{} "Roster not found"
// @Security BearerAuth
// @Router /season-teams/{id} [get]
func (h *SeasonHandler) GetRoster(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid season team ID"})
		return
	}

	roster, err := h.seasonService.GetRoster(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, roster)
}

// RemovePlayerFromRoster handles DELETE /season-teams/:id/players/:player_id
// @Summary Remove a player from a roster
// @Description Remove a player from a team's season roster
// @Tags rosters
// @Accept json
// @Produce json
// @Param id path string true "Season team ID"
// @Param player_id path string true "Player ID"
// @Success 204 "Successfully removed player"
// @Failure 404 {object} map[string]interface{} "Roster not found"
// @Security BearerAuth
// @Router /season-teams/{id}/players/{player_id} [delete]
func (h *SeasonHandler) RemovePlayerFromRoster(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid season team ID"})
		return
	}
	playerID, err := uuid.Parse(c.Param("player_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid player ID"})
		return
	}

	if err := h.seasonService.RemovePlayerFromRoster(id, playerID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RemoveTeamFromSeason handles DELETE /season-teams/:id
// @Summary Withdraw a team from a season
// @Description Remove a team's roster entry from a season
// @Tags rosters
// @Accept json
// @Produce json
// @Param id path string true "Season team ID"
// @Success 204 "Successfully removed team"
// @Failure 404 {object} map[string]interface{} "Roster not found"
// @Security BearerAuth
// @Router /season-teams/{id} [delete]
func (h *SeasonHandler) RemoveTeamFromSeason(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid season team ID"})
		return
	}

	if err := h.seasonService.RemoveTeamFromSeason(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
