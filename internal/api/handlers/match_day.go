package handlers

import (
	"net/http"

	"league-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MatchDayHandler handles HTTP requests for match days and standings
type MatchDayHandler struct {
	matchService     service.MatchServiceInterface
	standingsService service.StandingsServiceInterface
}

// NewMatchDayHandler creates a new match day handler
func NewMatchDayHandler(matchService service.MatchServiceInterface, standingsService service.StandingsServiceInterface) *MatchDayHandler {
	return &MatchDayHandler{
		matchService:     matchService,
		standingsService: standingsService,
	}
}

// GetMatchDay handles GET /match-days/:id
// @Summary Get match day by ID
// @Description Get a round with its fixtures and completion state
// @Tags match-days
// @Accept json
// @Produce json
// @Param id path string true "Match day ID"
// @Success 200 {object} service.MatchDayResponse "Successfully retrieved match day"
// @Failure 404 {object} map[string]interface{} "Match day not found"
// @Security BearerAuth
// @Router /match-days/{id} [get]
func (h *MatchDayHandler) GetMatchDay(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid match day ID"})
		return
	}

	matchDay, err := h.matchService.GetMatchDay(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, matchDay)
}

// GetStandings handles GET /match-days/:id/standings
// @Summary Get the standings as of a match day
// @Description Get the league table snapshot written when the round completed
// @Tags match-days
// @Accept json
// @Produce json
// @Param id path string true "Match day ID"
// @Success 200 {object} service.StandingsResponse "Successfully retrieved standings"
// @Failure 404 {object} map[string]interface{} "Match day not found"
// @Security BearerAuth
// @Router /match-days/{id}/standings [get]
func (h *MatchDayHandler) GetStandings(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid match day ID"})
		return
	}

	standings, err := h.standingsService.GetStandings(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, standings)
}
