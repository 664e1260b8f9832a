package handlers

import (
	"net/http"
	"strconv"

	"league-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MatchHandler handles HTTP requests for matches and segment scoring
type MatchHandler struct {
	matchService service.MatchServiceInterface
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(matchService service.MatchServiceInterface) *MatchHandler {
	return &MatchHandler{
		matchService: matchService,
	}
}

// GetMatch handles GET /matches/:id
// @Summary Get match by ID
// @Description Get a match with its segments and derived totals
// @Tags matches
// @Accept json
// @Produce json
// @Param id path string true "Match ID"
// @Success 200 {object} service.MatchResponse "Successfully retrieved match"
// @Failure 404 {object} map[string]interface{} "Match not found"
// @Security BearerAuth
// @Router /matches/{id} [get]
func (h *MatchHandler) GetMatch(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid match ID"})
		return
	}

	match, err := h.matchService.GetMatch(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, match)
}

// StartMatch handles POST /matches/:id/start
// @Summary Start a match
// @Description Move a match from Not Started to In Progress
// @Tags matches
// @Accept json
// @Produce json
// @Param id path string true "Match ID"
// @Success 200 {object} service.MatchResponse "Match started"
// @Failure 409 {object} map[string]interface{} "Match already started or finished"
// @Security BearerAuth
// @Router /matches/{id}/start [post]
func (h *MatchHandler) StartMatch(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid match ID"})
		return
	}

	match, err := h.matchService.StartMatch(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, match)
}

// RecordSegment handles PUT /matches/:id/segments/:number
// @Summary Record a segment result
// @Description Store one segment's scores and lineups; may finish the match and advance standings
// @Tags matches
// @Accept json
// @Produce json
// @Param id path string true "Match ID"
// @Param number path int true "Segment number (1-7)"
// @Param segment body service.RecordSegmentRequest true "Segment result"
// @Success 200 {object} service.RecordSegmentResponse "Segment recorded"
// @Failure 400 {object} map[string]interface{} "Rule violation"
// @Failure 409 {object} map[string]interface{} "Match not writable"
// @Security BearerAuth
// @Router /matches/{id}/segments/{number} [put]
func (h *MatchHandler) RecordSegment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid match ID"})
		return
	}
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil || number < 1 || number > 7 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "segment number must be between 1 and 7"})
		return
	}

	var req service.RecordSegmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.matchService.RecordSegmentScore(id, number, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
