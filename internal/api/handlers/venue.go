package handlers

import (
	"net/http"
	"strconv"

	"league-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// VenueHandler handles HTTP requests for venue operations
type VenueHandler struct {
	venueService service.VenueServiceInterface
}

// NewVenueHandler creates a new venue handler
func NewVenueHandler(venueService service.VenueServiceInterface) *VenueHandler {
	return &VenueHandler{
		venueService: venueService,
	}
}

// ListVenues handles GET /venues
// @Summary List all venues
// @Description Get all venues with pagination support
// @Tags venues
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.VenueListResponse "Successfully retrieved venues"
// @Security BearerAuth
// @Router /venues [get]
func (h *VenueHandler) ListVenues(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	resp, err := h.venueService.GetAllVenues(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateVenue handles POST /venues
// @Summary Create a new venue
// @Description Create a new playing venue
// @Tags venues
// @Accept json
// @Produce json
// @Param venue body service.CreateVenueRequest true "Venue data"
// @Success 201 {object} service.VenueResponse "Successfully created venue"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Security BearerAuth
// @Router /venues [post]
func (h *VenueHandler) CreateVenue(c *gin.Context) {
	var req service.CreateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	venue, err := h.venueService.CreateVenue(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, venue)
}

// GetVenue handles GET /venues/:id
// @Summary Get venue by ID
// @Description Get a specific venue by its UUID
// @Tags venues
// @Accept json
// @Produce json
// @Param id path string true "Venue ID"
// @Success 200 {object} service.VenueResponse "Successfully retrieved venue"
// @Failure 404 {object} map[string]interface{} "Venue not found"
// @Security BearerAuth
// @Router /venues/{id} [get]
func (h *VenueHandler) GetVenue(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid venue ID"})
		return
	}

	venue, err := h.venueService.GetVenueByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, venue)
}

// UpdateVenue handles PUT /venues/:id
// @Summary Update a venue
// @Description Update an existing venue
// @Tags venues
// @Accept json
// @Produce json
// @Param id path string true "Venue ID"
// @Param venue body service.UpdateVenueRequest true "Venue data"
// @Success 200 {object} service.VenueResponse "Successfully updated venue"
// @Failure 404 {object} map[string]interface{} "Venue not found"
// @Security BearerAuth
// @Router /venues/{id} [put]
func (h *VenueHandler) UpdateVenue(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid venue ID"})
		return
	}

	var req service.UpdateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	venue, err := h.venueService.UpdateVenue(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, venue)
}

// DeleteVenue handles DELETE /venues/:id
// @Summary Delete a venue
// @Description Delete a venue
// @Tags venues
// @Accept json
// @Produce json
// @Param id path string true "Venue ID"
// @Success 204 "Successfully deleted venue"
// @Failure 404 {object} map[string]interface{} "Venue not found"
// @Security BearerAuth
// @Router /venues/{id} [delete]
func (h *VenueHandler) DeleteVenue(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid venue ID"})
		return
	}

	if err := h.venueService.DeleteVenue(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
