package routes

import (
	"log"

	"league-manager-backend/internal/api/handlers"
	"league-manager-backend/internal/api/middleware"
	"league-manager-backend/internal/auth"
	"league-manager-backend/internal/config"
	"league-manager-backend/internal/logger"
	"league-manager-backend/internal/repository"
	"league-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	validator := validator.New()
	appLogger := logger.New()

	// Initialize repositories
	leagueRepo := repository.NewLeagueRepository(db)
	venueRepo := repository.NewVenueRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	playerRepo := repository.NewPlayerRepository(db)
	seasonRepo := repository.NewSeasonRepository(db)
	seasonTeamRepo := repository.NewSeasonTeamRepository(db)
	matchDayRepo := repository.NewMatchDayRepository(db)
	matchRepo := repository.NewMatchRepository(db)
	segmentScoreRepo := repository.NewSegmentScoreRepository(db)
	standingsRepo := repository.NewStandingsRepository(db)

	// Initialize services
	leagueService := service.NewLeagueService(leagueRepo, validator)
	venueService := service.NewVenueService(venueRepo, validator)
	teamService := service.NewTeamService(teamRepo, venueRepo, validator)
	playerService := service.NewPlayerService(playerRepo, validator)
	seasonService := service.NewSeasonService(seasonRepo, leagueRepo, teamRepo, playerRepo, seasonTeamRepo, validator)
	scheduleService := service.NewScheduleService(seasonRepo, seasonTeamRepo, matchDayRepo, matchRepo, validator, appLogger)
	standingsService := service.NewStandingsService(standingsRepo, matchDayRepo, matchRepo, appLogger)
	matchService := service.NewMatchService(matchRepo, segmentScoreRepo, matchDayRepo, playerRepo, standingsService, validator, appLogger)

	// Initialize auth
	authConfig, err := auth.LoadAuthConfig("config/auth.yaml")
	if err != nil {
		log.Printf("Warning: Failed to load auth config: %v", err)
		authConfig = nil
	}

	var authHandler *auth.AuthHandler
	var authMiddleware *auth.AuthMiddleware
	if authConfig != nil {
		authService, err := auth.NewAuthService(authConfig)
		if err != nil {
			log.Printf("Warning: Failed to initialize auth service: %v", err)
		} else {
			authHandler = auth.NewAuthHandler(authService)
			authMiddleware = auth.NewAuthMiddleware(authService)
		}
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	leagueHandler := handlers.NewLeagueHandler(leagueService, seasonService)
	venueHandler := handlers.NewVenueHandler(venueService)
	teamHandler := handlers.NewTeamHandler(teamService)
	playerHandler := handlers.NewPlayerHandler(playerService)
	seasonHandler := handlers.NewSeasonHandler(seasonService, scheduleService, matchService)
	matchHandler := handlers.NewMatchHandler(matchService)
	matchDayHandler := handlers.NewMatchDayHandler(matchService, standingsService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	if authHandler != nil {
		authGroup := router.Group("/api/auth")
		{
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/validate", authHandler.ValidateToken)
		}
	}

	// API v1 routes. Reads are public; mutations require a token when
	// auth is configured.
	v1 := router.Group("/api/v1")
	admin := router.Group("/api/v1")
	if authMiddleware != nil {
		admin.Use(authMiddleware.RequireAuth())
	}

	{
		v1.GET("/leagues", leagueHandler.ListLeagues)
		v1.GET("/leagues/:id", leagueHandler.GetLeague)
		v1.GET("/leagues/:id/seasons", leagueHandler.GetLeagueSeasons)
		admin.POST("/leagues", leagueHandler.CreateLeague)
		admin.PUT("/leagues/:id", leagueHandler.UpdateLeague)
		admin.DELETE("/leagues/:id", leagueHandler.DeleteLeague)

		v1.GET("/venues", venueHandler.ListVenues)
		v1.GET("/venues/:id", venueHandler.GetVenue)
		admin.POST("/venues", venueHandler.CreateVenue)
		admin.PUT("/venues/:id", venueHandler.UpdateVenue)
		admin.DELETE("/venues/:id", venueHandler.DeleteVenue)

		v1.GET("/teams", teamHandler.ListTeams)
		v1.GET("/teams/:id", teamHandler.GetTeam)
		v1.GET("/teams/:id/schedule", teamHandler.GetTeamSchedule)
		admin.POST("/teams", teamHandler.CreateTeam)
		admin.PUT("/teams/:id", teamHandler.UpdateTeam)
		admin.DELETE("/teams/:id", teamHandler.DeleteTeam)

		v1.GET("/players", playerHandler.ListPlayers)
		v1.GET("/players/:id", playerHandler.GetPlayer)
		v1.GET("/players/:id/team", playerHandler.GetPlayerTeam)
		admin.POST("/players", playerHandler.CreatePlayer)
		admin.PUT("/players/:id", playerHandler.UpdatePlayer)
		admin.DELETE("/players/:id", playerHandler.DeletePlayer)

		v1.GET("/seasons", seasonHandler.ListSeasons)
		v1.GET("/seasons/:id", seasonHandler.GetSeason)
		v1.GET("/seasons/:id/teams", seasonHandler.ListTeams)
		v1.GET("/seasons/:id/match-days", seasonHandler.ListMatchDays)
		admin.POST("/seasons", seasonHandler.CreateSeason)
		admin.PUT("/seasons/:id", seasonHandler.UpdateSeason)
		admin.DELETE("/seasons/:id", seasonHandler.DeleteSeason)
		admin.POST("/seasons/:id/teams", seasonHandler.AddTeam)
		admin.POST("/seasons/:id/schedule", seasonHandler.GenerateSchedule)

		v1.GET("/season-teams/:id", seasonHandler.GetRoster)
		admin.DELETE("/season-teams/:id", seasonHandler.RemoveTeamFromSeason)
		admin.POST("/season-teams/:id/players", seasonHandler.AddPlayerToRoster)
		admin.DELETE("/season-teams/:id/players/:player_id", seasonHandler.RemovePlayerFromRoster)

		v1.GET("/matches/:id", matchHandler.GetMatch)
		admin.POST("/matches/:id/start", matchHandler.StartMatch)
		admin.PUT("/matches/:id/segments/:number", matchHandler.RecordSegment)

		v1.GET("/match-days/:id", matchDayHandler.GetMatchDay)
		v1.GET("/match-days/:id/standings", matchDayHandler.GetStandings)
	}

	return router
}
