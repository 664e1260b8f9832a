package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"league-manager-backend/internal/config"
	"league-manager-backend/internal/database"
	"league-manager-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type VenueData struct {
	Name    string `yaml:"name"`
	City    string `yaml:"city"`
	Address string `yaml:"address,omitempty"`
}

type LeagueData struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

type TeamData struct {
	Name      string `yaml:"name"`
	Manager   string `yaml:"manager,omitempty"`
	VenueName string `yaml:"venue_name,omitempty"`
}

type PlayerData struct {
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
}

type SeasonData struct {
	LeagueName string   `yaml:"league_name"`
	Year       int      `yaml:"year"`
	Active     bool     `yaml:"active"`
	TeamNames  []string `yaml:"teams,omitempty"`
}

// File structures
type VenuesFile struct {
	Venues []VenueData `yaml:"venues"`
}

type LeaguesFile struct {
	Leagues []LeagueData `yaml:"leagues"`
}

type TeamsFile struct {
	Teams []TeamData `yaml:"teams"`
}

type PlayersFile struct {
	Players []PlayerData `yaml:"players"`
}

type SeasonsFile struct {
	Seasons []SeasonData `yaml:"seasons"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent, // suppress SQL noise and "record not found" during loading
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	venues, err := loadVenues(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load venues: %w", err)
	}

	leagues, err := loadLeagues(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load leagues: %w", err)
	}

	teams, err := loadTeams(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load teams: %w", err)
	}

	players, err := loadPlayers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load players: %w", err)
	}

	seasons, err := loadSeasons(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load seasons: %w", err)
	}

	// Create venues first; teams reference them by name
	venueMap := make(map[string]*models.Venue)
	venueCreated := 0
	for _, venueData := range venues {
		venue, created, err := createVenue(db, venueData)
		if err != nil {
			return fmt.Errorf("failed to create venue %s: %w", venueData.Name, err)
		}
		venueMap[venueData.Name] = venue
		if created {
			venueCreated++
		}
	}
	log.Printf("Venues: %d created, %d total", venueCreated, len(venues))

	leagueMap := make(map[string]*models.League)
	leagueCreated := 0
	for _, leagueData := range leagues {
		league, created, err := createLeague(db, leagueData)
		if err != nil {
			return fmt.Errorf("failed to create league %s: %w", leagueData.Name, err)
		}
		leagueMap[leagueData.Name] = league
		if created {
			leagueCreated++
		}
	}
	log.Printf("Leagues: %d created, %d total", leagueCreated, len(leagues))

	teamMap := make(map[string]*models.Team)
	teamCreated := 0
	for _, teamData := range teams {
		team, created, err := createTeam(db, teamData, venueMap)
		if err != nil {
			return fmt.Errorf("failed to create team %s: %w", teamData.Name, err)
		}
		teamMap[teamData.Name] = team
		if created {
			teamCreated++
		}
	}
	log.Printf("Teams: %d created, %d total", teamCreated, len(teams))

	playerCreated := 0
	for _, playerData := range players {
		_, created, err := createPlayer(db, playerData)
		if err != nil {
			log.Printf("Warning: failed to create player %s %s: %v", playerData.FirstName, playerData.LastName, err)
			continue
		}
		if created {
			playerCreated++
		}
	}
	log.Printf("Players: %d created, %d total", playerCreated, len(players))

	seasonCreated := 0
	entriesCreated := 0
	for _, seasonData := range seasons {
		season, created, entries, err := createSeason(db, seasonData, leagueMap, teamMap)
		if err != nil {
			log.Printf("Warning: failed to create season %s %d: %v", seasonData.LeagueName, seasonData.Year, err)
			continue
		}
		_ = season
		if created {
			seasonCreated++
		}
		entriesCreated += entries
	}
	log.Printf("Seasons: %d created, %d total", seasonCreated, len(seasons))
	log.Printf("Season entries: %d created", entriesCreated)

	return nil
}

func loadVenues(dataDir string) ([]VenueData, error) {
	var allVenues []VenueData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "venues") {
			var file VenuesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allVenues = append(allVenues, file.Venues...)
		}
		return nil
	})

	return allVenues, err
}

func loadLeagues(dataDir string) ([]LeagueData, error) {
	var allLeagues []LeagueData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "leagues") {
			var file LeaguesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allLeagues = append(allLeagues, file.Leagues...)
		}
		return nil
	})

	return allLeagues, err
}

func loadTeams(dataDir string) ([]TeamData, error) {
	var allTeams []TeamData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "teams") {
			var file TeamsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allTeams = append(allTeams, file.Teams...)
		}
		return nil
	})

	return allTeams, err
}

func loadPlayers(dataDir string) ([]PlayerData, error) {
	var allPlayers []PlayerData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "players") {
			var file PlayersFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allPlayers = append(allPlayers, file.Players...)
		}
		return nil
	})

	return allPlayers, err
}

func loadSeasons(dataDir string) ([]SeasonData, error) {
	var allSeasons []SeasonData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "seasons") {
			var file SeasonsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allSeasons = append(allSeasons, file.Seasons...)
		}
		return nil
	})

	return allSeasons, err
}

func createVenue(db *gorm.DB, venueData VenueData) (*models.Venue, bool, error) {
	var venue models.Venue
	if err := db.Where("name = ?", venueData.Name).First(&venue).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			venue = models.Venue{
				Name:    venueData.Name,
				City:    venueData.City,
				Address: venueData.Address,
			}

			if err := db.Create(&venue).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create venue: %w", err)
			}
			return &venue, true, nil
		}
		return nil, false, fmt.Errorf("failed to query venue: %w", err)
	}

	return &venue, false, nil // existing
}

func createLeague(db *gorm.DB, leagueData LeagueData) (*models.League, bool, error) {
	var league models.League
	if err := db.Where("name = ?", leagueData.Name).First(&league).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			leagueType := models.LeagueTypeRegular
			if leagueData.Type != "" {
				leagueType = models.LeagueType(leagueData.Type)
			}
			if !leagueType.IsValid() {
				return nil, false, fmt.Errorf("unknown league type %q", leagueData.Type)
			}

			league = models.League{
				Name: leagueData.Name,
				Type: leagueType,
			}

			if err := db.Create(&league).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create league: %w", err)
			}
			return &league, true, nil
		}
		return nil, false, fmt.Errorf("failed to query league: %w", err)
	}

	return &league, false, nil // existing
}

func createTeam(db *gorm.DB, teamData TeamData, venueMap map[string]*models.Venue) (*models.Team, bool, error) {
	var team models.Team
	if err := db.Where("name = ?", teamData.Name).First(&team).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			team = models.Team{
				Name:    teamData.Name,
				Manager: teamData.Manager,
			}

			if teamData.VenueName != "" {
				if venue := venueMap[teamData.VenueName]; venue != nil {
					team.VenueID = &venue.ID
				} else {
					log.Printf("Warning: venue %s not found for team %s", teamData.VenueName, teamData.Name)
				}
			}

			if err := db.Create(&team).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create team: %w", err)
			}
			return &team, true, nil
		}
		return nil, false, fmt.Errorf("failed to query team: %w", err)
	}

	return &team, false, nil // existing
}

func createPlayer(db *gorm.DB, playerData PlayerData) (*models.Player, bool, error) {
	var player models.Player
	if err := db.Where("first_name = ? AND last_name = ?", playerData.FirstName, playerData.LastName).First(&player).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			player = models.Player{
				FirstName: playerData.FirstName,
				LastName:  playerData.LastName,
			}

			if err := db.Create(&player).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create player: %w", err)
			}
			return &player, true, nil
		}
		return nil, false, fmt.Errorf("failed to query player: %w", err)
	}

	return &player, false, nil // existing
}

func createSeason(db *gorm.DB, seasonData SeasonData, leagueMap map[string]*models.League, teamMap map[string]*models.Team) (*models.Season, bool, int, error) {
	league := leagueMap[seasonData.LeagueName]
	if league == nil {
		return nil, false, 0, fmt.Errorf("league %s not found", seasonData.LeagueName)
	}

	var season models.Season
	created := false
	if err := db.Where("league_id = ? AND year = ?", league.ID, seasonData.Year).First(&season).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, false, 0, fmt.Errorf("failed to query season: %w", err)
		}

		season = models.Season{
			LeagueID: league.ID,
			Year:     seasonData.Year,
			Active:   seasonData.Active,
		}
		if err := db.Create(&season).Error; err != nil {
			return nil, false, 0, fmt.Errorf("failed to create season: %w", err)
		}
		created = true
	}

	// Enter listed teams into the season
	entriesCreated := 0
	for _, teamName := range seasonData.TeamNames {
		team := teamMap[teamName]
		if team == nil {
			log.Printf("Warning: team %s not found for season %s %d", teamName, seasonData.LeagueName, seasonData.Year)
			continue
		}

		var entry models.SeasonTeam
		err := db.Where("season_id = ? AND team_id = ?", season.ID, team.ID).First(&entry).Error
		if err == gorm.ErrRecordNotFound {
			entry = models.SeasonTeam{
				SeasonID: season.ID,
				TeamID:   team.ID,
			}
			if err := db.Create(&entry).Error; err != nil {
				log.Printf("Warning: failed to enter team %s into season: %v", teamName, err)
				continue
			}
			entriesCreated++
		}
	}

	return &season, created, entriesCreated, nil
}
