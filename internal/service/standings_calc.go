package service

import (
	"sort"

	"league-manager-backend/internal/database/models"

	"github.com/google/uuid"
)

// matchResult is a finished match reduced to what standings need
type matchResult struct {
	HomeTeamID uuid.UUID
	AwayTeamID uuid.UUID
	HomeScore  int
	AwayScore  int
}

// computeStandings folds a match day's results into the previous day's
// table and returns the new snapshot. Every row is a fresh copy bound to
// matchDayID; previous rows are never mutated. Teams absent from the
// previous table enter with zeroed counters, and only teams that played
// this round or appeared before get a row, so byes simply carry over.
func computeStandings(previous []models.StandingsRow, results []matchResult, matchDayID uuid.UUID) []models.StandingsRow {
	byTeam := make(map[uuid.UUID]*models.StandingsRow)
	order := make([]uuid.UUID, 0, len(previous)+2*len(results))

	rowFor := func(teamID uuid.UUID) *models.StandingsRow {
		if row, ok := byTeam[teamID]; ok {
			return row
		}
		row := &models.StandingsRow{TeamID: teamID, MatchDayID: matchDayID}
		byTeam[teamID] = row
		order = append(order, teamID)
		return row
	}

	for i := range previous {
		prev := &previous[i]
		row := rowFor(prev.TeamID)
		row.Played = prev.Played
		row.Wins = prev.Wins
		row.Draws = prev.Draws
		row.Losses = prev.Losses
		row.GoalsFor = prev.GoalsFor
		row.GoalsAgainst = prev.GoalsAgainst
	}

	for _, result := range results {
		home := rowFor(result.HomeTeamID)
		away := rowFor(result.AwayTeamID)

		home.Played++
		away.Played++
		home.GoalsFor += result.HomeScore
		home.GoalsAgainst += result.AwayScore
		away.GoalsFor += result.AwayScore
		away.GoalsAgainst += result.HomeScore

		switch {
		case result.HomeScore > result.AwayScore:
			home.Wins++
			away.Losses++
		case result.HomeScore < result.AwayScore:
			away.Wins++
			home.Losses++
		default:
			home.Draws++
			away.Draws++
		}
	}

	rows := make([]models.StandingsRow, 0, len(order))
	for _, teamID := range order {
		rows = append(rows, *byTeam[teamID])
	}
	return rows
}

// rankStandings sorts rows into table order: points, then goal
// difference, then goals scored, all descending. Ties beyond that keep
// their incoming order.
func rankStandings(rows []models.StandingsRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := &rows[i], &rows[j]
		if a.Points() != b.Points() {
			return a.Points() > b.Points()
		}
		if a.GoalDifference() != b.GoalDifference() {
			return a.GoalDifference() > b.GoalDifference()
		}
		return a.GoalsFor > b.GoalsFor
	})
}
