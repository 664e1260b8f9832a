package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeTeamIDs(n int) []uuid.UUID {
	ids := make([]uuid.UUID, n)
	for i := range ids {
		ids[i] = uuid.New()
	}
	return ids
}

func TestBuildFixturesEvenTeamCount(t *testing.T) {
	teams := makeTeamIDs(4)
	start := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)

	rounds := buildFixtures(teams, start, 7)

	// 2(n-1) rounds, n/2 matches each
	require.Len(t, rounds, 6)
	for _, round := range rounds {
		assert.Len(t, round.Pairings, 2)
	}

	// Round numbers run 1..2(n-1) without gaps
	for i, round := range rounds {
		assert.Equal(t, i+1, round.Number)
	}
}

func TestBuildFixturesEveryOrderedPairOnce(t *testing.T) {
	teams := makeTeamIDs(6)
	start := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)

	rounds := buildFixtures(teams, start, 7)
	require.Len(t, rounds, 10)

	type pair struct{ home, away uuid.UUID }
	seen := make(map[pair]int)
	for _, round := range rounds {
		for _, p := range round.Pairings {
			seen[pair{p.HomeTeamID, p.AwayTeamID}]++
		}
	}

	// Each ordered pair exactly once: hosts once, travels once
	assert.Len(t, seen, 30)
	for p, count := range seen {
		assert.Equal(t, 1, count, "pair %s vs %s scheduled %d times", p.home, p.away, count)
		assert.NotEqual(t, p.home, p.away)
	}
}

func TestBuildFixturesNoTeamPlaysTwicePerRound(t *testing.T) {
	teams := makeTeamIDs(8)
	start := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)

	for _, round := range buildFixtures(teams, start, 7) {
		involved := make(map[uuid.UUID]bool)
		for _, p := range round.Pairings {
			assert.False(t, involved[p.HomeTeamID], "round %d: team appears twice", round.Number)
			assert.False(t, involved[p.AwayTeamID], "round %d: team appears twice", round.Number)
			involved[p.HomeTeamID] = true
			involved[p.AwayTeamID] = true
		}
	}
}

func TestBuildFixturesOddTeamCountByes(t *testing.T) {
	teams := makeTeamIDs(5)
	start := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)

	rounds := buildFixtures(teams, start, 7)

	// Padded to 6 teams: 10 rounds, each with one pairing dropped
	require.Len(t, rounds, 10)
	totalMatches := 0
	for _, round := range rounds {
		assert.Len(t, round.Pairings, 2, "round %d", round.Number)
		totalMatches += len(round.Pairings)
		for _, p := range round.Pairings {
			assert.NotEqual(t, byeTeamID, p.HomeTeamID)
			assert.NotEqual(t, byeTeamID, p.AwayTeamID)
		}
	}
	// 5 teams, double round robin: 5*4 ordered pairs
	assert.Equal(t, 20, totalMatches)

	// Every team sits out exactly twice
	byes := make(map[uuid.UUID]int)
	for _, id := range teams {
		byes[id] = len(rounds)
	}
	for _, round := range rounds {
		for _, p := range round.Pairings {
			byes[p.HomeTeamID]--
			byes[p.AwayTeamID]--
		}
	}
	for id, sitOuts := range byes {
		assert.Equal(t, 2, sitOuts, "team %s", id)
	}
}

func TestBuildFixturesSecondLegMirrorsFirst(t *testing.T) {
	teams := makeTeamIDs(4)
	start := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)

	rounds := buildFixtures(teams, start, 7)
	require.Len(t, rounds, 6)

	type pair struct{ home, away uuid.UUID }
	firstLeg := make(map[pair]bool)
	for _, round := range rounds[:3] {
		for _, p := range round.Pairings {
			firstLeg[pair{p.HomeTeamID, p.AwayTeamID}] = true
		}
	}
	for _, round := range rounds[3:] {
		for _, p := range round.Pairings {
			assert.True(t, firstLeg[pair{p.AwayTeamID, p.HomeTeamID}],
				"second-leg fixture %s vs %s has no mirrored first-leg fixture", p.HomeTeamID, p.AwayTeamID)
		}
	}
}

func TestBuildFixturesDates(t *testing.T) {
	teams := makeTeamIDs(4)
	start := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)

	rounds := buildFixtures(teams, start, 7)
	require.Len(t, rounds, 6)

	// First leg weekly from the start date
	assert.Equal(t, start, rounds[0].Date)
	assert.Equal(t, start.AddDate(0, 0, 7), rounds[1].Date)
	assert.Equal(t, start.AddDate(0, 0, 14), rounds[2].Date)

	// One-interval spacer before the second leg
	assert.Equal(t, start.AddDate(0, 0, 28), rounds[3].Date)
	assert.Equal(t, start.AddDate(0, 0, 35), rounds[4].Date)
	assert.Equal(t, start.AddDate(0, 0, 42), rounds[5].Date)
}

func TestBuildFixturesDeterministic(t *testing.T) {
	teams := makeTeamIDs(6)
	start := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)

	first := buildFixtures(teams, start, 7)
	second := buildFixtures(teams, start, 7)

	assert.Equal(t, first, second)
}

func TestBuildFixturesTwoTeams(t *testing.T) {
	teams := makeTeamIDs(2)
	start := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)

	rounds := buildFixtures(teams, start, 7)

	require.Len(t, rounds, 2)
	require.Len(t, rounds[0].Pairings, 1)
	require.Len(t, rounds[1].Pairings, 1)
	assert.Equal(t, rounds[0].Pairings[0].HomeTeamID, rounds[1].Pairings[0].AwayTeamID)
	assert.Equal(t, rounds[0].Pairings[0].AwayTeamID, rounds[1].Pairings[0].HomeTeamID)
}
