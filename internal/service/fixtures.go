package service

import (
	"time"

	"github.com/google/uuid"
)

// fixturePairing is one home/away assignment within a round
type fixturePairing struct {
	HomeTeamID uuid.UUID
	AwayTeamID uuid.UUID
}

// fixtureRound is one match day's worth of pairings
type fixtureRound struct {
	Number   int
	Date     time.Time
	Pairings []fixturePairing
}

// byeTeamID marks the synthetic opponent padded in for odd team counts.
// Pairings against it are dropped before a round is returned.
var byeTeamID = uuid.Nil

// buildFixtures produces a double round-robin schedule using the circle
// method: the first team stays fixed while the rest rotate one position
// per round. The fixed team hosts on even rounds and travels on odd ones,
// and the remaining pairings alternate the same way. The second leg
// replays the rotation as it stood at the end of leg one with every
// pairing's home/away roles swapped, after a one-interval spacer.
// Round numbers run continuously 1..2(n-1).
func buildFixtures(teamIDs []uuid.UUID, startDate time.Time, intervalDays int) []fixtureRound {
	teams := make([]uuid.UUID, len(teamIDs))
	copy(teams, teamIDs)

	if len(teams)%2 != 0 {
		teams = append(teams, byeTeamID)
	}
	numTeams := len(teams)

	fixed := teams[0]
	rotating := make([]uuid.UUID, len(teams)-1)
	copy(rotating, teams[1:])

	interval := time.Duration(intervalDays) * 24 * time.Hour
	rounds := make([]fixtureRound, 0, 2*(numTeams-1))
	roundNumber := 1
	date := startDate

	// First leg: every pair meets once
	for roundIdx := 0; roundIdx < numTeams-1; roundIdx++ {
		pairings := make([]fixturePairing, 0, numTeams/2)

		if roundIdx%2 == 0 {
			pairings = append(pairings, fixturePairing{HomeTeamID: fixed, AwayTeamID: rotating[0]})
		} else {
			pairings = append(pairings, fixturePairing{HomeTeamID: rotating[0], AwayTeamID: fixed})
		}

		for i := 1; i <= len(rotating)/2; i++ {
			home := rotating[i]
			away := rotating[len(rotating)-i]
			if roundIdx%2 != 0 {
				home, away = away, home
			}
			pairings = append(pairings, fixturePairing{HomeTeamID: home, AwayTeamID: away})
		}

		rounds = append(rounds, fixtureRound{
			Number:   roundNumber,
			Date:     date,
			Pairings: dropByePairings(pairings),
		})

		rotating = rotateOnce(rotating)
		roundNumber++
		date = date.Add(interval)
	}

	// Spacer between the legs
	date = date.Add(interval)

	// Second leg: same rotation order, home/away swapped
	for roundIdx := 0; roundIdx < numTeams-1; roundIdx++ {
		pairings := make([]fixturePairing, 0, numTeams/2)

		if roundIdx%2 == 0 {
			pairings = append(pairings, fixturePairing{HomeTeamID: rotating[0], AwayTeamID: fixed})
		} else {
			pairings = append(pairings, fixturePairing{HomeTeamID: fixed, AwayTeamID: rotating[0]})
		}

		for i := 1; i <= len(rotating)/2; i++ {
			home := rotating[len(rotating)-i]
			away := rotating[i]
			if roundIdx%2 != 0 {
				home, away = away, home
			}
			pairings = append(pairings, fixturePairing{HomeTeamID: home, AwayTeamID: away})
		}

		rounds = append(rounds, fixtureRound{
			Number:   roundNumber,
			Date:     date,
			Pairings: dropByePairings(pairings),
		})

		rotating = rotateOnce(rotating)
		roundNumber++
		date = date.Add(interval)
	}

	return rounds
}

// rotateOnce moves the last team to the front, shifting the rest right
func rotateOnce(teams []uuid.UUID) []uuid.UUID {
	rotated := make([]uuid.UUID, 0, len(teams))
	rotated = append(rotated, teams[len(teams)-1])
	rotated = append(rotated, teams[:len(teams)-1]...)
	return rotated
}

func dropByePairings(pairings []fixturePairing) []fixturePairing {
	kept := make([]fixturePairing, 0, len(pairings))
	for _, p := range pairings {
		if p.HomeTeamID == byeTeamID || p.AwayTeamID == byeTeamID {
			continue
		}
		kept = append(kept, p)
	}
	return kept
}
