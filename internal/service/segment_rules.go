package service

import (
	"fmt"

	"league-manager-backend/internal/database/models"
	apperrors "league-manager-backend/internal/errors"

	"github.com/google/uuid"
)

// segmentUpdate is a proposed write to one segment of a match
type segmentUpdate struct {
	Number        int
	HomeScore     *int
	AwayScore     *int
	HomePlayerIDs []uuid.UUID
	AwayPlayerIDs []uuid.UUID
}

// validateSegmentUpdate checks a proposed segment write against the full
// segment set of its match. The rules, in order:
//   - scores come as a pair: both set or both empty, each non-negative
//   - every write carries whole lineups or none: a side submits zero
//     players or the full count (two for doubles, one for singles),
//     and a scored segment needs both sides complete
//   - a player appears at most once per participation group, per side
//   - cumulative totals stay within k * 7 through every segment k,
//     and within 49 for the match overall
//
// segments must hold all seven rows of the match in play order, with
// lineups loaded. The update is validated as if already applied.
func validateSegmentUpdate(segments []models.SegmentScore, upd segmentUpdate) error {
	target := findSegment(segments, upd.Number)
	if target == nil {
		return apperrors.ErrSegmentScoreNotFound
	}

	if err := validateScorePair(upd.HomeScore, upd.AwayScore); err != nil {
		return err
	}
	if err := validateLineup(target.SegmentType, upd); err != nil {
		return err
	}
	if err := validateParticipation(segments, target.SegmentType, upd); err != nil {
		return err
	}
	return validateScoreCaps(segments, upd)
}

func findSegment(segments []models.SegmentScore, number int) *models.SegmentScore {
	for i := range segments {
		if segments[i].SegmentNumber == number {
			return &segments[i]
		}
	}
	return nil
}

func validateScorePair(home, away *int) error {
	if (home == nil) != (away == nil) {
		return apperrors.NewValidationError("scores", "home and away scores must be recorded together")
	}
	if home != nil && (*home < 0 || *away < 0) {
		return apperrors.NewValidationError("scores", "scores cannot be negative")
	}
	return nil
}

// validateLineup checks lineup sizes on every write. Lineups may be
// submitted ahead of scores, but never partially: each side is empty or
// complete, and once scores arrive both sides must be complete.
func validateLineup(segmentType models.SegmentType, upd segmentUpdate) error {
	required := 1
	if segmentType.Kind() == models.SegmentKindDoubles {
		required = 2
	}
	for _, lineup := range [][]uuid.UUID{upd.HomePlayerIDs, upd.AwayPlayerIDs} {
		if len(lineup) != 0 && len(lineup) != required {
			return apperrors.NewValidationError("players",
				fmt.Sprintf("%s segments require exactly %d player(s) per side", segmentType.Kind(), required))
		}
		if upd.HomeScore != nil && len(lineup) != required {
			return apperrors.NewValidationError("players",
				fmt.Sprintf("a scored %s segment requires %d player(s) per side", segmentType.Kind(), required))
		}
		if hasDuplicateID(lineup) {
			return apperrors.NewValidationError("players", "a lineup cannot list the same player twice")
		}
	}
	return nil
}

// validateParticipation enforces group exclusivity: a player may play in
// at most one segment of each participation group, per match and side.
func validateParticipation(segments []models.SegmentScore, segmentType models.SegmentType, upd segmentUpdate) error {
	group := segmentType.ParticipationGroup()
	for i := range segments {
		other := &segments[i]
		if other.SegmentNumber == upd.Number || other.SegmentType.ParticipationGroup() != group {
			continue
		}
		for _, id := range upd.HomePlayerIDs {
			if lineupContains(other.HomePlayers, id) {
				return apperrors.NewValidationError("players",
					fmt.Sprintf("player already plays segment %s of the same group", other.SegmentType))
			}
		}
		for _, id := range upd.AwayPlayerIDs {
			if lineupContains(other.AwayPlayers, id) {
				return apperrors.NewValidationError("players",
					fmt.Sprintf("player already plays segment %s of the same group", other.SegmentType))
			}
		}
	}
	return nil
}

// validateScoreCaps applies the update to a copy of the score table and
// checks every cumulative prefix: through segment k a side may hold at
// most k * 7 points, and 49 overall.
func validateScoreCaps(segments []models.SegmentScore, upd segmentUpdate) error {
	homeTotal, awayTotal := 0, 0
	for k := 1; k <= models.SegmentsPerMatch; k++ {
		seg := findSegment(segments, k)
		if seg == nil {
			continue
		}
		home, away := seg.HomeScore, seg.AwayScore
		if k == upd.Number {
			home, away = upd.HomeScore, upd.AwayScore
		}
		if home != nil {
			homeTotal += *home
		}
		if away != nil {
			awayTotal += *away
		}
		limit := k * models.MaxSegmentScore
		if homeTotal > limit || awayTotal > limit {
			return apperrors.NewValidationError("scores",
				fmt.Sprintf("cumulative score through segment %d cannot exceed %d", k, limit))
		}
	}
	if homeTotal > models.MaxMatchScore || awayTotal > models.MaxMatchScore {
		return apperrors.NewValidationError("scores",
			fmt.Sprintf("match total cannot exceed %d", models.MaxMatchScore))
	}
	return nil
}

// matchComplete reports whether the segment set decides the match: all
// seven segments scored and either side at 49, or a 48-48 deadlock.
func matchComplete(segments []models.SegmentScore) bool {
	if len(segments) < models.SegmentsPerMatch {
		return false
	}
	homeTotal, awayTotal := 0, 0
	for i := range segments {
		if !segments[i].Scored() {
			return false
		}
		homeTotal += *segments[i].HomeScore
		awayTotal += *segments[i].AwayScore
	}
	if homeTotal == models.MaxMatchScore || awayTotal == models.MaxMatchScore {
		return true
	}
	return homeTotal == models.MaxMatchScore-1 && awayTotal == models.MaxMatchScore-1
}

func lineupContains(players []models.Player, id uuid.UUID) bool {
	for i := range players {
		if players[i].ID == id {
			return true
		}
	}
	return false
}

func hasDuplicateID(ids []uuid.UUID) bool {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return true
		}
		seen[id] = struct{}{}
	}
	return false
}
