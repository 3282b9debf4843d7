package planner

import (
	"fmt"

	"seatplan/internal/domain"
	"seatplan/internal/domain/entity"
	"seatplan/pkg/errcodes"
)

const maxStudentIDLen = 100

// ValidateBallot checks a ballot against the roster: every score between
// 1 and maxScore is used at most once, nobody rates themselves, and the
// blocked peer, if any, is also rated.
func ValidateBallot(roster entity.Roster, voter entity.StudentID, ballot entity.Ballot, maxScore int) error {
	if !roster.Contains(voter) {
		return domain.NewError(errcodes.InvalidBallot, fmt.Sprintf("voter %s is not in the roster", voter))
	}

	if len(ballot.Ratings) == 0 {
		return domain.NewError(errcodes.InvalidBallot, "ballot rates nobody")
	}

	used := make(map[int]entity.StudentID, len(ballot.Ratings))

	for _, target := range ballot.Targets() {
		score := ballot.Ratings[target]

		switch {
		case target == voter:
			return domain.NewError(errcodes.InvalidBallot, "students cannot rate themselves")
		case !roster.Contains(target):
			return domain.NewError(errcodes.InvalidBallot, fmt.Sprintf("student %s is not in the roster", target))
		case score < 1 || score > maxScore:
			return domain.NewError(errcodes.InvalidScore, fmt.Sprintf("score for %s must be between 1 and %d", target, maxScore))
		}

		if other, ok := used[score]; ok {
			return domain.NewError(errcodes.InvalidScore, fmt.Sprintf("score %d given to both %s and %s", score, other, target))
		}

		used[score] = target
	}

	if ballot.Blocked != nil {
		blocked := *ballot.Blocked

		switch {
		case blocked == voter:
			return domain.NewError(errcodes.InvalidBlock, "students cannot block themselves")
		case !roster.Contains(blocked):
			return domain.NewError(errcodes.InvalidBlock, fmt.Sprintf("student %s is not in the roster", blocked))
		}

		if _, ok := ballot.Ratings[blocked]; !ok {
			return domain.NewError(errcodes.InvalidBlock, "the blocked student must also be rated")
		}
	}

	return nil
}

// normalizeRoster drops blanks and repeated ids, keeping first occurrences.
func normalizeRoster(ids []entity.StudentID) (entity.Roster, error) {
	seen := make(map[entity.StudentID]struct{}, len(ids))
	roster := make(entity.Roster, 0, len(ids))

	for _, id := range ids {
		if id == "" {
			continue
		}

		if len(id) > maxStudentIDLen {
			return nil, domain.NewError(errcodes.InvalidRoster, fmt.Sprintf("student id %.20s... is too long", id))
		}

		if _, ok := seen[id]; ok {
			continue
		}

		seen[id] = struct{}{}
		roster = append(roster, id)
	}

	if len(roster) == 0 {
		return nil, domain.NewError(errcodes.InvalidRoster, "roster is empty")
	}

	return roster, nil
}
