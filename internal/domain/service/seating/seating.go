// Package seating places groups into a classroom grid.
package seating

import (
	"math/rand"

	"seatplan/internal/domain/entity"
	"seatplan/internal/domain/value"
)

// cluster is the set of students sharing one seat.
type cluster struct {
	members []entity.StudentID
	groupID int
}

type looseStudent struct {
	id      entity.StudentID
	groupID int
}

// AssignSeats lays groups out row by row, seatCapacity students per seat.
// The order inside seats and across seats is shuffled with seed only. No
// seat holds more than value.MaxSeatOccupants students.
func AssignSeats(groups []entity.Group, columns, seatCapacity int, seed value.Seed) entity.ClassroomLayout {
	columns = max(columns, 1)
	seatCapacity = min(max(seatCapacity, 1), value.MaxSeatOccupants)

	clusters, loose := split(groups, seatCapacity)

	paired, odd := pairLoose(loose, seatCapacity)
	clusters = append(clusters, paired...)
	clusters = attachOddOneOut(clusters, odd)

	shuffle(clusters, seed)

	return place(clusters, columns, seed)
}

// split cuts groups into seat sized chunks. Chunks of one student, including
// whole singleton groups, are returned as loose students.
func split(groups []entity.Group, seatCapacity int) ([]cluster, []looseStudent) {
	var (
		clusters []cluster
		loose    []looseStudent
	)

	for _, g := range groups {
		for start := 0; start < len(g.Members); start += seatCapacity {
			end := min(start+seatCapacity, len(g.Members))
			chunk := g.Members[start:end]

			if len(chunk) == 1 && seatCapacity > 1 {
				loose = append(loose, looseStudent{id: chunk[0], groupID: g.ID})
				continue
			}

			clusters = append(clusters, cluster{
				members: append([]entity.StudentID(nil), chunk...),
				groupID: g.ID,
			})
		}
	}

	return clusters, loose
}

// pairLoose seats loose students two by two in input order. The last
// student of an odd count is returned separately.
func pairLoose(loose []looseStudent, seatCapacity int) ([]cluster, *looseStudent) {
	var clusters []cluster

	if seatCapacity < 2 {
		for _, s := range loose {
			clusters = append(clusters, cluster{members: []entity.StudentID{s.id}, groupID: s.groupID})
		}
		return clusters, nil
	}

	i := 0
	for ; i+1 < len(loose); i += 2 {
		clusters = append(clusters, cluster{
			members: []entity.StudentID{loose[i].id, loose[i+1].id},
			groupID: loose[i].groupID,
		})
	}

	if i < len(loose) {
		odd := loose[i]
		return clusters, &odd
	}

	return clusters, nil
}

// attachOddOneOut adds the unpaired student to the most recently formed
// cluster that still has room. Without one it gets a seat of its own.
func attachOddOneOut(clusters []cluster, odd *looseStudent) []cluster {
	if odd == nil {
		return clusters
	}

	for i := len(clusters) - 1; i >= 0; i-- {
		if len(clusters[i].members) < value.MaxSeatOccupants {
			clusters[i].members = append(clusters[i].members, odd.id)
			return clusters
		}
	}

	return append(clusters, cluster{members: []entity.StudentID{odd.id}, groupID: odd.groupID})
}

func shuffle(clusters []cluster, seed value.Seed) {
	rng := rand.New(rand.NewSource(int64(seed))) //nolint:gosec // layout order, not security

	for _, c := range clusters {
		rng.Shuffle(len(c.members), func(i, j int) {
			c.members[i], c.members[j] = c.members[j], c.members[i]
		})
	}

	rng.Shuffle(len(clusters), func(i, j int) {
		clusters[i], clusters[j] = clusters[j], clusters[i]
	})
}

func place(clusters []cluster, columns int, seed value.Seed) entity.ClassroomLayout {
	rows := max((len(clusters)+columns-1)/columns, 1)

	layout := entity.ClassroomLayout{
		Rows:    rows,
		Columns: columns,
		Seed:    int64(seed),
		Seats:   make([]entity.Seat, rows*columns),
	}

	for i := range layout.Seats {
		seat := entity.Seat{Row: i / columns, Column: i % columns}

		if i < len(clusters) {
			seat.Occupants = clusters[i].members
			seat.GroupID = clusters[i].groupID
			seat.Occupied = true
		}

		layout.Seats[i] = seat
	}

	return layout
}
