package entity

// Seat is one desk of the classroom grid.
type Seat struct {
	Row       int         `json:"row"`
	Column    int         `json:"column"`
	Occupants []StudentID `json:"occupants,omitempty"`
	GroupID   int         `json:"group_id"`
	Occupied  bool        `json:"occupied"`
}

// ClassroomLayout is a row-major grid of seats.
type ClassroomLayout struct {
	Rows    int    `json:"rows"`
	Columns int    `json:"columns"`
	Seed    int64  `json:"seed"`
	Seats   []Seat `json:"seats"`
}

// At returns the seat at row, column (both zero based).
func (l ClassroomLayout) At(row, column int) Seat {
	return l.Seats[row*l.Columns+column]
}

// OccupiedSeats counts seats holding at least one student.
func (l ClassroomLayout) OccupiedSeats() int {
	n := 0
	for _, s := range l.Seats {
		if s.Occupied {
			n++
		}
	}
	return n
}

// Students returns every seated student in seat order.
func (l ClassroomLayout) Students() []StudentID {
	var out []StudentID
	for _, s := range l.Seats {
		out = append(out, s.Occupants...)
	}
	return out
}
