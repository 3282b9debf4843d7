package entity

import "time"

// Arrangement is a layout saved by an instructor under a name.
type Arrangement struct {
	ID        int64           `json:"id"`
	Cohort    string          `json:"cohort"`
	Name      string          `json:"name"`
	Layout    ClassroomLayout `json:"layout"`
	Students  int             `json:"students"`
	IsCurrent bool            `json:"is_current"`
	CreatedAt time.Time       `json:"created_at"`
}
