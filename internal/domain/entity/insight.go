package entity

// BlockCount is how many voters blocked a student.
type BlockCount struct {
	Student StudentID `json:"student"`
	Count   int       `json:"count"`
}

// BlockReport aggregates block constraints of a cohort.
type BlockReport struct {
	Received []BlockCount   `json:"received"`
	Mutual   [][2]StudentID `json:"mutual"`
}

// Popularity describes the scores a student received.
type Popularity struct {
	Student StudentID `json:"student"`
	Mean    float64   `json:"mean"`
	Votes   int       `json:"votes"`
	Min     int       `json:"min"`
	Max     int       `json:"max"`
}
