// Package rest holds the JSON bodies of the public API.
package rest

import "time"

type Cohorts struct {
	Cohorts []string `json:"cohorts"`
}

type Students struct {
	Cohort   string   `json:"cohort"`
	Students []string `json:"students"`
}

type Imported struct {
	Cohort   string `json:"cohort"`
	Imported int    `json:"imported"`
}

type Ballot struct {
	Voter   string         `json:"voter"   validate:"required,max=100"`
	Ratings map[string]int `json:"ratings" validate:"required,min=1,max=5"`
	Blocked *string        `json:"blocked,omitempty" validate:"omitempty,max=100"`
}

type Group struct {
	ID      int      `json:"id"`
	Members []string `json:"members"`
	Phase   string   `json:"phase"`
}

type Quality struct {
	TotalGroups      int     `json:"totalGroups"`
	TotalStudents    int     `json:"totalStudents"`
	SuccessfulGroups int     `json:"successfulGroups"`
	SuccessRate      float64 `json:"successRate"`
	MeanAffinity     float64 `json:"meanAffinity"`
}

type AffinityPair struct {
	A          string  `json:"a"`
	B          string  `json:"b"`
	Average    float64 `json:"average"`
	Difference int     `json:"difference"`
}

type Plan struct {
	Groups  []Group        `json:"groups"`
	Quality Quality        `json:"quality"`
	Pairs   []AffinityPair `json:"pairs"`
}

type Seat struct {
	Row       int      `json:"row"`
	Column    int      `json:"column"`
	Occupants []string `json:"occupants"`
	GroupID   int      `json:"groupId"`
}

type Layout struct {
	Rows    int    `json:"rows"`
	Columns int    `json:"columns"`
	Seed    int64  `json:"seed"`
	Seats   []Seat `json:"seats"`
}

type SaveArrangement struct {
	Name    string `json:"name"    validate:"required,max=100"`
	Columns int    `json:"columns" validate:"omitempty,min=1,max=20"`
	Seed    *int64 `json:"seed,omitempty"`
}

type Arrangement struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Students  int       `json:"students"`
	IsCurrent bool      `json:"isCurrent"`
	CreatedAt time.Time `json:"createdAt"`
	Layout    Layout    `json:"layout"`
}

type BlockCount struct {
	Student string `json:"student"`
	Count   int    `json:"count"`
}

type Popularity struct {
	Student string  `json:"student"`
	Mean    float64 `json:"mean"`
	Votes   int     `json:"votes"`
	Min     int     `json:"min"`
	Max     int     `json:"max"`
}

type Insights struct {
	BlocksReceived []BlockCount   `json:"blocksReceived"`
	MutualBlocks   [][2]string    `json:"mutualBlocks"`
	Popularity     []Popularity   `json:"popularity"`
	TopPairs       []AffinityPair `json:"topPairs"`
}

// Error is the body of every failed request.
type Error struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	SupportID string `json:"supportId"`
}
