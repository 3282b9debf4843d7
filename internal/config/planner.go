package config

import (
	"errors"
	"time"

	"seatplan/internal/domain/value"
)

type Planner struct {
	SeedThreshold      float64       `env:"PLANNER_SEED_THRESHOLD"      envDefault:"3.5"`
	ExpansionThreshold float64       `env:"PLANNER_EXPANSION_THRESHOLD" envDefault:"3.0"`
	ResidualThreshold  float64       `env:"PLANNER_RESIDUAL_THRESHOLD"  envDefault:"2.5"`
	SuccessThreshold   float64       `env:"PLANNER_SUCCESS_THRESHOLD"   envDefault:"3.0"`
	GroupCap           int           `env:"PLANNER_GROUP_CAP"           envDefault:"4"`
	Columns            int           `env:"PLANNER_COLUMNS"             envDefault:"6"`
	SeatCapacity       int           `env:"PLANNER_SEAT_CAPACITY"       envDefault:"2"`
	LayoutTTL          time.Duration `env:"PLANNER_LAYOUT_TTL"          envDefault:"1h"`
	RefreshWorkers     int           `env:"PLANNER_REFRESH_WORKERS"     envDefault:"2"`
}

func (p Planner) Thresholds() value.Thresholds {
	return value.Thresholds{
		SeedPairing: p.SeedThreshold,
		Expansion:   p.ExpansionThreshold,
		Residual:    p.ResidualThreshold,
		Success:     p.SuccessThreshold,
		GroupCap:    p.GroupCap,
	}.Normalized()
}

func (p Planner) validate() error {
	for _, t := range []float64{p.SeedThreshold, p.ExpansionThreshold, p.ResidualThreshold, p.SuccessThreshold} {
		if t < 1 || t > value.MaxScore {
			return errors.New("thresholds must be within the score range")
		}
	}

	if p.Columns < 1 || p.SeatCapacity < 1 {
		return errors.New("columns and seat capacity must be positive")
	}

	if p.SeatCapacity > value.MaxSeatOccupants {
		return errors.New("seat capacity exceeds the seat size")
	}

	return nil
}
