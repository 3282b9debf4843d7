package value

// Grouping cutoffs. They are configuration, not derived values.
const (
	// DefaultSeedThreshold is the minimum mutual average for a phase one pair.
	DefaultSeedThreshold = 3.5

	// DefaultExpansionThreshold is the minimum mean of a student's own ratings
	// toward a group's members for the student to join it.
	DefaultExpansionThreshold = 3.0

	// DefaultResidualThreshold is the minimum mutual affinity for leftover pairs.
	DefaultResidualThreshold = 2.5

	// DefaultSuccessThreshold is the within-group mean affinity that makes a group successful.
	DefaultSuccessThreshold = 3.0

	DefaultGroupCap     = 4
	DefaultSeatCapacity = 2
	DefaultColumns      = 6
	MaxScore            = 5

	// MaxSeatOccupants bounds a seat, odd one out included.
	MaxSeatOccupants = 3
)

type Thresholds struct {
	SeedPairing float64
	Expansion   float64
	Residual    float64
	Success     float64
	GroupCap    int
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		SeedPairing: DefaultSeedThreshold,
		Expansion:   DefaultExpansionThreshold,
		Residual:    DefaultResidualThreshold,
		Success:     DefaultSuccessThreshold,
		GroupCap:    DefaultGroupCap,
	}
}

// Normalized replaces a cap below two with the default.
func (t Thresholds) Normalized() Thresholds {
	if t.GroupCap < 2 {
		t.GroupCap = DefaultGroupCap
	}
	return t
}
