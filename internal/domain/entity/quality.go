package entity

// Quality summarizes how well a grouping honours mutual affinity.
type Quality struct {
	TotalGroups      int     `json:"total_groups"`
	TotalStudents    int     `json:"total_students"`
	SuccessfulGroups int     `json:"successful_groups"`
	SuccessRate      float64 `json:"success_rate"`
	MeanAffinity     float64 `json:"mean_affinity"`
}
