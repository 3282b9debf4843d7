package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"seatplan/pkg/metrics"
)

func TestPlanner(t *testing.T) {
	rq := require.New(t)
	reg := prometheus.NewRegistry()

	m := metrics.NewPlanner(reg)

	m.PlanComputed("request", 3*time.Millisecond)
	m.PlanComputed("refresh", time.Millisecond)
	m.PlanComputed("request", time.Millisecond)
	m.BallotAccepted()

	n, err := testutil.GatherAndCount(reg, "seatplan_plans_total")
	rq.NoError(err)
	rq.Equal(2, n)

	n, err = testutil.GatherAndCount(reg, "seatplan_ballots_total", "seatplan_plan_duration_seconds")
	rq.NoError(err)
	rq.Equal(2, n)
}

func TestHTTP(t *testing.T) {
	rq := require.New(t)
	reg := prometheus.NewRegistry()

	m := metrics.NewHTTP(reg)
	m.Observe("GET", "/v1/cohorts/{cohort}/groups", "200", time.Millisecond)

	n, err := testutil.GatherAndCount(reg, "seatplan_http_request_duration_seconds")
	rq.NoError(err)
	rq.Equal(1, n)
}
