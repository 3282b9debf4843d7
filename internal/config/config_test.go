package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"seatplan/internal/config"
	"seatplan/internal/domain/value"
)

func TestLoadDefaults(t *testing.T) {
	rq := require.New(t)

	t.Setenv("PG_DSN", "postgres://seatplan@localhost:5432/seatplan")

	cfg, err := config.Load()
	rq.NoError(err)

	rq.Equal("seatplan", cfg.App.Name)
	rq.Equal(":8080", cfg.HTTP.ListenAddress)
	rq.Equal([]string{"*"}, cfg.HTTP.CORSOrigins)
	rq.Equal(10*time.Second, cfg.HTTP.ShutdownTimeout)
	rq.Equal(6, cfg.Planner.Columns)
	rq.Equal(2, cfg.Planner.SeatCapacity)
	rq.Equal(time.Hour, cfg.Planner.LayoutTTL)
	rq.Equal(2, cfg.Planner.RefreshWorkers)
	rq.Equal(value.DefaultThresholds(), cfg.Planner.Thresholds())
	rq.False(cfg.Redis.Enabled())
	rq.False(cfg.Bot.Enabled())
}

func TestLoadOverrides(t *testing.T) {
	rq := require.New(t)

	t.Setenv("PG_DSN", "postgres://seatplan@localhost:5432/seatplan")
	t.Setenv("PLANNER_SEED_THRESHOLD", "4")
	t.Setenv("PLANNER_GROUP_CAP", "3")
	t.Setenv("HTTP_CORS_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("REDIS_ADDRESS", "127.0.0.1:6379")
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("BOT_CHAT_ID", "-100")

	cfg, err := config.Load()
	rq.NoError(err)

	th := cfg.Planner.Thresholds()
	rq.InDelta(4.0, th.SeedPairing, 1e-9)
	rq.Equal(3, th.GroupCap)
	rq.Equal([]string{"https://a.example", "https://b.example"}, cfg.HTTP.CORSOrigins)
	rq.True(cfg.Redis.Enabled())
	rq.True(cfg.Bot.Enabled())
	rq.Equal(int64(-100), cfg.Bot.ChatID)
}

func TestLoadErrors(t *testing.T) {
	testCases := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "Missing DSN",
			env:  map[string]string{"PG_DSN": ""},
		},
		{
			name: "Threshold above max score",
			env:  map[string]string{"PG_DSN": "postgres://x", "PLANNER_RESIDUAL_THRESHOLD": "7"},
		},
		{
			name: "Zero columns",
			env:  map[string]string{"PG_DSN": "postgres://x", "PLANNER_COLUMNS": "0"},
		},
		{
			name: "Seat capacity above seat size",
			env:  map[string]string{"PG_DSN": "postgres://x", "PLANNER_SEAT_CAPACITY": "4"},
		},
		{
			name: "Malformed number",
			env:  map[string]string{"PG_DSN": "postgres://x", "PLANNER_GROUP_CAP": "four"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			_, err := config.Load()
			require.Error(t, err)
		})
	}
}
