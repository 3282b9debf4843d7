package config

import "time"

// Postgres holds rosters, ballots and saved arrangements.
type Postgres struct {
	DSN             string        `env:"PG_DSN,notEmpty"      json:"-"`
	MaxIdleConns    int           `env:"PG_MAX_IDLE_CONNS"    envDefault:"5"`
	MaxOpenConns    int           `env:"PG_MAX_OPEN_CONNS"    envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"PG_CONN_MAX_LIFETIME" envDefault:"5m"`
}

// Redis backs both the layout cache and the asynq queue. Without an address
// layouts are cached in process memory and refreshes run inline.
type Redis struct {
	Address  string `env:"REDIS_ADDRESS"`
	Username string `env:"REDIS_USERNAME"`
	Password string `env:"REDIS_PASSWORD"  json:"-"`
	DB       int    `env:"REDIS_DB"        envDefault:"0"`
	PoolSize int    `env:"REDIS_POOL_SIZE" envDefault:"10"`
	MinIdle  int    `env:"REDIS_MIN_IDLE"  envDefault:"1"`
	MaxIdle  int    `env:"REDIS_MAX_IDLE"  envDefault:"5"`
}

func (r Redis) Enabled() bool {
	return r.Address != ""
}
