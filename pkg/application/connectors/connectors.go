// Package connectors lazily opens shared clients (postgres, redis) from
// configuration.
package connectors

import "seatplan/pkg/contextx"

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals
