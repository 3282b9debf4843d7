// Package middlewarex holds the net/http middleware shared by the API
// server: tracing, request scoped logging, CORS, metrics and recovery.
package middlewarex

import "seatplan/pkg/contextx"

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals
