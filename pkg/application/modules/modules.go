// Package modules runs long lived servers inside the application errgroup.
package modules

import "seatplan/pkg/contextx"

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals
