package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"seatplan/pkg/logx"
	"seatplan/pkg/metrics"
	"seatplan/pkg/middlewarex"
)

type RouterOptions struct {
	Masker         logx.SensitiveDataMaskerInterface
	LogFieldMaxLen int
	CORSOrigins    []string
	// Metrics is optional.
	Metrics *metrics.HTTP
}

// NewRouter mounts s behind the request middleware chain.
func NewRouter(s Server, opts RouterOptions) http.Handler {
	if opts.Masker == nil {
		opts.Masker = logx.NewNopSensitiveDataMasker()
	}

	r := chi.NewRouter()

	r.Use(
		middlewarex.CORS(opts.CORSOrigins),
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.Recovery,
	)

	if opts.Metrics != nil {
		r.Use(middlewarex.Metrics(opts.Metrics))
	}

	r.Use(middlewarex.Logging(opts.Masker, opts.LogFieldMaxLen))

	s.RegisterRoutes(r)

	return r
}
