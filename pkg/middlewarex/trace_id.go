package middlewarex

import (
	"net/http"

	"github.com/rs/xid"

	"seatplan/pkg/contextx"
)

const HeaderTraceID = "X-Trace-Id"

// TraceID reuses the caller's X-Trace-Id or generates one, and echoes it in
// the response.
func TraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(HeaderTraceID)

		if traceID == "" {
			traceID = xid.New().String()
		}

		w.Header().Set(HeaderTraceID, traceID)

		next.ServeHTTP(w, r.WithContext(contextx.WithTraceID(r.Context(), contextx.TraceID(traceID))))
	})
}
