package server

import (
	"fmt"
	"net/http"

	"git.appkode.ru/pub/go/failure"
	"github.com/go-chi/chi/v5"

	"seatplan/internal/domain/value"
	"seatplan/pkg/errcodes"
	"seatplan/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Get("/v1/cohorts", handler(s.getV1Cohorts))

	r.Route("/v1/cohorts/{cohort}", func(r chi.Router) {
		r.Get("/students", handler(s.getV1Students))
		r.Post("/students/import", handler(s.postV1StudentsImport))

		r.Post("/ballots", handler(s.postV1Ballot))
		r.Delete("/ballots", handler(s.deleteV1Ballots))

		r.Get("/groups", handler(s.getV1Groups))
		r.Get("/insights", handler(s.getV1Insights))

		r.Get("/layout", handler(s.getV1Layout))
		r.Get("/layout.xlsx", handler(s.getV1LayoutXLSX))

		r.Route("/arrangements", func(r chi.Router) {
			r.Post("/", handler(s.postV1Arrangement))
			r.Get("/", handler(s.getV1Arrangements))
			r.Get("/current", handler(s.getV1CurrentArrangement))
		})
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}

func cohortParam(r *http.Request) (value.Cohort, error) {
	cohort, err := value.ParseCohort(chi.URLParam(r, "cohort"))
	if err != nil {
		return "", failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("value.ParseCohort: %w", err),
			failure.WithCode(errcodes.InvalidCohort),
			failure.WithDescription("cohort must be 1 to 50 letters, digits, '-' or '_'"),
		)
	}

	return cohort, nil
}
