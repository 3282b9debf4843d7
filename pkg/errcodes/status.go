package errcodes

import (
	"net/http"

	"git.appkode.ru/pub/go/failure"
)

//nolint:gochecknoglobals
var httpStatus = map[failure.ErrorCode]int{
	InternalServerError: http.StatusInternalServerError,
	ValidationError:     http.StatusBadRequest,
	NotFound:            http.StatusNotFound,
	InvalidCohort:       http.StatusBadRequest,
	CohortNotFound:      http.StatusNotFound,
	InvalidRoster:       http.StatusBadRequest,
	InvalidBallot:       http.StatusBadRequest,
	InvalidScore:        http.StatusBadRequest,
	InvalidBlock:        http.StatusBadRequest,
	BallotAlreadyCast:   http.StatusConflict,
	InvalidColumns:      http.StatusBadRequest,
	ArrangementNotFound: http.StatusNotFound,
}

// HTTPStatus returns the response status for code.
func HTTPStatus(code failure.ErrorCode) (int, bool) {
	status, ok := httpStatus[code]
	return status, ok
}
