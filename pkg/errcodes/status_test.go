package errcodes_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"seatplan/pkg/errcodes"
)

func TestHTTPStatus(t *testing.T) {
	rq := require.New(t)

	status, ok := errcodes.HTTPStatus(errcodes.BallotAlreadyCast)
	rq.True(ok)
	rq.Equal(http.StatusConflict, status)

	status, ok = errcodes.HTTPStatus(errcodes.CohortNotFound)
	rq.True(ok)
	rq.Equal(http.StatusNotFound, status)

	_, ok = errcodes.HTTPStatus("Unknown")
	rq.False(ok)
}
