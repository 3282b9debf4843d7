package reply_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"git.appkode.ru/pub/go/failure"
	"github.com/stretchr/testify/require"

	"seatplan/pkg/contextx"
	"seatplan/pkg/errcodes"
	"seatplan/pkg/httpx/reply"
)

type codedError struct {
	code failure.ErrorCode
}

func (e codedError) Error() string                { return "coded: " + e.code.String() }
func (e codedError) ErrorCode() failure.ErrorCode { return e.code }
func (e codedError) Description() string          { return "described" }

func TestError(t *testing.T) {
	ctx := contextx.WithTraceID(context.Background(), "trace-1")

	testCases := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{
			name:   "Coded conflict",
			err:    fmt.Errorf("wrap: %w", codedError{code: errcodes.BallotAlreadyCast}),
			status: http.StatusConflict,
			body:   `{"code":"BallotAlreadyCast","message":"described","supportId":"trace-1"}`,
		},
		{
			name:   "Unknown code",
			err:    codedError{code: "Strange"},
			status: http.StatusInternalServerError,
			body:   `{"code":"Strange","message":"described","supportId":"trace-1"}`,
		},
		{
			name: "Invalid argument",
			err: failure.NewInvalidArgumentError(
				"bad",
				failure.WithCode(errcodes.InvalidColumns),
				failure.WithDescription("columns must be positive"),
			),
			status: http.StatusBadRequest,
			body:   `{"code":"InvalidColumns","message":"columns must be positive","supportId":"trace-1"}`,
		},
		{
			name:   "Plain error",
			err:    errors.New("boom"),
			status: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)
			w := httptest.NewRecorder()

			reply.Error(ctx, w, tc.err)

			rq.Equal(tc.status, w.Code)
			if tc.body != "" {
				rq.JSONEq(tc.body, w.Body.String())
			}
		})
	}
}

func TestAttachment(t *testing.T) {
	rq := require.New(t)
	w := httptest.NewRecorder()

	reply.Attachment(context.Background(), w, "text/plain", "layout.txt", []byte("seats"))

	rq.Equal(http.StatusOK, w.Code)
	rq.Equal(`attachment; filename="layout.txt"`, w.Header().Get("Content-Disposition"))
	rq.Equal("seats", w.Body.String())
}
