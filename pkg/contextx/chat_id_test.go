package contextx_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"seatplan/pkg/contextx"
)

func TestChatID(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	chatID, err := contextx.ChatIDFromContext(ctx)
	rq.Zero(chatID)
	rq.ErrorIs(err, contextx.ErrNoValue)
	rq.ErrorContains(err, "chat id: no value in context")

	ctx = contextx.WithChatID(ctx, -100123)

	chatID, err = contextx.ChatIDFromContext(ctx)
	rq.NoError(err)
	rq.Equal(contextx.ChatID(-100123), chatID)
	rq.Equal("-100123", chatID.String())
}
