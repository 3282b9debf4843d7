package middleware_test

import (
	"testing"

	"github.com/mymmrac/telego"
	"github.com/stretchr/testify/require"

	"seatplan/internal/transport/bot/middleware"
)

func TestSender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		update     telego.Update
		wantUser   int64
		wantChat   int64
		wantSender bool
	}{
		{
			name: "message",
			update: telego.Update{Message: &telego.Message{
				From: &telego.User{ID: 7},
				Chat: telego.Chat{ID: 70},
			}},
			wantUser:   7,
			wantChat:   70,
			wantSender: true,
		},
		{
			name: "callback without message",
			update: telego.Update{CallbackQuery: &telego.CallbackQuery{
				From: telego.User{ID: 8},
			}},
			wantUser:   8,
			wantChat:   8,
			wantSender: true,
		},
		{
			name:   "channel post without sender",
			update: telego.Update{Message: &telego.Message{Chat: telego.Chat{ID: 1}}},
		},
		{
			name:   "other update",
			update: telego.Update{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rq := require.New(t)

			user, chat, ok := middleware.Sender(tt.update)
			rq.Equal(tt.wantSender, ok)
			rq.Equal(tt.wantUser, user)
			rq.Equal(tt.wantChat, chat)
		})
	}
}
