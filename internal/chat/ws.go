package chat

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

const writeTimeout = 5 * time.Second

// ServeHTTP streams the caller's visible backlog and then every new message
// as JSON over a websocket. The user id comes from the "user" query param.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := h.User(r.URL.Query().Get("user"))
	if user.ID == "" {
		http.Error(w, "missing param user", http.StatusBadRequest)
		return
	}

	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		slog.ErrorContext(ctx, "failed to accept", "err", err)
		return
	}
	defer conn.CloseNow()

	// CloseRead discards client frames and cancels ctx once the peer goes away.
	ctx = conn.CloseRead(ctx)

	backlog, msgs, cancel := h.Subscribe(user, 32)
	defer cancel()
	slog.DebugContext(ctx, "chat subscriber connected", "user", user.ID, "gm", user.GM)

	for _, m := range backlog {
		if err := write(ctx, conn, m); err != nil {
			slog.DebugContext(ctx, "chat write failed", "user", user.ID, "err", err)
			return
		}
	}
	for {
		select {
		case <-ctx.Done():
			conn.Close(websocket.StatusNormalClosure, "")
			return
		case m, ok := <-msgs:
			if !ok {
				return
			}
			if err := write(ctx, conn, m); err != nil {
				slog.DebugContext(ctx, "chat write failed", "user", user.ID, "err", err)
				return
			}
		}
	}
}

func write(ctx context.Context, conn *websocket.Conn, m Message) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	return wsjson.Write(ctx, conn, m)
}
