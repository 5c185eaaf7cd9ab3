package chat

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRollMode(t *testing.T) {
	tcs := map[string]RollMode{
		"":           ModePublic,
		"publicroll": ModePublic,
		"GMROLL":     ModeGM,
		" blindroll": ModeBlind,
		"selfroll":   ModeSelf,
	}
	for in, want := range tcs {
		got, err := ParseRollMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseRollMode("roll")
	assert.True(t, errors.Is(err, ErrUnknownRollMode))
}

func TestNewMessageVisibility(t *testing.T) {
	gms := []string{"gm"}
	alice := User{ID: "alice"}
	bob := User{ID: "bob"}
	gm := User{ID: "gm", GM: true}

	public := NewMessage("alice", ModePublic, gms, "x")
	assert.True(t, public.VisibleTo(bob))
	assert.Empty(t, public.Whisper)

	for _, mode := range []RollMode{ModeGM, ModeBlind} {
		m := NewMessage("alice", mode, gms, "x")
		assert.Equal(t, GMOnly, m.Visibility)
		assert.Equal(t, gms, m.Whisper)
		assert.True(t, m.VisibleTo(alice))
		assert.True(t, m.VisibleTo(gm))
		assert.False(t, m.VisibleTo(bob))
	}

	self := NewMessage("alice", ModeSelf, gms, "x")
	assert.Equal(t, SelfOnly, self.Visibility)
	assert.Equal(t, []string{"alice"}, self.Whisper)
	assert.True(t, self.VisibleTo(alice))
	assert.False(t, self.VisibleTo(gm))
	assert.False(t, self.VisibleTo(bob))
}

func TestHubFanOut(t *testing.T) {
	ctx := context.Background()
	h := NewHub(2)
	h.SetGMs([]string{"gm"})

	_, bobCh, cancelBob := h.Subscribe(h.User("bob"), 4)
	defer cancelBob()
	_, gmCh, cancelGM := h.Subscribe(h.User("gm"), 4)
	defer cancelGM()

	require.NoError(t, h.Post(ctx, NewMessage("alice", ModeGM, h.GMs(), "secret")))
	require.NoError(t, h.Post(ctx, NewMessage("alice", ModePublic, nil, "hello")))

	got := <-gmCh
	assert.Equal(t, "secret", got.Content)
	assert.NotEmpty(t, got.ID)
	assert.False(t, got.Created.IsZero())
	assert.Equal(t, "hello", (<-gmCh).Content)
	assert.Equal(t, "hello", (<-bobCh).Content)
	select {
	case m := <-bobCh:
		t.Fatalf("bob received unexpected message %+v", m)
	default:
	}

	require.NoError(t, h.Post(ctx, NewMessage("alice", ModePublic, nil, "third")))
	history := h.History(User{ID: "gm", GM: true})
	require.Len(t, history, 2)
	assert.Equal(t, "hello", history[0].Content)
	assert.Equal(t, "third", history[1].Content)
}

func TestHubSubscribeBacklogAndCancel(t *testing.T) {
	ctx := context.Background()
	h := NewHub(10)
	require.NoError(t, h.Post(ctx, NewMessage("alice", ModeSelf, nil, "mine")))
	require.NoError(t, h.Post(ctx, NewMessage("alice", ModePublic, nil, "ours")))

	backlog, ch, cancel := h.Subscribe(h.User("bob"), 1)
	require.Len(t, backlog, 1)
	assert.Equal(t, "ours", backlog[0].Content)

	cancel()
	cancel()
	_, ok := <-ch
	assert.False(t, ok, "channel should be closed after cancel")
	require.NoError(t, h.Post(ctx, NewMessage("alice", ModePublic, nil, "after")))
}

func TestHubPostCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := NewHub(1).Post(ctx, Message{Content: "x"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestServeHTTPStreamsMessages(t *testing.T) {
	h := NewHub(10)
	h.SetGMs([]string{"gm"})
	require.NoError(t, h.Post(context.Background(), NewMessage("alice", ModePublic, nil, "before")))

	srv := httptest.NewServer(h)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/?user=bob"
	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	defer conn.CloseNow()

	var first Message
	require.NoError(t, wsjson.Read(ctx, conn, &first))
	assert.Equal(t, "before", first.Content)

	// the subscription is registered before the backlog is written
	require.NoError(t, h.Post(ctx, NewMessage("alice", ModeGM, h.GMs(), "hidden")))
	require.NoError(t, h.Post(ctx, NewMessage("alice", ModePublic, nil, "after")))

	var second Message
	require.NoError(t, wsjson.Read(ctx, conn, &second))
	assert.Equal(t, "after", second.Content)
}

func TestServeHTTPRequiresUser(t *testing.T) {
	srv := httptest.NewServer(NewHub(1))
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, 400, resp.StatusCode)
}
