package chat

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Poster delivers a message to the table.
type Poster interface {
	Post(ctx context.Context, msg Message) error
}

type subscriber struct {
	user User
	ch   chan Message
}

// Hub keeps a bounded history and fans posted messages out to subscribers
// that may see them. A subscriber whose buffer is full misses the message.
type Hub struct {
	mu      sync.Mutex
	subs    map[*subscriber]struct{}
	history []Message
	limit   int
	gms     map[string]bool
	now     func() time.Time
}

// NewHub creates a hub keeping at most historyLimit messages (<=0 => 100).
func NewHub(historyLimit int) *Hub {
	if historyLimit <= 0 {
		historyLimit = 100
	}
	return &Hub{
		subs:  make(map[*subscriber]struct{}),
		limit: historyLimit,
		gms:   make(map[string]bool),
		now:   time.Now,
	}
}

// SetGMs replaces the set of game master user ids.
func (h *Hub) SetGMs(ids []string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.gms = make(map[string]bool, len(ids))
	for _, id := range ids {
		h.gms[id] = true
	}
}

// GMs returns the current game master ids.
func (h *Hub) GMs() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, 0, len(h.gms))
	for id := range h.gms {
		out = append(out, id)
	}
	return out
}

// User resolves id to a participant, marking game masters.
func (h *Hub) User(id string) User {
	h.mu.Lock()
	defer h.mu.Unlock()
	return User{ID: id, GM: h.gms[id]}
}

// Post stores msg and delivers it to every subscriber allowed to see it.
func (h *Hub) Post(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.Created.IsZero() {
		msg.Created = h.now().UTC()
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.history = append(h.history, msg)
	if len(h.history) > h.limit {
		h.history = append([]Message(nil), h.history[len(h.history)-h.limit:]...)
	}
	for s := range h.subs {
		if !msg.VisibleTo(s.user) {
			continue
		}
		select {
		case s.ch <- msg:
		default:
			slog.WarnContext(ctx, "chat subscriber buffer full, dropping message", "user", s.user.ID, "message_id", msg.ID)
		}
	}
	return nil
}

// Subscribe registers u and returns the visible backlog, a channel of new
// messages, and a cancel func that unregisters and closes the channel.
func (h *Hub) Subscribe(u User, buffer int) ([]Message, <-chan Message, func()) {
	if buffer <= 0 {
		buffer = 16
	}
	s := &subscriber{user: u, ch: make(chan Message, buffer)}

	h.mu.Lock()
	backlog := h.visible(u)
	h.subs[s] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, s)
			close(s.ch)
			h.mu.Unlock()
		})
	}
	return backlog, s.ch, cancel
}

// History returns the messages u may see, oldest first.
func (h *Hub) History(u User) []Message {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.visible(u)
}

func (h *Hub) visible(u User) []Message {
	var out []Message
	for _, m := range h.history {
		if m.VisibleTo(u) {
			out = append(out, m)
		}
	}
	return out
}
