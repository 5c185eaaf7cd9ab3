package report

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jimorie/forbidden-lands-dice/internal/chat"
	"github.com/jimorie/forbidden-lands-dice/internal/dice"
)

// Settings is the table configuration the reporter posts with.
type Settings struct {
	RollMode chat.RollMode
	Locale   string
	GMs      []string
}

// Reporter renders results and posts them to chat.
type Reporter struct {
	poster chat.Poster

	mu       sync.RWMutex
	settings Settings
	renderer *Renderer
}

// NewReporter returns a reporter posting to poster.
func NewReporter(poster chat.Poster, s Settings) *Reporter {
	r := &Reporter{poster: poster}
	r.Configure(s)
	return r
}

// Configure swaps the settings, e.g. after the table config changed.
func (r *Reporter) Configure(s Settings) {
	if s.RollMode == "" {
		s.RollMode = chat.ModePublic
	}
	s.GMs = append([]string(nil), s.GMs...)
	renderer := NewRenderer(s.Locale)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings = s
	r.renderer = renderer
}

func (r *Reporter) current() (Settings, *Renderer) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.settings, r.renderer
}

// ReportRoll posts a roll card with the synthesized dice payload attached.
func (r *Reporter) ReportRoll(ctx context.Context, author string, res dice.Result) error {
	s, renderer := r.current()
	html, err := renderer.Roll(res)
	if err != nil {
		return err
	}
	msg := chat.NewMessage(author, s.RollMode, s.GMs, html)
	roll := dice.Synthesize(res.Dice)
	msg.Roll = &roll
	if err := r.poster.Post(ctx, msg); err != nil {
		return fmt.Errorf("post roll: %w", err)
	}
	slog.InfoContext(ctx, "roll reported",
		"author", author, "roll", res.Name, "pushed", res.Pushed,
		"swords", res.Swords, "skulls", res.Skulls, "visibility", msg.Visibility)
	return nil
}

// ReportConsumable posts the outcome of a consumable check.
func (r *Reporter) ReportConsumable(ctx context.Context, author, name string, out dice.Outcome) error {
	s, renderer := r.current()
	html, err := renderer.Consumable(name, out)
	if err != nil {
		return err
	}
	msg := chat.NewMessage(author, s.RollMode, s.GMs, html)
	if err := r.poster.Post(ctx, msg); err != nil {
		return fmt.Errorf("post consumable: %w", err)
	}
	slog.InfoContext(ctx, "consumable reported", "author", author, "name", name, "succeeded", out.Succeeded)
	return nil
}
