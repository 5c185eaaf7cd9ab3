// Package chat posts roll reports to the table with per-message visibility.
package chat

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/jimorie/forbidden-lands-dice/internal/dice"
)

var ErrUnknownRollMode = errors.New("unknown roll mode")

// RollMode is the user preference selecting who sees a roll.
type RollMode string

const (
	ModePublic RollMode = "publicroll"
	ModeGM     RollMode = "gmroll"
	ModeBlind  RollMode = "blindroll"
	ModeSelf   RollMode = "selfroll"
)

// ParseRollMode accepts a roll mode setting; empty means public.
func ParseRollMode(s string) (RollMode, error) {
	switch m := RollMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ModePublic, nil
	case ModePublic, ModeGM, ModeBlind, ModeSelf:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRollMode, s)
}

// Visibility is who a posted message is shown to.
type Visibility string

const (
	Public   Visibility = "public"
	GMOnly   Visibility = "gm-only"
	SelfOnly Visibility = "self-only"
)

// Visibility maps the roll mode to a message visibility.
// gm and blind rolls are whispered to the GMs, self rolls to the author.
func (m RollMode) Visibility() Visibility {
	switch m {
	case ModeGM, ModeBlind:
		return GMOnly
	case ModeSelf:
		return SelfOnly
	}
	return Public
}

// User is a chat participant.
type User struct {
	ID string `json:"id"`
	GM bool   `json:"gm,omitempty"`
}

// Message is one chat entry.
type Message struct {
	ID         string        `json:"id"`
	Author     string        `json:"author"`
	Visibility Visibility    `json:"visibility"`
	Whisper    []string      `json:"whisper,omitempty"`
	Content    string        `json:"content"`
	Roll       *dice.Payload `json:"roll,omitempty"`
	Created    time.Time     `json:"created"`
}

// NewMessage addresses content from author according to mode.
func NewMessage(author string, mode RollMode, gms []string, content string) Message {
	msg := Message{
		Author:     author,
		Visibility: mode.Visibility(),
		Content:    content,
	}
	switch msg.Visibility {
	case GMOnly:
		msg.Whisper = append([]string(nil), gms...)
	case SelfOnly:
		msg.Whisper = []string{author}
	}
	return msg
}

// VisibleTo reports whether u may read the message.
func (m Message) VisibleTo(u User) bool {
	if m.Visibility == Public || u.ID == m.Author {
		return true
	}
	if m.Visibility == GMOnly && u.GM {
		return true
	}
	return slices.Contains(m.Whisper, u.ID)
}
