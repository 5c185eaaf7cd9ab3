package report

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jimorie/forbidden-lands-dice/internal/chat"
	"github.com/jimorie/forbidden-lands-dice/internal/dice"
)

type recordingPoster struct {
	msgs []chat.Message
	err  error
}

func (p *recordingPoster) Post(_ context.Context, msg chat.Message) error {
	if p.err != nil {
		return p.err
	}
	p.msgs = append(p.msgs, msg)
	return nil
}

func weaponResult(t *testing.T) dice.Result {
	t.Helper()
	e, err := dice.Roll(dice.Request{
		Name:  "ACTION.SLASH",
		Base:  2,
		Skill: 1,
		Items: []dice.Item{{Kind: dice.ItemWeapon, Damage: 2}},
	}, dice.NewFixedSource(6, 1, 6))
	require.NoError(t, err)
	return e.Result()
}

func TestRendererRoll(t *testing.T) {
	html, err := NewRenderer("en").Roll(weaponResult(t))
	require.NoError(t, err)
	assert.Contains(t, html, "Slash")
	assert.Contains(t, html, "Swords: 2")
	assert.Contains(t, html, "Skulls: 1")
	assert.Contains(t, html, `class="effect damage"`)
	assert.Contains(t, html, "Damage: 3")
	assert.NotContains(t, html, "pushed")
}

func TestRendererRollSwedishPushed(t *testing.T) {
	e, err := dice.Roll(dice.Request{Name: "HEADER.ARMOR", Base: 1}, dice.NewFixedSource(3, 6))
	require.NoError(t, err)
	res, err := e.Push()
	require.NoError(t, err)

	html, err := NewRenderer("sv").Roll(res)
	require.NoError(t, err)
	assert.Contains(t, html, "Rustning")
	assert.Contains(t, html, "Pressat")
	assert.Contains(t, html, "Rustningsvärde: 1")
}

func TestRendererEscapesRollName(t *testing.T) {
	html, err := NewRenderer("en").Roll(dice.Result{Name: "<script>"})
	require.NoError(t, err)
	assert.False(t, strings.Contains(html, "<script>"))
}

func TestRendererKeepsPercentInRollName(t *testing.T) {
	html, err := NewRenderer("en").Roll(dice.Result{Name: "Strike 100%"})
	require.NoError(t, err)
	assert.Contains(t, html, "Strike 100%<")
	assert.NotContains(t, html, "NOVERB")
}

func TestRendererConsumable(t *testing.T) {
	r := NewRenderer("en")
	html, err := r.Consumable("CONSUMABLE.FOOD", dice.Outcome{Succeeded: true, Value: 4})
	require.NoError(t, err)
	assert.Contains(t, html, "Food")
	assert.Contains(t, html, "Succeeded")

	html, err = r.Consumable("CONSUMABLE.WATER", dice.Outcome{})
	require.NoError(t, err)
	assert.Contains(t, html, "Failed")
}

func TestReporterReportRoll(t *testing.T) {
	p := &recordingPoster{}
	r := NewReporter(p, Settings{RollMode: chat.ModeGM, Locale: "en", GMs: []string{"gm"}})

	require.NoError(t, r.ReportRoll(context.Background(), "alice", weaponResult(t)))
	require.Len(t, p.msgs, 1)
	msg := p.msgs[0]
	assert.Equal(t, "alice", msg.Author)
	assert.Equal(t, chat.GMOnly, msg.Visibility)
	assert.Equal(t, []string{"gm"}, msg.Whisper)
	require.NotNil(t, msg.Roll)
	assert.Len(t, msg.Roll.Terms, 3)

	r.Configure(Settings{})
	require.NoError(t, r.ReportConsumable(context.Background(), "bob", "CONSUMABLE.ARROWS", dice.Outcome{}))
	require.Len(t, p.msgs, 2)
	assert.Equal(t, chat.Public, p.msgs[1].Visibility)
	assert.Nil(t, p.msgs[1].Roll)
}

func TestReporterPostError(t *testing.T) {
	boom := errors.New("boom")
	r := NewReporter(&recordingPoster{err: boom}, Settings{})
	err := r.ReportRoll(context.Background(), "alice", dice.Result{})
	assert.ErrorIs(t, err, boom)
}
