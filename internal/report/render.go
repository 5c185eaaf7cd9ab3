// Package report renders roll results as chat markup and posts them.
package report

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/jimorie/forbidden-lands-dice/internal/dice"
	"github.com/jimorie/forbidden-lands-dice/internal/i18n"
)

var rollTmpl = template.Must(template.New("roll").Parse(`<div class="forbidden-lands roll">
<h3 class="roll-name">{{.Title}}{{if .Pushed}} <span class="pushed">({{.PushedLabel}})</span>{{end}}</h3>
<ol class="dice">{{range .Dice}}<li class="die {{.Category}}{{if not .Rolled}} locked{{end}}" data-faces="{{.Faces}}">{{.Value}}</li>{{end}}</ol>
<p class="swords">{{.SwordsLabel}}: {{.Swords}}</p>
<p class="skulls">{{.SkullsLabel}}: {{.Skulls}}</p>
{{- with .Effect}}
<p class="effect {{.Class}}">{{.Label}}: {{.Value}}</p>
{{- end}}
</div>`))

var consumableTmpl = template.Must(template.New("consumable").Parse(`<div class="forbidden-lands consumable">
<h3 class="consumable-name">{{.Name}}</h3>
<p class="result {{if .Succeeded}}succeeded{{else}}failed{{end}}">{{.Result}}</p>
</div>`))

type effectView struct {
	Class string
	Label string
	Value int
}

type rollView struct {
	Title       string
	Pushed      bool
	PushedLabel string
	Dice        []dice.Die
	Swords      int
	Skulls      int
	SwordsLabel string
	SkullsLabel string
	Effect      *effectView
}

type consumableView struct {
	Name      string
	Succeeded bool
	Result    string
}

var effectLabels = map[dice.EffectKind]string{
	dice.EffectPower:  "ROLL.POWER_LEVEL",
	dice.EffectDamage: "ROLL.DAMAGE",
	dice.EffectArmor:  "ROLL.ARMOR",
}

// Renderer turns results into localized HTML fragments.
type Renderer struct {
	loc *i18n.Localizer
}

// NewRenderer returns a renderer for locale.
func NewRenderer(locale string) *Renderer {
	return &Renderer{loc: i18n.New(locale)}
}

// Roll renders a roll card.
func (r *Renderer) Roll(res dice.Result) (string, error) {
	v := rollView{
		Title:       r.loc.Localize(res.Name),
		Pushed:      res.Pushed,
		PushedLabel: r.loc.Localize("ROLL.PUSHED"),
		Dice:        res.Dice,
		Swords:      res.Swords,
		Skulls:      res.Skulls,
		SwordsLabel: r.loc.Localize("ROLL.SWORDS"),
		SkullsLabel: r.loc.Localize("ROLL.SKULLS"),
	}
	if key, ok := effectLabels[res.Effect.Kind]; ok {
		v.Effect = &effectView{
			Class: string(res.Effect.Kind),
			Label: r.loc.Localize(key),
			Value: res.Effect.Value,
		}
	}
	var buf bytes.Buffer
	if err := rollTmpl.Execute(&buf, v); err != nil {
		return "", fmt.Errorf("render roll: %w", err)
	}
	return buf.String(), nil
}

// Consumable renders a consumable check.
func (r *Renderer) Consumable(name string, out dice.Outcome) (string, error) {
	key := "FAILED"
	if out.Succeeded {
		key = "SUCCEED"
	}
	v := consumableView{
		Name:      r.loc.Localize(name),
		Succeeded: out.Succeeded,
		Result:    r.loc.Localize(key),
	}
	var buf bytes.Buffer
	if err := consumableTmpl.Execute(&buf, v); err != nil {
		return "", fmt.Errorf("render consumable: %w", err)
	}
	return buf.String(), nil
}
