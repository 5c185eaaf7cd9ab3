package table

import (
	"errors"
	"fmt"
	"sort"

	"github.com/jimorie/forbidden-lands-dice/internal/chat"
	"github.com/jimorie/forbidden-lands-dice/internal/dice"
	"github.com/jimorie/forbidden-lands-dice/internal/modifier"
	"github.com/jimorie/forbidden-lands-dice/internal/report"
)

var ErrUnknownPreset = errors.New("unknown preset")

// Settings is a validated table config ready for use.
type Settings struct {
	Version  string
	Locale   string
	RollMode chat.RollMode
	GMs      []string
	presets  map[string]Preset
}

// Resolve validates cfg and normalizes it into Settings.
func Resolve(cfg RawConfig) (Settings, error) {
	if err := ValidateRaw(cfg); err != nil {
		return Settings{}, err
	}
	mode, err := chat.ParseRollMode(cfg.RollMode)
	if err != nil {
		return Settings{}, err
	}
	s := Settings{
		Version:  cfg.Version,
		Locale:   cfg.Locale,
		RollMode: mode,
		GMs:      append([]string(nil), cfg.GMUsers...),
		presets:  make(map[string]Preset, len(cfg.Presets)),
	}
	for k, p := range cfg.Presets {
		s.presets[k] = p
	}
	return s, nil
}

// Report returns the reporter settings of the table.
func (s Settings) Report() report.Settings {
	return report.Settings{RollMode: s.RollMode, Locale: s.Locale, GMs: s.GMs}
}

// Presets returns the preset keys in sorted order.
func (s Settings) Presets() []string {
	keys := make([]string, 0, len(s.presets))
	for k := range s.presets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Request turns preset key into a roll request. The item's gear bonus adds
// gear dice; the preset bonus, the item's artifact die and the caller's extra
// bonus text are merged into artifact dice and a skill modifier. The preset
// key names the roll when the preset has no name.
func (s Settings) Request(key, extra string) (dice.Request, error) {
	p, ok := s.presets[key]
	if !ok {
		return dice.Request{}, fmt.Errorf("%w: %q", ErrUnknownPreset, key)
	}
	req := dice.Request{
		Name:  p.Name,
		Base:  p.Base,
		Skill: p.Skill,
		Gear:  p.Gear,
	}
	if req.Name == "" {
		req.Name = key
	}
	mods := modifier.Parse(p.Bonus)
	if p.Item != nil {
		req.Items = []dice.Item{{
			Kind:   dice.ItemKind(p.Item.Kind),
			Name:   p.Item.Name,
			Damage: p.Item.Damage,
		}}
		req.Gear += modifier.ParseBonus(p.Item.Bonus)
		mods = modifier.Merge(mods, modifier.Modifiers{Artifacts: modifier.ParseArtifacts(p.Item.Artifact)})
	}
	mods = modifier.Merge(mods, modifier.Parse(extra))
	return mods.Apply(req), nil
}
