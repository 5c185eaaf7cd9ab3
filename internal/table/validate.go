package table

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/jimorie/forbidden-lands-dice/internal/chat"
	"github.com/jimorie/forbidden-lands-dice/internal/dice"
	"github.com/jimorie/forbidden-lands-dice/internal/i18n"
	"github.com/jimorie/forbidden-lands-dice/internal/modifier"
)

var ErrInvalidConfig = errors.New("config validation failed")

// ValidateRaw checks semantic constraints of a RawConfig and reports all
// violations at once.
func ValidateRaw(cfg RawConfig) error {
	var errs []string

	if cfg.Locale != "" && !i18n.IsSupported(cfg.Locale) {
		errs = append(errs, fmt.Sprintf("locale %q is not supported", cfg.Locale))
	}
	if _, err := chat.ParseRollMode(cfg.RollMode); err != nil {
		errs = append(errs, "roll_mode must be one of: publicroll, gmroll, blindroll, selfroll")
	}
	for i, u := range cfg.GMUsers {
		if strings.TrimSpace(u) == "" {
			errs = append(errs, fmt.Sprintf("gm_users[%d] must not be empty", i))
		}
	}

	keys := make([]string, 0, len(cfg.Presets))
	for k := range cfg.Presets {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		p := cfg.Presets[k]
		if p.Base < 0 {
			errs = append(errs, fmt.Sprintf("presets.%s.base must be >= 0", k))
		}
		if p.Gear < 0 {
			errs = append(errs, fmt.Sprintf("presets.%s.gear must be >= 0", k))
		}
		for _, a := range modifier.ParseArtifacts(p.Bonus) {
			if a.Dice <= 0 {
				errs = append(errs, fmt.Sprintf("presets.%s.bonus has an empty artifact group", k))
			}
		}
		if p.Item != nil {
			switch dice.ItemKind(p.Item.Kind) {
			case dice.ItemSpell, dice.ItemWeapon, dice.ItemArmor:
			default:
				errs = append(errs, fmt.Sprintf("presets.%s.item.kind must be one of: spell, weapon, armor", k))
			}
			if p.Item.Damage < 0 {
				errs = append(errs, fmt.Sprintf("presets.%s.item.damage must be >= 0", k))
			}
			for _, a := range modifier.ParseArtifacts(p.Item.Artifact) {
				if a.Dice <= 0 {
					errs = append(errs, fmt.Sprintf("presets.%s.item.artifact has an empty artifact group", k))
				}
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(errs, "; "))
	}
	return nil
}
