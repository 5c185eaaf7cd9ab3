package dice

import "strings"

// Artifact describes a group of artifact dice sharing one face count.
type Artifact struct {
	Dice  int `json:"dice" yaml:"dice"`
	Faces int `json:"faces" yaml:"faces"`
}

// ItemKind is the kind of the item a roll is made with.
type ItemKind string

const (
	ItemSpell  ItemKind = "spell"
	ItemWeapon ItemKind = "weapon"
	ItemArmor  ItemKind = "armor"
)

// Item is a reference to an item associated with a roll. Only the first item
// is consulted when choosing a derived effect.
type Item struct {
	Kind   ItemKind `json:"kind"`
	Name   string   `json:"name,omitempty"`
	Damage int      `json:"damage,omitempty"` // base weapon damage
}

// Request carries already-resolved dice counts for one test.
type Request struct {
	Name      string     `json:"name"`
	Base      int        `json:"base"`
	Skill     int        `json:"skill"` // signed
	Gear      int        `json:"gear"`
	Artifacts []Artifact `json:"artifacts,omitempty"`
	Modifier  int        `json:"modifier"` // signed, added to Skill
	Items     []Item     `json:"items,omitempty"`

	// AutoSuccesses forces the first N dice of a category to their top face
	// without rolling them. Artifact counts are shared across all artifact
	// groups in order.
	AutoSuccesses map[Category]int `json:"auto_successes,omitempty"`
}

// maneuvers are weapon rolls that never deal damage.
var maneuvers = map[string]bool{
	"parry":  true,
	"shove":  true,
	"disarm": true,
}

// rollKey normalizes roll identifiers such as "ACTION.PARRY" to "parry".
func rollKey(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}
