package dice

import "strconv"

// TermResult is one face within a synthesized term.
type TermResult struct {
	Result int  `json:"result"`
	Active bool `json:"active"`
}

// Term is one die in the payload consumed by 3D dice renderers.
type Term struct {
	Class   string       `json:"class"`
	Faces   int          `json:"faces"`
	Number  int          `json:"number"`
	Results []TermResult `json:"results"`
}

// Payload is the display payload attached to a chat message.
type Payload struct {
	Class   string `json:"class"`
	Dice    []any  `json:"dice"`
	Formula string `json:"formula"`
	Terms   []Term `json:"terms"`
}

// Synthesize builds the renderer payload for the dice that were physically
// rolled; forced and locked dice are left out.
func Synthesize(dice []Die) Payload {
	terms := make([]Term, 0, len(dice))
	for _, d := range dice {
		if !d.Rolled {
			continue
		}
		terms = append(terms, Term{
			Class:   termClass(d),
			Faces:   d.Faces,
			Number:  1,
			Results: []TermResult{{Result: d.Value, Active: true}},
		})
	}
	return Payload{Class: "Roll", Dice: []any{}, Terms: terms}
}

func termClass(d Die) string {
	switch d.Category {
	case CategoryArtifact:
		return "ArtifactD" + strconv.Itoa(d.Faces)
	case CategoryBase:
		return "BaseDie"
	case CategoryGear:
		return "GearDie"
	case CategorySkill:
		return "SkillDie"
	}
	return "Die"
}
