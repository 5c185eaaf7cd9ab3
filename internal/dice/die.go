package dice

// Category identifies the kind of die in a pool. It never changes once a die
// has been created.
type Category string

const (
	CategoryBase         Category = "base"
	CategorySkill        Category = "skill"
	CategorySkillPenalty Category = "skill-penalty"
	CategoryGear         Category = "gear"
	CategoryArtifact     Category = "artifact"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryBase, CategorySkill, CategorySkillPenalty, CategoryGear, CategoryArtifact:
		return true
	}
	return false
}

// canFail reports whether a face of 1 on this category marks a failure.
func (c Category) canFail() bool {
	return c != CategorySkill && c != CategorySkillPenalty
}

// StandardFaces is the face count of base, skill and gear dice.
const StandardFaces = 6

// Die is one rolled die in a pool.
type Die struct {
	Faces    int      `json:"faces"`
	Category Category `json:"category"`
	Value    int      `json:"value"`
	Success  int      `json:"success"` // signed, negative only for skill-penalty dice
	Weight   int      `json:"weight"`  // display ordering only
	Rolled   bool     `json:"rolled"`  // false for forced faces and dice locked during a push
}

// newDie builds an evaluated die.
func newDie(faces int, c Category, value int, rolled bool) Die {
	d := Die{Faces: faces, Category: c, Rolled: rolled}
	d.set(value)
	return d
}

// set changes the face value and re-evaluates the die.
func (d *Die) set(value int) {
	d.Value = value
	d.Success, d.Weight = Evaluate(value, d.Category)
}

// Skull reports whether the die counts as a failure marker.
func (d Die) Skull() bool {
	return d.Value == 1 && (d.Category == CategoryBase || d.Category == CategoryGear)
}

// pushable reports whether the die is rerolled when the pool is pushed.
// Base and gear dice reroll on 2-5; skill, skill-penalty and artifact dice
// reroll on 1-5.
func (d Die) pushable() bool {
	if d.Value > 1 && d.Value < 6 {
		return true
	}
	if d.Value >= 6 {
		return false
	}
	switch d.Category {
	case CategoryArtifact, CategorySkill, CategorySkillPenalty:
		return true
	}
	return false
}

// Evaluate maps a face value and category to a success contribution and a
// display weight. Success bands are absolute face values, so an artifact d12
// showing 12 is worth four swords regardless of its face count.
func Evaluate(value int, c Category) (success, weight int) {
	switch {
	case value == 12:
		return 4, 4
	case value >= 10:
		return 3, 3
	case value >= 8:
		return 2, 2
	case value >= 6:
		if c == CategorySkillPenalty {
			return -1, -1
		}
		return 1, 1
	case value == 1 && c.canFail():
		return 0, -2
	default:
		return 0, 0
	}
}
