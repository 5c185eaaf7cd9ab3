// Package dice resolves Year Zero dice tests: it builds a pool of base, skill,
// gear and artifact dice, evaluates each face, pushes the pool at most once and
// aggregates swords, skulls and derived effects.
package dice

import "fmt"

// Engine holds the pool of one test. It is created by Roll, may be pushed
// once, and is not safe for concurrent use: callers serialize Push against
// Result.
type Engine struct {
	name   string
	items  []Item
	pool   []Die
	pushed bool
	rng    RandomSource
}

// Roll builds and evaluates the pool for req.
// - Skill+Modifier > 0 rolls that many skill dice; otherwise its negation
// rolls skill-penalty dice (zero rolls none).
// - Base, skill and gear dice are d6 and rolled in that order, then each
// artifact group with its own face count.
// - Negative counts are rejected with ErrInvalidRequest.
func Roll(req Request, rng RandomSource) (*Engine, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = DefaultRNG()
	}

	skill, skillCategory := req.Skill+req.Modifier, CategorySkill
	if skill <= 0 {
		skill, skillCategory = -skill, CategorySkillPenalty
	}

	// remaining automatic successes per category, consumed as dice are made
	auto := make(map[Category]int, len(req.AutoSuccesses))
	for c, n := range req.AutoSuccesses {
		auto[c] = n
	}

	e := &Engine{
		name:  req.Name,
		items: append([]Item(nil), req.Items...),
		rng:   rng,
	}
	e.rollDice(req.Base, CategoryBase, StandardFaces, auto)
	e.rollDice(skill, skillCategory, StandardFaces, auto)
	e.rollDice(req.Gear, CategoryGear, StandardFaces, auto)
	for _, a := range req.Artifacts {
		e.rollDice(a.Dice, CategoryArtifact, a.Faces, auto)
	}
	return e, nil
}

// rollDice appends n dice of one category. The first auto[c] of them show
// their top face and are not rolled.
func (e *Engine) rollDice(n int, c Category, faces int, auto map[Category]int) {
	for i := 0; i < n; i++ {
		if auto[c] > 0 {
			auto[c]--
			e.pool = append(e.pool, newDie(faces, c, faces, false))
			continue
		}
		e.pool = append(e.pool, newDie(faces, c, e.rng.Roll(faces), true))
	}
}

// Push rerolls every eligible die once and returns the new result.
// Dice that are not eligible are marked as not rolled and keep their face.
// A second push fails with ErrAlreadyPushed and leaves the pool untouched.
func (e *Engine) Push() (Result, error) {
	if e.pushed {
		return Result{}, ErrAlreadyPushed
	}
	for i := range e.pool {
		d := &e.pool[i]
		if !d.pushable() {
			d.Rolled = false
			continue
		}
		d.set(e.rng.Roll(d.Faces))
		d.Rolled = true
	}
	e.pushed = true
	return e.Result(), nil
}

// Pushed reports whether the pool has been pushed.
func (e *Engine) Pushed() bool { return e.pushed }

// Pool returns a copy of the pool in roll order.
func (e *Engine) Pool() []Die {
	return append([]Die(nil), e.pool...)
}

// Snapshot is the serializable state of an engine.
type Snapshot struct {
	Name   string `json:"name"`
	Items  []Item `json:"items,omitempty"`
	Pool   []Die  `json:"pool"`
	Pushed bool   `json:"pushed"`
}

// Snapshot copies the engine state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Name:   e.name,
		Items:  append([]Item(nil), e.items...),
		Pool:   e.Pool(),
		Pushed: e.pushed,
	}
}

// Restore rebuilds an engine from a snapshot. Success and weight are
// recomputed from each face value; faces outside [1, Faces] are rejected.
func Restore(s Snapshot, rng RandomSource) (*Engine, error) {
	if rng == nil {
		rng = DefaultRNG()
	}
	pool := make([]Die, len(s.Pool))
	for i, d := range s.Pool {
		if !d.Category.Valid() || d.Faces < 1 {
			return nil, fmt.Errorf("%w: pool[%d] is a %q d%d", ErrInvalidRequest, i, d.Category, d.Faces)
		}
		if d.Value < 1 || d.Value > d.Faces {
			return nil, fmt.Errorf("%w: pool[%d] shows %d on a d%d", ErrInvalidRequest, i, d.Value, d.Faces)
		}
		pool[i] = newDie(d.Faces, d.Category, d.Value, d.Rolled)
	}
	return &Engine{
		name:   s.Name,
		items:  append([]Item(nil), s.Items...),
		pool:   pool,
		pushed: s.Pushed,
		rng:    rng,
	}, nil
}
