package dice

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRequest = errors.New("invalid roll request")
	ErrAlreadyPushed  = errors.New("roll has already been pushed")
)

// Upper bounds on one request. No character sheet comes near them.
const (
	MaxDice  = 100 // per category; artifact dice are counted across groups
	MaxFaces = 100
)

// validateRequest rejects negative die counts instead of clamping them, and
// counts above MaxDice. Skill and Modifier are signed.
func validateRequest(req Request) error {
	if req.Base < 0 || req.Base > MaxDice {
		return fmt.Errorf("%w: base dice %d not in [0,%d]", ErrInvalidRequest, req.Base, MaxDice)
	}
	if req.Gear < 0 || req.Gear > MaxDice {
		return fmt.Errorf("%w: gear dice %d not in [0,%d]", ErrInvalidRequest, req.Gear, MaxDice)
	}
	if skill := req.Skill + req.Modifier; skill < -MaxDice || skill > MaxDice {
		return fmt.Errorf("%w: skill dice %d not in [-%d,%d]", ErrInvalidRequest, skill, MaxDice, MaxDice)
	}
	if len(req.Artifacts) > MaxDice {
		return fmt.Errorf("%w: %d artifact groups > %d", ErrInvalidRequest, len(req.Artifacts), MaxDice)
	}
	artifacts := 0
	for i, a := range req.Artifacts {
		if a.Dice < 0 {
			return fmt.Errorf("%w: artifacts[%d] dice %d < 0", ErrInvalidRequest, i, a.Dice)
		}
		if a.Dice > 0 && (a.Faces < 1 || a.Faces > MaxFaces) {
			return fmt.Errorf("%w: artifacts[%d] faces %d not in [1,%d]", ErrInvalidRequest, i, a.Faces, MaxFaces)
		}
		artifacts += a.Dice
		if artifacts > MaxDice {
			return fmt.Errorf("%w: more than %d artifact dice", ErrInvalidRequest, MaxDice)
		}
	}
	for c, n := range req.AutoSuccesses {
		if !c.Valid() {
			return fmt.Errorf("%w: unknown category %q", ErrInvalidRequest, c)
		}
		if n < 0 {
			return fmt.Errorf("%w: auto successes for %s %d < 0", ErrInvalidRequest, c, n)
		}
	}
	return nil
}
