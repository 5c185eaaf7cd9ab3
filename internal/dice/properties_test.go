package dice

import (
	"testing"

	"pgregory.net/rapid"
)

var allCategories = []Category{
	CategoryBase, CategorySkill, CategorySkillPenalty, CategoryGear, CategoryArtifact,
}

func genRequest() *rapid.Generator[Request] {
	return rapid.Custom(func(t *rapid.T) Request {
		req := Request{
			Base:     rapid.IntRange(0, 8).Draw(t, "base"),
			Skill:    rapid.IntRange(-4, 8).Draw(t, "skill"),
			Gear:     rapid.IntRange(0, 6).Draw(t, "gear"),
			Modifier: rapid.IntRange(-4, 4).Draw(t, "modifier"),
		}
		n := rapid.IntRange(0, 3).Draw(t, "artifact_groups")
		for i := 0; i < n; i++ {
			req.Artifacts = append(req.Artifacts, Artifact{
				Dice:  rapid.IntRange(0, 2).Draw(t, "artifact_dice"),
				Faces: rapid.SampledFrom([]int{8, 10, 12}).Draw(t, "artifact_faces"),
			})
		}
		return req
	})
}

func TestEvaluateHighFacesAlwaysSucceed(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := rapid.IntRange(8, 12).Draw(t, "value")
		c := rapid.SampledFrom(allCategories).Draw(t, "category")
		if s, _ := Evaluate(v, c); s <= 0 {
			t.Fatalf("Evaluate(%d, %s) success = %d, want > 0", v, c, s)
		}
	})
}

func TestEvaluatePenaltyInvertsSixAndSeven(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := rapid.IntRange(6, 7).Draw(t, "value")
		c := rapid.SampledFrom(allCategories).Draw(t, "category")
		s, _ := Evaluate(v, c)
		want := 1
		if c == CategorySkillPenalty {
			want = -1
		}
		if s != want {
			t.Fatalf("Evaluate(%d, %s) success = %d, want %d", v, c, s, want)
		}
	})
}

func TestRollFacesInRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		req := genRequest().Draw(t, "req")
		e, err := Roll(req, NewSeededRNG(rapid.Uint64().Draw(t, "seed")))
		if err != nil {
			t.Fatalf("Roll: %v", err)
		}
		for _, d := range e.Pool() {
			if d.Value < 1 || d.Value > d.Faces {
				t.Fatalf("face %d outside [1, %d]", d.Value, d.Faces)
			}
		}
	})
}

func TestResultAggregatesPool(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		req := genRequest().Draw(t, "req")
		e, err := Roll(req, NewSeededRNG(rapid.Uint64().Draw(t, "seed")))
		if err != nil {
			t.Fatalf("Roll: %v", err)
		}
		if rapid.Bool().Draw(t, "push") {
			if _, err := e.Push(); err != nil {
				t.Fatalf("Push: %v", err)
			}
		}
		sum, skulls, gear := 0, 0, 0
		for _, d := range e.Pool() {
			sum += d.Success
			if d.Value == 1 && (d.Category == CategoryBase || d.Category == CategoryGear) {
				skulls++
			}
			if d.Category == CategoryGear {
				gear++
			}
		}
		first, second := e.Result(), e.Result()
		if first.Swords != sum || first.Skulls != skulls || first.Gear != gear {
			t.Fatalf("result %+v, want swords=%d skulls=%d gear=%d", first, sum, skulls, gear)
		}
		if first.Swords != second.Swords || first.Skulls != second.Skulls || len(first.Dice) != len(second.Dice) {
			t.Fatalf("result changed between reads: %+v vs %+v", first, second)
		}
		for i := 1; i < len(first.Dice); i++ {
			if first.Dice[i-1].Weight < first.Dice[i].Weight {
				t.Fatalf("dice not sorted by weight: %+v", first.Dice)
			}
		}
	})
}

func TestPushLocksIneligibleDice(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		req := genRequest().Draw(t, "req")
		e, err := Roll(req, NewSeededRNG(rapid.Uint64().Draw(t, "seed")))
		if err != nil {
			t.Fatalf("Roll: %v", err)
		}
		before := e.Pool()
		if _, err := e.Push(); err != nil {
			t.Fatalf("Push: %v", err)
		}
		after := e.Pool()
		if len(before) != len(after) {
			t.Fatalf("pool size changed: %d -> %d", len(before), len(after))
		}
		for i, d := range before {
			a := after[i]
			if a.Category != d.Category || a.Faces != d.Faces {
				t.Fatalf("die %d changed identity: %+v -> %+v", i, d, a)
			}
			locked := d.Value >= 6 || (d.Value == 1 && (d.Category == CategoryBase || d.Category == CategoryGear))
			if locked {
				if a.Value != d.Value || a.Rolled {
					t.Fatalf("locked die %d changed: %+v -> %+v", i, d, a)
				}
				continue
			}
			if !a.Rolled {
				t.Fatalf("eligible die %d was not rerolled: %+v", i, a)
			}
			if s, w := Evaluate(a.Value, a.Category); s != a.Success || w != a.Weight {
				t.Fatalf("die %d not re-evaluated: %+v", i, a)
			}
		}
	})
}
