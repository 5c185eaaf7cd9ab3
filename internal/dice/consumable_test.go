package dice

import "testing"

func TestRollConsumable(t *testing.T) {
	if got := RollConsumable(0, NewFixedSource(6)); got.Succeeded {
		t.Fatalf("faces=0 should always fail; got %+v", got)
	}
	if got := RollConsumable(-4, nil); got.Succeeded {
		t.Fatalf("negative faces should always fail; got %+v", got)
	}
	if got := RollConsumable(6, NewFixedSource(3)); !got.Succeeded || got.Value != 3 {
		t.Fatalf("face 3 should succeed; got %+v", got)
	}
	if got := RollConsumable(6, NewFixedSource(2)); got.Succeeded {
		t.Fatalf("face 2 should fail; got %+v", got)
	}
}

func TestRollConsumableStatApprox(t *testing.T) {
	const n = 60000
	rng := NewSeededRNG(42)
	hit := 0
	for i := 0; i < n; i++ {
		if RollConsumable(8, rng).Succeeded {
			hit++
		}
	}
	freq := float64(hit) / float64(n)
	// d8 succeeds on 3..8 => 0.75
	if diff := freq - 0.75; diff > 0.01 || diff < -0.01 {
		t.Fatalf("freq=%f not close to 0.75", freq)
	}
}
