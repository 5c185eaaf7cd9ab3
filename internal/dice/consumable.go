package dice

// Outcome is the result of a consumable check.
type Outcome struct {
	Succeeded bool `json:"succeeded"`
	Value     int  `json:"value,omitempty"` // face rolled, 0 when nothing was rolled
}

// RollConsumable checks a consumable resource die (food, water, arrows, torches).
// faces <= 0 means the resource is depleted => failed without rolling.
// Otherwise one die is rolled and succeeds on anything above 2.
func RollConsumable(faces int, rng RandomSource) Outcome {
	if faces <= 0 {
		return Outcome{}
	}
	if rng == nil {
		rng = DefaultRNG()
	}
	v := rng.Roll(faces)
	return Outcome{Succeeded: v > 2, Value: v}
}
