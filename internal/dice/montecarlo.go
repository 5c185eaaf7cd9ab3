package dice

import (
	"fmt"
	"math"
	"sort"
)

// TrialGoal selects what the simulation measures per trial.
type TrialGoal string

const (
	// Swords of the initial roll.
	GoalSwords TrialGoal = "swords"
	// Swords after pushing every roll that came up without a sword.
	GoalPushedSwords TrialGoal = "pushed_swords"
	// Skulls after the same push policy as GoalPushedSwords.
	GoalSkulls TrialGoal = "skulls"
)

// Valid reports whether g is a known goal.
func (g TrialGoal) Valid() bool {
	switch g {
	case GoalSwords, GoalPushedSwords, GoalSkulls:
		return true
	}
	return false
}

// Stats summarizes simulation results.
type Stats struct {
	Mean    float64 `json:"mean"`
	Var     float64 `json:"var"`
	StdDev  float64 `json:"std_dev"`
	P50     float64 `json:"p50"`
	P90     float64 `json:"p90"`
	P99     float64 `json:"p99"`
	Success float64 `json:"success"` // share of trials with at least one sword
	// Optional: raw samples if caller needs histograms/exports
	Samples []int `json:"-"`
}

// calcStats computes mean/variance/percentiles for integer samples.
func calcStats(xs []int) Stats {
	n := len(xs)
	if n == 0 {
		return Stats{}
	}
	// mean
	var sum float64
	for _, v := range xs {
		sum += float64(v)
	}
	mean := sum / float64(n)

	// variance (population)
	var acc float64
	for _, v := range xs {
		d := float64(v) - mean
		acc += d * d
	}
	variance := acc / float64(n)

	// percentiles
	cp := append([]int(nil), xs...)
	sort.Ints(cp)
	percentile := func(p float64) float64 {
		if n == 1 || p <= 0 {
			return float64(cp[0])
		}
		if p >= 1 {
			return float64(cp[n-1])
		}
		pos := p * float64(n-1)
		i := int(math.Floor(pos))
		f := pos - float64(i)
		if i+1 >= n {
			return float64(cp[i])
		}
		return float64(cp[i])*(1-f) + float64(cp[i+1])*f
	}

	return Stats{
		Mean:    mean,
		Var:     variance,
		StdDev:  math.Sqrt(variance),
		P50:     percentile(0.50),
		P90:     percentile(0.90),
		P99:     percentile(0.99),
		Samples: xs,
	}
}

// simulateOne returns the metric for one trial and whether it scored a sword.
func simulateOne(req Request, goal TrialGoal, rng RandomSource) (int, bool, error) {
	e, err := Roll(req, rng)
	if err != nil {
		return 0, false, err
	}
	res := e.Result()
	if goal != GoalSwords && res.Swords <= 0 {
		if res, err = e.Push(); err != nil {
			return 0, false, err
		}
	}
	if goal == GoalSkulls {
		return res.Skulls, res.Swords > 0, nil
	}
	return res.Swords, res.Swords > 0, nil
}

// RunMonteCarlo repeats req and returns summary stats of the goal metric.
func RunMonteCarlo(req Request, goal TrialGoal, trials int, rng RandomSource) (Stats, error) {
	if !goal.Valid() {
		return Stats{}, fmt.Errorf("%w: unknown goal %q", ErrInvalidRequest, goal)
	}
	if trials <= 0 {
		return Stats{}, nil
	}
	if rng == nil {
		rng = DefaultRNG()
	}
	samples := make([]int, trials)
	hits := 0
	for i := 0; i < trials; i++ {
		v, hit, err := simulateOne(req, goal, rng)
		if err != nil {
			return Stats{}, err
		}
		samples[i] = v
		if hit {
			hits++
		}
	}
	st := calcStats(samples)
	st.Success = float64(hits) / float64(trials)
	return st, nil
}
