package dice

import "testing"

func TestRunMonteCarlo(t *testing.T) {
	st, err := RunMonteCarlo(Request{}, GoalSwords, 100, NewSeededRNG(1))
	if err != nil {
		t.Fatal(err)
	}
	if st.Mean != 0 || st.Success != 0 || st.P99 != 0 {
		t.Fatalf("empty pool stats = %+v", st)
	}

	req := Request{Base: 3, Skill: 2, Gear: 1}
	plain, err := RunMonteCarlo(req, GoalSwords, 5000, NewSeededRNG(9))
	if err != nil {
		t.Fatal(err)
	}
	pushed, err := RunMonteCarlo(req, GoalPushedSwords, 5000, NewSeededRNG(9))
	if err != nil {
		t.Fatal(err)
	}
	if pushed.Success <= plain.Success {
		t.Fatalf("pushing should raise success rate: plain=%f pushed=%f", plain.Success, pushed.Success)
	}
	if plain.P50 > plain.P90 || plain.P90 > plain.P99 {
		t.Fatalf("percentiles out of order: %+v", plain)
	}
	if len(plain.Samples) != 5000 {
		t.Fatalf("samples = %d", len(plain.Samples))
	}

	if _, err := RunMonteCarlo(req, "jackpot", 10, nil); err == nil {
		t.Fatalf("unknown goal must error")
	}
	if st, err := RunMonteCarlo(req, GoalSkulls, 0, nil); err != nil || st.Mean != 0 {
		t.Fatalf("zero trials: %+v %v", st, err)
	}
}

func TestCalcStats(t *testing.T) {
	st := calcStats([]int{1, 2, 3, 4})
	if st.Mean != 2.5 {
		t.Fatalf("mean = %f", st.Mean)
	}
	if st.Var != 1.25 {
		t.Fatalf("var = %f", st.Var)
	}
	if st.P50 != 2.5 {
		t.Fatalf("p50 = %f", st.P50)
	}
}
