package dice

import (
	"sync"
	"testing"
)

func TestLockedSourceShared(t *testing.T) {
	src := Locked(NewSeededRNG(7))
	if Locked(src) != src {
		t.Fatal("Locked should not wrap twice")
	}
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				if v := src.Roll(6); v < 1 || v > 6 {
					t.Errorf("roll out of range: %d", v)
					return
				}
			}
		}()
	}
	wg.Wait()
}
