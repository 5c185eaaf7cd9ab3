package dice

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"sync"
)

// RandomSource abstracts face generation so tests can replay rolls.
type RandomSource interface {
	Roll(faces int) int // [1, faces]
}

// crypto random : default generation method
type cryptoRNG struct{}

func (cryptoRNG) Roll(faces int) int {
	if faces <= 1 {
		return 1
	}
	var buf [8]byte
	if _, err := cryptoRand.Read(buf[:]); err != nil {
		// back to math/rand/v2
		return rand.IntN(faces) + 1
	}
	// rejection sampling keeps the faces uniform
	n := uint64(faces)
	limit := ^uint64(0) - ^uint64(0)%n
	for {
		u := binary.BigEndian.Uint64(buf[:])
		if u < limit {
			return int(u%n) + 1
		}
		if _, err := cryptoRand.Read(buf[:]); err != nil {
			return rand.IntN(faces) + 1
		}
	}
}

func DefaultRNG() RandomSource { return cryptoRNG{} }

// Replicable RNG (e.g. Monte Carlo)
type seededRNG struct{ r *rand.Rand }

func NewSeededRNG(seed uint64) RandomSource {
	return &seededRNG{r: rand.New(rand.NewPCG(seed, 0))}
}

func (s *seededRNG) Roll(faces int) int {
	if faces <= 1 {
		return 1
	}
	return s.r.IntN(faces) + 1
}

// fixedSource replays recorded faces in order and wraps around when exhausted.
// Faces are returned verbatim, whatever the requested face count.
type fixedSource struct {
	faces []int
	next  int
}

// NewFixedSource returns a source that yields faces in the given order.
// An empty sequence always yields 1.
func NewFixedSource(faces ...int) RandomSource {
	return &fixedSource{faces: append([]int(nil), faces...)}
}

func (f *fixedSource) Roll(int) int {
	if len(f.faces) == 0 {
		return 1
	}
	v := f.faces[f.next%len(f.faces)]
	f.next++
	return v
}

// lockedSource serializes a RandomSource shared by concurrent requests.
type lockedSource struct {
	mu  sync.Mutex
	src RandomSource
}

// Locked wraps src so it can be shared between goroutines.
func Locked(src RandomSource) RandomSource {
	if l, ok := src.(*lockedSource); ok {
		return l
	}
	return &lockedSource{src: src}
}

func (l *lockedSource) Roll(faces int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Roll(faces)
}
