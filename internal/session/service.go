package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/jimorie/forbidden-lands-dice/internal/dice"
)

// Reporter publishes results; it is called after state has been stored.
type Reporter interface {
	ReportRoll(ctx context.Context, author string, res dice.Result) error
	ReportConsumable(ctx context.Context, author, name string, out dice.Outcome) error
}

// Service runs rolls and pushes against a Store.
type Service struct {
	store    Store
	reporter Reporter
	rng      dice.RandomSource

	// pushMu makes load -> push -> store atomic within this process
	pushMu sync.Mutex
}

// NewService wires a store, an optional reporter and a random source
// (nil => crypto source).
func NewService(store Store, reporter Reporter, rng dice.RandomSource) *Service {
	if rng == nil {
		rng = dice.DefaultRNG()
	}
	return &Service{
		store:    store,
		reporter: reporter,
		rng:      dice.Locked(rng),
	}
}

// Roll builds a new pool, stores it for a later push and reports it.
func (s *Service) Roll(ctx context.Context, author string, req dice.Request) (string, dice.Result, error) {
	e, err := dice.Roll(req, s.rng)
	if err != nil {
		return "", dice.Result{}, err
	}
	id := uuid.NewString()
	if err := s.store.Put(ctx, id, e.Snapshot()); err != nil {
		return "", dice.Result{}, fmt.Errorf("save roll: %w", err)
	}
	res := e.Result()
	s.report(ctx, func() error { return s.reporter.ReportRoll(ctx, author, res) })
	return id, res, nil
}

// Push rerolls the stored pool id once. A second push of the same id fails
// with dice.ErrAlreadyPushed; unknown ids fail with ErrNotFound.
func (s *Service) Push(ctx context.Context, author, id string) (dice.Result, error) {
	s.pushMu.Lock()
	defer s.pushMu.Unlock()

	e, err := s.load(ctx, id)
	if err != nil {
		return dice.Result{}, err
	}
	res, err := e.Push()
	if err != nil {
		return dice.Result{}, err
	}
	if err := s.store.Put(ctx, id, e.Snapshot()); err != nil {
		return dice.Result{}, fmt.Errorf("save pushed roll: %w", err)
	}
	s.report(ctx, func() error { return s.reporter.ReportRoll(ctx, author, res) })
	return res, nil
}

// Get returns the current result of a stored roll.
func (s *Service) Get(ctx context.Context, id string) (dice.Result, error) {
	e, err := s.load(ctx, id)
	if err != nil {
		return dice.Result{}, err
	}
	return e.Result(), nil
}

// Discard forgets a stored roll so it can no longer be pushed. Discarding
// an unknown id is not an error.
func (s *Service) Discard(ctx context.Context, id string) error {
	s.pushMu.Lock()
	defer s.pushMu.Unlock()
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("discard roll %s: %w", id, err)
	}
	return nil
}

// Consumable rolls a consumable check and reports it. Nothing is stored.
func (s *Service) Consumable(ctx context.Context, author, name string, faces int) dice.Outcome {
	out := dice.RollConsumable(faces, s.rng)
	s.report(ctx, func() error { return s.reporter.ReportConsumable(ctx, author, name, out) })
	return out
}

func (s *Service) load(ctx context.Context, id string) (*dice.Engine, error) {
	snap, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	e, err := dice.Restore(snap, s.rng)
	if err != nil {
		return nil, fmt.Errorf("restore roll %s: %w", id, err)
	}
	return e, nil
}

// report runs fn when a reporter is configured. Reporting failures are
// logged; the roll itself has already happened.
func (s *Service) report(ctx context.Context, fn func() error) {
	if s.reporter == nil {
		return
	}
	if err := fn(); err != nil {
		slog.ErrorContext(ctx, "failed to report roll", "err", err)
	}
}
