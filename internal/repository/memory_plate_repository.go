package repository

import (
	"context"
	"sync"
)

// MemoryPlateRepository keeps plates in process memory. Faults can be
// injected per plate to exercise error paths of callers.
type MemoryPlateRepository struct {
	mu                 sync.Mutex
	registered         map[string]struct{}
	availabilityFaults map[string]struct{}
	saveFaults         map[string]struct{}
}

type MemoryOption func(*MemoryPlateRepository)

// WithAvailabilityFault makes IsAvailable fail with ErrRepository for plate.
func WithAvailabilityFault(plate string) MemoryOption {
	return func(r *MemoryPlateRepository) {
		r.availabilityFaults[plate] = struct{}{}
	}
}

// WithSaveFault makes Save fail with ErrRepository for plate.
func WithSaveFault(plate string) MemoryOption {
	return func(r *MemoryPlateRepository) {
		r.saveFaults[plate] = struct{}{}
	}
}

func NewMemoryPlateRepository(opts ...MemoryOption) *MemoryPlateRepository {
	r := &MemoryPlateRepository{
		registered:         make(map[string]struct{}),
		availabilityFaults: make(map[string]struct{}),
		saveFaults:         make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *MemoryPlateRepository) IsAvailable(ctx context.Context, plate string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.availabilityFaults[plate]; ok {
		return false, ErrRepository
	}
	_, taken := r.registered[plate]
	return !taken, nil
}

func (r *MemoryPlateRepository) Save(ctx context.Context, plate string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.saveFaults[plate]; ok {
		return ErrRepository
	}
	if _, taken := r.registered[plate]; taken {
		return ErrPlateExists
	}
	r.registered[plate] = struct{}{}
	return nil
}

func (r *MemoryPlateRepository) CountRegistered(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return int64(len(r.registered)), nil
}
