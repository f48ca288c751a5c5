package memstore

import (
	"context"

	"go-resume-backend/internal/domain"
)

type experienceRepo struct {
	store *Store
}

func NewExperienceRepository(store *Store) domain.ExperienceRepository {
	return &experienceRepo{store: store}
}

func (r *experienceRepo) List(ctx context.Context) ([]domain.Experience, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]domain.Experience, len(r.store.data.Experience))
	for i, exp := range r.store.data.Experience {
		idx := i
		exp.ID = &idx
		out[i] = exp
	}
	return out, nil
}

func (r *experienceRepo) GetByIndex(ctx context.Context, index int) (*domain.Experience, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	if index < 0 || index >= len(r.store.data.Experience) {
		return nil, domain.ErrNotFound
	}
	exp := r.store.data.Experience[index]
	exp.ID = &index
	return &exp, nil
}

func (r *experienceRepo) Append(ctx context.Context, exp *domain.Experience) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	record := *exp
	record.ID = nil // position is the identity
	r.store.data.Experience = append(r.store.data.Experience, record)
	if err := r.store.persistLocked(); err != nil {
		return 0, err
	}
	return len(r.store.data.Experience) - 1, nil
}

func (r *experienceRepo) Replace(ctx context.Context, index int, exp *domain.Experience) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if index < 0 || index >= len(r.store.data.Experience) {
		return domain.ErrNotFound
	}
	record := *exp
	record.ID = nil
	r.store.data.Experience[index] = record
	return r.store.persistLocked()
}

func (r *experienceRepo) Delete(ctx context.Context, index int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if index < 0 || index >= len(r.store.data.Experience) {
		return domain.ErrNotFound
	}
	r.store.data.Experience = append(r.store.data.Experience[:index], r.store.data.Experience[index+1:]...)
	return r.store.persistLocked()
}
