package memstore

import (
	"context"

	"go-resume-backend/internal/domain"
)

type educationRepo struct {
	store *Store
}

func NewEducationRepository(store *Store) domain.EducationRepository {
	return &educationRepo{store: store}
}

func (r *educationRepo) List(ctx context.Context) ([]domain.Education, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]domain.Education, len(r.store.data.Education))
	for i, edu := range r.store.data.Education {
		idx := i
		edu.ID = &idx
		out[i] = edu
	}
	return out, nil
}

func (r *educationRepo) GetByIndex(ctx context.Context, index int) (*domain.Education, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	if index < 0 || index >= len(r.store.data.Education) {
		return nil, domain.ErrNotFound
	}
	edu := r.store.data.Education[index]
	edu.ID = &index
	return &edu, nil
}

func (r *educationRepo) Append(ctx context.Context, edu *domain.Education) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	record := *edu
	record.ID = nil
	r.store.data.Education = append(r.store.data.Education, record)
	if err := r.store.persistLocked(); err != nil {
		return 0, err
	}
	return len(r.store.data.Education) - 1, nil
}

func (r *educationRepo) Replace(ctx context.Context, index int, edu *domain.Education) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if index < 0 || index >= len(r.store.data.Education) {
		return domain.ErrNotFound
	}
	record := *edu
	record.ID = nil
	r.store.data.Education[index] = record
	return r.store.persistLocked()
}

func (r *educationRepo) Delete(ctx context.Context, index int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if index < 0 || index >= len(r.store.data.Education) {
		return domain.ErrNotFound
	}
	r.store.data.Education = append(r.store.data.Education[:index], r.store.data.Education[index+1:]...)
	return r.store.persistLocked()
}
