package memstore

import (
	"context"

	"go-resume-backend/internal/domain"
)

type customSectionRepo struct {
	store *Store
}

func NewCustomSectionRepository(store *Store) domain.CustomSectionRepository {
	return &customSectionRepo{store: store}
}

func (r *customSectionRepo) List(ctx context.Context) ([]domain.CustomSection, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]domain.CustomSection, len(r.store.data.CustomSections))
	copy(out, r.store.data.CustomSections)
	return out, nil
}

func (r *customSectionRepo) Append(ctx context.Context, section *domain.CustomSection) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	record := *section
	record.ID = len(r.store.data.CustomSections)
	r.store.data.CustomSections = append(r.store.data.CustomSections, record)
	if err := r.store.persistLocked(); err != nil {
		return 0, err
	}
	return record.ID, nil
}
