package memstore

import (
	"context"

	"go-resume-backend/internal/domain"
)

type skillRepo struct {
	store *Store
}

func NewSkillRepository(store *Store) domain.SkillRepository {
	return &skillRepo{store: store}
}

func (r *skillRepo) List(ctx context.Context) ([]domain.Skill, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]domain.Skill, len(r.store.data.Skill))
	copy(out, r.store.data.Skill)
	return out, nil
}

func (r *skillRepo) GetByIndex(ctx context.Context, index int) (*domain.Skill, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	if index < 0 || index >= len(r.store.data.Skill) {
		return nil, domain.ErrNotFound
	}
	skill := r.store.data.Skill[index]
	return &skill, nil
}

func (r *skillRepo) Append(ctx context.Context, skill *domain.Skill) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.data.Skill = append(r.store.data.Skill, *skill)
	if err := r.store.persistLocked(); err != nil {
		return 0, err
	}
	return len(r.store.data.Skill) - 1, nil
}

func (r *skillRepo) Replace(ctx context.Context, index int, skill *domain.Skill) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if index < 0 || index >= len(r.store.data.Skill) {
		return domain.ErrNotFound
	}
	r.store.data.Skill[index] = *skill
	return r.store.persistLocked()
}

func (r *skillRepo) Delete(ctx context.Context, index int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if index < 0 || index >= len(r.store.data.Skill) {
		return domain.ErrNotFound
	}
	r.store.data.Skill = append(r.store.data.Skill[:index], r.store.data.Skill[index+1:]...)
	return r.store.persistLocked()
}
