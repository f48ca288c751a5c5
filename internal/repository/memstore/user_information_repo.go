package memstore

import (
	"context"

	"go-resume-backend/internal/domain"
)

type userInformationRepo struct {
	store *Store
}

func NewUserInformationRepository(store *Store) domain.UserInformationRepository {
	return &userInformationRepo{store: store}
}

func (r *userInformationRepo) Get(ctx context.Context) (*domain.UserInformation, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	info := r.store.data.UserInformation
	return &info, nil
}

func (r *userInformationRepo) Set(ctx context.Context, info *domain.UserInformation) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.data.UserInformation = *info
	return r.store.persistLocked()
}
