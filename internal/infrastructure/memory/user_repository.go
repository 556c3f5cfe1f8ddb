package memory

import (
	"github.com/jhoicas/Bodega-api/internal/domain"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
)

// UserRepository implementación en memoria del puerto de usuarios.
type UserRepository struct {
	store *Store
}

// NewUserRepository construye el repositorio de usuarios.
func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) Create(user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, exists := r.store.usersByEmail[user.Email]; exists {
		return domain.ErrEmailAlreadyExists
	}
	r.store.users[user.ID] = copyUser(user)
	r.store.usersByEmail[user.Email] = user.ID
	return nil
}

func (r *UserRepository) GetByID(id string) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return copyUser(r.store.users[id]), nil
}

func (r *UserRepository) GetByEmail(email string) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	id, ok := r.store.usersByEmail[email]
	if !ok {
		return nil, nil
	}
	return copyUser(r.store.users[id]), nil
}
