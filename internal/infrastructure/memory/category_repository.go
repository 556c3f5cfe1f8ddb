package memory

import (
	"sort"

	"github.com/jhoicas/Bodega-api/internal/domain/entity"
)

// CategoryRepository implementación en memoria del puerto de categorías.
type CategoryRepository struct {
	store *Store
}

// NewCategoryRepository construye el repositorio de categorías.
func NewCategoryRepository(store *Store) *CategoryRepository {
	return &CategoryRepository{store: store}
}

func (r *CategoryRepository) Create(category *entity.Category) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.categories[category.ID] = copyCategory(category)
	return nil
}

func (r *CategoryRepository) GetByID(id string) (*entity.Category, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return copyCategory(r.store.categories[id]), nil
}

func (r *CategoryRepository) List() ([]*entity.Category, error) {
	r.store.mu.RLock()
	all := make([]*entity.Category, 0, len(r.store.categories))
	for _, c := range r.store.categories {
		all = append(all, copyCategory(c))
	}
	r.store.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all, nil
}
