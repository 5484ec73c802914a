package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/cantinota/noleggio-api/internal/domains/materials/domain"
	"github.com/cantinota/noleggio-api/internal/domains/materials/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory material persistence adapter.
type Repository struct {
	mu        sync.RWMutex
	materials map[int64]*domain.Material
	nextID    int64
}

func NewRepository() *Repository {
	return &Repository{materials: map[int64]*domain.Material{}}
}

func (r *Repository) Save(_ context.Context, material *domain.Material) (*domain.Material, error) {
	if material == nil {
		return nil, errors.New("materiale is nil")
	}
	clone := *material
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if clone.ID == 0 {
		r.nextID++
		clone.ID = r.nextID
	} else if clone.ID > r.nextID {
		r.nextID = clone.ID
	}
	r.materials[clone.ID] = &clone
	copy := clone
	return &copy, nil
}

func (r *Repository) GetByID(_ context.Context, id int64) (*domain.Material, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	material, ok := r.materials[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *material
	return &clone, nil
}

func (r *Repository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.materials, id)
	return nil
}

func (r *Repository) List(_ context.Context) ([]domain.Material, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]domain.Material, 0, len(r.materials))
	for _, material := range r.materials {
		list = append(list, *material)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}
