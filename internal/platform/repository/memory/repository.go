package memory

import (
	"context"
	"errors"
	"sync"
)

var (
	ErrNotFound      = errors.New("memory: entity not found")
	ErrAlreadyExists = errors.New("memory: entity already exists")
)

type Entity interface {
	GetID() string
}

// Repository is a mutex guarded map keyed by entity id. Stored values are
// shared with callers, so T is normally a pointer type that guards its
// own state. Every method fails fast on a finished context.
type Repository[T Entity] struct {
	mu    sync.RWMutex
	items map[string]T
}

func New[T Entity]() *Repository[T] {
	return &Repository[T]{items: make(map[string]T)}
}

func (r *Repository[T]) Save(ctx context.Context, entity T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := entity.GetID()
	if _, ok := r.items[id]; ok {
		return ErrAlreadyExists
	}
	r.items[id] = entity
	return nil
}

func (r *Repository[T]) GetByID(ctx context.Context, id string) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	entity, ok := r.items[id]
	if !ok {
		return zero, ErrNotFound
	}
	return entity, nil
}

func (r *Repository[T]) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return ErrNotFound
	}
	delete(r.items, id)
	return nil
}

// DeleteFunc removes every entity for which match returns true and
// reports how many were removed. match runs under the write lock and must
// not call back into the repository.
func (r *Repository[T]) DeleteFunc(ctx context.Context, match func(T) bool) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, entity := range r.items {
		if match(entity) {
			delete(r.items, id)
			removed++
		}
	}
	return removed, nil
}

func (r *Repository[T]) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items), nil
}
