package repository

import (
	"context"
	"sync"

	"github.com/yeremiapane/grubdash/models"
)

// MemoryStore keeps records in a slice for the lifetime of the process.
type MemoryStore[T Record] struct {
	mu      sync.RWMutex
	records []T
	clone   func(T) T
}

// NewMemoryStore returns an empty store. clone copies a record on the way
// in and out so callers never share memory with the store; nil means a
// plain value copy is enough.
func NewMemoryStore[T Record](clone func(T) T) *MemoryStore[T] {
	if clone == nil {
		clone = func(rec T) T { return rec }
	}
	return &MemoryStore[T]{
		records: make([]T, 0),
		clone:   clone,
	}
}

func NewDishMemoryStore() *MemoryStore[models.Dish] {
	return NewMemoryStore[models.Dish](nil)
}

func NewOrderMemoryStore() *MemoryStore[models.Order] {
	return NewMemoryStore(cloneOrder)
}

func (s *MemoryStore[T]) List(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, len(s.records))
	for i, rec := range s.records {
		out[i] = s.clone(rec)
	}
	return out, nil
}

func (s *MemoryStore[T]) Find(ctx context.Context, id string) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return zero, ErrNotFound
	}
	return s.clone(s.records[i]), nil
}

func (s *MemoryStore[T]) Insert(ctx context.Context, rec T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, s.clone(rec))
	return nil
}

func (s *MemoryStore[T]) Replace(ctx context.Context, id string, rec T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	s.records[i] = s.clone(rec)
	return nil
}

func (s *MemoryStore[T]) Remove(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	s.records = append(s.records[:i], s.records[i+1:]...)
	return nil
}

// indexOf must be called with the lock held.
func (s *MemoryStore[T]) indexOf(id string) int {
	for i, rec := range s.records {
		if rec.GetID() == id {
			return i
		}
	}
	return -1
}

func cloneOrder(o models.Order) models.Order {
	if o.Dishes != nil {
		items := make([]models.DishLineItem, len(o.Dishes))
		for i, item := range o.Dishes {
			if item.Extra != nil {
				item.Extra = cloneValue(item.Extra).(map[string]interface{})
			}
			items[i] = item
		}
		o.Dishes = items
	}
	return o
}

// cloneValue deep copies the maps and slices produced by encoding/json.
func cloneValue(v interface{}) interface{} {
	switch v := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(v))
		for k, e := range v {
			out[k] = cloneValue(e)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, e := range v {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}
