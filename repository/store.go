// Package repository holds the dish and order collections behind a small
// store interface so the managers never touch storage directly.
package repository

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("record not found")

// Record is anything a Store can hold.
type Record interface {
	GetID() string
}

// Store is an insertion-ordered collection keyed by record id.
// Find, Replace and Remove return ErrNotFound for unknown ids.
type Store[T Record] interface {
	List(ctx context.Context) ([]T, error)
	Find(ctx context.Context, id string) (T, error)
	Insert(ctx context.Context, rec T) error
	Replace(ctx context.Context, id string, rec T) error
	Remove(ctx context.Context, id string) error
}
