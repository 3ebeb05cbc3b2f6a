package repository

import (
	"context"
	"errors"

	"github.com/yeremiapane/grubdash/models"
	"gorm.io/gorm"
)

// GormStore keeps records of type T in a table of rows of type R. Rows
// must have an auto-increment "seq" column, which gives insertion order,
// and a unique "record_id" column holding the record id.
type GormStore[T Record, R any] struct {
	db      *gorm.DB
	toRow   func(T) R
	fromRow func(R) T
}

func NewGormStore[T Record, R any](db *gorm.DB, toRow func(T) R, fromRow func(R) T) *GormStore[T, R] {
	return &GormStore[T, R]{db: db, toRow: toRow, fromRow: fromRow}
}

func NewDishGormStore(db *gorm.DB) *GormStore[models.Dish, dishRow] {
	return NewGormStore(db, toDishRow, fromDishRow)
}

func NewOrderGormStore(db *gorm.DB) *GormStore[models.Order, orderRow] {
	return NewGormStore(db, toOrderRow, fromOrderRow)
}

// Migrate creates or updates the tables used by the gorm stores.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&dishRow{}, &orderRow{})
}

func (s *GormStore[T, R]) List(ctx context.Context) ([]T, error) {
	var rows []R
	if err := s.db.WithContext(ctx).Order("seq ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]T, 0, len(rows))
	for _, row := range rows {
		out = append(out, s.fromRow(row))
	}
	return out, nil
}

func (s *GormStore[T, R]) Find(ctx context.Context, id string) (T, error) {
	var zero T
	var row R
	err := s.db.WithContext(ctx).Where("record_id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return zero, ErrNotFound
	}
	if err != nil {
		return zero, err
	}
	return s.fromRow(row), nil
}

func (s *GormStore[T, R]) Insert(ctx context.Context, rec T) error {
	row := s.toRow(rec)
	return s.db.WithContext(ctx).Create(&row).Error
}

// Replace overwrites every column except seq, so the record keeps its
// position in List.
func (s *GormStore[T, R]) Replace(ctx context.Context, id string, rec T) error {
	row := s.toRow(rec)
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(new(R)).Where("record_id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
		return tx.Model(new(R)).
			Where("record_id = ?", id).
			Select("*").
			Omit("seq").
			Updates(&row).Error
	})
}

func (s *GormStore[T, R]) Remove(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("record_id = ?", id).Delete(new(R))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
