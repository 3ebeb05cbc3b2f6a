// Package database selects and opens the storage behind the dish and order
// stores.
package database

import (
	"fmt"

	"github.com/yeremiapane/grubdash/models"
	"github.com/yeremiapane/grubdash/repository"
	"github.com/yeremiapane/grubdash/utils"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

// Stores bundles the two collections and whatever must be released with them.
type Stores struct {
	Dishes repository.Store[models.Dish]
	Orders repository.Store[models.Order]

	db *gorm.DB
}

// Close releases the database connection, if any.
func (s *Stores) Close() error {
	if s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// NewStores builds the stores for driver. The sqlite and mysql drivers are
// migrated before use.
func NewStores(driver, dsn string) (*Stores, error) {
	if driver == DriverMemory {
		return &Stores{
			Dishes: repository.NewDishMemoryStore(),
			Orders: repository.NewOrderMemoryStore(),
		}, nil
	}

	db, err := Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	if err := repository.Migrate(db); err != nil {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			sqlDB.Close()
		}
		return nil, fmt.Errorf("migrate %s: %w", driver, err)
	}
	utils.InfoLogger.Printf("AutoMigrate completed for %s store.", driver)

	return &Stores{
		Dishes: repository.NewDishGormStore(db),
		Orders: repository.NewOrderGormStore(db),
		db:     db,
	}, nil
}

// Open connects gorm to a sqlite or mysql database.
func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case DriverSQLite:
		dialector = sqlite.Open(dsn)
	case DriverMySQL:
		dialector = mysql.Open(dsn)
	default:
		return nil, fmt.Errorf("unknown store driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	return db, nil
}
