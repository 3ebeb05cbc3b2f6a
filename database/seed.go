package database

import (
	"context"
	"fmt"
	"os"

	"github.com/yeremiapane/grubdash/models"
	"github.com/yeremiapane/grubdash/utils"
	"gopkg.in/yaml.v3"
)

// Seed is the content of a SEED_FILE.
type Seed struct {
	Dishes []models.Dish  `yaml:"dishes"`
	Orders []models.Order `yaml:"orders"`
}

// LoadSeed reads a YAML seed file.
func LoadSeed(path string) (*Seed, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var seed Seed
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	return &seed, nil
}

// Apply inserts the seed records in file order. Records without an id get
// one from nextID.
func (s *Seed) Apply(ctx context.Context, stores *Stores, nextID utils.IDGenerator) error {
	if nextID == nil {
		nextID = utils.NextID
	}

	for i, dish := range s.Dishes {
		if dish.Price <= 0 {
			return fmt.Errorf("seed dish %d (%s): price must be greater than zero", i, dish.Name)
		}
		if dish.ID == "" {
			dish.ID = nextID()
		}
		if err := stores.Dishes.Insert(ctx, dish); err != nil {
			return fmt.Errorf("seed dish %d: %w", i, err)
		}
	}

	for i, order := range s.Orders {
		if err := checkSeedOrder(order); err != nil {
			return fmt.Errorf("seed order %d: %w", i, err)
		}
		if order.ID == "" {
			order.ID = nextID()
		}
		if err := stores.Orders.Insert(ctx, order); err != nil {
			return fmt.Errorf("seed order %d: %w", i, err)
		}
	}

	utils.InfoLogger.Printf("Seeded %d dishes and %d orders.", len(s.Dishes), len(s.Orders))
	return nil
}

// SeedFromFile loads path and applies it. An empty path is a no-op.
func SeedFromFile(ctx context.Context, path string, stores *Stores, nextID utils.IDGenerator) error {
	if path == "" {
		return nil
	}
	seed, err := LoadSeed(path)
	if err != nil {
		return err
	}
	return seed.Apply(ctx, stores, nextID)
}

func checkSeedOrder(o models.Order) error {
	if len(o.Dishes) == 0 {
		return fmt.Errorf("dishes cannot be empty")
	}
	for i, item := range o.Dishes {
		if item.Quantity <= 0 {
			return fmt.Errorf("dish %d must have a quantity greater than 0", i)
		}
	}
	if o.Status != "" && !models.IsValidStatus(o.Status) {
		return fmt.Errorf("invalid status %q", o.Status)
	}
	return nil
}
