// Package seeders populates the database with fixed demo data.
package seeders

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Seeder inserts a fixed data set and removes it again.
type Seeder struct {
	Name string
	Up   func(tx *gorm.DB) error
	Down func(tx *gorm.DB) error
}

// All returns the seeders in the order they are applied.
func All() []Seeder {
	return []Seeder{
		DemoProducts(),
	}
}

// Up runs every seeder in order, each inside its own transaction.
func Up(db *gorm.DB) error {
	for _, s := range All() {
		log.Info().Str("seeder", s.Name).Msg("seeding")
		if err := db.Transaction(s.Up); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name, err)
		}
	}
	return nil
}

// Down reverts every seeder in reverse order.
func Down(db *gorm.DB) error {
	all := All()
	for i := len(all) - 1; i >= 0; i-- {
		s := all[i]
		log.Info().Str("seeder", s.Name).Msg("removing seed data")
		if err := db.Transaction(s.Down); err != nil {
			return fmt.Errorf("unseed %s: %w", s.Name, err)
		}
	}
	return nil
}
