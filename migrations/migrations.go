// Package migrations holds the ordered, reversible schema changes for the
// storefront database and the runner that applies and reverts them.
package migrations

import (
	"errors"
	"fmt"

	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TableName is where applied migration IDs are recorded.
const TableName = "migrations"

var ErrUnknownMigration = errors.New("unknown migration")

// Record is the state of one known migration.
type Record struct {
	ID      string `json:"id"`
	Applied bool   `json:"applied"`
}

// All returns every migration in the order it must be applied.
func All() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		createOrders(),
		createProducts(),
		createProductSizes(),
		createProductImages(),
		removeImageURLFromProducts(),
		addDeliveryFieldsToOrders(),
	}
}

func newMigrator(db *gorm.DB) *gormigrate.Gormigrate {
	options := &gormigrate.Options{
		TableName:    TableName,
		IDColumnName: "id",
		IDColumnSize: 255,
	}

	all := All()
	logged := make([]*gormigrate.Migration, 0, len(all))
	for _, m := range all {
		logged = append(logged, withLogging(m))
	}
	return gormigrate.New(db, options, logged)
}

func withLogging(m *gormigrate.Migration) *gormigrate.Migration {
	id, up, down := m.ID, m.Migrate, m.Rollback
	return &gormigrate.Migration{
		ID: id,
		Migrate: func(tx *gorm.DB) error {
			log.Info().Str("migration", id).Msg("applying migration")
			return up(tx)
		},
		Rollback: func(tx *gorm.DB) error {
			log.Info().Str("migration", id).Msg("reverting migration")
			return down(tx)
		},
	}
}

// Up applies every pending migration in order.
func Up(db *gorm.DB) error {
	if err := newMigrator(db).Migrate(); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// UpTo applies pending migrations up to and including id.
func UpTo(db *gorm.DB, id string) error {
	if !known(id) {
		return fmt.Errorf("%w: %s", ErrUnknownMigration, id)
	}
	if err := newMigrator(db).MigrateTo(id); err != nil {
		return fmt.Errorf("apply migrations to %s: %w", id, err)
	}
	return nil
}

// Down reverts up to steps applied migrations, newest first, and reports how
// many were reverted.
func Down(db *gorm.DB, steps int) (int, error) {
	if !db.Migrator().HasTable(TableName) {
		return 0, nil
	}

	m := newMigrator(db)
	reverted := 0
	for reverted < steps {
		err := m.RollbackLast()
		if errors.Is(err, gormigrate.ErrNoRunMigration) {
			break
		}
		if err != nil {
			return reverted, fmt.Errorf("revert migration: %w", err)
		}
		reverted++
	}
	return reverted, nil
}

// DownAll reverts every applied migration.
func DownAll(db *gorm.DB) (int, error) {
	return Down(db, len(All()))
}

// Status lists every known migration with whether it has been applied.
func Status(db *gorm.DB) ([]Record, error) {
	applied := map[string]bool{}
	if db.Migrator().HasTable(TableName) {
		var ids []string
		if err := db.Table(TableName).Pluck("id", &ids).Error; err != nil {
			return nil, fmt.Errorf("read applied migrations: %w", err)
		}
		for _, id := range ids {
			applied[id] = true
		}
	}

	all := All()
	records := make([]Record, 0, len(all))
	for _, m := range all {
		records = append(records, Record{ID: m.ID, Applied: applied[m.ID]})
	}
	return records, nil
}

func known(id string) bool {
	for _, m := range All() {
		if m.ID == id {
			return true
		}
	}
	return false
}

func createTableIfMissing(tx *gorm.DB, model any) error {
	if tx.Migrator().HasTable(model) {
		return nil
	}
	return tx.Migrator().CreateTable(model)
}

func addColumnsIfMissing(tx *gorm.DB, model any, fields ...string) error {
	for _, field := range fields {
		if tx.Migrator().HasColumn(model, field) {
			continue
		}
		if err := tx.Migrator().AddColumn(model, field); err != nil {
			return fmt.Errorf("add column %s: %w", field, err)
		}
	}
	return nil
}

// dropColumnsIfPresent issues plain ALTER TABLE ... DROP COLUMN statements.
// The sqlite migrator would rebuild the table instead, and dropping the old
// copy cascades into product_sizes and product_images.
func dropColumnsIfPresent(tx *gorm.DB, model any, fields ...string) error {
	stmt := &gorm.Statement{DB: tx}
	if err := stmt.Parse(model); err != nil {
		return fmt.Errorf("parse model: %w", err)
	}

	for _, name := range fields {
		if !tx.Migrator().HasColumn(model, name) {
			continue
		}
		column := name
		if field := stmt.Schema.LookUpField(name); field != nil {
			column = field.DBName
		}
		if err := tx.Exec("ALTER TABLE ? DROP COLUMN ?", clause.Table{Name: stmt.Schema.Table}, clause.Column{Name: column}).Error; err != nil {
			return fmt.Errorf("drop column %s: %w", column, err)
		}
	}
	return nil
}
