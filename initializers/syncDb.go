package initializers

import (
	"github.com/Kariqs/klenhub-api/migrations"
	"github.com/rs/zerolog/log"
)

// SyncDatabase applies pending migrations when AUTO_MIGRATE is enabled.
func SyncDatabase(cfg *Config) error {
	if !cfg.AutoMigrate {
		return nil
	}
	if err := migrations.Up(DB); err != nil {
		return err
	}
	log.Info().Msg("Database synced successfully.")
	return nil
}
