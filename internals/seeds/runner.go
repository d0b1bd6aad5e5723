package seeds

import (
	"context"
	"path/filepath"

	"go.uber.org/zap"
	"gorm.io/gorm"

	announcements "adverts_backend/internals/seeds/announcements"
)

// RunAllSeeds loads every seed file found under dir.
func RunAllSeeds(ctx context.Context, db *gorm.DB, dir string, log *zap.Logger) error {

	//* Adverts
	if err := announcements.SeedAnnouncementsFromJSON(ctx, db, filepath.Join(dir, "announcements", "data_announcements.json"), log); err != nil {
		return err
	}

	return nil
}
