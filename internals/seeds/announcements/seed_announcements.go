package announcements

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	model "adverts_backend/internals/features/adverts/announcements/model"
	repo "adverts_backend/internals/features/adverts/announcements/repository"
)

type AnnouncementSeed struct {
	ID             uuid.UUID `json:"id"`
	Number         int       `json:"number"`
	UserID         uuid.UUID `json:"userId"`
	Text           string    `json:"text"`
	Image          *string   `json:"image"`
	Rating         int       `json:"rating"`
	CreatedAt      time.Time `json:"createdAt"`
	ExpirationDate time.Time `json:"expirationDate"`
}

// SeedAnnouncementsFromJSON inserts the rows of filePath, skipping ids that
// already exist. Rows without an id get a fresh one.
func SeedAnnouncementsFromJSON(ctx context.Context, db *gorm.DB, filePath string, log *zap.Logger) error {
	log.Info("reading seed file", zap.String("file", filePath))

	raw, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}

	var rows []AnnouncementSeed
	if err := json.Unmarshal(raw, &rows); err != nil {
		return fmt.Errorf("decode seed file: %w", err)
	}

	r := repo.NewAnnouncementRepository(db)
	inserted := 0
	for _, s := range rows {
		if s.ID == uuid.Nil {
			s.ID = uuid.New()
		} else {
			existing, err := r.GetByID(ctx, s.ID)
			if err != nil {
				return err
			}
			if existing != nil {
				log.Debug("announcement already seeded, skipping", zap.String("id", s.ID.String()))
				continue
			}
		}
		if s.CreatedAt.IsZero() {
			s.CreatedAt = time.Now().UTC()
		}

		if err := r.Add(ctx, &model.AnnouncementModel{
			AnnouncementID:             s.ID,
			AnnouncementNumber:         s.Number,
			AnnouncementUserID:         s.UserID,
			AnnouncementText:           s.Text,
			AnnouncementImage:          s.Image,
			AnnouncementRating:         s.Rating,
			AnnouncementCreatedAt:      s.CreatedAt,
			AnnouncementExpirationDate: s.ExpirationDate,
		}); err != nil {
			return err
		}
		inserted++
	}

	log.Info("announcements seeded", zap.Int("inserted", inserted), zap.Int("total", len(rows)))
	return nil
}
