// file: internals/features/adverts/announcements/model/announcement_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type AnnouncementModel struct {
	AnnouncementID             uuid.UUID `gorm:"column:announcement_id;type:char(36);primaryKey;uniqueIndex:ix_announcements_id"`
	AnnouncementNumber         int       `gorm:"column:announcement_number;not null;index:ix_announcements_number"`
	AnnouncementUserID         uuid.UUID `gorm:"column:announcement_user_id;type:char(36);not null;index:ix_announcements_user_id"`
	AnnouncementText           string    `gorm:"column:announcement_text;type:text;not null"`
	AnnouncementImage          *string   `gorm:"column:announcement_image;type:text"`
	AnnouncementRating         int       `gorm:"column:announcement_rating;not null;index:ix_announcements_rating"`
	AnnouncementCreatedAt      time.Time `gorm:"column:announcement_created_at;not null"`
	AnnouncementExpirationDate time.Time `gorm:"column:announcement_expiration_date;not null"`
}

func (AnnouncementModel) TableName() string {
	return "announcements"
}
