// file: internals/features/adverts/announcements/dto/announcement_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "adverts_backend/internals/features/adverts/announcements/model"
)

/* ===================== DTO ===================== */

// AnnouncementDTO is the external shape of an announcement. Field names on the
// wire follow the public API contract (camelCase).
type AnnouncementDTO struct {
	ID             uuid.UUID `json:"id"`
	Number         int       `json:"number"`
	UserID         uuid.UUID `json:"userId" validate:"required"`
	Text           string    `json:"text" validate:"required,notblank"`
	Image          *string   `json:"image"`
	Rating         int       `json:"rating"`
	CreatedAt      time.Time `json:"createdAt"`
	ExpirationDate time.Time `json:"expirationDate"`
}

// ToModel: DTO -> entity. The id is copied as-is; create assigns its own.
func (d AnnouncementDTO) ToModel() *model.AnnouncementModel {
	return &model.AnnouncementModel{
		AnnouncementID:             d.ID,
		AnnouncementNumber:         d.Number,
		AnnouncementUserID:         d.UserID,
		AnnouncementText:           d.Text,
		AnnouncementImage:          d.Image,
		AnnouncementRating:         d.Rating,
		AnnouncementCreatedAt:      d.CreatedAt,
		AnnouncementExpirationDate: d.ExpirationDate,
	}
}

// ApplyToModel overwrites every mutable field. id and user id stay untouched.
func (d *AnnouncementDTO) ApplyToModel(m *model.AnnouncementModel) {
	m.AnnouncementNumber = d.Number
	m.AnnouncementText = d.Text
	m.AnnouncementImage = d.Image
	m.AnnouncementRating = d.Rating
	m.AnnouncementCreatedAt = d.CreatedAt
	m.AnnouncementExpirationDate = d.ExpirationDate
}

// FromModel: entity -> DTO (nil-safe)
func FromModel(m *model.AnnouncementModel) *AnnouncementDTO {
	if m == nil {
		return nil
	}
	return &AnnouncementDTO{
		ID:             m.AnnouncementID,
		Number:         m.AnnouncementNumber,
		UserID:         m.AnnouncementUserID,
		Text:           m.AnnouncementText,
		Image:          m.AnnouncementImage,
		Rating:         m.AnnouncementRating,
		CreatedAt:      m.AnnouncementCreatedAt,
		ExpirationDate: m.AnnouncementExpirationDate,
	}
}

func FromModels(rows []model.AnnouncementModel) []AnnouncementDTO {
	out := make([]AnnouncementDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out
}

/* ===================== QUERIES (list) ===================== */

type ListAnnouncementQuery struct {
	MinRating *int   `query:"minRating"`
	SortBy    string `query:"sortBy"`
	SortOrder string `query:"sortOrder"`
}
