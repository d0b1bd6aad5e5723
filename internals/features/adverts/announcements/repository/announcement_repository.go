// Package repository is the only place that talks to the announcements table.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "adverts_backend/internals/features/adverts/announcements/model"
)

// ErrStoreUnavailable wraps every failure coming from the relational store.
var ErrStoreUnavailable = errors.New("announcement store unavailable")

//go:generate mockgen -source=announcement_repository.go -destination=../mocks/mock_announcement_repository.go -package=mocks
type AnnouncementRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.AnnouncementModel, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]model.AnnouncementModel, error)
	GetFiltered(ctx context.Context, minRating *int) ([]model.AnnouncementModel, error)
	Add(ctx context.Context, a *model.AnnouncementModel) error
	Update(ctx context.Context, a *model.AnnouncementModel) error
	Delete(ctx context.Context, a *model.AnnouncementModel) error
}

type announcementRepository struct {
	db *gorm.DB
}

func NewAnnouncementRepository(db *gorm.DB) AnnouncementRepository {
	return &announcementRepository{db: db}
}

func storeErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStoreUnavailable, op, err)
}

// GetByID returns nil, nil when the row does not exist.
func (r *announcementRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.AnnouncementModel, error) {
	var m model.AnnouncementModel
	err := r.db.WithContext(ctx).
		Where("announcement_id = ?", id).
		Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storeErr("get by id", err)
	}
	return &m, nil
}

func (r *announcementRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]model.AnnouncementModel, error) {
	rows := []model.AnnouncementModel{}
	if err := r.db.WithContext(ctx).
		Where("announcement_user_id = ?", userID).
		Find(&rows).Error; err != nil {
		return nil, storeErr("get by user id", err)
	}
	return rows, nil
}

// GetFiltered applies the optional rating floor. No ORDER BY: callers sort.
func (r *announcementRepository) GetFiltered(ctx context.Context, minRating *int) ([]model.AnnouncementModel, error) {
	q := r.db.WithContext(ctx).Model(&model.AnnouncementModel{})
	if minRating != nil {
		q = q.Where("announcement_rating >= ?", *minRating)
	}

	rows := []model.AnnouncementModel{}
	if err := q.Find(&rows).Error; err != nil {
		return nil, storeErr("get filtered", err)
	}
	return rows, nil
}

func (r *announcementRepository) Add(ctx context.Context, a *model.AnnouncementModel) error {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		return storeErr("add", err)
	}
	return nil
}

// Update writes every column of the row matched by id, zero values included.
// A missing row is not an error and nothing gets inserted.
func (r *announcementRepository) Update(ctx context.Context, a *model.AnnouncementModel) error {
	if err := r.db.WithContext(ctx).
		Model(&model.AnnouncementModel{}).
		Where("announcement_id = ?", a.AnnouncementID).
		Select("*").
		Omit("announcement_id").
		Updates(a).Error; err != nil {
		return storeErr("update", err)
	}
	return nil
}

func (r *announcementRepository) Delete(ctx context.Context, a *model.AnnouncementModel) error {
	if err := r.db.WithContext(ctx).
		Where("announcement_id = ?", a.AnnouncementID).
		Delete(&model.AnnouncementModel{}).Error; err != nil {
		return storeErr("delete", err)
	}
	return nil
}
