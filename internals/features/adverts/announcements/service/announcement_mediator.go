package service

import (
	"bytes"
	"cmp"
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	dto "adverts_backend/internals/features/adverts/announcements/dto"
	model "adverts_backend/internals/features/adverts/announcements/model"
	repo "adverts_backend/internals/features/adverts/announcements/repository"
)

// ErrOwnershipMismatch is returned by UpdateAnnouncement when the caller does
// not own the announcement.
var ErrOwnershipMismatch = errors.New("announcement belongs to another user")

//go:generate mockgen -source=announcement_mediator.go -destination=../mocks/mock_mediator.go -package=mocks

// Mediator sits between the HTTP controller and the repository.
// Not-found is reported as nil / false, never as an error.
type Mediator interface {
	GetAnnouncement(ctx context.Context, id uuid.UUID) (*dto.AnnouncementDTO, error)
	GetAllAnnouncements(ctx context.Context, minRating *int, sortBy, sortOrder string) ([]dto.AnnouncementDTO, error)
	CreateAnnouncement(ctx context.Context, in dto.AnnouncementDTO) (*dto.AnnouncementDTO, error)
	UpdateAnnouncement(ctx context.Context, id uuid.UUID, in dto.AnnouncementDTO) (*dto.AnnouncementDTO, error)
	DeleteAnnouncement(ctx context.Context, id, userID uuid.UUID) (bool, error)
	GetUserAnnouncementCount(ctx context.Context, userID uuid.UUID) (int, error)
}

type mediator struct {
	repo repo.AnnouncementRepository
	log  *zap.Logger
	now  func() time.Time
}

func NewMediator(r repo.AnnouncementRepository, log *zap.Logger) Mediator {
	return &mediator{
		repo: r,
		log:  log.Named("announcements"),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (m *mediator) GetUserAnnouncementCount(ctx context.Context, userID uuid.UUID) (int, error) {
	rows, err := m.repo.GetByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}

func (m *mediator) GetAnnouncement(ctx context.Context, id uuid.UUID) (*dto.AnnouncementDTO, error) {
	row, err := m.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.FromModel(row), nil
}

func (m *mediator) GetAllAnnouncements(ctx context.Context, minRating *int, sortBy, sortOrder string) ([]dto.AnnouncementDTO, error) {
	rows, err := m.repo.GetFiltered(ctx, minRating)
	if err != nil {
		return nil, err
	}
	SortAnnouncements(rows, sortBy, sortOrder)
	return dto.FromModels(rows), nil
}

// SortAnnouncements sorts in place. Both sortBy and sortOrder must be set,
// otherwise the store order is kept. Unknown fields fall back to the id.
func SortAnnouncements(rows []model.AnnouncementModel, sortBy, sortOrder string) {
	if sortBy == "" || sortOrder == "" {
		return
	}

	var compare func(a, b *model.AnnouncementModel) int
	switch strings.ToLower(sortBy) {
	case "number":
		compare = func(a, b *model.AnnouncementModel) int {
			return cmp.Compare(a.AnnouncementNumber, b.AnnouncementNumber)
		}
	case "rating":
		compare = func(a, b *model.AnnouncementModel) int {
			return cmp.Compare(a.AnnouncementRating, b.AnnouncementRating)
		}
	case "createdat":
		compare = func(a, b *model.AnnouncementModel) int {
			return a.AnnouncementCreatedAt.Compare(b.AnnouncementCreatedAt)
		}
	case "expirationdate":
		compare = func(a, b *model.AnnouncementModel) int {
			return a.AnnouncementExpirationDate.Compare(b.AnnouncementExpirationDate)
		}
	default:
		compare = func(a, b *model.AnnouncementModel) int {
			return bytes.Compare(a.AnnouncementID[:], b.AnnouncementID[:])
		}
	}

	desc := strings.EqualFold(sortOrder, "desc")
	slices.SortStableFunc(rows, func(a, b model.AnnouncementModel) int {
		if desc {
			return compare(&b, &a)
		}
		return compare(&a, &b)
	})
}

func (m *mediator) CreateAnnouncement(ctx context.Context, in dto.AnnouncementDTO) (*dto.AnnouncementDTO, error) {
	row := in.ToModel()
	row.AnnouncementID = uuid.New()
	if row.AnnouncementCreatedAt.IsZero() {
		row.AnnouncementCreatedAt = m.now()
	}

	if err := m.repo.Add(ctx, row); err != nil {
		return nil, err
	}
	m.log.Debug("announcement created",
		zap.String("id", row.AnnouncementID.String()),
		zap.String("user_id", row.AnnouncementUserID.String()))
	return dto.FromModel(row), nil
}

// UpdateAnnouncement returns nil, nil when the id is unknown.
func (m *mediator) UpdateAnnouncement(ctx context.Context, id uuid.UUID, in dto.AnnouncementDTO) (*dto.AnnouncementDTO, error) {
	existing, err := m.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	if in.UserID != existing.AnnouncementUserID {
		return nil, ErrOwnershipMismatch
	}

	next := *existing
	in.ApplyToModel(&next)
	if err := m.repo.Update(ctx, &next); err != nil {
		return nil, err
	}
	m.log.Debug("announcement updated", zap.String("id", id.String()))
	return dto.FromModel(&next), nil
}

// DeleteAnnouncement reports false both for a missing row and for a row owned
// by someone else.
func (m *mediator) DeleteAnnouncement(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	existing, err := m.repo.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if existing == nil || existing.AnnouncementUserID != userID {
		return false, nil
	}

	if err := m.repo.Delete(ctx, existing); err != nil {
		return false, err
	}
	m.log.Debug("announcement deleted", zap.String("id", id.String()))
	return true, nil
}
