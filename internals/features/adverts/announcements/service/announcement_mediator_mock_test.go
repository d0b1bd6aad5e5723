package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	dto "adverts_backend/internals/features/adverts/announcements/dto"
	"adverts_backend/internals/features/adverts/announcements/mocks"
	model "adverts_backend/internals/features/adverts/announcements/model"
)

func TestCreateAnnouncement_AddsOnceWithServerID(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockAnnouncementRepository(ctrl)
	m := newTestMediator(r)

	clientID := uuid.New()
	r.EXPECT().Add(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *model.AnnouncementModel) error {
			assert.NotEqual(t, uuid.Nil, a.AnnouncementID)
			assert.NotEqual(t, clientID, a.AnnouncementID)
			assert.True(t, a.AnnouncementCreatedAt.Equal(base))
			return nil
		}).Times(1)

	got, err := m.CreateAnnouncement(context.Background(), dto.AnnouncementDTO{
		ID: clientID, UserID: uuid.New(), Text: "hello",
	})
	require.NoError(t, err)
	assert.NotEqual(t, clientID, got.ID)
}

func TestUpdateAnnouncement_ForeignOwnerNeverWrites(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockAnnouncementRepository(ctrl)
	m := newTestMediator(r)

	row := &model.AnnouncementModel{AnnouncementID: uuid.New(), AnnouncementUserID: uuid.New(), AnnouncementText: "mine"}
	r.EXPECT().GetByID(gomock.Any(), row.AnnouncementID).Return(row, nil)
	r.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)

	_, err := m.UpdateAnnouncement(context.Background(), row.AnnouncementID, dto.AnnouncementDTO{
		UserID: uuid.New(), Text: "theirs",
	})
	assert.ErrorIs(t, err, ErrOwnershipMismatch)
}

func TestUpdateAnnouncement_MissingNeverWrites(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockAnnouncementRepository(ctrl)
	m := newTestMediator(r)

	id := uuid.New()
	r.EXPECT().GetByID(gomock.Any(), id).Return(nil, nil)
	r.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)
	r.EXPECT().Add(gomock.Any(), gomock.Any()).Times(0)

	got, err := m.UpdateAnnouncement(context.Background(), id, dto.AnnouncementDTO{UserID: uuid.New(), Text: "x"})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUpdateAnnouncement_WritesCopyWithStoredIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockAnnouncementRepository(ctrl)
	m := newTestMediator(r)

	row := &model.AnnouncementModel{AnnouncementID: uuid.New(), AnnouncementUserID: uuid.New(), AnnouncementText: "old"}
	r.EXPECT().GetByID(gomock.Any(), row.AnnouncementID).Return(row, nil)
	r.EXPECT().Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *model.AnnouncementModel) error {
			assert.Equal(t, row.AnnouncementID, a.AnnouncementID)
			assert.Equal(t, row.AnnouncementUserID, a.AnnouncementUserID)
			assert.Equal(t, "new", a.AnnouncementText)
			return nil
		})

	_, err := m.UpdateAnnouncement(context.Background(), row.AnnouncementID, dto.AnnouncementDTO{
		ID: uuid.New(), UserID: row.AnnouncementUserID, Text: "new",
	})
	require.NoError(t, err)
	assert.Equal(t, "old", row.AnnouncementText, "loaded row is not mutated")
}

func TestDeleteAnnouncement_ForeignOwnerNeverDeletes(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockAnnouncementRepository(ctrl)
	m := newTestMediator(r)

	row := &model.AnnouncementModel{AnnouncementID: uuid.New(), AnnouncementUserID: uuid.New()}
	r.EXPECT().GetByID(gomock.Any(), row.AnnouncementID).Return(row, nil)
	r.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)

	ok, err := m.DeleteAnnouncement(context.Background(), row.AnnouncementID, uuid.New())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGetAllAnnouncements_PassesFloorToStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockAnnouncementRepository(ctrl)
	m := newTestMediator(r)

	floor := 3
	r.EXPECT().GetFiltered(gomock.Any(), &floor).Return([]model.AnnouncementModel{}, nil)
	r.EXPECT().GetFiltered(gomock.Any(), gomock.Nil()).Return(nil, nil)

	got, err := m.GetAllAnnouncements(context.Background(), &floor, "", "")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = m.GetAllAnnouncements(context.Background(), nil, "", "")
	require.NoError(t, err)
	assert.NotNil(t, got)
}
