package controller_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	annDTO "adverts_backend/internals/features/adverts/announcements/dto"
	"adverts_backend/internals/features/adverts/announcements/mocks"
	annRepo "adverts_backend/internals/features/adverts/announcements/repository"
)

func TestCreate_QuotaHitNeverCreates(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mocks.NewMockMediator(ctrl)
	user := uuid.New()

	m.EXPECT().GetUserAnnouncementCount(gomock.Any(), user).Return(2, nil)
	m.EXPECT().CreateAnnouncement(gomock.Any(), gomock.Any()).Times(0)

	status, raw := do(t, mount(m, 2), http.MethodPost, "/announcements", payload(user, "third", 1))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "User has reached the maximum number of announcements (2).", decode(t, raw).Message)
}

func TestCreate_UnderQuotaCreatesOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mocks.NewMockMediator(ctrl)
	user := uuid.New()
	created := &annDTO.AnnouncementDTO{ID: uuid.New(), UserID: user, Text: "first"}

	gomock.InOrder(
		m.EXPECT().GetUserAnnouncementCount(gomock.Any(), user).Return(1, nil),
		m.EXPECT().CreateAnnouncement(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in annDTO.AnnouncementDTO) (*annDTO.AnnouncementDTO, error) {
				assert.Equal(t, user, in.UserID)
				assert.Equal(t, "first", in.Text)
				return created, nil
			}),
	)

	status, raw := do(t, mount(m, 2), http.MethodPost, "/announcements", payload(user, "first", 1))
	assert.Equal(t, http.StatusCreated, status, string(raw))
}

func TestValidationFailureNeverReachesMediator(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mocks.NewMockMediator(ctrl) // no expectations: any call fails the test
	app := mount(m, 10)

	status, _ := do(t, app, http.MethodPost, "/announcements", map[string]any{"userId": uuid.NewString(), "text": " "})
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	status, _ = do(t, app, http.MethodPut, "/announcements/"+uuid.NewString(), map[string]any{"userId": uuid.NewString()})
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	status, _ = do(t, app, http.MethodDelete, "/announcements/not-a-uuid,"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestEmptyMinRatingPassesNil(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mocks.NewMockMediator(ctrl)

	m.EXPECT().GetAllAnnouncements(gomock.Any(), gomock.Nil(), "rating", "desc").
		Return([]annDTO.AnnouncementDTO{}, nil)

	status, _ := do(t, mount(m, 10), http.MethodGet, "/announcements?minRating=&sortBy=rating&sortOrder=desc", nil)
	assert.Equal(t, http.StatusOK, status)
}

func TestMediatorStoreErrorIsGeneric500(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mocks.NewMockMediator(ctrl)
	cause := fmt.Errorf("%w: get filtered: dial tcp 10.0.0.5:5432: connection refused", annRepo.ErrStoreUnavailable)

	m.EXPECT().GetAllAnnouncements(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, cause)

	status, raw := do(t, mount(m, 10), http.MethodGet, "/announcements", nil)
	require.Equal(t, http.StatusInternalServerError, status)
	env := decode(t, raw)
	assert.Equal(t, "INTERNAL_ERROR", env.ErrorCode)
	assert.NotContains(t, string(raw), "10.0.0.5")
}
