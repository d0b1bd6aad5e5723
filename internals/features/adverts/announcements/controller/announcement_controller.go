// file: internals/features/adverts/announcements/controller/announcement_controller.go
package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	annDTO "adverts_backend/internals/features/adverts/announcements/dto"
	annService "adverts_backend/internals/features/adverts/announcements/service"
	helper "adverts_backend/internals/helpers"
)

type AnnouncementController struct {
	Mediator   annService.Mediator
	MaxPerUser int
	Log        *zap.Logger
}

func NewAnnouncementController(m annService.Mediator, maxPerUser int, log *zap.Logger) *AnnouncementController {
	return &AnnouncementController{Mediator: m, MaxPerUser: maxPerUser, Log: log.Named("announcement_controller")}
}

var validateAnnouncement = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	return v
}

// ===================== Utils =====================

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("invalid uuid: %q", raw))
	}
	return id, nil
}

// storeFailure logs the real cause and answers with a generic 500.
func (h *AnnouncementController) storeFailure(c *fiber.Ctx, op string, err error) error {
	h.Log.Error("announcement store call failed",
		zap.String("op", op),
		zap.Any("request_id", c.Locals("reqid")),
		zap.Error(err))
	return helper.JsonError(c, fiber.StatusInternalServerError, "")
}

// ===================== LIST =====================
// GET /announcements?minRating=&sortBy=&sortOrder=
func (h *AnnouncementController) List(c *fiber.Ctx) error {
	var q annDTO.ListAnnouncementQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "minRating must be an integer")
	}
	// ?minRating= binds to 0; an empty value means no filter
	if strings.TrimSpace(c.Query("minRating")) == "" {
		q.MinRating = nil
	}

	items, err := h.Mediator.GetAllAnnouncements(c.UserContext(), q.MinRating, q.SortBy, q.SortOrder)
	if err != nil {
		return h.storeFailure(c, "list", err)
	}
	return helper.JsonList(c, "ok", items, len(items))
}

// ===================== GET BY ID =====================
// GET /announcements/:id
func (h *AnnouncementController) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	item, err := h.Mediator.GetAnnouncement(c.UserContext(), id)
	if err != nil {
		return h.storeFailure(c, "get", err)
	}
	if item == nil {
		return c.Status(fiber.StatusNotFound).Send(nil)
	}
	return helper.JsonOK(c, "ok", item)
}

// ===================== CREATE =====================
// POST /announcements
func (h *AnnouncementController) Create(c *fiber.Ctx) error {
	var req annDTO.AnnouncementDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := validateAnnouncement.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationFieldErrors(err))
	}

	// quota lives at the boundary: checked before anything is written
	count, err := h.Mediator.GetUserAnnouncementCount(c.UserContext(), req.UserID)
	if err != nil {
		return h.storeFailure(c, "count", err)
	}
	if count >= h.MaxPerUser {
		return helper.JsonError(c, fiber.StatusBadRequest,
			fmt.Sprintf("User has reached the maximum number of announcements (%d).", h.MaxPerUser))
	}

	created, err := h.Mediator.CreateAnnouncement(c.UserContext(), req)
	if err != nil {
		return h.storeFailure(c, "create", err)
	}
	return helper.JsonCreated(c, "Announcement created", created)
}

// ===================== UPDATE =====================
// PUT /announcements/:id
func (h *AnnouncementController) Update(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req annDTO.AnnouncementDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := validateAnnouncement.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationFieldErrors(err))
	}

	updated, err := h.Mediator.UpdateAnnouncement(c.UserContext(), id, req)
	switch {
	case errors.Is(err, annService.ErrOwnershipMismatch):
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	case err != nil:
		return h.storeFailure(c, "update", err)
	case updated == nil:
		return c.Status(fiber.StatusNotFound).Send(nil)
	}
	return helper.JsonUpdated(c, "Announcement updated", updated)
}

// ===================== DELETE =====================
// DELETE /announcements/:id,:userId  (also /announcements/:id?userId=)
func (h *AnnouncementController) Delete(c *fiber.Ctx) error {
	rawID, rawUser, found := strings.Cut(c.Params("id"), ",")
	if !found {
		rawUser = c.Query("userId")
	}

	id, err := parseID(rawID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	userID, err := parseID(rawUser)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	ok, err := h.Mediator.DeleteAnnouncement(c.UserContext(), id, userID)
	if err != nil {
		return h.storeFailure(c, "delete", err)
	}
	if !ok {
		return c.Status(fiber.StatusNotFound).Send(nil)
	}
	return c.Status(fiber.StatusNoContent).Send(nil)
}
