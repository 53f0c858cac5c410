package controllers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"gurukul/backend/config"
	"gurukul/backend/middleware"
	"gurukul/backend/models"
	"gurukul/backend/store"
	"gurukul/backend/utils"
)

type AnnouncementController struct {
	Store store.Store
	Cfg   *config.Config
}

func NewAnnouncementController(st store.Store, cfg *config.Config) *AnnouncementController {
	return &AnnouncementController{Store: st, Cfg: cfg}
}

// GetBatchAnnouncements godoc
// @Summary List a batch's announcements, platform-wide ones included
// @Tags announcements
// @Produce json
// @Param batchId path int true "Batch ID"
// @Success 200 {array} models.Announcement
// @Security ApiKeyAuth
// @Router /batches/{batchId}/announcements [get]
func (ac *AnnouncementController) GetBatchAnnouncements(c *fiber.Ctx) error {
	batchID, err := strconv.Atoi(c.Params("batchId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid batch ID")
	}

	announcements, err := ac.Store.ListBatchAnnouncements(uint(batchID))
	if err != nil {
		return utils.InternalServerError(c, "Could not fetch announcements")
	}
	return c.JSON(announcements)
}

// GetGlobalAnnouncements godoc
// @Summary List platform-wide announcements
// @Tags announcements
// @Produce json
// @Success 200 {array} models.Announcement
// @Security ApiKeyAuth
// @Router /announcements [get]
func (ac *AnnouncementController) GetGlobalAnnouncements(c *fiber.Ctx) error {
	announcements, err := ac.Store.ListGlobalAnnouncements()
	if err != nil {
		return utils.InternalServerError(c, "Could not fetch announcements")
	}
	return c.JSON(announcements)
}

// CreateAnnouncement godoc
// @Summary Post an announcement
// @Description Omit batchId to address the whole platform
// @Tags announcements
// @Accept json
// @Produce json
// @Param input body models.CreateAnnouncementInput true "Announcement fields"
// @Success 200 {object} models.Announcement
// @Failure 400 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /announcements [post]
func (ac *AnnouncementController) CreateAnnouncement(c *fiber.Ctx) error {
	var input models.CreateAnnouncementInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if fields := utils.ValidateStruct(input); fields != nil {
		return utils.ValidationFailed(c, fields)
	}

	announcement, err := ac.Store.CreateAnnouncement(middleware.Claims(c).UserID, input)
	if errors.Is(err, store.ErrNotFound) {
		return utils.BadRequest(c, "Batch not found")
	}
	if err != nil {
		return utils.InternalServerError(c, "Could not create announcement")
	}
	return c.JSON(announcement)
}
