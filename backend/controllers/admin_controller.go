package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"gurukul/backend/config"
	"gurukul/backend/models"
	"gurukul/backend/store"
	"gurukul/backend/utils"
)

// AdminController backs the back-office: user management, course
// structure authoring and the dashboard stats.
type AdminController struct {
	Store store.Store
	Cfg   *config.Config
}

func NewAdminController(st store.Store, cfg *config.Config) *AdminController {
	return &AdminController{Store: st, Cfg: cfg}
}

// GetUsers godoc
// @Summary List all users
// @Tags admin
// @Produce json
// @Success 200 {array} models.User
// @Security ApiKeyAuth
// @Router /admin/users [get]
func (ac *AdminController) GetUsers(c *fiber.Ctx) error {
	users, err := ac.Store.ListUsers()
	if err != nil {
		return utils.InternalServerError(c, "Could not fetch users")
	}
	return c.JSON(users)
}

// UpdateUserRole godoc
// @Summary Change a user's role
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param input body models.UpdateUserRoleInput true "New role"
// @Success 200 {object} models.User
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/users/{id}/role [put]
func (ac *AdminController) UpdateUserRole(c *fiber.Ctx) error {
	var input models.UpdateUserRoleInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if fields := utils.ValidateStruct(input); fields != nil {
		return utils.ValidationFailed(c, fields)
	}

	user, err := ac.Store.UpdateUserRole(c.Params("id"), input.Role)
	if errors.Is(err, store.ErrNotFound) {
		return utils.NotFound(c, "User not found")
	}
	if err != nil {
		return utils.InternalServerError(c, "Could not update role")
	}
	return c.JSON(user)
}

// CreateChapter godoc
// @Summary Add a chapter to a course
// @Tags admin
// @Accept json
// @Produce json
// @Param input body models.CreateChapterInput true "Chapter fields"
// @Success 200 {object} models.Chapter
// @Failure 400 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /chapters [post]
func (ac *AdminController) CreateChapter(c *fiber.Ctx) error {
	var input models.CreateChapterInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if fields := utils.ValidateStruct(input); fields != nil {
		return utils.ValidationFailed(c, fields)
	}

	chapter, err := ac.Store.CreateChapter(input)
	if errors.Is(err, store.ErrNotFound) {
		return utils.BadRequest(c, "Course not found")
	}
	if err != nil {
		return utils.InternalServerError(c, "Could not create chapter")
	}
	return c.JSON(chapter)
}

// CreateChapterItem godoc
// @Summary Add a content item to a chapter
// @Tags admin
// @Accept json
// @Produce json
// @Param input body models.CreateChapterItemInput true "Item fields"
// @Success 200 {object} models.ChapterItem
// @Failure 400 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /chapter-items [post]
func (ac *AdminController) CreateChapterItem(c *fiber.Ctx) error {
	var input models.CreateChapterItemInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if fields := utils.ValidateStruct(input); fields != nil {
		return utils.ValidationFailed(c, fields)
	}

	item, err := ac.Store.CreateChapterItem(input)
	if errors.Is(err, store.ErrNotFound) {
		return utils.BadRequest(c, "Chapter not found")
	}
	if err != nil {
		return utils.InternalServerError(c, "Could not create chapter item")
	}
	return c.JSON(item)
}

// GetStats godoc
// @Summary Dashboard counters for the back-office
// @Tags admin
// @Produce json
// @Success 200 {object} store.AdminStats
// @Security ApiKeyAuth
// @Router /admin/stats [get]
func (ac *AdminController) GetStats(c *fiber.Ctx) error {
	stats, err := ac.Store.AdminStats()
	if err != nil {
		return utils.InternalServerError(c, "Could not fetch stats")
	}
	return c.JSON(stats)
}
