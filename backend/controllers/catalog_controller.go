package controllers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"gurukul/backend/config"
	"gurukul/backend/models"
	"gurukul/backend/store"
	"gurukul/backend/utils"
)

type CatalogController struct {
	Store store.Store
	Cfg   *config.Config
}

func NewCatalogController(st store.Store, cfg *config.Config) *CatalogController {
	return &CatalogController{Store: st, Cfg: cfg}
}

// GetCategories godoc
// @Summary List categories
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Category
// @Router /categories [get]
func (cc *CatalogController) GetCategories(c *fiber.Ctx) error {
	categories, err := cc.Store.ListCategories()
	if err != nil {
		return utils.InternalServerError(c, "Could not fetch categories")
	}
	return c.JSON(categories)
}

// CreateCategory godoc
// @Summary Create a category
// @Tags catalog
// @Accept json
// @Produce json
// @Param input body models.CreateCategoryInput true "Category fields"
// @Success 200 {object} models.Category
// @Failure 400 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /categories [post]
func (cc *CatalogController) CreateCategory(c *fiber.Ctx) error {
	var input models.CreateCategoryInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if fields := utils.ValidateStruct(input); fields != nil {
		return utils.ValidationFailed(c, fields)
	}

	category, err := cc.Store.CreateCategory(input)
	if errors.Is(err, store.ErrDuplicate) {
		return utils.BadRequest(c, "A category with this slug already exists")
	}
	if err != nil {
		return utils.InternalServerError(c, "Could not create category")
	}
	return c.JSON(category)
}

// GetCourses godoc
// @Summary List active courses
// @Tags catalog
// @Produce json
// @Param categoryId query int false "Filter by category"
// @Success 200 {array} models.Course
// @Router /courses [get]
func (cc *CatalogController) GetCourses(c *fiber.Ctx) error {
	var filter store.CourseFilter
	if raw := c.Query("categoryId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return utils.BadRequest(c, "Invalid category ID")
		}
		categoryID := uint(id)
		filter.CategoryID = &categoryID
	}

	courses, err := cc.Store.ListCourses(filter)
	if err != nil {
		return utils.InternalServerError(c, "Could not fetch courses")
	}
	return c.JSON(courses)
}

// GetCourseBySlug godoc
// @Summary Get an active course by slug
// @Tags catalog
// @Produce json
// @Param slug path string true "Course slug"
// @Success 200 {object} models.Course
// @Failure 404 {object} utils.ErrorResponse
// @Router /courses/{slug} [get]
func (cc *CatalogController) GetCourseBySlug(c *fiber.Ctx) error {
	course, err := cc.Store.GetCourseBySlug(c.Params("slug"))
	if errors.Is(err, store.ErrNotFound) {
		return utils.NotFound(c, "Course not found")
	}
	if err != nil {
		return utils.InternalServerError(c, "Could not fetch course")
	}
	return c.JSON(course)
}

// CreateCourse godoc
// @Summary Create a course
// @Tags catalog
// @Accept json
// @Produce json
// @Param input body models.CreateCourseInput true "Course fields"
// @Success 200 {object} models.Course
// @Failure 400 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /courses [post]
func (cc *CatalogController) CreateCourse(c *fiber.Ctx) error {
	var input models.CreateCourseInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if fields := utils.ValidateStruct(input); fields != nil {
		return utils.ValidationFailed(c, fields)
	}

	if input.CategoryID != nil {
		if _, err := cc.Store.GetCategory(*input.CategoryID); errors.Is(err, store.ErrNotFound) {
			return utils.BadRequest(c, "Category not found")
		}
	}

	course, err := cc.Store.CreateCourse(input)
	if errors.Is(err, store.ErrDuplicate) {
		return utils.BadRequest(c, "A course with this slug already exists")
	}
	if err != nil {
		return utils.InternalServerError(c, "Could not create course")
	}
	return c.JSON(course)
}

// UpdateCourse godoc
// @Summary Update a course
// @Tags catalog
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Param input body models.UpdateCourseInput true "Partial course fields"
// @Success 200 {object} models.Course
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /courses/{id} [put]
func (cc *CatalogController) UpdateCourse(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	var input models.UpdateCourseInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if fields := utils.ValidateStruct(input); fields != nil {
		return utils.ValidationFailed(c, fields)
	}

	course, err := cc.Store.UpdateCourse(uint(id), input)
	if errors.Is(err, store.ErrNotFound) {
		return utils.NotFound(c, "Course not found")
	}
	if errors.Is(err, store.ErrDuplicate) {
		return utils.BadRequest(c, "A course with this slug already exists")
	}
	if err != nil {
		return utils.InternalServerError(c, "Could not update course")
	}
	return c.JSON(course)
}

// DeleteCourse godoc
// @Summary Deactivate a course
// @Description Soft delete: the course disappears from listings but keeps its history
// @Tags catalog
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /courses/{id} [delete]
func (cc *CatalogController) DeleteCourse(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	err = cc.Store.DeleteCourse(uint(id))
	if errors.Is(err, store.ErrNotFound) {
		return utils.NotFound(c, "Course not found")
	}
	if err != nil {
		return utils.InternalServerError(c, "Could not delete course")
	}
	return utils.Message(c, "Course deactivated")
}

// GetCourseChapters godoc
// @Summary List a course's published chapters with items
// @Tags catalog
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {array} models.Chapter
// @Failure 404 {object} utils.ErrorResponse
// @Router /courses/{id}/chapters [get]
func (cc *CatalogController) GetCourseChapters(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	chapters, err := cc.Store.ListChapters(uint(id))
	if errors.Is(err, store.ErrNotFound) {
		return utils.NotFound(c, "Course not found")
	}
	if err != nil {
		return utils.InternalServerError(c, "Could not fetch chapters")
	}
	return c.JSON(chapters)
}
