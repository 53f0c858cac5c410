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

type BatchController struct {
	Store store.Store
	Cfg   *config.Config
}

func NewBatchController(st store.Store, cfg *config.Config) *BatchController {
	return &BatchController{Store: st, Cfg: cfg}
}

// GetBatches godoc
// @Summary List active batches
// @Tags batches
// @Produce json
// @Param courseId query int false "Filter by course"
// @Success 200 {array} models.Batch
// @Router /batches [get]
func (bc *BatchController) GetBatches(c *fiber.Ctx) error {
	var filter store.BatchFilter
	if raw := c.Query("courseId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return utils.BadRequest(c, "Invalid course ID")
		}
		courseID := uint(id)
		filter.CourseID = &courseID
	}

	batches, err := bc.Store.ListBatches(filter)
	if err != nil {
		return utils.InternalServerError(c, "Could not fetch batches")
	}
	return c.JSON(batches)
}

// GetBatch godoc
// @Summary Get a batch
// @Tags batches
// @Produce json
// @Param id path int true "Batch ID"
// @Success 200 {object} models.Batch
// @Failure 404 {object} utils.ErrorResponse
// @Router /batches/{id} [get]
func (bc *BatchController) GetBatch(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid batch ID")
	}

	batch, err := bc.Store.GetBatch(uint(id))
	if errors.Is(err, store.ErrNotFound) {
		return utils.NotFound(c, "Batch not found")
	}
	if err != nil {
		return utils.InternalServerError(c, "Could not fetch batch")
	}
	return c.JSON(batch)
}

// CreateBatch godoc
// @Summary Create a batch
// @Tags batches
// @Accept json
// @Produce json
// @Param input body models.CreateBatchInput true "Batch fields"
// @Success 200 {object} models.Batch
// @Failure 400 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /batches [post]
func (bc *BatchController) CreateBatch(c *fiber.Ctx) error {
	var input models.CreateBatchInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if fields := utils.ValidateStruct(input); fields != nil {
		return utils.ValidationFailed(c, fields)
	}

	batch, err := bc.Store.CreateBatch(input)
	if errors.Is(err, store.ErrNotFound) {
		return utils.BadRequest(c, "Course not found")
	}
	if err != nil {
		return utils.InternalServerError(c, "Could not create batch")
	}
	return c.JSON(batch)
}
