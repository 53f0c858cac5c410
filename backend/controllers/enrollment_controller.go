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

type EnrollmentController struct {
	Store store.Store
	Cfg   *config.Config
}

func NewEnrollmentController(st store.Store, cfg *config.Config) *EnrollmentController {
	return &EnrollmentController{Store: st, Cfg: cfg}
}

// GetMyEnrollments godoc
// @Summary List the caller's enrollments
// @Tags enrollments
// @Produce json
// @Success 200 {array} models.Enrollment
// @Security ApiKeyAuth
// @Router /enrollments/my [get]
func (ec *EnrollmentController) GetMyEnrollments(c *fiber.Ctx) error {
	enrollments, err := ec.Store.ListUserEnrollments(middleware.Claims(c).UserID)
	if err != nil {
		return utils.InternalServerError(c, "Could not fetch enrollments")
	}
	return c.JSON(enrollments)
}

// GetBatchEnrollments godoc
// @Summary List a batch's enrollments
// @Tags enrollments
// @Produce json
// @Param batchId path int true "Batch ID"
// @Success 200 {array} models.Enrollment
// @Security ApiKeyAuth
// @Router /enrollments/batch/{batchId} [get]
func (ec *EnrollmentController) GetBatchEnrollments(c *fiber.Ctx) error {
	batchID, err := strconv.Atoi(c.Params("batchId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid batch ID")
	}

	enrollments, err := ec.Store.ListBatchEnrollments(uint(batchID))
	if err != nil {
		return utils.InternalServerError(c, "Could not fetch enrollments")
	}
	return c.JSON(enrollments)
}

// UpdateEnrollment godoc
// @Summary Update an enrollment's status or progress
// @Tags enrollments
// @Accept json
// @Produce json
// @Param id path int true "Enrollment ID"
// @Param input body models.UpdateEnrollmentInput true "Partial enrollment fields"
// @Success 200 {object} models.Enrollment
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /enrollments/{id} [put]
func (ec *EnrollmentController) UpdateEnrollment(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid enrollment ID")
	}

	var input models.UpdateEnrollmentInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if fields := utils.ValidateStruct(input); fields != nil {
		return utils.ValidationFailed(c, fields)
	}

	enrollment, err := ec.Store.UpdateEnrollment(uint(id), input)
	if errors.Is(err, store.ErrNotFound) {
		return utils.NotFound(c, "Enrollment not found")
	}
	if err != nil {
		return utils.InternalServerError(c, "Could not update enrollment")
	}
	return c.JSON(enrollment)
}

// CreateEnrollment godoc
// @Summary Enroll the caller into a batch
// @Tags enrollments
// @Accept json
// @Produce json
// @Param input body models.CreateEnrollmentInput true "Batch to enroll into"
// @Success 200 {object} models.Enrollment
// @Failure 400 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /enrollments [post]
func (ec *EnrollmentController) CreateEnrollment(c *fiber.Ctx) error {
	var input models.CreateEnrollmentInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if fields := utils.ValidateStruct(input); fields != nil {
		return utils.ValidationFailed(c, fields)
	}

	enrollment, err := ec.Store.CreateEnrollment(middleware.Claims(c).UserID, input)
	switch {
	case errors.Is(err, store.ErrDuplicate):
		return utils.BadRequest(c, "Already enrolled")
	case errors.Is(err, store.ErrBatchFull):
		return utils.BadRequest(c, "Batch is full")
	case errors.Is(err, store.ErrNotFound):
		return utils.BadRequest(c, "Batch not found")
	case err != nil:
		return utils.InternalServerError(c, "Could not create enrollment")
	}
	return c.JSON(enrollment)
}
