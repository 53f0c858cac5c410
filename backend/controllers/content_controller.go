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

// ContentController serves batch-scoped learning content: lectures,
// resources, assignment submissions and the aggregated library.
type ContentController struct {
	Store store.Store
	Cfg   *config.Config
}

func NewContentController(st store.Store, cfg *config.Config) *ContentController {
	return &ContentController{Store: st, Cfg: cfg}
}

// GetBatchLectures godoc
// @Summary List a batch's lectures in schedule order
// @Tags content
// @Produce json
// @Param batchId path int true "Batch ID"
// @Success 200 {array} models.Lecture
// @Security ApiKeyAuth
// @Router /batches/{batchId}/lectures [get]
func (cc *ContentController) GetBatchLectures(c *fiber.Ctx) error {
	batchID, err := strconv.Atoi(c.Params("batchId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid batch ID")
	}

	lectures, err := cc.Store.ListBatchLectures(uint(batchID))
	if err != nil {
		return utils.InternalServerError(c, "Could not fetch lectures")
	}
	return c.JSON(lectures)
}

// CreateLecture godoc
// @Summary Schedule a lecture
// @Tags content
// @Accept json
// @Produce json
// @Param input body models.CreateLectureInput true "Lecture fields"
// @Success 200 {object} models.Lecture
// @Failure 400 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /lectures [post]
func (cc *ContentController) CreateLecture(c *fiber.Ctx) error {
	var input models.CreateLectureInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if fields := utils.ValidateStruct(input); fields != nil {
		return utils.ValidationFailed(c, fields)
	}

	lecture, err := cc.Store.CreateLecture(input)
	if errors.Is(err, store.ErrNotFound) {
		return utils.BadRequest(c, "Batch not found")
	}
	if err != nil {
		return utils.InternalServerError(c, "Could not create lecture")
	}
	return c.JSON(lecture)
}

// UpdateLecture godoc
// @Summary Update a lecture (recording, completion, reschedule)
// @Tags content
// @Accept json
// @Produce json
// @Param id path int true "Lecture ID"
// @Param input body models.UpdateLectureInput true "Partial lecture fields"
// @Success 200 {object} models.Lecture
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /lectures/{id} [put]
func (cc *ContentController) UpdateLecture(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid lecture ID")
	}

	var input models.UpdateLectureInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if fields := utils.ValidateStruct(input); fields != nil {
		return utils.ValidationFailed(c, fields)
	}

	lecture, err := cc.Store.UpdateLecture(uint(id), input)
	if errors.Is(err, store.ErrNotFound) {
		return utils.NotFound(c, "Lecture not found")
	}
	if err != nil {
		return utils.InternalServerError(c, "Could not update lecture")
	}
	return c.JSON(lecture)
}

// GetTodayLectures godoc
// @Summary List the caller's lectures for the current day
// @Tags content
// @Produce json
// @Success 200 {array} models.Lecture
// @Security ApiKeyAuth
// @Router /lectures/today [get]
func (cc *ContentController) GetTodayLectures(c *fiber.Ctx) error {
	lectures, err := cc.Store.TodayLectures(middleware.Claims(c).UserID)
	if err != nil {
		return utils.InternalServerError(c, "Could not fetch lectures")
	}
	return c.JSON(lectures)
}

// GetLiveLectures godoc
// @Summary List the caller's lectures currently in the live window
// @Tags content
// @Produce json
// @Success 200 {array} models.Lecture
// @Security ApiKeyAuth
// @Router /lectures/live [get]
func (cc *ContentController) GetLiveLectures(c *fiber.Ctx) error {
	lectures, err := cc.Store.LiveLectures(middleware.Claims(c).UserID)
	if err != nil {
		return utils.InternalServerError(c, "Could not fetch lectures")
	}
	return c.JSON(lectures)
}

// GetBatchResources godoc
// @Summary List a batch's resources
// @Tags content
// @Produce json
// @Param batchId path int true "Batch ID"
// @Param type query string false "pdf, notes or assignment"
// @Success 200 {array} models.Resource
// @Security ApiKeyAuth
// @Router /batches/{batchId}/resources [get]
func (cc *ContentController) GetBatchResources(c *fiber.Ctx) error {
	batchID, err := strconv.Atoi(c.Params("batchId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid batch ID")
	}

	resources, err := cc.Store.ListBatchResources(uint(batchID), store.ResourceFilter{
		Type: c.Query("type"),
	})
	if err != nil {
		return utils.InternalServerError(c, "Could not fetch resources")
	}
	return c.JSON(resources)
}

// CreateResource godoc
// @Summary Attach a resource to a batch
// @Tags content
// @Accept json
// @Produce json
// @Param input body models.CreateResourceInput true "Resource fields"
// @Success 200 {object} models.Resource
// @Failure 400 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /resources [post]
func (cc *ContentController) CreateResource(c *fiber.Ctx) error {
	var input models.CreateResourceInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if fields := utils.ValidateStruct(input); fields != nil {
		return utils.ValidationFailed(c, fields)
	}

	resource, err := cc.Store.CreateResource(input)
	if errors.Is(err, store.ErrNotFound) {
		return utils.BadRequest(c, "Batch not found")
	}
	if err != nil {
		return utils.InternalServerError(c, "Could not create resource")
	}
	return c.JSON(resource)
}

// CreateSubmission godoc
// @Summary Submit work against an assignment resource
// @Tags content
// @Accept json
// @Produce json
// @Param input body models.CreateSubmissionInput true "Submission fields"
// @Success 200 {object} models.AssignmentSubmission
// @Failure 400 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /submissions [post]
func (cc *ContentController) CreateSubmission(c *fiber.Ctx) error {
	var input models.CreateSubmissionInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if fields := utils.ValidateStruct(input); fields != nil {
		return utils.ValidationFailed(c, fields)
	}

	resource, err := cc.Store.GetResource(input.ResourceID)
	if errors.Is(err, store.ErrNotFound) {
		return utils.BadRequest(c, "Resource not found")
	}
	if err != nil {
		return utils.InternalServerError(c, "Could not fetch resource")
	}

	userID := middleware.Claims(c).UserID
	enrolled, err := cc.Store.IsEnrolled(userID, resource.BatchID)
	if err != nil {
		return utils.InternalServerError(c, "Could not check enrollment")
	}
	if !enrolled {
		return utils.Forbidden(c, "Not enrolled in this batch")
	}

	submission, err := cc.Store.CreateSubmission(userID, input)
	if err != nil {
		return utils.InternalServerError(c, "Could not create submission")
	}
	return c.JSON(submission)
}

// GetResourceSubmissions godoc
// @Summary List submissions for a resource
// @Tags content
// @Produce json
// @Param id path int true "Resource ID"
// @Success 200 {array} models.AssignmentSubmission
// @Security ApiKeyAuth
// @Router /resources/{id}/submissions [get]
func (cc *ContentController) GetResourceSubmissions(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid resource ID")
	}

	submissions, err := cc.Store.ListResourceSubmissions(uint(id))
	if err != nil {
		return utils.InternalServerError(c, "Could not fetch submissions")
	}
	return c.JSON(submissions)
}

// GradeSubmission godoc
// @Summary Grade a submission
// @Tags content
// @Accept json
// @Produce json
// @Param id path int true "Submission ID"
// @Param input body models.GradeSubmissionInput true "Grade and feedback"
// @Success 200 {object} models.AssignmentSubmission
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /submissions/{id}/grade [put]
func (cc *ContentController) GradeSubmission(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid submission ID")
	}

	var input models.GradeSubmissionInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if fields := utils.ValidateStruct(input); fields != nil {
		return utils.ValidationFailed(c, fields)
	}

	submission, err := cc.Store.GradeSubmission(uint(id), input)
	if errors.Is(err, store.ErrNotFound) {
		return utils.NotFound(c, "Submission not found")
	}
	if err != nil {
		return utils.InternalServerError(c, "Could not grade submission")
	}
	return c.JSON(submission)
}

// GetLibrary godoc
// @Summary The caller's enrolled courses with chapter content
// @Tags content
// @Produce json
// @Success 200 {array} store.LibraryEntry
// @Security ApiKeyAuth
// @Router /library [get]
func (cc *ContentController) GetLibrary(c *fiber.Ctx) error {
	entries, err := cc.Store.UserLibrary(middleware.Claims(c).UserID)
	if err != nil {
		return utils.InternalServerError(c, "Could not fetch library")
	}
	return c.JSON(entries)
}
