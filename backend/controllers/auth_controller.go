package controllers

import (
	"github.com/gofiber/fiber/v2"

	"gurukul/backend/config"
	"gurukul/backend/middleware"
	"gurukul/backend/models"
	"gurukul/backend/store"
	"gurukul/backend/utils"
)

type AuthController struct {
	Store store.Store
	Cfg   *config.Config
}

func NewAuthController(st store.Store, cfg *config.Config) *AuthController {
	return &AuthController{Store: st, Cfg: cfg}
}

// GetAuthUser godoc
// @Summary Get the authenticated user
// @Description Upserts the profile from the identity provider's claims and returns it
// @Tags auth
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /auth/user [get]
func (ac *AuthController) GetAuthUser(c *fiber.Ctx) error {
	claims := middleware.Claims(c)

	user := models.User{
		ID:              claims.UserID,
		FirstName:       claims.FirstName,
		LastName:        claims.LastName,
		ProfileImageURL: claims.ProfileImageURL,
	}
	if claims.Email != "" {
		email := claims.Email
		user.Email = &email
	}

	// Idempotent by id: repeated logins refresh the profile fields and
	// leave role and creation time alone.
	stored, err := ac.Store.UpsertUser(user)
	if err != nil {
		return utils.InternalServerError(c, "Could not sync user")
	}
	return c.JSON(stored)
}
