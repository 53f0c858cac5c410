package utils

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"gurukul/backend/config"
)

// AuthClaims is the profile the identity provider signs into its
// tokens. Roles are ours, not the provider's, so they never appear here.
type AuthClaims struct {
	UserID          string
	Email           string
	FirstName       string
	LastName        string
	ProfileImageURL string
}

// GenerateJWTToken mints a provider-style token. Used by local tooling
// and tests; in production the identity provider is the issuer.
func GenerateJWTToken(claims AuthClaims, cfg *config.Config) (string, error) {
	mapClaims := jwt.MapClaims{
		"sub":           claims.UserID,
		"email":         claims.Email,
		"first_name":    claims.FirstName,
		"last_name":     claims.LastName,
		"profile_image": claims.ProfileImageURL,
		"exp":           time.Now().Add(time.Hour * 72).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

func ExtractClaimsFromToken(c *fiber.Ctx, cfg *config.Config) (AuthClaims, error) {
	tokenString := c.Get("Authorization")
	if tokenString == "" {
		return AuthClaims{}, fiber.NewError(fiber.StatusUnauthorized, "Missing authorization token")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil {
		return AuthClaims{}, fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return AuthClaims{}, fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
	}

	sub, ok := mapClaims["sub"].(string)
	if !ok || sub == "" {
		return AuthClaims{}, fiber.NewError(fiber.StatusUnauthorized, "Invalid subject in token")
	}

	claims := AuthClaims{UserID: sub}
	if v, ok := mapClaims["email"].(string); ok {
		claims.Email = v
	}
	if v, ok := mapClaims["first_name"].(string); ok {
		claims.FirstName = v
	}
	if v, ok := mapClaims["last_name"].(string); ok {
		claims.LastName = v
	}
	if v, ok := mapClaims["profile_image"].(string); ok {
		claims.ProfileImageURL = v
	}
	return claims, nil
}
