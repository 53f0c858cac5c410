package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gurukul/backend/config"
)

func extractVia(t *testing.T, cfg *config.Config, token string) (AuthClaims, error) {
	t.Helper()
	app := fiber.New()

	var claims AuthClaims
	var extractErr error
	app.Get("/probe", func(c *fiber.Ctx) error {
		claims, extractErr = ExtractClaimsFromToken(c, cfg)
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/probe", nil)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	_, err := app.Test(req)
	require.NoError(t, err)
	return claims, extractErr
}

func TestTokenRoundTrip(t *testing.T) {
	cfg := &config.Config{JWTSecret: "secret"}
	token, err := GenerateJWTToken(AuthClaims{
		UserID:    "user-1",
		Email:     "arya@example.com",
		FirstName: "Arya",
		LastName:  "Sharma",
	}, cfg)
	require.NoError(t, err)

	claims, err := extractVia(t, cfg, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "arya@example.com", claims.Email)
	assert.Equal(t, "Arya", claims.FirstName)
	assert.Equal(t, "Sharma", claims.LastName)
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := GenerateJWTToken(AuthClaims{UserID: "user-1"}, &config.Config{JWTSecret: "one"})
	require.NoError(t, err)

	_, err = extractVia(t, &config.Config{JWTSecret: "another"}, token)
	assert.Error(t, err)
}

func TestTokenMissing(t *testing.T) {
	_, err := extractVia(t, &config.Config{JWTSecret: "secret"}, "")
	assert.Error(t, err)
}
