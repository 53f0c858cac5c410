package middleware

import (
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gurukul/backend/config"
	"gurukul/backend/models"
	"gurukul/backend/store/memstore"
	"gurukul/backend/utils"
)

var testCfg = &config.Config{JWTSecret: "secret"}

func mintToken(t *testing.T, userID string) string {
	t.Helper()
	token, err := utils.GenerateJWTToken(utils.AuthClaims{UserID: userID}, testCfg)
	require.NoError(t, err)
	return token
}

func seedRole(t *testing.T, st *memstore.Store, id, role string) {
	t.Helper()
	_, err := st.UpsertUser(models.User{ID: id})
	require.NoError(t, err)
	if role != models.RoleStudent {
		_, err = st.UpdateUserRole(id, role)
		require.NoError(t, err)
	}
}

func get(t *testing.T, app *fiber.App, path, token string) int {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestRequireAuth(t *testing.T) {
	app := fiber.New()
	app.Get("/secure", RequireAuth(testCfg), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"userId": Claims(c).UserID})
	})

	assert.Equal(t, fiber.StatusUnauthorized, get(t, app, "/secure", ""))
	assert.Equal(t, fiber.StatusUnauthorized, get(t, app, "/secure", "garbage"))
	assert.Equal(t, fiber.StatusOK, get(t, app, "/secure", mintToken(t, "user-1")))
}

func TestRequireRoles(t *testing.T) {
	st := memstore.NewStore()
	seedRole(t, st, "admin-1", models.RoleAdmin)
	seedRole(t, st, "mentor-1", models.RoleMentor)
	seedRole(t, st, "student-1", models.RoleStudent)

	app := fiber.New()
	app.Get("/admin-only", RequireAuth(testCfg), RequireRoles(st, models.RoleAdmin),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	app.Get("/staff", RequireAuth(testCfg), RequireRoles(st, models.RoleAdmin, models.RoleManager, models.RoleMentor),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	assert.Equal(t, fiber.StatusOK, get(t, app, "/admin-only", mintToken(t, "admin-1")))
	assert.Equal(t, fiber.StatusForbidden, get(t, app, "/admin-only", mintToken(t, "mentor-1")))
	assert.Equal(t, fiber.StatusForbidden, get(t, app, "/admin-only", mintToken(t, "student-1")))

	assert.Equal(t, fiber.StatusOK, get(t, app, "/staff", mintToken(t, "mentor-1")))
	assert.Equal(t, fiber.StatusForbidden, get(t, app, "/staff", mintToken(t, "student-1")))

	// A valid token for a user with no row gets no access.
	assert.Equal(t, fiber.StatusForbidden, get(t, app, "/admin-only", mintToken(t, "ghost")))
}

func TestRequireBatchAccess(t *testing.T) {
	st := memstore.NewStore()
	seedRole(t, st, "mentor-1", models.RoleMentor)
	seedRole(t, st, "student-1", models.RoleStudent)
	seedRole(t, st, "outsider-1", models.RoleStudent)

	course, err := st.CreateCourse(models.CreateCourseInput{Title: "Intro", Slug: "intro", Price: "999.00"})
	require.NoError(t, err)
	batch, err := st.CreateBatch(models.CreateBatchInput{CourseID: course.ID, Title: "Morning"})
	require.NoError(t, err)
	_, err = st.CreateEnrollment("student-1", models.CreateEnrollmentInput{BatchID: batch.ID})
	require.NoError(t, err)

	app := fiber.New()
	app.Get("/batches/:batchId/content", RequireAuth(testCfg), RequireBatchAccess(st),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	path := "/batches/" + strconv.Itoa(int(batch.ID)) + "/content"
	assert.Equal(t, fiber.StatusOK, get(t, app, path, mintToken(t, "student-1")))
	assert.Equal(t, fiber.StatusForbidden, get(t, app, path, mintToken(t, "outsider-1")))

	// Staff pass without an enrollment.
	assert.Equal(t, fiber.StatusOK, get(t, app, path, mintToken(t, "mentor-1")))

	assert.Equal(t, fiber.StatusBadRequest, get(t, app, "/batches/abc/content", mintToken(t, "student-1")))
}
