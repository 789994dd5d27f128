package middleware

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"edtech/models"
)

const testJWTKey = "test-secret"

func setupAuthApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	auth := NewAuth(&HeaderAuthenticator{Db: db, JWTKey: testJWTKey})

	app := fiber.New()
	app.Get("/me", auth.CurrentUser, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"id": LocalUser(c).ID})
	})
	app.Get("/admin", auth.AdminRequired, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"id": LocalUser(c).ID})
	})
	return app, db
}

func seedUser(t *testing.T, db *gorm.DB, role string) *models.User {
	t.Helper()
	user := models.User{Name: "Learner 9999", Email: uuid.NewString() + "@example.com", Role: role}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func get(t *testing.T, app *fiber.App, path string, headers map[string]string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestCurrentUserMissingHeader(t *testing.T) {
	app, _ := setupAuthApp(t)

	resp := get(t, app, "/me", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCurrentUserMalformedID(t *testing.T) {
	app, _ := setupAuthApp(t)

	resp := get(t, app, "/me", map[string]string{"X-User-ID": "not-a-uuid"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCurrentUserUnknownID(t *testing.T) {
	app, _ := setupAuthApp(t)

	resp := get(t, app, "/me", map[string]string{"X-User-ID": uuid.NewString()})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCurrentUserValidHeader(t *testing.T) {
	app, db := setupAuthApp(t)
	user := seedUser(t, db, models.RoleStudent)

	resp := get(t, app, "/me", map[string]string{"X-User-ID": user.ID})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCurrentUserBearerToken(t *testing.T) {
	app, db := setupAuthApp(t)
	user := seedUser(t, db, models.RoleStudent)

	token, err := GenerateJWT(testJWTKey, user.ID, user.Role)
	require.NoError(t, err)

	resp := get(t, app, "/me", map[string]string{"Authorization": "Bearer " + token})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCurrentUserBadBearerToken(t *testing.T) {
	app, db := setupAuthApp(t)
	user := seedUser(t, db, models.RoleStudent)

	token, err := GenerateJWT("wrong-key", user.ID, user.Role)
	require.NoError(t, err)

	resp := get(t, app, "/me", map[string]string{"Authorization": "Bearer " + token})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminRequiredRejectsStudent(t *testing.T) {
	app, db := setupAuthApp(t)
	student := seedUser(t, db, models.RoleStudent)

	resp := get(t, app, "/admin", map[string]string{"X-User-ID": student.ID})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAdminRequiredAllowsInstructorAndAdmin(t *testing.T) {
	app, db := setupAuthApp(t)

	for _, role := range []string{models.RoleInstructor, models.RoleAdmin} {
		user := seedUser(t, db, role)
		resp := get(t, app, "/admin", map[string]string{"X-User-ID": user.ID})
		assert.Equal(t, http.StatusOK, resp.StatusCode, role)
	}
}
