package feedbackController_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	feedbackController "edtech/controllers/feedback"
	notificationController "edtech/controllers/notification"
	"edtech/database"
	"edtech/middleware"
	"edtech/models"
	"edtech/routers/userRoutes"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	auth := middleware.NewAuth(&middleware.HeaderAuthenticator{Db: db, JWTKey: "test-secret"})

	app := fiber.New()
	userRoutes.SetupUserRoutes(app, notificationController.New(db), feedbackController.New(db), auth)
	return app, db
}

func createUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	user := models.User{Name: "Learner 9999", Email: uuid.NewString() + "@example.com", Role: models.RoleStudent}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func postFeedback(t *testing.T, app *fiber.App, userID string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, "/api/feedback", bytes.NewReader(payload))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", userID)

	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]interface{}
	if len(raw) > 0 && json.Unmarshal(raw, &decoded) != nil {
		decoded = nil
	}
	return resp, decoded
}

func TestCreateFeedback(t *testing.T) {
	app, db := setupApp(t)
	user := createUser(t, db)

	resp, body := postFeedback(t, app, user.ID, fiber.Map{
		"user_id": user.ID,
		"message": "The KTET quiz had a typo",
		"rating":  4,
		"context": "lesson-quiz",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, body["feedback_id"])

	var feedback models.Feedback
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&feedback).Error)
	assert.Equal(t, "The KTET quiz had a typo", feedback.Message)
	require.NotNil(t, feedback.Rating)
	assert.Equal(t, 4, *feedback.Rating)
	assert.Equal(t, "lesson-quiz", feedback.Context)
}

func TestCreateFeedbackWithoutRating(t *testing.T) {
	app, db := setupApp(t)
	user := createUser(t, db)

	resp, _ := postFeedback(t, app, user.ID, fiber.Map{
		"user_id": user.ID,
		"message": "just a note",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var feedback models.Feedback
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&feedback).Error)
	assert.Nil(t, feedback.Rating)
}

func TestCreateFeedbackRejectsBadRating(t *testing.T) {
	app, db := setupApp(t)
	user := createUser(t, db)

	resp, _ := postFeedback(t, app, user.ID, fiber.Map{
		"user_id": user.ID,
		"message": "too good",
		"rating":  9,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateFeedbackForAnotherUser(t *testing.T) {
	app, db := setupApp(t)
	user := createUser(t, db)
	other := createUser(t, db)

	resp, _ := postFeedback(t, app, user.ID, fiber.Map{
		"user_id": other.ID,
		"message": "impersonation attempt",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	var count int64
	db.Model(&models.Feedback{}).Count(&count)
	assert.EqualValues(t, 0, count)
}
