package learningController_test

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
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	learningController "edtech/controllers/learning"
	"edtech/database"
	"edtech/middleware"
	"edtech/models"
	"edtech/routers/learnRoutes"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	auth := middleware.NewAuth(&middleware.HeaderAuthenticator{Db: db, JWTKey: "test-secret"})

	app := fiber.New()
	learnRoutes.SetupLearnRoutes(app, learningController.New(db), auth)
	return app, db
}

func createUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	user := models.User{Name: "Learner 9999", Email: "user9999@example.com", Role: models.RoleStudent}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

// createCourse seeds a course with lessons at orders 0, 1 and 2.
func createCourse(t *testing.T, db *gorm.DB) (*models.Course, []models.Lesson) {
	t.Helper()
	course := models.Course{Title: "KTET Crash Course", Category: "KTET"}
	require.NoError(t, db.Create(&course).Error)

	lessons := make([]models.Lesson, 3)
	for i := range lessons {
		lessons[i] = models.Lesson{CourseID: course.ID, Title: "Lesson", Order: i}
		require.NoError(t, db.Create(&lessons[i]).Error)
	}
	return &course, lessons
}

// createQuiz attaches a quiz to the lesson. Each entry in points makes one
// question whose correct answer is option 0.
func createQuiz(t *testing.T, db *gorm.DB, lessonID string, passPercentage int, points []int) *models.Quiz {
	t.Helper()
	quiz := models.Quiz{LessonID: lessonID, PassPercentage: passPercentage}
	require.NoError(t, db.Create(&quiz).Error)

	options, err := json.Marshal([]string{"right", "wrong"})
	require.NoError(t, err)

	for i, p := range points {
		question := models.Question{
			QuizID:       quiz.ID,
			Prompt:       "pick the first option",
			Options:      datatypes.JSON(options),
			CorrectIndex: 0,
			Points:       p,
			OrderIndex:   i,
		}
		require.NoError(t, db.Create(&question).Error)
	}
	return &quiz
}

func request(t *testing.T, app *fiber.App, method, path, userID string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}

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

func TestEnrollUnlocksFirstLesson(t *testing.T) {
	app, db := setupApp(t)
	user := createUser(t, db)
	course, lessons := createCourse(t, db)

	resp, body := request(t, app, http.MethodPost, "/api/enroll", user.ID, fiber.Map{
		"user_id":   user.ID,
		"course_id": course.ID,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, body["enrollment_id"])

	var lp models.LessonProgress
	require.NoError(t, db.Where("user_id = ? AND lesson_id = ?", user.ID, lessons[0].ID).First(&lp).Error)
	assert.True(t, lp.IsUnlocked)
	assert.False(t, lp.IsCompleted)
	assert.Equal(t, course.ID, lp.CourseID)

	// downstream lessons stay untouched
	var count int64
	db.Model(&models.LessonProgress{}).Where("user_id = ?", user.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestEnrollTwiceIsNoOp(t *testing.T) {
	app, db := setupApp(t)
	user := createUser(t, db)
	course, _ := createCourse(t, db)

	request(t, app, http.MethodPost, "/api/enroll", user.ID, fiber.Map{"user_id": user.ID, "course_id": course.ID})
	resp, body := request(t, app, http.MethodPost, "/api/enroll", user.ID, fiber.Map{"user_id": user.ID, "course_id": course.ID})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Already enrolled", body["message"])

	var count int64
	db.Model(&models.Enrollment{}).Where("user_id = ? AND course_id = ?", user.ID, course.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestEnrollForAnotherUserForbidden(t *testing.T) {
	app, db := setupApp(t)
	user := createUser(t, db)
	other := models.User{Name: "Other", Email: "other@example.com", Role: models.RoleStudent}
	require.NoError(t, db.Create(&other).Error)
	course, _ := createCourse(t, db)

	resp, _ := request(t, app, http.MethodPost, "/api/enroll", user.ID, fiber.Map{
		"user_id":   other.ID,
		"course_id": course.ID,
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestEnrollUnknownCourse(t *testing.T) {
	app, db := setupApp(t)
	user := createUser(t, db)

	resp, _ := request(t, app, http.MethodPost, "/api/enroll", user.ID, fiber.Map{
		"user_id":   user.ID,
		"course_id": uuid.NewString(),
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSubmitQuizPassUnlocksNextLesson(t *testing.T) {
	app, db := setupApp(t)
	user := createUser(t, db)
	course, lessons := createCourse(t, db)
	createQuiz(t, db, lessons[0].ID, 60, []int{1, 1})

	resp, body := request(t, app, http.MethodPost, "/api/lessons/"+lessons[0].ID+"/submit-quiz", user.ID, fiber.Map{
		"answers": []int{0, 0},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 2, body["score"])
	assert.EqualValues(t, 2, body["total"])
	assert.EqualValues(t, 100, body["percentage"])
	assert.Equal(t, true, body["passed"])

	var lp models.LessonProgress
	require.NoError(t, db.Where("user_id = ? AND lesson_id = ?", user.ID, lessons[0].ID).First(&lp).Error)
	assert.True(t, lp.IsCompleted)
	require.NotNil(t, lp.QuizScore)
	assert.Equal(t, 2, *lp.QuizScore)
	assert.Equal(t, course.ID, lp.CourseID)

	// lesson at the next order unlocks, and only that one
	var next models.LessonProgress
	require.NoError(t, db.Where("user_id = ? AND lesson_id = ?", user.ID, lessons[1].ID).First(&next).Error)
	assert.True(t, next.IsUnlocked)

	err := db.Where("user_id = ? AND lesson_id = ?", user.ID, lessons[2].ID).First(&models.LessonProgress{}).Error
	assert.Error(t, err)
}

func TestSubmitQuizFailRecordsCompletionOnly(t *testing.T) {
	app, db := setupApp(t)
	user := createUser(t, db)
	_, lessons := createCourse(t, db)
	createQuiz(t, db, lessons[0].ID, 60, []int{1, 1})

	resp, body := request(t, app, http.MethodPost, "/api/lessons/"+lessons[0].ID+"/submit-quiz", user.ID, fiber.Map{
		"answers": []int{1, 1},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 0, body["score"])
	assert.EqualValues(t, 0, body["percentage"])
	assert.Equal(t, false, body["passed"])

	// failing still marks the lesson completed
	var lp models.LessonProgress
	require.NoError(t, db.Where("user_id = ? AND lesson_id = ?", user.ID, lessons[0].ID).First(&lp).Error)
	assert.True(t, lp.IsCompleted)

	// no downstream unlock
	err := db.Where("user_id = ? AND lesson_id = ?", user.ID, lessons[1].ID).First(&models.LessonProgress{}).Error
	assert.Error(t, err)
}

func TestSubmitQuizResubmissionIsIdempotent(t *testing.T) {
	app, db := setupApp(t)
	user := createUser(t, db)
	_, lessons := createCourse(t, db)
	createQuiz(t, db, lessons[0].ID, 60, []int{1, 1})

	_, first := request(t, app, http.MethodPost, "/api/lessons/"+lessons[0].ID+"/submit-quiz", user.ID, fiber.Map{
		"answers": []int{0, 1},
	})
	_, second := request(t, app, http.MethodPost, "/api/lessons/"+lessons[0].ID+"/submit-quiz", user.ID, fiber.Map{
		"answers": []int{0, 1},
	})

	assert.Equal(t, first["score"], second["score"])
	assert.Equal(t, first["percentage"], second["percentage"])

	var count int64
	db.Model(&models.LessonProgress{}).Where("user_id = ? AND lesson_id = ?", user.ID, lessons[0].ID).Count(&count)
	assert.EqualValues(t, 1, count)

	var lp models.LessonProgress
	require.NoError(t, db.Where("user_id = ? AND lesson_id = ?", user.ID, lessons[0].ID).First(&lp).Error)
	assert.True(t, lp.IsCompleted)
}

func TestSubmitQuizWeightedPointsTruncation(t *testing.T) {
	app, db := setupApp(t)
	user := createUser(t, db)
	_, lessons := createCourse(t, db)
	createQuiz(t, db, lessons[0].ID, 60, []int{1, 2})

	// only the 1-point question answered correctly: 1/3 -> 33%
	resp, body := request(t, app, http.MethodPost, "/api/lessons/"+lessons[0].ID+"/submit-quiz", user.ID, fiber.Map{
		"answers": []int{0, 1},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 1, body["score"])
	assert.EqualValues(t, 3, body["total"])
	assert.EqualValues(t, 33, body["percentage"])
	assert.Equal(t, false, body["passed"])
}

func TestSubmitQuizEmptyQuiz(t *testing.T) {
	app, db := setupApp(t)
	user := createUser(t, db)
	_, lessons := createCourse(t, db)
	createQuiz(t, db, lessons[0].ID, 60, nil)

	resp, body := request(t, app, http.MethodPost, "/api/lessons/"+lessons[0].ID+"/submit-quiz", user.ID, fiber.Map{
		"answers": []int{},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 0, body["score"])
	assert.EqualValues(t, 1, body["total"])
	assert.EqualValues(t, 0, body["percentage"])
	assert.Equal(t, false, body["passed"])
}

func TestSubmitQuizMissingQuiz(t *testing.T) {
	app, db := setupApp(t)
	user := createUser(t, db)
	_, lessons := createCourse(t, db)

	resp, _ := request(t, app, http.MethodPost, "/api/lessons/"+lessons[1].ID+"/submit-quiz", user.ID, fiber.Map{
		"answers": []int{0},
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSubmitQuizOrphanedQuiz(t *testing.T) {
	app, db := setupApp(t)
	user := createUser(t, db)

	// quiz rows can outlive their lesson; submitting against one must not
	// write progress with an empty lesson reference
	lessonID := uuid.NewString()
	createQuiz(t, db, lessonID, 60, []int{1})

	resp, body := request(t, app, http.MethodPost, "/api/lessons/"+lessonID+"/submit-quiz", user.ID, fiber.Map{
		"answers": []int{0},
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Lesson not found", body["message"])

	var count int64
	db.Model(&models.LessonProgress{}).Where("user_id = ?", user.ID).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestMyCoursesAndProgress(t *testing.T) {
	app, db := setupApp(t)
	user := createUser(t, db)
	course, lessons := createCourse(t, db)

	request(t, app, http.MethodPost, "/api/enroll", user.ID, fiber.Map{"user_id": user.ID, "course_id": course.ID})

	req, err := http.NewRequest(http.MethodGet, "/api/me/courses", nil)
	require.NoError(t, err)
	req.Header.Set("X-User-ID", user.ID)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var courses []models.Course
	require.NoError(t, json.Unmarshal(raw, &courses))
	require.Len(t, courses, 1)
	assert.Equal(t, course.ID, courses[0].ID)

	req, err = http.NewRequest(http.MethodGet, "/api/me/progress?course_id="+course.ID, nil)
	require.NoError(t, err)
	req.Header.Set("X-User-ID", user.ID)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err = io.ReadAll(resp.Body)
	require.NoError(t, err)
	var progress []models.LessonProgress
	require.NoError(t, json.Unmarshal(raw, &progress))
	require.Len(t, progress, 1)
	assert.Equal(t, lessons[0].ID, progress[0].LessonID)
}
