package learningController

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"edtech/middleware"
	"edtech/models"
)

// SubmitQuiz grades a submission against the lesson's quiz, records
// completion (pass or fail) and unlocks the next lesson by order on a pass.
// Resubmitting overwrites the prior score.
func (ctrl *Controller) SubmitQuiz(c *fiber.Ctx) error {
	user := middleware.LocalUser(c)
	lessonID := c.Locals("lessonId").(string)

	reqData := new(struct {
		Answers []int `json:"answers"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
	}

	var quiz models.Quiz
	if err := ctrl.Db.Where("lesson_id = ?", lessonID).
		Preload("Questions", func(db *gorm.DB) *gorm.DB { return db.Order("order_index asc") }).
		First(&quiz).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Quiz not found")
	}

	score, total := gradeQuiz(quiz.Questions, reqData.Answers)
	percentage := score * 100 / total
	passed := percentage >= quiz.PassPercentage

	var lesson models.Lesson
	if err := ctrl.Db.Where("id = ?", lessonID).First(&lesson).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Lesson not found")
	}
	courseID := lesson.CourseID

	if err := ctrl.upsertProgress(user.ID, courseID, lessonID, func(lp *models.LessonProgress) {
		lp.IsCompleted = true
		lp.QuizScore = &score
		lp.QuizTotal = &total
	}); err != nil {
		log.Printf("Error saving lesson progress: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to save progress!")
	}

	if passed {
		var next models.Lesson
		if err := ctrl.Db.Where("course_id = ? AND lesson_order > ?", courseID, lesson.Order).
			Order("lesson_order asc").
			First(&next).Error; err == nil {
			if err := ctrl.upsertProgress(user.ID, next.CourseID, next.ID, func(lp *models.LessonProgress) {
				lp.IsUnlocked = true
			}); err != nil {
				log.Printf("Error unlocking next lesson: %v", err)
			}
		}
	}

	return c.JSON(fiber.Map{
		"score":      score,
		"total":      total,
		"percentage": percentage,
		"passed":     passed,
	})
}

// MyProgress lists the calling user's lesson progress, optionally scoped to
// a course.
func (ctrl *Controller) MyProgress(c *fiber.Ctx) error {
	user := middleware.LocalUser(c)

	query := ctrl.Db.Where("user_id = ?", user.ID)
	if courseID := c.Query("course_id"); courseID != "" {
		if _, err := uuid.Parse(courseID); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid id")
		}
		query = query.Where("course_id = ?", courseID)
	}

	var items []models.LessonProgress
	if err := query.Find(&items).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch progress!")
	}

	return c.JSON(items)
}

// gradeQuiz awards each question's points when the answer at its index
// matches the correct option. The total defaults to 1 for an empty quiz so
// the percentage is always defined.
func gradeQuiz(questions []models.Question, answers []int) (score, total int) {
	for i, q := range questions {
		points := q.Points
		if points == 0 {
			points = 1
		}
		total += points

		if i < len(answers) && answers[i] == q.CorrectIndex {
			score += points
		}
	}
	if total == 0 {
		total = 1
	}
	return score, total
}

// upsertProgress finds or creates the (user, lesson) progress record and
// applies the mutation. Safe to repeat.
func (ctrl *Controller) upsertProgress(userID, courseID, lessonID string, mutate func(*models.LessonProgress)) error {
	var lp models.LessonProgress
	err := ctrl.Db.Where("user_id = ? AND lesson_id = ?", userID, lessonID).First(&lp).Error
	if err != nil {
		lp = models.LessonProgress{
			UserID:   userID,
			CourseID: courseID,
			LessonID: lessonID,
		}
	}
	if lp.CourseID == "" {
		lp.CourseID = courseID
	}
	mutate(&lp)
	return ctrl.Db.Save(&lp).Error
}
