package catalogController

import (
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edtech/middleware"
	"edtech/models"
)

type questionBody struct {
	Prompt       string   `json:"prompt" validate:"required"`
	Options      []string `json:"options" validate:"required,min=1"`
	CorrectIndex int      `json:"correct_index" validate:"gte=0"`
	Points       *int     `json:"points" validate:"omitempty,gte=0"`
}

type quizBody struct {
	LessonID       string         `json:"lesson_id" validate:"required,uuid"`
	Questions      []questionBody `json:"questions"`
	PassPercentage *int           `json:"pass_percentage" validate:"omitempty,gte=0,lte=100"`
}

// GetQuiz returns the lesson's quiz, or an empty default when none is set.
func (ctrl *Controller) GetQuiz(c *fiber.Ctx) error {
	lessonID := c.Locals("lessonId").(string)

	var quiz models.Quiz
	err := ctrl.Db.Where("lesson_id = ?", lessonID).
		Preload("Questions", func(db *gorm.DB) *gorm.DB { return db.Order("order_index asc") }).
		First(&quiz).Error
	if err != nil {
		return c.JSON(fiber.Map{
			"lesson_id":       lessonID,
			"questions":       []models.Question{},
			"pass_percentage": models.DefaultPassPercentage,
		})
	}

	return c.JSON(quiz)
}

// SetQuiz replaces the lesson's quiz as a whole document, keyed by
// lesson_id (admin only). There is no per-question patching.
func (ctrl *Controller) SetQuiz(c *fiber.Ctx) error {
	lessonID := c.Locals("lessonId").(string)

	reqData := new(quizBody)
	if err := c.BodyParser(reqData); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
	}
	if errors := middleware.ValidateStruct(reqData); errors != nil {
		return middleware.ValidationErrorResponse(c, errors)
	}

	if reqData.LessonID != lessonID {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "lesson_id mismatch")
	}

	for _, q := range reqData.Questions {
		if q.CorrectIndex >= len(q.Options) {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "correct_index out of range")
		}
	}

	passPercentage := models.DefaultPassPercentage
	if reqData.PassPercentage != nil {
		passPercentage = *reqData.PassPercentage
	}

	err := ctrl.Db.Transaction(func(tx *gorm.DB) error {
		var quiz models.Quiz
		if err := tx.Where("lesson_id = ?", lessonID).First(&quiz).Error; err == nil {
			if err := tx.Where("quiz_id = ?", quiz.ID).Delete(&models.Question{}).Error; err != nil {
				return err
			}
			quiz.PassPercentage = passPercentage
			if err := tx.Save(&quiz).Error; err != nil {
				return err
			}
			return createQuestions(tx, quiz.ID, reqData.Questions)
		}

		quiz = models.Quiz{LessonID: lessonID, PassPercentage: passPercentage}
		if err := tx.Create(&quiz).Error; err != nil {
			return err
		}
		return createQuestions(tx, quiz.ID, reqData.Questions)
	})
	if err != nil {
		log.Printf("Error saving quiz: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to save quiz!")
	}

	return c.JSON(fiber.Map{"ok": true})
}

func createQuestions(tx *gorm.DB, quizID string, questions []questionBody) error {
	for i, q := range questions {
		points := 1
		if q.Points != nil {
			points = *q.Points
		}

		options, err := json.Marshal(q.Options)
		if err != nil {
			return err
		}

		question := models.Question{
			QuizID:       quizID,
			Prompt:       q.Prompt,
			Options:      options,
			CorrectIndex: q.CorrectIndex,
			Points:       points,
			OrderIndex:   i,
		}
		if err := tx.Create(&question).Error; err != nil {
			return err
		}
	}
	return nil
}
