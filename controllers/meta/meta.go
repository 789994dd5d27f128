package metaController

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edtech/config"
	walletController "edtech/controllers/wallet"
)

type Controller struct {
	Db  *gorm.DB
	Cfg *config.Config
}

func New(db *gorm.DB, cfg *config.Config) *Controller {
	return &Controller{Db: db, Cfg: cfg}
}

// Root identifies the service.
func (ctrl *Controller) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"name":    ctrl.Cfg.AppName,
		"version": ctrl.Cfg.Version,
	})
}

// Health reports backend and database status for tooling.
func (ctrl *Controller) Health(c *fiber.Ctx) error {
	status := fiber.Map{
		"backend":  "running",
		"database": "not available",
		"tables":   []string{},
	}

	sqlDB, err := ctrl.Db.DB()
	if err == nil && sqlDB.Ping() == nil {
		status["database"] = "connected"
		if tables, err := ctrl.Db.Migrator().GetTables(); err == nil {
			status["tables"] = tables
		}
	} else if err != nil {
		status["database"] = "error: " + err.Error()
	}

	return c.JSON(status)
}

// Schema lists the record collections and wallet constants for tooling.
func (ctrl *Controller) Schema(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"collections": []string{
			"user", "course", "lesson", "quiz", "enrollment",
			"lessonprogress", "transaction", "notification", "feedback",
		},
		"coin_to_points": walletController.CoinToPoints,
	})
}
