package controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ecoally/backend/config"
	"ecoally/backend/middleware"
	"ecoally/backend/models"
	"ecoally/backend/utils"
)

// ShieldCost is the coin price of one streak shield.
const ShieldCost = 250

type GamificationController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewGamificationController(db *gorm.DB, cfg *config.Config) *GamificationController {
	return &GamificationController{DB: db, Cfg: cfg}
}

// PurchaseShield deducts the shield cost and returns the authoritative
// post-purchase coins and shield count.
func (gc *GamificationController) PurchaseShield(c *fiber.Ctx) error {
	var student models.Student
	if err := gc.DB.Where("user_id = ?", middleware.UserID(c)).First(&student).Error; err != nil {
		return utils.NotFound(c, "Student record not found")
	}

	if student.Coins < ShieldCost {
		return utils.BadRequest(c, "Not enough coins to buy a shield")
	}

	student.Coins -= ShieldCost
	student.StreakShields++
	if err := gc.DB.Save(&student).Error; err != nil {
		return utils.InternalServerError(c, "Could not update student record")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"coins":         student.Coins,
		"streakShields": student.StreakShields,
	})
}
