// internals/middlewares/auth/permission_middleware.go
package auth

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lembagaku_backend/internals/constants"
	rightModel "lembagaku_backend/internals/features/users/user_rights/model"
	gate "lembagaku_backend/internals/features/users/user_rights/service"
	helper "lembagaku_backend/internals/helpers"
)

// RequirePermission jalan SETELAH AuthMiddleware: ambil matrix user
// lalu serahkan keputusan ke gate. Superadmin tidak perlu query matrix.
func RequirePermission(db *gorm.DB, page string, action gate.Action) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := helper.GetRoleFromToken(c)
		if constants.IsPrivilegedRole(role) {
			return c.Next()
		}

		userID, err := helper.GetUserIDFromToken(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
		}

		var rights rightModel.UserRightModel
		var rightsPtr *rightModel.UserRightModel
		if err := db.Where("user_id = ?", userID).First(&rights).Error; err == nil {
			rightsPtr = &rights
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Println("[ERROR] Gagal ambil user_rights:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
		}

		decision := gate.Authorize(role, rightsPtr, page, action)
		if !decision.Allowed {
			return helper.JsonError(c, fiber.StatusForbidden, decision.Reason)
		}
		return c.Next()
	}
}
