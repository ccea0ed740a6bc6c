package middleware

import (
	authutils "recruit-backend/lib/utils/auth-utils"
	"recruit-backend/models"
	apimodels "recruit-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

func backOfficeRole(ctx *fiber.Ctx) error {
	switch GetUserRole(ctx) {
	case models.HrRole, models.AdminRole:
		return ctx.Next()
	}
	return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("операция недоступна"))
}

func GetUserID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if sub, exist := claims["sub"]; exist {
		if stringSub, ok := sub.(string); ok {
			return stringSub
		}
	}
	return ""
}

func GetUserRole(ctx *fiber.Ctx) models.UserRole {
	claims := authutils.GetClaims(ctx)
	if role, exist := claims["role"]; exist {
		if stringRole, ok := role.(string); ok && stringRole != "" {
			return models.UserRole(stringRole)
		}
	}
	return ""
}
