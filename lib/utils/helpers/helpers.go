package helpers

import (
	"strings"

	"github.com/google/uuid"
)

// IsUUID идентификаторы записей в БД - uuid, остальное заведомо не найдется
func IsUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
