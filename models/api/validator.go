package apimodels

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	apperrors "recruit-backend/lib/utils/app-errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// в сообщениях используем имена полей из json
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateStruct проверяет теги validate и возвращает ошибку вида Validation
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}
	messages := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		messages = append(messages, fieldMessage(fe))
	}
	return apperrors.Validation(strings.Join(messages, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("не указано поле '%s'", fe.Field())
	case "min", "gte":
		return fmt.Sprintf("поле '%s' должно быть не меньше %s", fe.Field(), fe.Param())
	case "max", "lte":
		return fmt.Sprintf("поле '%s' должно быть не больше %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("поле '%s' должно быть одним из: %s", fe.Field(), fe.Param())
	case "url":
		return fmt.Sprintf("поле '%s' должно быть ссылкой", fe.Field())
	}
	return fmt.Sprintf("поле '%s' заполнено некорректно", fe.Field())
}
