package validator

import (
	"strings"

	"hotelsys/errors"

	v10 "github.com/go-playground/validator/v10"
)

var validate = v10.New()

// Struct chạy validate theo tag, trả AppError khi có vi phạm
func Struct(value interface{}) *errors.AppError {
	if err := validate.Struct(value); err != nil {
		if fieldErrs, ok := err.(v10.ValidationErrors); ok && len(fieldErrs) > 0 {
			first := fieldErrs[0]
			return errors.NewAppError(
				errors.ErrCodeRequiredField,
				"invalid field "+first.Field(),
				err,
			)
		}
		return errors.NewAppError(errors.ErrCodeValidation, "invalid record", err)
	}
	return nil
}

// IsBlank kiểm tra chuỗi rỗng sau khi trim
func IsBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}
