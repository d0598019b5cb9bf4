package util

import (
	"Dramaboard/internal/api/dto"
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var emailRegex = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

func init() {
	validate = validator.New()
}

func ValidateDTO(dto any) error {
	if err := validate.Struct(dto); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			firstError := vErrs[0]
			msg := fmt.Sprintf("字段 [%s] 校验失败，规则 [%s]",
				firstError.Field(),
				firstError.Tag())
			return errors.New(msg)
		}
	}
	return nil
}

func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func ValidateRegDTO(dto *dto.RegisterDTO) bool {
	if len(dto.Username) < 3 || len(dto.Username) > 20 {
		return false
	}
	if len(dto.Password) < 6 || len(dto.Password) > 72 {
		return false
	}
	if dto.Password != dto.ConfirmPassword {
		return false
	}
	return ValidateEmail(dto.Email)
}
