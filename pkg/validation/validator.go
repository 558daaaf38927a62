package validation

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/oksasatya/auth-service/internal/domain/apperr"
	"github.com/oksasatya/auth-service/pkg/response"
)

const specialChars = "!@#$%^&*()_+-=[]{}|;:,.<>?"

// Init configures the global validator used by Gin's binding.
// - Uses JSON tag names in errors.
// - Registers the service's custom password and name validations.
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("strongpwd", strongPassword)
		_ = v.RegisterValidation("singleword", singleWord)
	}
}

// strongPassword enforces the password policy: at least 8 characters with
// upper, lower, digit, and special character all present.
func strongPassword(fl validator.FieldLevel) bool {
	pwd := fl.Field().String()
	if len(pwd) < 8 {
		return false
	}
	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range pwd {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(specialChars, r):
			hasSpecial = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSpecial
}

// singleWord rejects values containing whitespace (name fields).
func singleWord(fl validator.FieldLevel) bool {
	return !strings.ContainsAny(fl.Field().String(), " \t")
}

// ToErrorItems converts binding/validation errors into the envelope error
// list. Every simultaneous field failure is reported, never just the first.
func ToErrorItems(err error) []response.ErrorItem {
	if err == nil {
		return nil
	}

	var se *json.SyntaxError
	var ute *json.UnmarshalTypeError
	if errors.As(err, &se) || errors.As(err, &ute) {
		return []response.ErrorItem{{Code: apperr.CodeValidationError, Msg: "invalid json payload"}}
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]response.ErrorItem, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, itemForFieldError(fe))
		}
		return out
	}

	return []response.ErrorItem{{Code: apperr.CodeValidationError, Msg: "invalid payload"}}
}

func itemForFieldError(fe validator.FieldError) response.ErrorItem {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return response.ErrorItem{
			Code:  apperr.CodeMissingField,
			Msg:   field + " is required",
			Field: field,
		}
	case "email":
		return response.ErrorItem{
			Code:  apperr.CodeValidationError,
			Msg:   "must be a valid email",
			Field: field,
		}
	case "singleword":
		return response.ErrorItem{
			Code:  apperr.CodeMaxAllowedWords,
			Msg:   "Name fields must be a single word without spaces",
			Field: field,
		}
	case "strongpwd":
		return response.ErrorItem{
			Code: apperr.CodeWeakPassword,
			Msg: "Password must be at least 8 characters long and contain at least one uppercase letter," +
				" one lowercase letter, one number, and one special character",
			Field: field,
		}
	case "eqfield":
		return response.ErrorItem{
			Code:  apperr.CodePasswordMismatch,
			Msg:   "Password confirmation does not match",
			Field: field,
		}
	case "oneof":
		return response.ErrorItem{
			Code:  apperr.CodeValidationError,
			Msg:   "must be one of: " + fe.Param(),
			Field: field,
		}
	default:
		return response.ErrorItem{
			Code:  apperr.CodeValidationError,
			Msg:   "failed validation: " + fe.Tag(),
			Field: field,
		}
	}
}
