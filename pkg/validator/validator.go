// pkg/validator/validator.go
package validator

import (
	"errors"
	"reflect"
	"strings"

	"codetext-backend/internal/models"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// report fields by their JSON names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerCustomValidators()
}

func registerCustomValidators() {
	// at least one non-whitespace character
	validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	validate.RegisterValidation("sharecode", func(fl validator.FieldLevel) bool {
		return isShareCode(fl.Field().String())
	})
}

func isShareCode(code string) bool {
	if len(code) != models.ShareCodeLength {
		return false
	}
	for i := 0; i < len(code); i++ {
		if strings.IndexByte(models.ShareCodeAlphabet, code[i]) < 0 {
			return false
		}
	}
	return true
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// FieldErrors flattens a validation error into field -> failed rule.
func FieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"_": err.Error()}
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	return fields
}
