package validator

import (
	"testing"

	"codetext-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Content string `json:"content" validate:"notblank"`
	Title   string `json:"title,omitempty" validate:"max=5"`
}

func TestNotBlank(t *testing.T) {
	assert.NoError(t, ValidateStruct(&sample{Content: " x "}))
	assert.Error(t, ValidateStruct(&sample{Content: ""}))
	assert.Error(t, ValidateStruct(&sample{Content: " \n\t"}))
}

func TestFieldErrors_UsesJSONNames(t *testing.T) {
	err := ValidateStruct(&sample{Content: "", Title: "too long"})

	assert.Equal(t, map[string]string{
		"content": "notblank",
		"title":   "max",
	}, FieldErrors(err))
}

func TestShareCode(t *testing.T) {
	for _, code := range []string{"AB12CD", "000000", "ZZZZZZ"} {
		assert.NoError(t, ValidateStruct(&models.ShareLookupRequest{Code: code}), code)
	}

	for _, code := range []string{"", "AB12C", "AB12CDE", "ab12cd", "AB-12C", "AB 12C", "ÄB12C"} {
		err := ValidateStruct(&models.ShareLookupRequest{Code: code})
		if assert.Error(t, err, code) {
			assert.Equal(t, map[string]string{"code": "sharecode"}, FieldErrors(err))
		}
	}
}
