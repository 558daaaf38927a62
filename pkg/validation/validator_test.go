package validation

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/auth-service/internal/domain/apperr"
	"github.com/oksasatya/auth-service/pkg/response"
)

type registerForm struct {
	FirstName            string `json:"first_name" binding:"required,singleword"`
	LastName             string `json:"last_name" binding:"required,singleword"`
	Email                string `json:"email" binding:"required,email"`
	Password             string `json:"password" binding:"required,strongpwd"`
	PasswordConfirmation string `json:"password_confirmation" binding:"required,eqfield=Password"`
}

func validForm() registerForm {
	return registerForm{
		FirstName:            "Alice",
		LastName:             "Smith",
		Email:                "alice@example.com",
		Password:             "Sup3r$ecret",
		PasswordConfirmation: "Sup3r$ecret",
	}
}

func validate(t *testing.T, form registerForm) []response.ErrorItem {
	t.Helper()
	Init()
	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)
	return ToErrorItems(v.Struct(form))
}

func codes(items []response.ErrorItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Code)
	}
	return out
}

func TestValidFormPasses(t *testing.T) {
	assert.Nil(t, validate(t, validForm()))
}

func TestMissingFields(t *testing.T) {
	form := validForm()
	form.FirstName = ""
	form.Email = ""

	items := validate(t, form)
	require.Len(t, items, 2)
	assert.Equal(t, apperr.CodeMissingField, items[0].Code)
	assert.Equal(t, "first_name", items[0].Field)
	assert.Equal(t, "first_name is required", items[0].Msg)
	assert.Equal(t, apperr.CodeMissingField, items[1].Code)
	assert.Equal(t, "email", items[1].Field)
}

func TestWeakPasswords(t *testing.T) {
	tests := []struct {
		name string
		pwd  string
	}{
		{name: "too short", pwd: "Ab1$"},
		{name: "no uppercase", pwd: "sup3r$ecret"},
		{name: "no lowercase", pwd: "SUP3R$ECRET"},
		{name: "no digit", pwd: "Super$ecret"},
		{name: "no special", pwd: "Sup3rSecret"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			form.Password = tt.pwd
			form.PasswordConfirmation = tt.pwd

			items := validate(t, form)
			require.NotEmpty(t, items)
			assert.Contains(t, codes(items), apperr.CodeWeakPassword)
		})
	}
}

func TestPasswordMismatch(t *testing.T) {
	form := validForm()
	form.PasswordConfirmation = "Sup3r$ecret-other"

	items := validate(t, form)
	require.Len(t, items, 1)
	assert.Equal(t, apperr.CodePasswordMismatch, items[0].Code)
	assert.Equal(t, "password_confirmation", items[0].Field)
}

func TestNameWithWhitespace(t *testing.T) {
	form := validForm()
	form.FirstName = "Alice Marie"

	items := validate(t, form)
	require.Len(t, items, 1)
	assert.Equal(t, apperr.CodeMaxAllowedWords, items[0].Code)
	assert.Equal(t, "first_name", items[0].Field)
}

func TestInvalidEmail(t *testing.T) {
	form := validForm()
	form.Email = "not-an-email"

	items := validate(t, form)
	require.Len(t, items, 1)
	assert.Equal(t, apperr.CodeValidationError, items[0].Code)
	assert.Equal(t, "email", items[0].Field)
}

func TestAllFailuresReportedTogether(t *testing.T) {
	form := registerForm{
		FirstName:            "Alice Marie",
		LastName:             "",
		Email:                "nope",
		Password:             "weak",
		PasswordConfirmation: "different",
	}

	items := validate(t, form)
	got := codes(items)
	assert.Contains(t, got, apperr.CodeMaxAllowedWords)
	assert.Contains(t, got, apperr.CodeMissingField)
	assert.Contains(t, got, apperr.CodeValidationError)
	assert.Contains(t, got, apperr.CodeWeakPassword)
	assert.Contains(t, got, apperr.CodePasswordMismatch)
	assert.Len(t, items, 5)
}

func TestToErrorItemsNil(t *testing.T) {
	assert.Nil(t, ToErrorItems(nil))
}
