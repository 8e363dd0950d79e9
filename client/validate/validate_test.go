package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoginFormShortPassword(t *testing.T) {
	form := LoginForm{
		Method:   ByEmail,
		Email:    "alex.johnson@email.com",
		Password: "abc12",
	}

	errs := form.Validate()
	assert.False(t, errs.OK())
	assert.Equal(t, "Password must be at least 6 characters", errs["password"])
}

func TestLoginFormValid(t *testing.T) {
	form := LoginForm{
		Method:   ByEmail,
		Email:    "alex.johnson@email.com",
		Password: "EcoLearn123!",
	}

	assert.True(t, form.Validate().OK())
	assert.Equal(t, "alex.johnson@email.com", form.Identifier())
}

func TestLoginFormByPhone(t *testing.T) {
	form := LoginForm{
		Method:   ByPhone,
		Phone:    "+1 (555) 123-4567",
		Password: "EcoLearn123!",
	}

	assert.True(t, form.Validate().OK())
	assert.Equal(t, "+1 (555) 123-4567", form.Identifier())

	form.Phone = "12345"
	errs := form.Validate()
	assert.Equal(t, "Please enter a valid phone number", errs["phone"])
}

func TestLoginFormRoleExtras(t *testing.T) {
	form := LoginForm{
		Method:   ByEmail,
		Email:    "sarah.green@email.com",
		Password: "Nature@123",
		Role:     "teacher",
	}

	errs := form.Validate()
	assert.Equal(t, "Teacher ID is required", errs["roleId"])
	assert.Equal(t, "Teacher password is required", errs["rolePassword"])

	form.RoleID = "FAC-SEAS-2024-15"
	form.RolePassword = "Nature@123"
	assert.True(t, form.Validate().OK())
}

func TestSignUpFormRules(t *testing.T) {
	tests := []struct {
		name  string
		form  SignUpForm
		field string
		msg   string
	}{
		{
			name:  "bad email",
			form:  SignUpForm{Method: ByEmail, Email: "not-an-email", Username: "EcoExplorer2024", Password: "GreenFuture123!", ConfirmPassword: "GreenFuture123!"},
			field: "email",
			msg:   "Please enter a valid email",
		},
		{
			name:  "short username",
			form:  SignUpForm{Method: ByEmail, Email: "emma.wilson@email.com", Username: "ab", Password: "GreenFuture123!", ConfirmPassword: "GreenFuture123!"},
			field: "username",
			msg:   "Username must be at least 3 characters",
		},
		{
			name:  "weak password",
			form:  SignUpForm{Method: ByEmail, Email: "emma.wilson@email.com", Username: "EcoExplorer2024", Password: "greenfuture", ConfirmPassword: "greenfuture"},
			field: "password",
			msg:   "Password must meet all requirements",
		},
		{
			name:  "short password",
			form:  SignUpForm{Method: ByEmail, Email: "emma.wilson@email.com", Username: "EcoExplorer2024", Password: "Gf1!", ConfirmPassword: "Gf1!"},
			field: "password",
			msg:   "Password must be at least 8 characters",
		},
		{
			name:  "mismatched confirmation",
			form:  SignUpForm{Method: ByEmail, Email: "emma.wilson@email.com", Username: "EcoExplorer2024", Password: "GreenFuture123!", ConfirmPassword: "GreenFuture124!"},
			field: "confirmPassword",
			msg:   "Passwords do not match",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.form.Validate()
			assert.Equal(t, tt.msg, errs[tt.field])
		})
	}
}

func TestSignUpFormValid(t *testing.T) {
	form := SignUpForm{
		Method:          ByEmail,
		Email:           "emma.wilson@email.com",
		Username:        "EcoExplorer2024",
		Password:        "GreenFuture123!",
		ConfirmPassword: "GreenFuture123!",
	}
	assert.True(t, form.Validate().OK())
}

func TestStrength(t *testing.T) {
	s := Strength("GreenFuture123!")
	assert.True(t, s.Met())

	s = Strength("greenfuture123")
	assert.True(t, s.Length)
	assert.False(t, s.Upper)
	assert.False(t, s.Special)
	assert.False(t, s.Met())
}
