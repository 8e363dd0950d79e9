// Package validate holds the local form validation rules shared by the login,
// signup and registration flows. All checks are synchronous and never touch
// the network; failures are keyed by field name so callers can render one
// message next to each input.
package validate

import (
	"regexp"
	"strings"
)

var (
	emailRe    = regexp.MustCompile(`\S+@\S+\.\S+`)
	phoneRe    = regexp.MustCompile(`^\+?[\d\s\-()]{10,}$`)
	usernameRe = regexp.MustCompile(`^[A-Za-z0-9!@#$%^&*()_+\-=\[\]{}|;:,.<>?]+$`)
)

// Errors maps a field name to a single human-readable message.
type Errors map[string]string

// OK reports whether no field failed validation.
func (e Errors) OK() bool { return len(e) == 0 }

// Blank reports whether the value is empty after trimming whitespace.
func Blank(v string) bool { return strings.TrimSpace(v) == "" }

// Email reports whether the value looks like an email address.
func Email(v string) bool { return emailRe.MatchString(v) }

// Phone reports whether the value looks like a phone number.
func Phone(v string) bool { return phoneRe.MatchString(v) }

// PasswordStrength breaks a signup password down into the individual policy
// requirements so the UI can tick them off as the user types.
type PasswordStrength struct {
	Length  bool
	Upper   bool
	Lower   bool
	Number  bool
	Special bool
}

// Met reports whether every requirement is satisfied.
func (s PasswordStrength) Met() bool {
	return s.Length && s.Upper && s.Lower && s.Number && s.Special
}

// Strength evaluates a password against the signup policy.
func Strength(password string) PasswordStrength {
	return PasswordStrength{
		Length:  len(password) >= 8,
		Upper:   strings.ContainsAny(password, "ABCDEFGHIJKLMNOPQRSTUVWXYZ"),
		Lower:   strings.ContainsAny(password, "abcdefghijklmnopqrstuvwxyz"),
		Number:  strings.ContainsAny(password, "0123456789"),
		Special: strings.ContainsAny(password, `!@#$%^&*()_+-=[]{}|;:,.<>?`),
	}
}

// Method selects which identifier a login or signup form collects.
type Method string

const (
	ByEmail Method = "email"
	ByPhone Method = "phone"
)

// LoginForm carries the raw login inputs. Role, RoleID and RolePassword are
// only filled when the user logs in with an explicit teacher or admin role.
type LoginForm struct {
	Method       Method
	Email        string
	Phone        string
	Password     string
	Role         string
	RoleID       string
	RolePassword string
}

// Identifier returns the value the identity service should authenticate
// against, depending on the chosen method.
func (f LoginForm) Identifier() string {
	if f.Method == ByPhone {
		return f.Phone
	}
	return f.Email
}

// Validate applies the login rules and returns one error per failing field.
func (f LoginForm) Validate() Errors {
	errs := Errors{}

	if f.Method == ByPhone {
		if f.Phone == "" {
			errs["phone"] = "Phone number is required"
		} else if !Phone(f.Phone) {
			errs["phone"] = "Please enter a valid phone number"
		}
	} else {
		if f.Email == "" {
			errs["email"] = "Email is required"
		} else if !Email(f.Email) {
			errs["email"] = "Please enter a valid email"
		}
	}

	if f.Password == "" {
		errs["password"] = "Password is required"
	} else if len(f.Password) < 6 {
		errs["password"] = "Password must be at least 6 characters"
	}

	switch f.Role {
	case "teacher":
		if f.RoleID == "" {
			errs["roleId"] = "Teacher ID is required"
		}
		if f.RolePassword == "" {
			errs["rolePassword"] = "Teacher password is required"
		}
	case "admin":
		if f.RoleID == "" {
			errs["roleId"] = "Admin ID is required"
		}
		if f.RolePassword == "" {
			errs["rolePassword"] = "Admin password is required"
		}
	}

	return errs
}

// SignUpForm carries the initial identity inputs collected before the
// registration wizard starts.
type SignUpForm struct {
	Method          Method
	Email           string
	Phone           string
	Username        string
	Password        string
	ConfirmPassword string
}

// Identifier returns the email or phone the account will be keyed on.
func (f SignUpForm) Identifier() string {
	if f.Method == ByPhone {
		return f.Phone
	}
	return f.Email
}

// Validate applies the signup rules and returns one error per failing field.
func (f SignUpForm) Validate() Errors {
	errs := Errors{}

	if f.Method == ByPhone {
		if f.Phone == "" {
			errs["phone"] = "Phone number is required"
		} else if !Phone(f.Phone) {
			errs["phone"] = "Please enter a valid phone number"
		}
	} else {
		if f.Email == "" {
			errs["email"] = "Email is required"
		} else if !Email(f.Email) {
			errs["email"] = "Please enter a valid email"
		}
	}

	if f.Username == "" {
		errs["username"] = "Username is required"
	} else if len(f.Username) < 3 {
		errs["username"] = "Username must be at least 3 characters"
	} else if len(f.Username) > 20 {
		errs["username"] = "Username must be less than 20 characters"
	} else if !usernameRe.MatchString(f.Username) {
		errs["username"] = "Username can only contain letters, numbers, and special characters"
	}

	if f.Password == "" {
		errs["password"] = "Password is required"
	} else if len(f.Password) < 8 {
		errs["password"] = "Password must be at least 8 characters"
	} else if !Strength(f.Password).Met() {
		errs["password"] = "Password must meet all requirements"
	}

	if f.ConfirmPassword == "" {
		errs["confirmPassword"] = "Please confirm your password"
	} else if f.Password != f.ConfirmPassword {
		errs["confirmPassword"] = "Passwords do not match"
	}

	return errs
}
