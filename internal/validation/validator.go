// Package validation checks the shape of registration and login input.
// Every rule is evaluated independently so the caller receives all
// violations at once, each tagged with the offending field.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/avolkov/webauth-server/internal/model"
)

// emailPattern is a pragmatic syntax check, not a full RFC 5322 parser.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Validator accumulates field errors across rule checks.
type Validator struct {
	fields []model.FieldError
}

// New creates an empty Validator.
func New() *Validator {
	return &Validator{fields: make([]model.FieldError, 0)}
}

// AddError records a violation for a field.
func (v *Validator) AddError(field, message string) {
	v.fields = append(v.fields, model.FieldError{Field: field, Message: message})
}

// Required checks that a value is non-empty after trimming.
func (v *Validator) Required(field, value, message string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.AddError(field, message)
	}
	return v
}

// MinLength checks a minimum length in bytes.
func (v *Validator) MinLength(field, value string, minLen int, message string) *Validator {
	if len(value) < minLen {
		v.AddError(field, message)
	}
	return v
}

// MaxLength checks a maximum length in bytes.
func (v *Validator) MaxLength(field, value string, maxLen int, message string) *Validator {
	if len(value) > maxLen {
		v.AddError(field, message)
	}
	return v
}

// Email checks the value against the email syntax pattern.
func (v *Validator) Email(field, value, message string) *Validator {
	if !emailPattern.MatchString(value) {
		v.AddError(field, message)
	}
	return v
}

// Custom records a violation when the condition does not hold.
func (v *Validator) Custom(condition bool, field, message string) *Validator {
	if !condition {
		v.AddError(field, message)
	}
	return v
}

// Err returns a *model.ValidationError with every recorded violation,
// or nil when all rules passed.
func (v *Validator) Err() error {
	return model.NewValidationError(v.fields)
}

// Policy tunes registration password rules. The zero value is not
// usable; use DefaultPolicy as a base.
type Policy struct {
	// PasswordMinLength is the minimum accepted password length.
	PasswordMinLength int
	// RequireStrongPassword additionally demands mixed case, a digit
	// and a symbol, and raises the minimum length to 8.
	RequireStrongPassword bool
}

// DefaultPolicy matches the relaxed registration rules.
func DefaultPolicy() Policy {
	return Policy{PasswordMinLength: 6}
}

const (
	maxNameLength     = 50
	maxEmailLength    = 100
	maxPasswordLength = 72 // bcrypt input limit
)

// ValidateRegistration applies every registration rule and returns all
// violations together as a *model.ValidationError.
func ValidateRegistration(req model.RegisterRequest, policy Policy) error {
	minLen := policy.PasswordMinLength
	if policy.RequireStrongPassword && minLen < 8 {
		minLen = 8
	}

	v := New().
		MinLength("name", req.Name, 2, "Name must be at least 2 characters").
		MaxLength("name", req.Name, maxNameLength, "Name must not exceed 50 characters").
		Email("email", req.Email, "Invalid email address").
		MaxLength("email", req.Email, maxEmailLength, "Email must not exceed 100 characters").
		MinLength("password", req.Password, minLen,
			fmt.Sprintf("Password must be at least %d characters", minLen)).
		MaxLength("password", req.Password, maxPasswordLength, "Password must not exceed 72 characters").
		Custom(req.Password == req.ConfirmPassword, "confirmPassword", "Passwords don't match")

	if policy.RequireStrongPassword && !isStrongPassword(req.Password) {
		v.AddError("password", "Password must contain at least one uppercase letter, one lowercase letter, one number, and one special character")
	}

	return v.Err()
}

// ValidateLogin checks only that both credentials are present. Whether
// they are correct is the auth pipeline's job.
func ValidateLogin(req model.LoginRequest) error {
	return New().
		Required("email", req.Email, "Email is required").
		Required("password", req.Password, "Password is required").
		Err()
}

func isStrongPassword(password string) bool {
	var upper, lower, digit, symbol bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			symbol = true
		}
	}
	return upper && lower && digit && symbol
}
