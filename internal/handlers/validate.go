package handlers

import (
	"errors"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/Jason26214/MoviesApi/internal/apperr"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{6,20}$`)

// NewValidator builds the request validator with the credential rules
// registered.
func NewValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterValidation("username", validUsername)
	validate.RegisterValidation("password", validPassword)
	return validate
}

func validUsername(fl validator.FieldLevel) bool {
	return usernamePattern.MatchString(fl.Field().String())
}

// validPassword requires at least 8 characters containing lowercase,
// uppercase, a digit and one of !@#$.
func validPassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	if len(password) < 8 {
		return false
	}
	var lower, upper, digit bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return lower && upper && digit && strings.ContainsAny(password, "!@#$")
}

// validationError turns a validator failure into a Validation taxonomy error
// whose message names the offending field and constraint.
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperr.New(apperr.Validation, "invalid request body")
	}

	fe := fieldErrs[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "username":
		return apperr.New(apperr.Validation, "username must be 6-20 characters of letters, digits or underscore")
	case "password":
		return apperr.New(apperr.Validation, "password must be at least 8 characters and contain lowercase, uppercase, a digit and one of !@#$")
	case "required":
		return apperr.New(apperr.Validation, field+" is required")
	case "min":
		return apperr.New(apperr.Validation, field+" is below the allowed minimum")
	case "max":
		return apperr.New(apperr.Validation, field+" is above the allowed maximum")
	default:
		return apperr.New(apperr.Validation, field+" is invalid")
	}
}
