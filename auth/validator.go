package auth

import (
	"conference-sim/errors"
	stderrors "errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

type RegisterRequest struct {
	UserID   string `validate:"required,notblank"`
	Password string `validate:"required,alphanum"`
}

type PasswordRequest struct {
	Password string `validate:"required,alphanum"`
}

type MessageRequest struct {
	ReceiverID string `validate:"required"`
	Content    string `validate:"required"`
}

// ValidateRegister checks a registration form: a non-blank user ID
// and a non-empty alphanumeric password.
func ValidateRegister(req RegisterRequest) error {
	if err := validate.Struct(req); err != nil {
		return toDomainError(err)
	}
	return nil
}

// ValidatePassword applies the password rule used by the change-password flow.
func ValidatePassword(password string) error {
	if err := validate.Struct(PasswordRequest{Password: password}); err != nil {
		return toDomainError(err)
	}
	return nil
}

func ValidateMessage(req MessageRequest) error {
	if err := validate.Struct(req); err != nil {
		return toDomainError(err)
	}
	return nil
}

// toDomainError maps the first failing field to the matching sentinel error.
func toDomainError(err error) error {
	var validationErrors validator.ValidationErrors
	if !stderrors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return fmt.Errorf("%w: %v", errors.ErrInvalidRequest, err)
	}
	switch field := validationErrors[0]; field.Field() {
	case "Password":
		return fmt.Errorf("%w: %v", errors.ErrInvalidPassword, field.Error())
	case "Content":
		return errors.ErrEmptyMessage
	default:
		return fmt.Errorf("%w: %v", errors.ErrInvalidRequest, field.Error())
	}
}
