package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-directory/models"
	"github.com/go-playground/validator/v10"
)

const (
	FieldID    = "id"
	FieldName  = "name"
	FieldEmail = "email"
)

// userRules holds the validator tag and the sentinel of every user field.
var userRules = map[string]struct {
	tag string
	err error
}{
	FieldID:    {tag: "min=0", err: ErrInvalidUserID},
	FieldName:  {tag: "required", err: ErrEmptyName},
	FieldEmail: {tag: "required,email", err: ErrInvalidEmail},
}

type UserValidator struct {
	validate *validator.Validate
}

func NewUserValidator() Validator {
	return &UserValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateUser(ctx context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldName, FieldEmail}
	}

	values := map[string]any{
		FieldID:    user.ID,
		FieldName:  user.Name,
		FieldEmail: user.Email,
	}

	for _, f := range fields {
		rule, ok := userRules[f]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownField, f)
		}
		if err := v.validate.VarCtx(ctx, values[f], rule.tag); err != nil {
			return fmt.Errorf("%w: %w", rule.err, err)
		}
	}

	return nil
}
