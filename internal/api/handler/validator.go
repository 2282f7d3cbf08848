package handler

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// hexUID matches a registrable badge identifier: 6 to 20 hex characters.
// Case-insensitive here; the service canonicalizes to uppercase on write.
var hexUID = regexp.MustCompile(`^[0-9A-Fa-f]{6,20}$`)

// phPhone matches Philippine mobile numbers in +63 form.
var phPhone = regexp.MustCompile(`^\+63\d{10}$`)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	v := validator.New()
	// Custom rules for the registration surface.
	_ = v.RegisterValidation("hexuid", func(fl validator.FieldLevel) bool {
		return hexUID.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("ph_phone", func(fl validator.FieldLevel) bool {
		return phPhone.MatchString(fl.Field().String())
	})
	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			msgs := make([]string, 0, len(ve))
			for _, fe := range ve {
				msgs = append(msgs, fieldError(fe))
			}
			return fmt.Errorf("%s", strings.Join(msgs, "; "))
		}
		return err
	}
	return nil
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "hexuid":
		return field + " must be a hexadecimal string of 6-20 characters"
	case "ph_phone":
		return field + " must start with +63 followed by 10 digits"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s cannot exceed %s characters", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
