package validation

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var (
	// Validate is a shared validator instance
	Validate *validator.Validate
)

func init() {
	Validate = validator.New()

	// Custom rule for tag strings. Registration only fails on programmer
	// error, so panic loudly.
	if err := Validate.RegisterValidation("tag", validateTag); err != nil {
		panic(fmt.Sprintf("failed to register tag validator: %v", err))
	}
}

// validateTag validates a single tag value: non-empty, no whitespace, and
// no leading '#' (the parser strips the prefix before anything gets here).
func validateTag(fl validator.FieldLevel) bool {
	return ValidateTag(fl.Field().String()) == nil
}

// ValidateTag validates a tag string value
func ValidateTag(tag string) error {
	if tag == "" {
		return fmt.Errorf("tag must not be empty")
	}
	if strings.HasPrefix(tag, "#") {
		return fmt.Errorf("tag must not include the '#' prefix")
	}
	if strings.IndexFunc(tag, unicode.IsSpace) >= 0 {
		return fmt.Errorf("tag must not contain whitespace")
	}
	return nil
}

// AddPayload is the validated shape of an `add` command before it reaches
// the store.
type AddPayload struct {
	Description string   `validate:"required,min=1,max=10000"`
	Tags        []string `validate:"dive,tag"`
}

// ValidateAdd validates the description and tags of an `add` command.
func ValidateAdd(description string, tags []string) error {
	payload := AddPayload{Description: description, Tags: tags}
	if err := Validate.Struct(payload); err != nil {
		return fmt.Errorf("invalid add command: %w", err)
	}
	return nil
}
