package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/MKhiriev/katla-sections/models"
	"github.com/go-playground/validator/v10"
	nonstandard "github.com/go-playground/validator/v10/non-standard/validators"
)

const (
	FieldName        = "name"
	FieldCode        = "code"
	FieldStoreHiveID = "store_hive_id"
)

// HiveSectionValidator validates hive section payloads using the
// `validate` struct tags declared on the models.
type HiveSectionValidator struct {
	validate *validator.Validate
}

func NewHiveSectionValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report json names so messages match the payload the client sent
	v.RegisterTagNameFunc(jsonFieldName)

	if err := v.RegisterValidation("notblank", nonstandard.NotBlank); err != nil {
		panic(fmt.Sprintf("register notblank validation: %v", err))
	}

	return &HiveSectionValidator{validate: v}
}

func (v *HiveSectionValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UpdateHiveSectionRequest:
		return v.validateUpdateRequest(ctx, value, fields...)
	case *models.UpdateHiveSectionRequest:
		if value == nil {
			return fmt.Errorf("%w: %w", ErrInvalidRequest, ErrEmptyRequest)
		}
		return v.validateUpdateRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateUpdateRequest checks the whole request; when fields are given only
// violations of those fields are reported.
func (v *HiveSectionValidator) validateUpdateRequest(ctx context.Context, req models.UpdateHiveSectionRequest, fields ...string) error {
	err := v.validate.StructCtx(ctx, req)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		if len(fields) > 0 && !slices.Contains(fields, fe.Field()) {
			continue
		}
		messages = append(messages, describeFieldError(fe))
	}

	if len(messages) == 0 {
		return nil
	}

	return fmt.Errorf("%w: %s", ErrInvalidRequest, strings.Join(messages, "; "))
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s is required", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed on the '%s' rule", fe.Field(), fe.Tag())
	}
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}
