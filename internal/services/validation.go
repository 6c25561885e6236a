package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/epeers/fundmanager/internal/models"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// report fields by their wire name (fundId, not FundID)
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

// ValidationError is a draft rejected before any backend call
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ValidateDraft checks that fundId and then fundName are filled in. Only the
// first failure is reported.
func ValidateDraft(d models.Draft) error {
	err := validate.Struct(d)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		field := verrs[0].Field()
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("Please fill out the %s field.", field),
		}
	}
	return err
}
