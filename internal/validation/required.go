package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/givers/contact/internal/model"
)

// Checker reports which contact form fields are blank. A field counts as filled
// as soon as it holds any character, whitespace included, matching the HTML
// required attribute.
type Checker struct {
	v *validator.Validate
}

// NewChecker builds a Checker whose reported names follow the form tags of
// model.ContactForm.
func NewChecker() *Checker {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Checker{v: v}
}

// Missing returns the blank fields of form in render order. A nil result means
// the form may be submitted.
func (c *Checker) Missing(form model.ContactForm) []model.Field {
	err := c.v.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// InvalidValidationError only happens for non-struct input
		return nil
	}

	missing := make([]model.Field, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Tag() != "required" {
			continue
		}
		if f, err := model.ParseField(fe.Field()); err == nil {
			missing = append(missing, f)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return missing
}
