// Package contactform implements the contact form view: three required inputs,
// a submit action and the status line shown after a successful submission.
package contactform

import (
	"errors"
	"fmt"
	"strings"

	"github.com/givers/contact/internal/model"
)

// ErrRequiredField is matched by every *RequiredFieldsError.
var ErrRequiredField = errors.New("required field is empty")

// RequiredFieldsError is returned by Submit when one or more fields are blank.
type RequiredFieldsError struct {
	Fields []model.Field
}

func (e *RequiredFieldsError) Error() string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = string(f)
	}
	return fmt.Sprintf("%s: %s", ErrRequiredField, strings.Join(names, ", "))
}

func (e *RequiredFieldsError) Unwrap() error { return ErrRequiredField }

// First returns the field a user should be pointed at.
func (e *RequiredFieldsError) First() model.Field {
	if len(e.Fields) == 0 {
		return ""
	}
	return e.Fields[0]
}

// RequiredChecker lists the blank fields of a form.
type RequiredChecker interface {
	Missing(form model.ContactForm) []model.Field
}

// Phase is the lifecycle position of a view.
type Phase int

const (
	// Idle means nothing has been submitted yet.
	Idle Phase = iota
	// Submitted is entered by the first successful Submit and never left.
	Submitted
)

func (p Phase) String() string {
	if p == Submitted {
		return "submitted"
	}
	return "idle"
}

// View holds the local state of one contact form. It is not safe for
// concurrent use; callers serialize events per view.
type View struct {
	form    model.ContactForm
	status  model.SubmissionStatus
	checker RequiredChecker
}

// New returns an idle view with empty fields.
func New(checker RequiredChecker) *View {
	return &View{checker: checker}
}

// Restore rebuilds a view from previously stored state.
func Restore(checker RequiredChecker, form model.ContactForm, status model.SubmissionStatus) *View {
	return &View{form: form, status: status, checker: checker}
}

// Form returns the current field values.
func (v *View) Form() model.ContactForm { return v.form }

// Status returns the status line, empty until the first submission.
func (v *View) Status() model.SubmissionStatus { return v.status }

// Phase reports whether the view has been submitted.
func (v *View) Phase() Phase {
	if v.status == "" {
		return Idle
	}
	return Submitted
}

// Change replaces the value of one field.
func (v *View) Change(field model.Field, value string) error {
	next, err := v.form.With(field, value)
	if err != nil {
		return fmt.Errorf("change %q: %w", field, err)
	}
	v.form = next
	return nil
}

// Submit sets the success status and clears every field. When a field is blank
// the view is left exactly as it was and a *RequiredFieldsError is returned.
func (v *View) Submit() error {
	if missing := v.checker.Missing(v.form); len(missing) > 0 {
		return &RequiredFieldsError{Fields: missing}
	}
	v.status = model.SuccessStatus
	v.form = model.ContactForm{}
	return nil
}
