package model

import (
	"errors"
	"time"
)

// SuccessStatus is the sentence shown once a contact form has been submitted.
const SuccessStatus SubmissionStatus = "Your message has been sent! We will get back to you soon."

// ErrUnknownField is returned when a change event names a field the form does not have.
var ErrUnknownField = errors.New("unknown field")

// Field names one input of the contact form. The value matches the HTML name attribute.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldMessage Field = "message"
)

// Fields lists the form fields in render order.
var Fields = []Field{FieldName, FieldEmail, FieldMessage}

// ParseField maps an input name to a Field.
func ParseField(s string) (Field, error) {
	switch f := Field(s); f {
	case FieldName, FieldEmail, FieldMessage:
		return f, nil
	}
	return "", ErrUnknownField
}

// ContactForm holds the current values of the contact form inputs.
// The zero value is the empty form.
type ContactForm struct {
	Name    string `json:"name" form:"name" validate:"required"`
	Email   string `json:"email" form:"email" validate:"required"`
	Message string `json:"message" form:"message" validate:"required"`
}

// With returns a copy of f with a single field replaced.
func (f ContactForm) With(field Field, value string) (ContactForm, error) {
	switch field {
	case FieldName:
		f.Name = value
	case FieldEmail:
		f.Email = value
	case FieldMessage:
		f.Message = value
	default:
		return f, ErrUnknownField
	}
	return f, nil
}

// Value returns the current value of field, or "" for an unknown field.
func (f ContactForm) Value(field Field) string {
	switch field {
	case FieldName:
		return f.Name
	case FieldEmail:
		return f.Email
	case FieldMessage:
		return f.Message
	}
	return ""
}

// IsEmpty reports whether every field is blank.
func (f ContactForm) IsEmpty() bool {
	return f == ContactForm{}
}

// SubmissionStatus is the text displayed above the form. Empty until the first
// successful submission.
type SubmissionStatus string

// ContactView is the server-side record of one rendered contact page.
// It is kept in memory only and dropped once the view is abandoned.
type ContactView struct {
	ID        string           `json:"id"`
	Form      ContactForm      `json:"form"`
	Status    SubmissionStatus `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}
