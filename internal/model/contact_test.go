package model

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestContactForm_With_ReplacesOnlyOneField(t *testing.T) {
	base := ContactForm{Name: "Jane", Email: "jane@x.com", Message: "Hi"}

	tests := []struct {
		field Field
		value string
		want  ContactForm
	}{
		{FieldName, "Ann", ContactForm{Name: "Ann", Email: "jane@x.com", Message: "Hi"}},
		{FieldEmail, "ann@y.org", ContactForm{Name: "Jane", Email: "ann@y.org", Message: "Hi"}},
		{FieldMessage, "Hello\nthere", ContactForm{Name: "Jane", Email: "jane@x.com", Message: "Hello\nthere"}},
		{FieldName, "", ContactForm{Email: "jane@x.com", Message: "Hi"}},
	}

	for _, tt := range tests {
		got, err := base.With(tt.field, tt.value)
		if err != nil {
			t.Fatalf("With(%q): unexpected error: %v", tt.field, err)
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("With(%q) mismatch (-want +got):\n%s", tt.field, diff)
		}
	}

	// the receiver is a copy; the original must be untouched
	if base.Name != "Jane" || base.Email != "jane@x.com" || base.Message != "Hi" {
		t.Errorf("base form was mutated: %+v", base)
	}
}

func TestContactForm_With_UnknownField(t *testing.T) {
	base := ContactForm{Name: "Jane"}
	got, err := base.With(Field("phone"), "123")
	if !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
	if got != base {
		t.Errorf("expected form unchanged, got %+v", got)
	}
}

func TestContactForm_Value(t *testing.T) {
	f := ContactForm{Name: "a", Email: "b", Message: "c"}
	for field, want := range map[Field]string{FieldName: "a", FieldEmail: "b", FieldMessage: "c", "other": ""} {
		if got := f.Value(field); got != want {
			t.Errorf("Value(%q) = %q, want %q", field, got, want)
		}
	}
}

func TestContactForm_IsEmpty(t *testing.T) {
	if !(ContactForm{}).IsEmpty() {
		t.Error("zero form should be empty")
	}
	if (ContactForm{Message: " "}).IsEmpty() {
		t.Error("form with whitespace message should not be empty")
	}
}

func TestParseField(t *testing.T) {
	for _, f := range Fields {
		got, err := ParseField(string(f))
		if err != nil || got != f {
			t.Errorf("ParseField(%q) = %q, %v", f, got, err)
		}
	}
	if _, err := ParseField("Name"); !errors.Is(err, ErrUnknownField) {
		t.Errorf("expected ErrUnknownField for mixed case, got %v", err)
	}
}
