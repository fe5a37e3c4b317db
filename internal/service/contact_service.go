package service

import (
	"context"

	"github.com/givers/contact/internal/model"
)

// ContactService drives the contact form views rendered by the HTTP handlers.
type ContactService interface {
	// Open creates a new idle view with empty fields.
	Open(ctx context.Context) (*model.ContactView, error)

	// Get returns the current state of a view.
	Get(ctx context.Context, id string) (*model.ContactView, error)

	// Change applies one field change event to a view.
	Change(ctx context.Context, id string, field model.Field, value string) (*model.ContactView, error)

	// Submit applies the posted field values and submits the view. A blocked
	// submission returns the view holding the posted values together with a
	// *contactform.RequiredFieldsError.
	Submit(ctx context.Context, id string, form model.ContactForm) (*model.ContactView, error)
}
