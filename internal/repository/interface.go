package repository

import (
	"context"

	"github.com/givers/contact/internal/model"
)

// ViewRepository keeps the state of rendered contact pages for as long as the
// page is in use.
type ViewRepository interface {
	// Create stores a new view. An empty ID is replaced by a fresh UUID and the
	// timestamps are set by the repository.
	Create(ctx context.Context, view *model.ContactView) error
	Get(ctx context.Context, id string) (*model.ContactView, error)
	// Update applies fn to a copy of the stored view and commits the copy when
	// fn returns nil. Calls for the same view never overlap.
	Update(ctx context.Context, id string, fn func(view *model.ContactView) error) (*model.ContactView, error)
	Delete(ctx context.Context, id string) error
	Len() int
}
