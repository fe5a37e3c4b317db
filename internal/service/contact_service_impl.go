package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/givers/contact/internal/contactform"
	"github.com/givers/contact/internal/model"
	"github.com/givers/contact/internal/repository"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo    repository.ViewRepository
	checker contactform.RequiredChecker
}

// NewContactService creates a ContactService backed by the given repository.
func NewContactService(repo repository.ViewRepository, checker contactform.RequiredChecker) ContactService {
	return &contactServiceImpl{repo: repo, checker: checker}
}

func (s *contactServiceImpl) Open(ctx context.Context) (*model.ContactView, error) {
	view := &model.ContactView{}
	if err := s.repo.Create(ctx, view); err != nil {
		return nil, fmt.Errorf("open contact view: %w", err)
	}
	slog.Debug("contact view opened", "view_id", view.ID)
	return view, nil
}

func (s *contactServiceImpl) Get(ctx context.Context, id string) (*model.ContactView, error) {
	return s.repo.Get(ctx, id)
}

func (s *contactServiceImpl) Change(ctx context.Context, id string, field model.Field, value string) (*model.ContactView, error) {
	view, err := s.repo.Update(ctx, id, func(v *model.ContactView) error {
		cv := contactform.Restore(s.checker, v.Form, v.Status)
		if err := cv.Change(field, value); err != nil {
			return err
		}
		v.Form = cv.Form()
		return nil
	})
	if err != nil {
		return nil, err
	}
	slog.Debug("contact field changed", "view_id", id, "field", field)
	return view, nil
}

// Submit copies every posted value into the view before submitting, so a
// blocked submission still shows what the user typed.
func (s *contactServiceImpl) Submit(ctx context.Context, id string, form model.ContactForm) (*model.ContactView, error) {
	var submitErr error
	view, err := s.repo.Update(ctx, id, func(v *model.ContactView) error {
		cv := contactform.Restore(s.checker, v.Form, v.Status)
		for _, f := range model.Fields {
			if err := cv.Change(f, form.Value(f)); err != nil {
				return err
			}
		}
		submitErr = cv.Submit()
		v.Form = cv.Form()
		v.Status = cv.Status()
		return nil
	})
	if err != nil {
		return nil, err
	}

	var rerr *contactform.RequiredFieldsError
	if errors.As(submitErr, &rerr) {
		slog.Info("contact submission blocked", "view_id", id, "missing", rerr.Fields)
		return view, submitErr
	}
	slog.Info("contact form submitted", "view_id", id)
	return view, nil
}
