package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/givers/contact/internal/contactform"
	"github.com/givers/contact/internal/model"
	"github.com/givers/contact/internal/repository"
	"github.com/givers/contact/internal/validation"
)

// ---------------------------------------------------------------------------
// mockViewRepository — in-memory stub for testing
// ---------------------------------------------------------------------------

type mockViewRepository struct {
	views      map[string]*model.ContactView
	createFunc func(ctx context.Context, view *model.ContactView) error
}

func newMockViewRepository() *mockViewRepository {
	return &mockViewRepository{views: make(map[string]*model.ContactView)}
}

func (m *mockViewRepository) Create(ctx context.Context, view *model.ContactView) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, view)
	}
	if view.ID == "" {
		view.ID = "view-1"
	}
	cp := *view
	m.views[view.ID] = &cp
	return nil
}

func (m *mockViewRepository) Get(ctx context.Context, id string) (*model.ContactView, error) {
	v, ok := m.views[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *v
	return &cp, nil
}

func (m *mockViewRepository) Update(ctx context.Context, id string, fn func(view *model.ContactView) error) (*model.ContactView, error) {
	v, ok := m.views[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	next := *v
	if err := fn(&next); err != nil {
		return nil, err
	}
	m.views[id] = &next
	out := next
	return &out, nil
}

func (m *mockViewRepository) Delete(ctx context.Context, id string) error {
	delete(m.views, id)
	return nil
}

func (m *mockViewRepository) Len() int { return len(m.views) }

func newTestService(repo repository.ViewRepository) ContactService {
	return NewContactService(repo, validation.NewChecker())
}

// ---------------------------------------------------------------------------
// Open / Get
// ---------------------------------------------------------------------------

func TestContactService_Open_CreatesIdleView(t *testing.T) {
	repo := newMockViewRepository()
	svc := newTestService(repo)

	view, err := svc.Open(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.ID == "" {
		t.Error("expected view ID to be set")
	}
	if view.Status != "" || !view.Form.IsEmpty() {
		t.Errorf("expected empty idle view, got %+v", view)
	}
	if repo.Len() != 1 {
		t.Errorf("expected view stored, got %d", repo.Len())
	}
}

func TestContactService_Open_RepositoryError(t *testing.T) {
	repo := newMockViewRepository()
	repo.createFunc = func(ctx context.Context, view *model.ContactView) error {
		return errors.New("store full")
	}
	svc := newTestService(repo)

	if _, err := svc.Open(context.Background()); err == nil {
		t.Fatal("expected error from Open")
	}
}

func TestContactService_Get_NotFound(t *testing.T) {
	svc := newTestService(newMockViewRepository())
	if _, err := svc.Get(context.Background(), "nope"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Change
// ---------------------------------------------------------------------------

func TestContactService_Change_UpdatesOneField(t *testing.T) {
	repo := newMockViewRepository()
	svc := newTestService(repo)
	view, _ := svc.Open(context.Background())

	if _, err := svc.Change(context.Background(), view.ID, model.FieldName, "Jane"); err != nil {
		t.Fatal(err)
	}
	got, err := svc.Change(context.Background(), view.ID, model.FieldMessage, "Hi")
	if err != nil {
		t.Fatal(err)
	}
	want := model.ContactForm{Name: "Jane", Message: "Hi"}
	if got.Form != want {
		t.Errorf("expected %+v, got %+v", want, got.Form)
	}
}

func TestContactService_Change_UnknownField(t *testing.T) {
	svc := newTestService(newMockViewRepository())
	view, _ := svc.Open(context.Background())

	_, err := svc.Change(context.Background(), view.ID, model.Field("subject"), "x")
	if !errors.Is(err, model.ErrUnknownField) {
		t.Errorf("expected ErrUnknownField, got %v", err)
	}
}

func TestContactService_Change_NotFound(t *testing.T) {
	svc := newTestService(newMockViewRepository())
	_, err := svc.Change(context.Background(), "missing", model.FieldName, "x")
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Submit
// ---------------------------------------------------------------------------

func TestContactService_Submit_Success(t *testing.T) {
	repo := newMockViewRepository()
	svc := newTestService(repo)
	view, _ := svc.Open(context.Background())

	got, err := svc.Submit(context.Background(), view.ID, model.ContactForm{
		Name: "Jane", Email: "jane@x.com", Message: "Hi",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != model.SuccessStatus {
		t.Errorf("expected success status, got %q", got.Status)
	}
	if !got.Form.IsEmpty() {
		t.Errorf("expected fields reset, got %+v", got.Form)
	}

	stored, _ := repo.Get(context.Background(), view.ID)
	if stored.Status != model.SuccessStatus || !stored.Form.IsEmpty() {
		t.Errorf("stored view not updated: %+v", stored)
	}
}

func TestContactService_Submit_MissingFieldKeepsValues(t *testing.T) {
	repo := newMockViewRepository()
	svc := newTestService(repo)
	view, _ := svc.Open(context.Background())

	posted := model.ContactForm{Name: "Jane", Message: "Hi"}
	got, err := svc.Submit(context.Background(), view.ID, posted)

	var rerr *contactform.RequiredFieldsError
	if !errors.As(err, &rerr) {
		t.Fatalf("expected *RequiredFieldsError, got %v", err)
	}
	if rerr.First() != model.FieldEmail {
		t.Errorf("expected email missing, got %v", rerr.Fields)
	}
	if got == nil {
		t.Fatal("expected view alongside the error")
	}
	if got.Status != "" {
		t.Errorf("status must not change, got %q", got.Status)
	}
	if got.Form != posted {
		t.Errorf("expected posted values kept, got %+v", got.Form)
	}
}

func TestContactService_Submit_NotFound(t *testing.T) {
	svc := newTestService(newMockViewRepository())
	_, err := svc.Submit(context.Background(), "missing", model.ContactForm{Name: "a", Email: "b", Message: "c"})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestContactService_WithMemoryRepository(t *testing.T) {
	repo := repository.NewMemoryViewRepository(time.Hour)
	defer repo.Close()
	svc := newTestService(repo)

	view, err := svc.Open(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Submit(context.Background(), view.ID, model.ContactForm{Name: "Jane", Email: "jane@x.com", Message: "Hi"}); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	got, _ := svc.Get(context.Background(), view.ID)
	if got.Status != model.SuccessStatus {
		t.Errorf("expected success status, got %q", got.Status)
	}
}
