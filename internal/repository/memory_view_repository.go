package repository

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/givers/contact/internal/model"
)

const minCleanupInterval = time.Second

// MemoryViewRepository is an in-process ViewRepository. Views untouched for
// longer than the TTL are evicted by a background loop.
type MemoryViewRepository struct {
	ttl time.Duration
	now func() time.Time

	mu    sync.Mutex
	views map[string]*model.ContactView

	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// Ensure MemoryViewRepository implements ViewRepository at compile time.
var _ ViewRepository = (*MemoryViewRepository)(nil)

// NewMemoryViewRepository creates the repository and starts its cleanup loop.
// Call Close to stop the loop.
func NewMemoryViewRepository(ttl time.Duration) *MemoryViewRepository {
	r := &MemoryViewRepository{
		ttl:   ttl,
		now:   time.Now,
		views: make(map[string]*model.ContactView),
		done:  make(chan struct{}),
	}

	interval := ttl / 2
	if interval < minCleanupInterval {
		interval = minCleanupInterval
	}
	r.wg.Add(1)
	go r.cleanupLoop(interval)
	return r
}

func (r *MemoryViewRepository) cleanupLoop(interval time.Duration) {
	defer r.wg.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-r.done:
			return
		case <-ticker.C:
			if n := r.EvictIdle(r.now()); n > 0 {
				slog.Debug("evicted idle contact views", "count", n)
			}
		}
	}
}

// EvictIdle removes every view last updated before now minus the TTL and
// returns how many were removed.
func (r *MemoryViewRepository) EvictIdle(now time.Time) int {
	cutoff := now.Add(-r.ttl)
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for id, v := range r.views {
		if v.UpdatedAt.Before(cutoff) {
			delete(r.views, id)
			n++
		}
	}
	return n
}

// Close stops the cleanup loop. Stored views stay readable.
func (r *MemoryViewRepository) Close() {
	r.closeOnce.Do(func() { close(r.done) })
	r.wg.Wait()
}

func (r *MemoryViewRepository) Create(ctx context.Context, view *model.ContactView) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if view.ID == "" {
		view.ID = uuid.NewString()
	}
	now := r.now().UTC()
	view.CreatedAt = now
	view.UpdatedAt = now

	stored := *view
	r.mu.Lock()
	r.views[view.ID] = &stored
	r.mu.Unlock()
	return nil
}

func (r *MemoryViewRepository) Get(ctx context.Context, id string) (*model.ContactView, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.views[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *v
	return &out, nil
}

func (r *MemoryViewRepository) Update(ctx context.Context, id string, fn func(view *model.ContactView) error) (*model.ContactView, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.views[id]
	if !ok {
		return nil, ErrNotFound
	}

	next := *v
	if err := fn(&next); err != nil {
		return nil, err
	}
	next.ID = v.ID
	next.CreatedAt = v.CreatedAt
	next.UpdatedAt = r.now().UTC()
	r.views[id] = &next

	out := next
	return &out, nil
}

func (r *MemoryViewRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.views[id]; !ok {
		return ErrNotFound
	}
	delete(r.views, id)
	return nil
}

// Len returns the number of live views.
func (r *MemoryViewRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.views)
}
