package handler

import (
	"sync/atomic"
)

// ViewCounter reports how many contact views are alive.
type ViewCounter interface {
	Len() int
}

// Handler serves process-level endpoints such as the health check.
type Handler struct {
	views    ViewCounter
	draining atomic.Bool
}

func New(views ViewCounter) *Handler {
	return &Handler{views: views}
}

// SetDraining marks the server as shutting down; Health then reports 503 so a
// load balancer stops routing new views here.
func (h *Handler) SetDraining(v bool) {
	h.draining.Store(v)
}
