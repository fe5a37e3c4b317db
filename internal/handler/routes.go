package handler

import "net/http"

// Routes wires every endpoint into one handler. Only submissions pass through
// the rate limiter; change events fire on every keystroke.
func Routes(h *Handler, contact *ContactHandler, limiter *RateLimiter) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", h.Health)
	mux.Handle("GET /assets/", Assets())

	mux.Handle("GET /{$}", http.RedirectHandler("/contact", http.StatusSeeOther))
	mux.HandleFunc("GET /contact", contact.Open)
	mux.HandleFunc("GET /contact/{id}", contact.Show)
	mux.Handle("POST /contact/{id}", limiter.Middleware(http.HandlerFunc(contact.Submit)))
	mux.HandleFunc("POST /contact/{id}/fields", contact.Change)

	return RequestLogger(SecurityHeaders(mux))
}
