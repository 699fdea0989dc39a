package httpapi

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ourstory-app/ourstory/internal/server/auth"
)

// NewRouter wires the full API surface. Everything except the session
// endpoint requires a bearer token.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Post("/api/session", h.createSession)

	r.Group(func(r chi.Router) {
		r.Use(h.requireAuth)

		r.Route("/api/collections/{collection}", func(r chi.Router) {
			r.Get("/", h.listDocuments)
			r.Delete("/", h.deleteCollection)
			r.Get("/{id}", h.getDocument)
			r.Put("/{id}", h.putDocument)
			r.Delete("/{id}", h.deleteDocument)
		})

		r.Post("/api/media/presign", h.presignUpload)
	})

	return r
}

func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := auth.ValidateToken(token, []byte(h.config.SecretKey)); err != nil {
			h.writeError(r.Context(), w, err)
			return
		}

		next.ServeHTTP(w, r)
	})
}
