// Package httpapi exposes the document store, login, and media presign
// endpoints over HTTP.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ourstory-app/ourstory/internal/common"
	"github.com/ourstory-app/ourstory/internal/logging"
	"github.com/ourstory-app/ourstory/internal/server/auth"
	sc "github.com/ourstory-app/ourstory/internal/server/config"
	"github.com/ourstory-app/ourstory/internal/server/documents"
	"github.com/ourstory-app/ourstory/internal/server/media"
)

// MediaService is the slice of the media package the handlers use.
type MediaService interface {
	GrantUpload(ctx context.Context, recordID, fileName string) (media.Upload, error)
}

type Handler struct {
	repo   documents.Repository
	media  MediaService
	config *sc.Config
	logger logging.Logger
}

func NewHandler(repo documents.Repository, mediaSvc MediaService, config *sc.Config, logger logging.Logger) *Handler {
	return &Handler{repo: repo, media: mediaSvc, config: config, logger: logger}
}

func knownCollection(name string) bool {
	switch name {
	case common.CollectionRecords, common.CollectionWishlist, common.CollectionConfig, common.CollectionMeta:
		return true
	}
	return false
}

func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Passcode string `json:"passcode"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(r.Context(), w, common.ErrorUnauthorized)
		return
	}

	if err := auth.CheckPasscode(h.config.PasscodeHash, req.Passcode); err != nil {
		h.writeError(r.Context(), w, err)
		return
	}

	token, err := auth.GenerateToken([]byte(h.config.SecretKey), h.config.AccessTokenValidityDuration)
	if err != nil {
		h.writeError(r.Context(), w, err)
		return
	}

	h.writeJSON(r.Context(), w, http.StatusOK, map[string]string{"access_token": token})
}

func (h *Handler) listDocuments(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection")
	if !knownCollection(collection) {
		h.writeError(r.Context(), w, common.ErrorUnknownCollection)
		return
	}

	docs, err := h.repo.ListAll(r.Context(), collection)
	if err != nil {
		h.writeError(r.Context(), w, err)
		return
	}

	type doc struct {
		ID     string          `json:"id"`
		Fields json.RawMessage `json:"fields"`
	}
	out := make([]doc, 0, len(docs))
	for _, d := range docs {
		out = append(out, doc{ID: d.ID, Fields: d.Fields})
	}
	h.writeJSON(r.Context(), w, http.StatusOK, map[string]any{"documents": out})
}

func (h *Handler) getDocument(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection")
	if !knownCollection(collection) {
		h.writeError(r.Context(), w, common.ErrorUnknownCollection)
		return
	}

	d, err := h.repo.Get(r.Context(), collection, chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(r.Context(), w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(d.Fields)
}

func (h *Handler) putDocument(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection")
	if !knownCollection(collection) {
		h.writeError(r.Context(), w, common.ErrorUnknownCollection)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil || !json.Valid(body) {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	merge := r.URL.Query().Get("merge") == "1"
	if err := h.repo.Put(r.Context(), collection, chi.URLParam(r, "id"), body, merge); err != nil {
		h.writeError(r.Context(), w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteDocument(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection")
	if !knownCollection(collection) {
		h.writeError(r.Context(), w, common.ErrorUnknownCollection)
		return
	}

	if err := h.repo.Delete(r.Context(), collection, chi.URLParam(r, "id")); err != nil {
		h.writeError(r.Context(), w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteCollection(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection")
	if !knownCollection(collection) {
		h.writeError(r.Context(), w, common.ErrorUnknownCollection)
		return
	}

	if err := h.repo.DeleteAll(r.Context(), collection); err != nil {
		h.writeError(r.Context(), w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) presignUpload(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RecordID string `json:"record_id"`
		FileName string `json:"file_name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RecordID == "" || req.FileName == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	up, err := h.media.GrantUpload(r.Context(), req.RecordID, req.FileName)
	if err != nil {
		h.writeError(r.Context(), w, err)
		return
	}

	h.writeJSON(r.Context(), w, http.StatusOK, map[string]string{
		"key":        up.Key,
		"upload_url": up.UploadURL,
		"public_url": up.PublicURL,
	})
}

func (h *Handler) writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error(ctx, "response write failed", "error", err)
	}
}

func (h *Handler) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, common.ErrorNotFound), errors.Is(err, common.ErrorUnknownCollection):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, common.ErrorUnauthorized),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired):
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	default:
		h.logger.Error(ctx, "request failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
