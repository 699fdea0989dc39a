package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ourstory-app/ourstory/internal/common"
	"github.com/ourstory-app/ourstory/internal/journal"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 2*time.Second)
}

func TestClient_Login(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/session", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body["passcode"] != "250922" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"access_token": "tok123"})
	}))

	err := c.Login(context.Background(), "wrong")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
	assert.False(t, c.HasToken())

	require.NoError(t, c.Login(context.Background(), "250922"))
	assert.True(t, c.HasToken())
}

func TestClient_ListRecords(t *testing.T) {
	date := journal.NewDate(2024, 7, 15)
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/collections/records", r.URL.Path)
		assert.Equal(t, "Bearer tok123", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode(map[string]any{
			"documents": []map[string]any{
				{"id": "r1", "fields": map[string]any{"id": "r1", "title": "Cena", "date": "2024-07-15", "category": "Food"}},
			},
		})
	}))
	c.SetToken("tok123")

	records, err := c.ListRecords(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "r1", records[0].ID)
	assert.Equal(t, "Cena", records[0].Title)
	assert.True(t, date.Equal(records[0].Date))
}

func TestClient_PutMergeFlag(t *testing.T) {
	var gotMerge string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		gotMerge = r.URL.Query().Get("merge")
	}))

	require.NoError(t, c.Put(context.Background(), common.CollectionConfig, "shared", map[string]any{"name": "N"}, true))
	assert.Equal(t, "1", gotMerge)

	require.NoError(t, c.Put(context.Background(), common.CollectionConfig, "shared", map[string]any{"name": "N"}, false))
	assert.Empty(t, gotMerge)
}

func TestClient_GetNotFound(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := c.Get(context.Background(), common.CollectionMeta, "tennis")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestClient_UploadImage(t *testing.T) {
	var uploaded []byte
	mux := http.NewServeMux()
	var base string
	mux.HandleFunc("POST /api/media/presign", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "r1", req["record_id"])
		json.NewEncoder(w).Encode(PresignResult{
			Key:       "memories/r1/pic.jpg-abc",
			UploadURL: base + "/upload",
			PublicURL: base + "/memories/r1/pic.jpg-abc",
		})
	})
	mux.HandleFunc("PUT /upload", func(w http.ResponseWriter, r *http.Request) {
		var err error
		uploaded, err = io.ReadAll(r.Body)
		require.NoError(t, err)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	base = srv.URL

	c := NewClient(srv.URL, 2*time.Second)
	url, err := c.UploadImage(context.Background(), "r1", "pic.jpg", []byte("imagedata"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, base+"/memories/r1/pic.jpg-abc", url)
	assert.Equal(t, []byte("imagedata"), uploaded)
}
