package utils

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTranslator(handler http.HandlerFunc) (*Translator, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return &Translator{
		BaseURL: srv.URL,
		Client:  srv.Client(),
	}, srv
}

func TestTranslateText(t *testing.T) {
	t.Run("translates via the API", func(t *testing.T) {
		var gotReq translateRequest
		tr, srv := newTestTranslator(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/translate", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
			json.NewEncoder(w).Encode(translateResponse{TranslatedText: "Hallo"})
		})
		defer srv.Close()

		got := tr.TranslateText(context.Background(), "Hello", "de")

		assert.Equal(t, "Hallo", got)
		assert.Equal(t, "en", gotReq.Source)
		assert.Equal(t, "de", gotReq.Target)
	})

	t.Run("skips the API for english targets", func(t *testing.T) {
		var calls int32
		tr, srv := newTestTranslator(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
		})
		defer srv.Close()

		assert.Equal(t, "Hello", tr.TranslateText(context.Background(), "Hello", "en"))
		assert.Equal(t, "Hello", tr.TranslateText(context.Background(), "Hello", ""))
		assert.Equal(t, "", tr.TranslateText(context.Background(), "", "de"))
		assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
	})

	t.Run("falls back to original on API error", func(t *testing.T) {
		tr, srv := newTestTranslator(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		defer srv.Close()

		assert.Equal(t, "Hello", tr.TranslateText(context.Background(), "Hello", "de"))
	})

	t.Run("falls back to original on bad response body", func(t *testing.T) {
		tr, srv := newTestTranslator(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		})
		defer srv.Close()

		assert.Equal(t, "Hello", tr.TranslateText(context.Background(), "Hello", "de"))
	})

	t.Run("falls back to original when server is unreachable", func(t *testing.T) {
		tr := &Translator{
			BaseURL: "http://127.0.0.1:1",
			Client:  &http.Client{Timeout: time.Second},
		}

		assert.Equal(t, "Hello", tr.TranslateText(context.Background(), "Hello", "de"))
	})
}

func TestTranslateFields(t *testing.T) {
	tr, srv := newTestTranslator(func(w http.ResponseWriter, r *http.Request) {
		var req translateRequest
		json.NewDecoder(r.Body).Decode(&req)
		json.NewEncoder(w).Encode(translateResponse{TranslatedText: req.Q + "-de"})
	})
	defer srv.Close()

	got := tr.TranslateFields(context.Background(), []string{"one", "two"}, "de")
	assert.Equal(t, []string{"one-de", "two-de"}, got)

	same := []string{"one", "two"}
	assert.Equal(t, same, tr.TranslateFields(context.Background(), same, "en"))
	assert.Empty(t, tr.TranslateFields(context.Background(), nil, "de"))
}
