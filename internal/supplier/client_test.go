package supplier

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const goodBody = `{
  "count": 2,
  "questions": [
    {"id": 1, "source": "database", "quiz": {
      "question": "What is the capital of France?",
      "options": ["Lyon", "Paris", "Nice", "Lille"],
      "answer": "Paris",
      "explanation": "Paris has been the capital since 987."}},
    {"id": 2, "source": "ai_generated", "quiz": {
      "question": "What is 2 + 2?",
      "options": ["3", "4", "5", "6"],
      "answer": "4",
      "explanation": "Basic addition."}}
  ]
}`

func newServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchSuccess(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/quiz", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(goodBody))
	})

	batch, err := New(srv.URL).Fetch(context.Background(), "")
	require.NoError(t, err)
	require.Equal(t, 2, batch.Len())
	assert.Equal(t, 2, batch.Count)
	assert.Equal(t, "Paris", batch.Questions[0].Answer)
	assert.Equal(t, "ai_generated", batch.Questions[1].Source)
}

func TestFetchTopicPath(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/quiz/history", r.URL.Path)
		w.Write([]byte(goodBody))
	})

	_, err := New(srv.URL).Fetch(context.Background(), "history")
	require.NoError(t, err)
}

func TestFetchServerError(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"generation failed"}`, http.StatusInternalServerError)
	})

	batch, err := New(srv.URL).Fetch(context.Background(), "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFetchFailed))
	assert.Nil(t, batch)
}

func TestFetchMalformedBody(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"count": 1, "questions": [`))
	})

	_, err := New(srv.URL).Fetch(context.Background(), "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFetchFailed))
}

func TestFetchCountMismatch(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		body := `{"count": 5, "questions": [
		  {"id": 1, "source": "database", "quiz": {
		    "question": "q", "options": ["a","b","c","d"],
		    "answer": "a", "explanation": "e"}}]}`
		w.Write([]byte(body))
	})

	_, err := New(srv.URL).Fetch(context.Background(), "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFetchFailed))
}

func TestFetchAnswerNotAmongOptions(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		body := `{"count": 1, "questions": [
		  {"id": 1, "source": "database", "quiz": {
		    "question": "q", "options": ["a","b","c","d"],
		    "answer": "z", "explanation": "e"}}]}`
		w.Write([]byte(body))
	})

	_, err := New(srv.URL).Fetch(context.Background(), "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFetchFailed))
}

func TestFetchConnectionRefused(t *testing.T) {
	// Port 1 is essentially never listening.
	_, err := New("http://127.0.0.1:1").Fetch(context.Background(), "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFetchFailed))
}
