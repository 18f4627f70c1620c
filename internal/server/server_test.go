package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizdeck/quizdeck/internal/store"
	"github.com/quizdeck/quizdeck/internal/supplier"
)

// fakeCache mirrors the repo contract: rows stay reusable until
// MaxUsage, the least-used one wins, excluded IDs are skipped, and
// Save adds a live row with usage 1.
type fakeCache struct {
	rows  []store.CachedQuestion
	saved []store.QuestionPayload
	err   error
}

func (f *fakeCache) NextReusable(_ context.Context, topic string, exclude ...int) (*store.CachedQuestion, error) {
	if f.err != nil {
		return nil, f.err
	}
	skip := make(map[int]bool, len(exclude))
	for _, id := range exclude {
		skip[id] = true
	}
	best := -1
	for i := range f.rows {
		r := &f.rows[i]
		if r.Topic != topic || r.UsageCount >= store.MaxUsage || skip[r.ID] {
			continue
		}
		if best == -1 || r.UsageCount < f.rows[best].UsageCount {
			best = i
		}
	}
	if best == -1 {
		return nil, nil
	}
	f.rows[best].UsageCount++
	q := f.rows[best]
	return &q, nil
}

func (f *fakeCache) Save(_ context.Context, topic string, payload store.QuestionPayload) (*store.CachedQuestion, error) {
	f.saved = append(f.saved, payload)
	row := store.CachedQuestion{ID: len(f.rows) + 1, Topic: topic, UsageCount: 1, Payload: payload}
	f.rows = append(f.rows, row)
	return &row, nil
}

type fakeGenerator struct {
	payload store.QuestionPayload
	err     error
	calls   int
}

func (f *fakeGenerator) Generate(_ context.Context, _ string) (*store.QuestionPayload, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	p := f.payload
	return &p, nil
}

func generated() store.QuestionPayload {
	return store.QuestionPayload{
		Question:    "Which metal is liquid at room temperature?",
		Options:     []string{"Mercury", "Iron", "Gold", "Sodium"},
		Answer:      "Mercury",
		Explanation: "Mercury melts at -38.8 C.",
	}
}

func cachedFor(id int, topic string) store.CachedQuestion {
	return store.CachedQuestion{
		ID:         id,
		Topic:      topic,
		UsageCount: 2,
		Payload: store.QuestionPayload{
			Question:    fmt.Sprintf("What year did the Berlin Wall fall? (row %d)", id),
			Options:     []string{"1987", "1989", "1991", "1993"},
			Answer:      "1989",
			Explanation: "The wall was opened in November 1989.",
		},
	}
}

func testConfig() *Config {
	return &Config{
		GinMode:      "test",
		DefaultTopic: "general knowledge",
		BatchSize:    3,
	}
}

func newTestServer(t *testing.T, cache QuestionCache, gen QuestionGenerator) *httptest.Server {
	t.Helper()
	cfg := testConfig()
	h := NewQuizHandler(cache, gen, cfg, zerolog.Nop())
	ts := httptest.NewServer(NewRouter(cfg, h, zerolog.Nop()))
	t.Cleanup(ts.Close)
	return ts
}

func getBatch(t *testing.T, url string) (*http.Response, batchResponse) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	var batch batchResponse
	if resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&batch))
	}
	return resp, batch
}

func TestGetIndex(t *testing.T) {
	ts := newTestServer(t, &fakeCache{}, &fakeGenerator{payload: generated()})

	resp, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestBatchFromCache(t *testing.T) {
	cache := &fakeCache{rows: []store.CachedQuestion{
		cachedFor(1, "general knowledge"),
		cachedFor(2, "general knowledge"),
		cachedFor(3, "general knowledge"),
	}}
	gen := &fakeGenerator{payload: generated()}
	ts := newTestServer(t, cache, gen)

	resp, batch := getBatch(t, ts.URL+"/quiz")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, 3, batch.Count)
	require.Len(t, batch.Questions, 3)
	seen := make(map[string]bool)
	for _, q := range batch.Questions {
		assert.Equal(t, SourceDatabase, q.Source)
		assert.False(t, seen[q.Quiz.Question], "batch repeated %q", q.Quiz.Question)
		seen[q.Quiz.Question] = true
	}
	assert.Equal(t, 0, gen.calls, "generator must not run while the cache can serve")
}

func TestBatchFillsFromGenerator(t *testing.T) {
	cache := &fakeCache{rows: []store.CachedQuestion{cachedFor(1, "history")}}
	gen := &fakeGenerator{payload: generated()}
	ts := newTestServer(t, cache, gen)

	resp, batch := getBatch(t, ts.URL+"/quiz/history")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.Len(t, batch.Questions, 3)
	assert.Equal(t, SourceDatabase, batch.Questions[0].Source)
	assert.Equal(t, SourceAIGenerated, batch.Questions[1].Source)
	assert.Equal(t, SourceAIGenerated, batch.Questions[2].Source)

	assert.Equal(t, 2, gen.calls)
	assert.Len(t, cache.saved, 2, "fresh questions must be cached")
}

// A question saved while assembling a batch stays below MaxUsage, so
// without exclusion the cache would hand it right back for every
// remaining slot. A cold topic must generate once per slot instead.
func TestBatchColdTopicNoRepeats(t *testing.T) {
	cache := &fakeCache{}
	gen := &fakeGenerator{payload: generated()}
	ts := newTestServer(t, cache, gen)

	resp, batch := getBatch(t, ts.URL+"/quiz/astronomy")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.Len(t, batch.Questions, 3)
	for _, q := range batch.Questions {
		assert.Equal(t, SourceAIGenerated, q.Source)
	}
	assert.Equal(t, 3, gen.calls, "each slot of a cold batch needs its own generation")
	assert.Len(t, cache.saved, 3)
}

func TestBatchGenerationFailure(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("model overloaded")}
	ts := newTestServer(t, &fakeCache{}, gen)

	resp, err := http.Get(ts.URL + "/quiz")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body, "error")
}

func TestBatchCacheFailure(t *testing.T) {
	cache := &fakeCache{err: errors.New("database locked")}
	ts := newTestServer(t, cache, &fakeGenerator{payload: generated()})

	resp, _ := getBatch(t, ts.URL+"/quiz")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

// The supplier client and this server share a wire format; fetching
// through the real client pins the two ends together.
func TestClientRoundTrip(t *testing.T) {
	cache := &fakeCache{rows: []store.CachedQuestion{cachedFor(1, "science")}}
	ts := newTestServer(t, cache, &fakeGenerator{payload: generated()})

	client := supplier.New(ts.URL)
	batch, err := client.Fetch(context.Background(), "science")
	require.NoError(t, err)

	assert.Equal(t, 3, batch.Len())
	assert.Equal(t, "1989", batch.Questions[0].Answer)
	assert.Equal(t, SourceDatabase, batch.Questions[0].Source)
	assert.Equal(t, SourceAIGenerated, batch.Questions[1].Source)
}
