package store

import (
	"context"
	"fmt"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	// A named in-memory DB per test keeps tests isolated while the
	// shared cache lets ent and raw queries see the same data.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	s, err := Open(dsn)
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// journal_mode reports "memory" for in-memory databases, so it
		// is only meaningful against file-backed DBs and skipped here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func samplePayload() QuestionPayload {
	return QuestionPayload{
		Question:    "Which gas do plants absorb?",
		Options:     []string{"Oxygen", "Carbon dioxide", "Nitrogen", "Helium"},
		Answer:      "Carbon dioxide",
		Explanation: "Photosynthesis consumes CO2.",
	}
}

func TestQuestionReuseCycle(t *testing.T) {
	s := openTestStore(t)
	repo := s.Questions()
	ctx := context.Background()

	// Empty cache: nothing reusable.
	q, err := repo.NextReusable(ctx, "biology")
	if err != nil {
		t.Fatalf("NextReusable: %v", err)
	}
	if q != nil {
		t.Fatal("expected no reusable question in empty cache")
	}

	saved, err := repo.Save(ctx, "biology", samplePayload())
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if saved.UsageCount != 1 {
		t.Errorf("usage after save = %d, want 1", saved.UsageCount)
	}

	// Reuse until the cap: 4 more serves reach MaxUsage.
	for i := 0; i < MaxUsage-1; i++ {
		q, err = repo.NextReusable(ctx, "biology")
		if err != nil {
			t.Fatalf("NextReusable #%d: %v", i, err)
		}
		if q == nil {
			t.Fatalf("question should be reusable on serve #%d", i)
		}
	}
	if q.UsageCount != MaxUsage {
		t.Errorf("usage = %d, want %d", q.UsageCount, MaxUsage)
	}

	// Worn out now.
	q, err = repo.NextReusable(ctx, "biology")
	if err != nil {
		t.Fatalf("NextReusable: %v", err)
	}
	if q != nil {
		t.Errorf("question at usage %d must not be reused", MaxUsage)
	}
}

func TestQuestionTopicIsolation(t *testing.T) {
	s := openTestStore(t)
	repo := s.Questions()
	ctx := context.Background()

	if _, err := repo.Save(ctx, "history", samplePayload()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	q, err := repo.NextReusable(ctx, "geography")
	if err != nil {
		t.Fatalf("NextReusable: %v", err)
	}
	if q != nil {
		t.Error("question cached for another topic must not be served")
	}
}

func TestNextReusableSkipsExcluded(t *testing.T) {
	s := openTestStore(t)
	repo := s.Questions()
	ctx := context.Background()

	first, err := repo.Save(ctx, "physics", samplePayload())
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	// The only cached row is excluded, so nothing is reusable even
	// though its usage count is below the cap.
	q, err := repo.NextReusable(ctx, "physics", first.ID)
	if err != nil {
		t.Fatalf("NextReusable: %v", err)
	}
	if q != nil {
		t.Fatalf("excluded question %d was served again", q.ID)
	}

	second, err := repo.Save(ctx, "physics", samplePayload())
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	q, err = repo.NextReusable(ctx, "physics", first.ID)
	if err != nil {
		t.Fatalf("NextReusable: %v", err)
	}
	if q == nil {
		t.Fatal("second question should be reusable")
	}
	if q.ID != second.ID {
		t.Errorf("served question %d, want %d", q.ID, second.ID)
	}
}

func TestQuestionWipe(t *testing.T) {
	s := openTestStore(t)
	repo := s.Questions()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := repo.Save(ctx, "math", samplePayload()); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	n, err := repo.Wipe(ctx)
	if err != nil {
		t.Fatalf("Wipe: %v", err)
	}
	if n != 3 {
		t.Errorf("wiped %d rows, want 3", n)
	}
}

func TestAppendLLMRequestEvent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	err := s.Events().AppendLLMRequest(ctx, LLMRequestEventData{
		Model:        "gemini-2.0-flash",
		Purpose:      "question-generation",
		InputTokens:  120,
		OutputTokens: 80,
		LatencyMs:    450,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("AppendLLMRequest: %v", err)
	}

	n, err := s.Client().LLMRequestEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count events: %v", err)
	}
	if n != 1 {
		t.Errorf("event count = %d, want 1", n)
	}
}
