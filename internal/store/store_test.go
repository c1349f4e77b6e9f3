package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
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
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
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

func TestLLMEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, purpose := range []string{"trial-analysis", "session-analysis", "session-analysis"} {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "mock",
			Model:        "mock",
			Purpose:      purpose,
			InputTokens:  100,
			OutputTokens: 50,
			LatencyMs:    20,
			Success:      true,
			RequestBody:  "[user]\ntranscript",
			ResponseBody: `{"ok":true}`,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}
	// Newest first.
	if events[0].Sequence <= events[1].Sequence {
		t.Errorf("events not newest-first: %d then %d", events[0].Sequence, events[1].Sequence)
	}

	filtered, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "trial-analysis"})
	if err != nil {
		t.Fatalf("filtered query: %v", err)
	}
	if len(filtered) != 1 {
		t.Errorf("got %d trial events, want 1", len(filtered))
	}

	got, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.ResponseBody != `{"ok":true}` {
		t.Errorf("get event = %+v", got)
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing event")
	}
}

func TestLLMUsageByPurpose(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider: "mock", Model: "mock", Purpose: "session-analysis",
			InputTokens: 100, OutputTokens: 40, LatencyMs: 30, Success: true,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	usage, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(usage) != 1 {
		t.Fatalf("got %d usage rows, want 1", len(usage))
	}
	u := usage[0]
	if u.Calls != 2 || u.InputTokens != 200 || u.OutputTokens != 80 || u.AvgLatencyMs != 30 {
		t.Errorf("usage = %+v", u)
	}
}

func TestAnalysisEventAppendAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	data := AnalysisEventData{
		RunID:           "run-1",
		Kind:            "session",
		Processor:       "rule-based",
		StudentID:       "student-7",
		TranscriptChars: 1234,
		EngagementScore: 62.5,
		Result:          `{"engagement_score":62.5}`,
	}
	if err := repo.AppendAnalysis(ctx, data); err != nil {
		t.Fatalf("append: %v", err)
	}

	run, err := repo.GetAnalysis(ctx, "run-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if run == nil {
		t.Fatal("run not found")
	}
	if run.Processor != "rule-based" || run.EngagementScore != 62.5 {
		t.Errorf("run = %+v", run)
	}

	runs, err := repo.QueryAnalyses(ctx, QueryOpts{Kind: "trial"})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("got %d trial runs, want 0", len(runs))
	}
}

func TestTopicRepoUpsert(t *testing.T) {
	s := openTestStore(t)
	repo := s.TopicRepo()
	ctx := context.Background()

	missing, err := repo.Get(ctx, "Fractions")
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for unseen topic")
	}

	state := &TopicState{Name: "Fractions", Parent: "Number Sense", Mastery: 50, Confidence: 50, Sessions: 1}
	if err := repo.Upsert(ctx, state); err != nil {
		t.Fatalf("insert: %v", err)
	}

	state.Mastery = 54.5
	state.Sessions = 2
	if err := repo.Upsert(ctx, state); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := repo.Get(ctx, "Fractions")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Mastery != 54.5 || got.Sessions != 2 || got.Parent != "Number Sense" {
		t.Errorf("topic state = %+v", got)
	}

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("got %d topics, want 1 after two upserts", len(all))
	}
}

func TestBlockRepoLifecycle(t *testing.T) {
	s := openTestStore(t)
	repo := s.BlockRepo()
	ctx := context.Background()

	block := &MentalBlock{
		Description: "Avoidance language detected: 'i give up'",
		BlockType:   "avoidance",
		Severity:    3.0,
		Frequency:   1,
		StudentID:   "student-7",
	}
	if err := repo.Create(ctx, block); err != nil {
		t.Fatalf("create: %v", err)
	}
	if block.ID == 0 {
		t.Fatal("create did not set ID")
	}

	block.Frequency = 3
	block.Severity = 6.5
	if err := repo.Update(ctx, block); err != nil {
		t.Fatalf("update: %v", err)
	}

	active, err := repo.ListUnresolved(ctx, "student-7")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(active) != 1 || active[0].Severity != 6.5 || active[0].Frequency != 3 {
		t.Errorf("unresolved = %+v", active)
	}

	if err := repo.Resolve(ctx, block.ID); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	active, err = repo.ListUnresolved(ctx, "student-7")
	if err != nil {
		t.Fatalf("list after resolve: %v", err)
	}
	if len(active) != 0 {
		t.Errorf("got %d unresolved blocks after resolve, want 0", len(active))
	}
}
