package ledger

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func TestRecordAndQueryRuns(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "ceremony.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	first := Record{
		ElectionScopeID: "scope-1",
		GuardianCount:   5,
		Quorum:          3,
		JointKeyHash:    "AB12",
		CreatedAt:       time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	if err := store.RecordRun(ctx, first); err != nil {
		t.Fatalf("RecordRun failed: %v", err)
	}
	if err := store.RecordRun(ctx, Record{ElectionScopeID: "scope-2", GuardianCount: 3, Quorum: 2, JointKeyHash: "CD34"}); err != nil {
		t.Fatalf("RecordRun failed: %v", err)
	}

	runs, err := store.Runs(ctx)
	if err != nil {
		t.Fatalf("Runs failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}
	// Newest first.
	if runs[0].ElectionScopeID != "scope-2" {
		t.Errorf("runs[0] = %+v, want scope-2 first", runs[0])
	}
	if runs[1].GuardianCount != 5 || runs[1].Quorum != 3 || runs[1].JointKeyHash != "AB12" {
		t.Errorf("runs[1] = %+v, want the scope-1 record", runs[1])
	}
	if !runs[1].CreatedAt.Equal(first.CreatedAt) {
		t.Errorf("runs[1].CreatedAt = %v, want %v", runs[1].CreatedAt, first.CreatedAt)
	}
}

func TestOpenReusesExistingLedger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ceremony.db")
	ctx := context.Background()

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := store.RecordRun(ctx, Record{ElectionScopeID: "scope-1", GuardianCount: 2, Quorum: 2, JointKeyHash: "EF"}); err != nil {
		t.Fatalf("RecordRun failed: %v", err)
	}
	store.Close()

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	runs, err := reopened.Runs(ctx)
	if err != nil {
		t.Fatalf("Runs failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("got %d runs after reopen, want 1", len(runs))
	}
}
