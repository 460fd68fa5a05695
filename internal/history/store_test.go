package history_test

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"tubeget/internal/history"
)

func openTestStore(t *testing.T) *history.Store {
	t.Helper()
	store, err := history.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_AddAndRecent(t *testing.T) {
	store := openTestStore(t)
	rec := history.Record{
		ID:         "a1",
		URL:        "https://www.youtube.com/watch?v=abc123",
		Title:      "My_Video",
		Quality:    "720p",
		Path:       "downloads/My_Video.mp4",
		Size:       1024,
		FinishedAt: time.Now().Truncate(time.Second),
	}
	if err := store.Add(rec); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	records, err := store.Recent(10)
	if err != nil {
		t.Fatalf("recent failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	got := records[0]
	if got.URL != rec.URL || got.Title != rec.Title || got.Quality != rec.Quality || got.Size != rec.Size {
		t.Fatalf("record mismatch: %+v vs %+v", got, rec)
	}
}

func TestStore_RecentOrderAndLimit(t *testing.T) {
	store := openTestStore(t)
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		rec := history.Record{
			ID:         fmt.Sprintf("id-%d", i),
			URL:        fmt.Sprintf("https://youtu.be/video%d", i),
			Quality:    "480p",
			FinishedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := store.Add(rec); err != nil {
			t.Fatalf("add %d failed: %v", i, err)
		}
	}
	records, err := store.Recent(3)
	if err != nil {
		t.Fatalf("recent failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected limit of 3, got %d", len(records))
	}
	if records[0].ID != "id-4" {
		t.Fatalf("expected newest record first, got %s", records[0].ID)
	}
}

func TestStore_EmptyRecent(t *testing.T) {
	store := openTestStore(t)
	records, err := store.Recent(10)
	if err != nil {
		t.Fatalf("recent failed: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
}
