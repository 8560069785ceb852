package frecency

import (
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s := New(filepath.Join(t.TempDir(), "usage.db"))
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordLaunchIncrement(t *testing.T) {
	s := newTestStore(t)

	if err := s.RecordLaunch("firefox.desktop"); err != nil {
		t.Fatalf("RecordLaunch failed: %v", err)
	}

	rec, ok := s.Stats("firefox.desktop")
	if !ok {
		t.Fatal("expected record after first launch")
	}
	if rec.LaunchCount != 1 {
		t.Errorf("expected launch_count=1, got %d", rec.LaunchCount)
	}
	if rec.CreatedAt == 0 || rec.LastLaunch == 0 {
		t.Errorf("expected timestamps to be set, got %+v", rec)
	}

	s.RecordLaunch("firefox.desktop")

	rec, ok = s.Stats("firefox.desktop")
	if !ok {
		t.Fatal("expected record after second launch")
	}
	if rec.LaunchCount != 2 {
		t.Errorf("expected launch_count=2 (not a new record), got %d", rec.LaunchCount)
	}
}

func TestRecordLaunchPreservesCreatedAt(t *testing.T) {
	s := newTestStore(t)

	first := time.Now().Add(-48 * time.Hour)
	s.now = func() time.Time { return first }
	s.RecordLaunch("code.desktop")

	s.now = time.Now
	s.RecordLaunch("code.desktop")

	rec, ok := s.Stats("code.desktop")
	if !ok {
		t.Fatal("expected record")
	}
	if rec.CreatedAt != first.Unix() {
		t.Errorf("created_at changed on update: got %d, want %d", rec.CreatedAt, first.Unix())
	}
	if rec.LastLaunch == first.Unix() {
		t.Error("last_launch was not refreshed")
	}
}

func TestTopItemsOrdering(t *testing.T) {
	s := newTestStore(t)
	base := time.Now()

	// Low count but very recent.
	s.now = func() time.Time { return base.Add(-time.Hour) }
	s.RecordLaunch("new.desktop")
	s.RecordLaunch("new.desktop")

	// High count but stale.
	s.now = func() time.Time { return base.Add(-100 * 24 * time.Hour) }
	for i := 0; i < 10; i++ {
		s.RecordLaunch("old.desktop")
	}

	s.now = func() time.Time { return base }
	items := s.TopItems(10, 1)
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}

	if items[0].ItemID != "new.desktop" {
		t.Errorf("expected new.desktop first, got %s", items[0].ItemID)
	}
	if items[0].Score != 200 {
		t.Errorf("expected new.desktop score 200, got %v", items[0].Score)
	}
	if items[1].Score != 100 {
		t.Errorf("expected old.desktop score 100, got %v", items[1].Score)
	}
}

func TestTopItemsMinLaunchesFilter(t *testing.T) {
	s := newTestStore(t)

	s.RecordLaunch("once.desktop")

	if items := s.TopItems(10, 2); len(items) != 0 {
		t.Errorf("expected single-launch item filtered out, got %v", items)
	}
	if items := s.TopItems(10, 1); len(items) != 1 {
		t.Errorf("expected item with min_launches=1, got %v", items)
	}
}

func TestTopItemsLimit(t *testing.T) {
	s := newTestStore(t)

	for _, id := range []string{"a.desktop", "b.desktop", "c.desktop"} {
		s.RecordLaunch(id)
	}

	if items := s.TopItems(2, 1); len(items) != 2 {
		t.Errorf("expected limit 2, got %d items", len(items))
	}
}

func TestTotalLaunches(t *testing.T) {
	s := newTestStore(t)

	if got := s.TotalLaunches(); got != 0 {
		t.Errorf("expected 0 launches on empty store, got %d", got)
	}

	s.RecordLaunch("a.desktop")
	s.RecordLaunch("a.desktop")
	s.RecordLaunch("b.desktop")

	if got := s.TotalLaunches(); got != 3 {
		t.Errorf("expected 3 total launches, got %d", got)
	}
}

func TestClear(t *testing.T) {
	s := newTestStore(t)

	s.RecordLaunch("a.desktop")
	s.RecordLaunch("b.desktop")

	s.Clear("a.desktop")
	if _, ok := s.Stats("a.desktop"); ok {
		t.Error("expected a.desktop cleared")
	}
	if _, ok := s.Stats("b.desktop"); !ok {
		t.Error("expected b.desktop untouched")
	}

	s.ClearAll()
	if got := s.TotalLaunches(); got != 0 {
		t.Errorf("expected empty store after ClearAll, got %d launches", got)
	}
}

func TestChangedNotification(t *testing.T) {
	s := newTestStore(t)

	var fired int
	s.OnChange(func() { fired++ })

	s.RecordLaunch("a.desktop")
	if fired != 1 {
		t.Errorf("expected 1 notification after RecordLaunch, got %d", fired)
	}

	s.Clear("a.desktop")
	if fired != 2 {
		t.Errorf("expected notification after Clear, got %d", fired)
	}

	// Reads never notify.
	s.TopItems(5, 1)
	s.TotalLaunches()
	if fired != 2 {
		t.Errorf("expected no notification on reads, got %d", fired)
	}
}

func TestConcurrentRecordLaunch(t *testing.T) {
	s := newTestStore(t)

	const n = 25
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			s.RecordLaunch("racy.desktop")
		}()
	}
	wg.Wait()

	rec, ok := s.Stats("racy.desktop")
	if !ok {
		t.Fatal("expected record")
	}
	if rec.LaunchCount != n {
		t.Errorf("lost update: expected launch_count=%d, got %d", n, rec.LaunchCount)
	}
}

func TestDegradedStoreIsSafe(t *testing.T) {
	// Pointing the store at an existing directory makes the open fail.
	s := New(t.TempDir())
	if err := s.Init(); err == nil {
		t.Fatal("expected Init to fail for a directory path")
	}

	var fired int
	s.OnChange(func() { fired++ })

	// Every operation must be a silent no-op.
	if err := s.RecordLaunch("a.desktop"); err != nil {
		t.Errorf("RecordLaunch on degraded store returned error: %v", err)
	}
	if items := s.TopItems(5, 1); items != nil {
		t.Errorf("expected empty TopItems, got %v", items)
	}
	if _, ok := s.Stats("a.desktop"); ok {
		t.Error("expected no stats from degraded store")
	}
	if got := s.TotalLaunches(); got != 0 {
		t.Errorf("expected 0 total launches, got %d", got)
	}
	if err := s.ClearAll(); err != nil {
		t.Errorf("ClearAll on degraded store returned error: %v", err)
	}
	if fired != 0 {
		t.Errorf("degraded store must not notify, got %d notifications", fired)
	}
}

func TestRecordSearch(t *testing.T) {
	s := newTestStore(t)

	if got := s.SearchCount(); got != 0 {
		t.Errorf("expected 0 searches, got %d", got)
	}

	s.RecordSearch("firefox", "app_search", 3)
	s.RecordSearch("= 2 + 2", "calculator", 1)

	if got := s.SearchCount(); got != 2 {
		t.Errorf("expected 2 searches, got %d", got)
	}

	// Only a hash is stored, never the query text.
	var hash string
	row := s.db.QueryRow("SELECT query_hash FROM search_history LIMIT 1")
	if err := row.Scan(&hash); err != nil {
		t.Fatalf("failed to read search row: %v", err)
	}
	if hash == "firefox" || hash == "= 2 + 2" {
		t.Error("query text stored verbatim, expected a hash")
	}
	if hash != HashQuery("firefox") {
		t.Errorf("unexpected hash %s", hash)
	}
}
