package repositories

import (
	"database/sql"
	"testing"

	"github.com/rkhatta1/TheVersusProject/internal/models"
	"github.com/rkhatta1/TheVersusProject/internal/shared"
)

// setupTestDB creates an in-memory SQLite database with migrations applied
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := shared.RunMigrations(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	return db
}

func sampleItems() []models.NewsItem {
	return []models.NewsItem{
		{Headline: "first", Summary: "s1", SourceCaption: "sc1", VersusCaption: "vc1"},
		{Headline: "second", Summary: "s2", SourceCaption: "sc2", VersusCaption: "vc2", Saved: true},
	}
}

func TestCacheKey(t *testing.T) {
	if got := CacheKey(""); got != GuestCacheKey {
		t.Errorf("expected guest key for empty token, got %q", got)
	}
	if got := CacheKey("abc123"); got != "news_abc123" {
		t.Errorf("expected token-derived key, got %q", got)
	}
}

func TestFeedCacheRepository(t *testing.T) {
	t.Run("Write And Read Round Trip", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewFeedCacheRepository(db)
		if err := repo.Write(GuestCacheKey, sampleItems()); err != nil {
			t.Fatalf("failed to write snapshot: %v", err)
		}

		items := repo.Read(GuestCacheKey)
		if len(items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(items))
		}
		if items[0].Headline != "first" || !items[1].Saved {
			t.Errorf("round trip lost data: %v", items)
		}
	})

	t.Run("Write Replaces Previous Snapshot", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewFeedCacheRepository(db)
		if err := repo.Write(GuestCacheKey, sampleItems()); err != nil {
			t.Fatalf("failed to write snapshot: %v", err)
		}
		if err := repo.Write(GuestCacheKey, sampleItems()[:1]); err != nil {
			t.Fatalf("failed to overwrite snapshot: %v", err)
		}

		if items := repo.Read(GuestCacheKey); len(items) != 1 {
			t.Errorf("expected snapshot replaced, got %v", items)
		}
	})

	t.Run("Absent Key Yields Empty List", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewFeedCacheRepository(db)
		items := repo.Read("news_nobody")
		if items == nil || len(items) != 0 {
			t.Errorf("expected empty non-nil list, got %v", items)
		}
	})

	t.Run("Corrupted Payload Yields Empty List", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		if _, err := db.Exec(
			"INSERT INTO feed_cache (cache_key, payload) VALUES (?, ?)",
			GuestCacheKey, "{not valid json",
		); err != nil {
			t.Fatalf("failed to plant corrupted row: %v", err)
		}

		repo := NewFeedCacheRepository(db)
		if items := repo.Read(GuestCacheKey); len(items) != 0 {
			t.Errorf("expected corruption to degrade to empty list, got %v", items)
		}
	})

	t.Run("Keys Are Isolated", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewFeedCacheRepository(db)
		if err := repo.Write(CacheKey("alice"), sampleItems()); err != nil {
			t.Fatalf("failed to write snapshot: %v", err)
		}
		if err := repo.Write(GuestCacheKey, sampleItems()[:1]); err != nil {
			t.Fatalf("failed to write snapshot: %v", err)
		}

		if items := repo.Read(CacheKey("alice")); len(items) != 2 {
			t.Errorf("expected alice's snapshot intact, got %v", items)
		}
		if items := repo.Read(GuestCacheKey); len(items) != 1 {
			t.Errorf("expected guest snapshot intact, got %v", items)
		}
	})

	t.Run("Clear Removes Only The Target Key", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewFeedCacheRepository(db)
		if err := repo.Write(CacheKey("alice"), sampleItems()); err != nil {
			t.Fatalf("failed to write snapshot: %v", err)
		}
		if err := repo.Write(GuestCacheKey, sampleItems()); err != nil {
			t.Fatalf("failed to write snapshot: %v", err)
		}

		if err := repo.Clear(GuestCacheKey); err != nil {
			t.Fatalf("failed to clear snapshot: %v", err)
		}

		if items := repo.Read(GuestCacheKey); len(items) != 0 {
			t.Errorf("expected guest snapshot gone, got %v", items)
		}
		if items := repo.Read(CacheKey("alice")); len(items) != 2 {
			t.Errorf("expected alice's snapshot to survive, got %v", items)
		}
	})

	t.Run("Clear Of Absent Key Is A No-Op", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewFeedCacheRepository(db)
		if err := repo.Clear("news_nobody"); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("Keys Lists Stored Partitions", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewFeedCacheRepository(db)
		if err := repo.Write(GuestCacheKey, sampleItems()); err != nil {
			t.Fatalf("failed to write snapshot: %v", err)
		}
		if err := repo.Write(CacheKey("alice"), sampleItems()); err != nil {
			t.Fatalf("failed to write snapshot: %v", err)
		}

		keys, err := repo.Keys()
		if err != nil {
			t.Fatalf("failed to list keys: %v", err)
		}
		if len(keys) != 2 {
			t.Fatalf("expected 2 keys, got %v", keys)
		}
		if keys[0] != "news_alice" || keys[1] != GuestCacheKey {
			t.Errorf("expected sorted keys, got %v", keys)
		}
	})

	t.Run("Nil Items Stored As Empty List", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewFeedCacheRepository(db)
		if err := repo.Write(GuestCacheKey, nil); err != nil {
			t.Fatalf("failed to write nil snapshot: %v", err)
		}
		if items := repo.Read(GuestCacheKey); items == nil || len(items) != 0 {
			t.Errorf("expected empty non-nil list, got %v", items)
		}
	})
}
