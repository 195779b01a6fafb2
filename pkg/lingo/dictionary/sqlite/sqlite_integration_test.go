package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/cognicore/lingo/pkg/lingo/dictionary"
)

// TestSQLiteDictionaryBasic tests membership and idempotent insertion.
func TestSQLiteDictionaryBasic(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "dict.db")

	st, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer st.Close()

	if st.Contains("w") {
		t.Error("fresh store should contain nothing")
	}

	added, err := st.Add("w")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if !added {
		t.Error("first Add should report newly added")
	}

	added, err = st.Add("w")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if added {
		t.Error("second Add should report already present")
	}

	if !st.Contains("w") {
		t.Error("Contains after Add should be true")
	}
}

// TestSQLiteDictionaryPersistence verifies words survive a reopen.
func TestSQLiteDictionaryPersistence(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "dict.db")

	st, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	for _, w := range []string{"w", "s", "минус"} {
		if _, err := st.Add(w); err != nil {
			t.Fatalf("Add(%q): %v", w, err)
		}
	}
	if err := st.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	st, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer st.Close()

	all, err := st.GetAll()
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("got %d words after reopen, want 3", len(all))
	}
	for _, w := range []string{"w", "s", "минус"} {
		if _, ok := all[w]; !ok {
			t.Errorf("missing %q after reopen", w)
		}
	}
}

// TestSQLiteAsBackingStore runs the store behind a cached dictionary.
func TestSQLiteAsBackingStore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "dict.db")

	st, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer st.Close()

	if _, err := st.Add("persisted"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	cache := dictionary.NewCachedWith(st)
	if cache.Contains("persisted") {
		t.Error("cache should be empty before Sync")
	}

	if err := cache.Sync(); err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if !cache.Contains("persisted") {
		t.Error("cache should see stored words after Sync")
	}

	// New words flow back down.
	if _, err := cache.Add("fresh"); err != nil {
		t.Fatalf("cache Add: %v", err)
	}
	if !st.Contains("fresh") {
		t.Error("write-through word missing from the database")
	}
}

func TestSQLiteSeed(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "dict.db")

	st, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer st.Close()

	added, err := st.Seed([]string{"w", "s", "w", "f"})
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if added != 3 {
		t.Errorf("Seed added = %d, want 3", added)
	}

	added, err = st.Seed([]string{"w", "g"})
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if added != 1 {
		t.Errorf("second Seed added = %d, want 1", added)
	}
}
