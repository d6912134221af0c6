package inventory_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"shelf/internal/inventory"
	"shelf/internal/testutil"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONInventory_Scenario(t *testing.T) {
	inv, _ := newTestInventory(t)

	added, err := inv.Add(inventory.NewBook("Clean Code", "Robert Martin", "ISBN001"))
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, 1, inv.Count())

	added, err = inv.Add(inventory.NewBook("Clean Code", "Robert Martin", "ISBN001"))
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, 1, inv.Count())

	outcome, err := inv.Issue("ISBN001")
	require.NoError(t, err)
	assert.Equal(t, inventory.OutcomeDone, outcome)
	b, ok := inv.FindByISBN("ISBN001")
	require.True(t, ok)
	assert.Equal(t, inventory.StatusIssued, b.Status)

	outcome, err = inv.Issue("ISBN001")
	require.NoError(t, err)
	assert.Equal(t, inventory.OutcomeRejected, outcome)

	outcome, err = inv.Return("ISBN001")
	require.NoError(t, err)
	assert.Equal(t, inventory.OutcomeDone, outcome)
	b, _ = inv.FindByISBN("ISBN001")
	assert.Equal(t, inventory.StatusAvailable, b.Status)

	results := inv.SearchTitle("clean")
	require.Len(t, results, 1)
	assert.Equal(t, "ISBN001", results[0].ISBN)
}

func TestJSONInventory_Add(t *testing.T) {
	t.Run("persists the new book immediately", func(t *testing.T) {
		inv, path := newTestInventory(t)

		_, err := inv.Add(inventory.NewBook("Dune", "Frank Herbert", "978-0441013593"))
		require.NoError(t, err)

		reloaded := loadInventory(t, path)
		assert.Equal(t, 1, reloaded.Count())
	})

	t.Run("duplicate isbn does not touch the snapshot", func(t *testing.T) {
		inv, path := newTestInventory(t)
		_, err := inv.Add(inventory.NewBook("Dune", "Frank Herbert", "X1"))
		require.NoError(t, err)
		before, err := os.ReadFile(path)
		require.NoError(t, err)

		added, err := inv.Add(inventory.NewBook("Dune Messiah", "Frank Herbert", "X1"))

		require.NoError(t, err)
		assert.False(t, added)
		after, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, string(before), string(after))
	})

	t.Run("isbn match is case-sensitive", func(t *testing.T) {
		inv, _ := newTestInventory(t)
		_, err := inv.Add(inventory.NewBook("A", "B", "isbn-a"))
		require.NoError(t, err)

		added, err := inv.Add(inventory.NewBook("A", "B", "ISBN-A"))

		require.NoError(t, err)
		assert.True(t, added)
		assert.Equal(t, 2, inv.Count())
	})

	t.Run("reports duplicates as warnings", func(t *testing.T) {
		spy := testutil.NewLogSpy()
		inv := newTestInventoryWithLogger(t, spy)
		_, _ = inv.Add(inventory.NewBook("A", "B", "X1"))

		_, _ = inv.Add(inventory.NewBook("A", "B", "X1"))

		isbn, ok := spy.Attr(slog.LevelWarn, "duplicate isbn rejected", "isbn")
		require.True(t, ok)
		assert.Equal(t, "X1", isbn)
	})

	t.Run("keeps the book in memory but surfaces a failed save", func(t *testing.T) {
		inv, path := newTestInventory(t)
		require.NoError(t, os.Mkdir(path, 0o755))

		added, err := inv.Add(inventory.NewBook("A", "B", "X1"))

		assert.True(t, added)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to replace catalog file")
		assert.Equal(t, 1, inv.Count())
	})
}

func TestJSONInventory_FindByISBN(t *testing.T) {
	t.Run("returns the matching book", func(t *testing.T) {
		inv, _ := newTestInventory(t)
		mustAdd(t, inv, inventory.NewBook("Dune", "Frank Herbert", "X1"))
		mustAdd(t, inv, inventory.NewBook("Emma", "Jane Austen", "X2"))

		b, ok := inv.FindByISBN("X2")

		require.True(t, ok)
		assert.Equal(t, "Emma", b.Title)
	})

	t.Run("reports not found", func(t *testing.T) {
		inv, _ := newTestInventory(t)

		_, ok := inv.FindByISBN("missing")

		assert.False(t, ok)
	})

	t.Run("returned book is a copy", func(t *testing.T) {
		inv, _ := newTestInventory(t)
		mustAdd(t, inv, inventory.NewBook("Dune", "Frank Herbert", "X1"))

		b, _ := inv.FindByISBN("X1")
		b.Issue()

		again, _ := inv.FindByISBN("X1")
		assert.True(t, again.IsAvailable())
	})
}

func TestJSONInventory_SearchTitle(t *testing.T) {
	inv, _ := newTestInventory(t)
	mustAdd(t, inv, inventory.NewBook("The Go Programming Language", "Donovan", "X1"))
	mustAdd(t, inv, inventory.NewBook("Clean Code", "Robert Martin", "X2"))
	mustAdd(t, inv, inventory.NewBook("Go in Action", "Kennedy", "X3"))

	t.Run("matches case-insensitively in collection order", func(t *testing.T) {
		results := inv.SearchTitle("GO")

		require.Len(t, results, 2)
		assert.Equal(t, "X1", results[0].ISBN)
		assert.Equal(t, "X3", results[1].ISBN)
	})

	t.Run("empty query matches every book", func(t *testing.T) {
		assert.Len(t, inv.SearchTitle(""), 3)
	})

	t.Run("does not match author", func(t *testing.T) {
		assert.Empty(t, inv.SearchTitle("martin"))
	})

	t.Run("no match returns empty", func(t *testing.T) {
		assert.Empty(t, inv.SearchTitle("rust"))
	})
}

func TestJSONInventory_IssueReturn(t *testing.T) {
	t.Run("not found is distinct from rejected", func(t *testing.T) {
		inv, _ := newTestInventory(t)
		mustAdd(t, inv, inventory.NewBook("Dune", "Frank Herbert", "X1"))

		issue, err := inv.Issue("nope")
		require.NoError(t, err)
		ret, err := inv.Return("X1")
		require.NoError(t, err)

		assert.Equal(t, inventory.OutcomeNotFound, issue)
		assert.Equal(t, inventory.OutcomeRejected, ret)
	})

	t.Run("successful transition is persisted", func(t *testing.T) {
		inv, path := newTestInventory(t)
		mustAdd(t, inv, inventory.NewBook("Dune", "Frank Herbert", "X1"))

		_, err := inv.Issue("X1")
		require.NoError(t, err)

		b, ok := loadInventory(t, path).FindByISBN("X1")
		require.True(t, ok)
		assert.Equal(t, inventory.StatusIssued, b.Status)
	})

	t.Run("rejected transition does not save", func(t *testing.T) {
		inv, path := newTestInventory(t)
		mustAdd(t, inv, inventory.NewBook("Dune", "Frank Herbert", "X1"))
		require.NoError(t, os.Remove(path))

		outcome, err := inv.Return("X1")

		require.NoError(t, err)
		assert.Equal(t, inventory.OutcomeRejected, outcome)
		assert.NoFileExists(t, path)
	})

	t.Run("save failure after transition is returned", func(t *testing.T) {
		inv, path := newTestInventory(t)
		mustAdd(t, inv, inventory.NewBook("Dune", "Frank Herbert", "X1"))
		require.NoError(t, os.Remove(path))
		require.NoError(t, os.Mkdir(path, 0o755))

		outcome, err := inv.Issue("X1")

		assert.Equal(t, inventory.OutcomeDone, outcome)
		assert.Error(t, err)
	})
}

func TestJSONInventory_List(t *testing.T) {
	t.Run("preserves insertion order", func(t *testing.T) {
		inv, _ := newTestInventory(t)
		mustAdd(t, inv, inventory.NewBook("Zed", "A", "3"))
		mustAdd(t, inv, inventory.NewBook("Alpha", "B", "1"))
		mustAdd(t, inv, inventory.NewBook("Mid", "C", "2"))

		var isbns []string
		for _, b := range inv.List() {
			isbns = append(isbns, b.ISBN)
		}

		assert.Equal(t, []string{"3", "1", "2"}, isbns)
	})

	t.Run("returns empty slice when inventory is empty", func(t *testing.T) {
		inv, _ := newTestInventory(t)

		assert.Empty(t, inv.List())
	})
}

func TestJSONInventory_Save(t *testing.T) {
	t.Run("writes four-key entries with lowercase status", func(t *testing.T) {
		inv, path := newTestInventory(t)
		mustAdd(t, inv, inventory.NewBookWithStatus("Dune", "Frank Herbert", "X1", inventory.StatusIssued))

		data, err := os.ReadFile(path)
		require.NoError(t, err)

		want := `[
    {
        "title": "Dune",
        "author": "Frank Herbert",
        "isbn": "X1",
        "status": "issued"
    }
]
`
		assert.Equal(t, want, string(data))
	})

	t.Run("empty inventory saves an empty list", func(t *testing.T) {
		inv, path := newTestInventory(t)

		require.NoError(t, inv.Save())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "[]\n", string(data))
	})

	t.Run("leaves no temp file behind", func(t *testing.T) {
		inv, path := newTestInventory(t)
		mustAdd(t, inv, inventory.NewBook("Dune", "Frank Herbert", "X1"))

		assert.NoFileExists(t, path+".tmp")
	})

	t.Run("logs the failure", func(t *testing.T) {
		spy := testutil.NewLogSpy()
		inv := newTestInventoryWithLogger(t, spy)
		require.NoError(t, os.Mkdir(inv.Path(), 0o755))

		err := inv.Save()

		require.Error(t, err)
		assert.True(t, spy.Has(slog.LevelError, "failed to save catalog"))
	})
}

func TestJSONInventory_Load(t *testing.T) {
	t.Run("missing file yields empty inventory", func(t *testing.T) {
		spy := testutil.NewLogSpy()
		inv := newTestInventoryWithLogger(t, spy)

		result := inv.Load()

		assert.Equal(t, inventory.LoadMissing, result)
		assert.Equal(t, 0, inv.Count())
		assert.Zero(t, spy.Levels()[slog.LevelError])
	})

	t.Run("invalid json yields empty inventory", func(t *testing.T) {
		spy := testutil.NewLogSpy()
		inv := newTestInventoryWithLogger(t, spy)
		writeSnapshot(t, inv.Path(), "not valid json")

		result := inv.Load()

		assert.Equal(t, inventory.LoadCorrupt, result)
		assert.Equal(t, 0, inv.Count())
		assert.True(t, spy.Has(slog.LevelError, "catalog file is corrupted, starting with an empty inventory"))
	})

	t.Run("empty file is treated as corrupt", func(t *testing.T) {
		inv, path := newTestInventory(t)
		writeSnapshot(t, path, "")

		assert.Equal(t, inventory.LoadCorrupt, inv.Load())
	})

	t.Run("missing field yields empty inventory", func(t *testing.T) {
		inv, path := newTestInventory(t)
		writeSnapshot(t, path, `[{"title": "Dune", "author": "Frank Herbert", "isbn": "X1"}]`)

		assert.Equal(t, inventory.LoadCorrupt, inv.Load())
		assert.Equal(t, 0, inv.Count())
	})

	t.Run("unknown key yields empty inventory", func(t *testing.T) {
		inv, path := newTestInventory(t)
		writeSnapshot(t, path, `[{"title": "Dune", "author": "F", "isbn": "X1", "status": "available", "year": "1965"}]`)

		assert.Equal(t, inventory.LoadCorrupt, inv.Load())
	})

	t.Run("non-string field yields empty inventory", func(t *testing.T) {
		inv, path := newTestInventory(t)
		writeSnapshot(t, path, `[{"title": "Dune", "author": "F", "isbn": 42, "status": "available"}]`)

		assert.Equal(t, inventory.LoadCorrupt, inv.Load())
	})

	t.Run("unknown status yields empty inventory", func(t *testing.T) {
		inv, path := newTestInventory(t)
		writeSnapshot(t, path, `[{"title": "Dune", "author": "F", "isbn": "X1", "status": "lost"}]`)

		assert.Equal(t, inventory.LoadCorrupt, inv.Load())
	})

	t.Run("unreadable path yields empty inventory", func(t *testing.T) {
		spy := testutil.NewLogSpy()
		inv := newTestInventoryWithLogger(t, spy)
		require.NoError(t, os.Mkdir(inv.Path(), 0o755))

		result := inv.Load()

		assert.Equal(t, inventory.LoadUnreadable, result)
		assert.True(t, spy.Has(slog.LevelError, "failed to read catalog file, starting with an empty inventory"))
	})

	t.Run("corrupt load discards previous contents", func(t *testing.T) {
		inv, path := newTestInventory(t)
		mustAdd(t, inv, inventory.NewBook("Dune", "F", "X1"))
		writeSnapshot(t, path, "{")

		inv.Load()

		assert.Equal(t, 0, inv.Count())
		_, ok := inv.FindByISBN("X1")
		assert.False(t, ok)
	})

	t.Run("uppercase status is normalised", func(t *testing.T) {
		inv, path := newTestInventory(t)
		writeSnapshot(t, path, `[{"title": "Dune", "author": "F", "isbn": "X1", "status": "ISSUED"}]`)

		require.Equal(t, inventory.LoadOK, inv.Load())

		b, _ := inv.FindByISBN("X1")
		assert.Equal(t, inventory.StatusIssued, b.Status)
	})

	t.Run("duplicate isbn keeps the first entry", func(t *testing.T) {
		spy := testutil.NewLogSpy()
		inv := newTestInventoryWithLogger(t, spy)
		writeSnapshot(t, inv.Path(), `[
			{"title": "First", "author": "A", "isbn": "X1", "status": "available"},
			{"title": "Second", "author": "B", "isbn": "X1", "status": "issued"}
		]`)

		require.Equal(t, inventory.LoadOK, inv.Load())

		assert.Equal(t, 1, inv.Count())
		b, _ := inv.FindByISBN("X1")
		assert.Equal(t, "First", b.Title)
		assert.True(t, spy.Has(slog.LevelWarn, "duplicate isbn in catalog file, keeping first entry"))
	})

	t.Run("null document is reported as corrupt", func(t *testing.T) {
		spy := testutil.NewLogSpy()
		inv := newTestInventoryWithLogger(t, spy)
		mustAdd(t, inv, inventory.NewBook("Dune", "Frank Herbert", "X1"))
		writeSnapshot(t, inv.Path(), "null")

		assert.Equal(t, inventory.LoadCorrupt, inv.Load())
		assert.Equal(t, 0, inv.Count())
		assert.True(t, spy.Has(slog.LevelError, "catalog file is corrupted, starting with an empty inventory"))
	})
}

func TestJSONInventory_SaveLoadRoundTrip(t *testing.T) {
	inv, path := newTestInventory(t)
	mustAdd(t, inv, inventory.NewBook("Dune", "Frank Herbert", "X1"))
	mustAdd(t, inv, inventory.NewBook("Émile", "Rousseau", "X2"))
	mustAdd(t, inv, inventory.NewBook(`Quotes "and" <tags>`, "Anon", "X3"))
	_, err := inv.Issue("X2")
	require.NoError(t, err)

	reloaded := loadInventory(t, path)

	if diff := cmp.Diff(inv.List(), reloaded.List()); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func newTestInventory(t *testing.T) (*inventory.JSONInventory, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test-catalog.json")
	inv, err := inventory.NewJSONInventory(path)
	require.NoError(t, err)
	return inv, path
}

func newTestInventoryWithLogger(t *testing.T, spy *testutil.LogSpy) *inventory.JSONInventory {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test-catalog.json")
	inv, err := inventory.NewJSONInventory(path, inventory.WithLogger(spy.Logger()))
	require.NoError(t, err)
	return inv
}

func loadInventory(t *testing.T, path string) *inventory.JSONInventory {
	t.Helper()
	inv, err := inventory.NewJSONInventory(path)
	require.NoError(t, err)
	require.Equal(t, inventory.LoadOK, inv.Load())
	return inv
}

func mustAdd(t *testing.T, inv *inventory.JSONInventory, b inventory.Book) {
	t.Helper()
	added, err := inv.Add(b)
	require.NoError(t, err)
	require.True(t, added)
}

func writeSnapshot(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
