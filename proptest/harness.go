package proptest

import (
	"os"
	"path/filepath"
	"shelf/internal/inventory"
	"testing"

	"pgregory.net/rapid"
)

const (
	minBooks          = 0
	maxBooks          = 20
	typicalMinBooks   = 1
	typicalMaxBooks   = 10
	minUnrelatedBooks = 1
	maxUnrelatedBooks = 5
	snapshotFileName  = "catalog.json"
)

type BookGenOpt func(*bookGenConfig)

type bookGenConfig struct {
	title  *string
	isbn   *string
	status *inventory.Status
}

func WithTitle(title string) BookGenOpt {
	return func(c *bookGenConfig) {
		c.title = &title
	}
}

func WithISBN(isbn string) BookGenOpt {
	return func(c *bookGenConfig) {
		c.isbn = &isbn
	}
}

func WithStatus(status inventory.Status) BookGenOpt {
	return func(c *bookGenConfig) {
		c.status = &status
	}
}

func GenBook(t *rapid.T, opts ...BookGenOpt) inventory.Book {
	cfg := &bookGenConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	title := titleGen.Draw(t, "title")
	if cfg.title != nil {
		title = *cfg.title
	}
	isbn := isbnGen.Draw(t, "isbn")
	if cfg.isbn != nil {
		isbn = *cfg.isbn
	}
	status := statusGen().Draw(t, "status")
	if cfg.status != nil {
		status = *cfg.status
	}

	return inventory.NewBookWithStatus(title, authorGen.Draw(t, "author"), isbn, status)
}

type Harness struct {
	T   *rapid.T
	Dir string
}

func (h *Harness) GenBook(opts ...BookGenOpt) inventory.Book {
	return GenBook(h.T, opts...)
}

func (h *Harness) SnapshotPath() string {
	return filepath.Join(h.Dir, snapshotFileName)
}

// WriteSnapshot puts raw bytes where the inventory expects its snapshot.
func (h *Harness) WriteSnapshot(content string) {
	if err := os.WriteFile(h.SnapshotPath(), []byte(content), 0o644); err != nil {
		h.T.Fatalf("failed to write snapshot: %v", err)
	}
}

func (h *Harness) OpenInventory() *inventory.JSONInventory {
	inv, err := inventory.NewJSONInventory(h.SnapshotPath())
	if err != nil {
		h.T.Fatalf("failed to create inventory: %v", err)
	}
	return inv
}

type InventoryHarness struct {
	Harness
	Inventory *inventory.JSONInventory
}

func (h *InventoryHarness) MustAddBook(opts ...BookGenOpt) inventory.Book {
	b := h.GenBook(opts...)
	added, err := h.Inventory.Add(b)
	if err != nil {
		h.T.Fatalf("failed to save after add: %v", err)
	}
	if !added {
		h.T.Fatalf("book %q rejected as duplicate", b.ISBN)
	}
	return b
}

// AddBooks adds a random number of books and returns the ones accepted.
func (h *InventoryHarness) AddBooks(minCount, maxCount int) []inventory.Book {
	var added []inventory.Book
	n := rapid.IntRange(minCount, maxCount).Draw(h.T, "numBooks")
	for range n {
		b := h.GenBook()
		ok, err := h.Inventory.Add(b)
		if err != nil {
			h.T.Fatalf("failed to save after add: %v", err)
		}
		if ok {
			added = append(added, b)
		}
	}
	return added
}

func newIterDir(rt *rapid.T, tempDir string) string {
	iterDir := filepath.Join(tempDir, iterDirGen.Draw(rt, "iterDir"))
	if err := os.RemoveAll(iterDir); err != nil {
		rt.Fatalf("failed to clear iter dir: %v", err)
	}
	if err := os.MkdirAll(iterDir, 0o755); err != nil {
		rt.Fatalf("failed to create iter dir: %v", err)
	}
	return iterDir
}

func RunWithInventory(t *testing.T, fn func(h *InventoryHarness)) {
	tempDir := t.TempDir()
	rapid.Check(t, func(rt *rapid.T) {
		harness := &InventoryHarness{
			Harness: Harness{
				T:   rt,
				Dir: newIterDir(rt, tempDir),
			},
		}
		harness.Inventory = harness.OpenInventory()

		fn(harness)
	})
}

func RunBasic(t *testing.T, fn func(h *Harness)) {
	tempDir := t.TempDir()
	rapid.Check(t, func(rt *rapid.T) {
		harness := &Harness{
			T:   rt,
			Dir: newIterDir(rt, tempDir),
		}

		fn(harness)
	})
}
