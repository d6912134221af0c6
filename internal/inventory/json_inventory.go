package inventory

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// JSONInventory keeps the whole catalog in memory and persists it as a
// single JSON snapshot. Every mutation rewrites the snapshot.
type JSONInventory struct {
	path  string
	books []Book
	index map[string]int
	log   Logger
}

func NewJSONInventory(path string, opts ...Option) (*JSONInventory, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	inv := &JSONInventory{
		path:  path,
		index: make(map[string]int),
		log:   nopLogger{},
	}
	for _, opt := range opts {
		opt(inv)
	}
	return inv, nil
}

func (inv *JSONInventory) Path() string {
	return inv.path
}

func (inv *JSONInventory) Add(b Book) (bool, error) {
	if _, exists := inv.index[b.ISBN]; exists {
		inv.log.Warn("duplicate isbn rejected", "isbn", b.ISBN)
		return false, nil
	}

	inv.index[b.ISBN] = len(inv.books)
	inv.books = append(inv.books, b)
	inv.log.Info("book added", "isbn", b.ISBN, "title", b.Title)

	return true, inv.Save()
}

func (inv *JSONInventory) FindByISBN(isbn string) (Book, bool) {
	i, ok := inv.index[isbn]
	if !ok {
		return Book{}, false
	}
	return inv.books[i], true
}

func (inv *JSONInventory) SearchTitle(query string) []Book {
	query = strings.ToLower(query)
	var results []Book
	for _, b := range inv.books {
		if strings.Contains(strings.ToLower(b.Title), query) {
			results = append(results, b)
		}
	}
	return results
}

func (inv *JSONInventory) Issue(isbn string) (Outcome, error) {
	return inv.transition(isbn, "issue", (*Book).Issue)
}

func (inv *JSONInventory) Return(isbn string) (Outcome, error) {
	return inv.transition(isbn, "return", (*Book).Return)
}

func (inv *JSONInventory) transition(isbn, action string, apply func(*Book) bool) (Outcome, error) {
	i, ok := inv.index[isbn]
	if !ok {
		inv.log.Info("isbn not found", "action", action, "isbn", isbn)
		return OutcomeNotFound, nil
	}

	b := &inv.books[i]
	if !apply(b) {
		inv.log.Info("book already in requested state", "action", action, "isbn", isbn, "status", string(b.Status))
		return OutcomeRejected, nil
	}

	inv.log.Info("book status changed", "action", action, "isbn", isbn, "status", string(b.Status))
	return OutcomeDone, inv.Save()
}

func (inv *JSONInventory) List() []Book {
	books := make([]Book, len(inv.books))
	copy(books, inv.books)
	return books
}

func (inv *JSONInventory) Count() int {
	return len(inv.books)
}

func (inv *JSONInventory) Save() error {
	data, err := encodeSnapshot(inv.books)
	if err != nil {
		inv.log.Error("failed to save catalog", "path", inv.path, "error", err)
		return err
	}

	tmpPath := inv.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		inv.log.Error("failed to save catalog", "path", inv.path, "error", err)
		return fmt.Errorf("failed to write catalog file: %w", err)
	}

	if err := os.Rename(tmpPath, inv.path); err != nil {
		_ = os.Remove(tmpPath)
		inv.log.Error("failed to save catalog", "path", inv.path, "error", err)
		return fmt.Errorf("failed to replace catalog file: %w", err)
	}

	inv.log.Debug("catalog saved", "path", inv.path, "books", len(inv.books))
	return nil
}

// Load replaces the in-memory collection with the snapshot on disk. It never
// fails: anything short of a clean read leaves an empty collection and is
// reported to the logger.
func (inv *JSONInventory) Load() LoadResult {
	inv.reset(nil)

	data, err := os.ReadFile(inv.path)
	if errors.Is(err, fs.ErrNotExist) {
		inv.log.Info("catalog file not found, starting with an empty inventory", "path", inv.path)
		return LoadMissing
	}
	if err != nil {
		inv.log.Error("failed to read catalog file, starting with an empty inventory", "path", inv.path, "error", err)
		return LoadUnreadable
	}

	books, err := decodeSnapshot(data)
	if err != nil {
		inv.log.Error("catalog file is corrupted, starting with an empty inventory", "path", inv.path, "error", err)
		return LoadCorrupt
	}

	inv.reset(books)
	inv.log.Info("catalog loaded", "path", inv.path, "books", len(inv.books))
	return LoadOK
}

func (inv *JSONInventory) reset(books []Book) {
	inv.books = make([]Book, 0, len(books))
	inv.index = make(map[string]int, len(books))

	for _, b := range books {
		if _, dup := inv.index[b.ISBN]; dup {
			inv.log.Warn("duplicate isbn in catalog file, keeping first entry", "path", inv.path, "isbn", b.ISBN)
			continue
		}
		inv.index[b.ISBN] = len(inv.books)
		inv.books = append(inv.books, b)
	}
}
