package inventory

import (
	"bytes"
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var ErrCorruptSnapshot = errors.New("corrupt catalog snapshot")

// snapshotJSON rejects keys that are not an exact, case-sensitive match for
// one of the four record fields.
var snapshotJSON = jsoniter.Config{
	EscapeHTML:            false,
	SortMapKeys:           true,
	CaseSensitive:         true,
	DisallowUnknownFields: true,
}.Froze()

const snapshotIndent = "    "

// FieldError describes the first invalid record found in a snapshot.
type FieldError struct {
	Index  int
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("entry %d: field %q %s", e.Index, e.Field, e.Reason)
}

func (e *FieldError) Unwrap() error {
	return ErrCorruptSnapshot
}

type snapshotEntry struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	ISBN   string `json:"isbn"`
	Status string `json:"status"`
}

// decodedEntry keeps pointers so an absent key can be told apart from an
// empty string.
type decodedEntry struct {
	Title  *string `json:"title"`
	Author *string `json:"author"`
	ISBN   *string `json:"isbn"`
	Status *string `json:"status"`
}

func encodeSnapshot(books []Book) ([]byte, error) {
	entries := make([]snapshotEntry, 0, len(books))
	for _, b := range books {
		f := b.Fields()
		entries = append(entries, snapshotEntry{
			Title:  f["title"],
			Author: f["author"],
			ISBN:   f["isbn"],
			Status: f["status"],
		})
	}

	data, err := snapshotJSON.MarshalIndent(entries, "", snapshotIndent)
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	return append(data, '\n'), nil
}

func decodeSnapshot(data []byte) ([]Book, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: file is empty", ErrCorruptSnapshot)
	}
	if trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: top level is not a list", ErrCorruptSnapshot)
	}

	var entries []*decodedEntry
	if err := snapshotJSON.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}

	books := make([]Book, 0, len(entries))
	for i, e := range entries {
		b, err := e.toBook(i)
		if err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, nil
}

func (e *decodedEntry) toBook(index int) (Book, error) {
	if e == nil {
		return Book{}, &FieldError{Index: index, Field: "isbn", Reason: "is missing"}
	}

	required := []struct {
		name  string
		value *string
	}{
		{"title", e.Title},
		{"author", e.Author},
		{"isbn", e.ISBN},
		{"status", e.Status},
	}
	for _, r := range required {
		if r.value == nil {
			return Book{}, &FieldError{Index: index, Field: r.name, Reason: "is missing"}
		}
	}

	if *e.ISBN == "" {
		return Book{}, &FieldError{Index: index, Field: "isbn", Reason: "is empty"}
	}

	status, err := ParseStatus(*e.Status)
	if err != nil {
		return Book{}, &FieldError{Index: index, Field: "status", Reason: fmt.Sprintf("has invalid value %q", *e.Status)}
	}

	return NewBookWithStatus(*e.Title, *e.Author, *e.ISBN, status), nil
}
