package proptest

import (
	"shelf/internal/inventory"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"pgregory.net/rapid"
)

func assertBooksEqual(t *rapid.T, expected, actual inventory.Book) {
	t.Helper()
	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Fatalf("book mismatch (-want +got):\n%s", diff)
	}
}

// assertSameBooks compares two lists in order.
func assertSameBooks(t *rapid.T, expected, actual []inventory.Book) {
	t.Helper()
	if diff := cmp.Diff(expected, actual, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("book list mismatch (-want +got):\n%s", diff)
	}
}

func assertSubset(t *rapid.T, subset, superset []inventory.Book) {
	t.Helper()
	superISBNs := make(map[string]bool)
	for _, b := range superset {
		superISBNs[b.ISBN] = true
	}
	for _, b := range subset {
		if !superISBNs[b.ISBN] {
			t.Fatalf("subset contains ISBN %s not in superset", b.ISBN)
		}
	}
}

func assertTitlesContain(t *rapid.T, books []inventory.Book, query string) {
	t.Helper()
	q := strings.ToLower(query)
	for _, b := range books {
		if !strings.Contains(strings.ToLower(b.Title), q) {
			t.Fatalf("result %q does not contain query %q", b.Title, query)
		}
	}
}
