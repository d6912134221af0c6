package proptest

import (
	"shelf/internal/inventory"

	"pgregory.net/rapid"
)

// verifyStructuralInvariants checks what must hold after any sequence of
// operations: Count agrees with List, ISBNs are unique and non-empty, and
// every listed book can be found by its ISBN with a known status.
func verifyStructuralInvariants(t *rapid.T, inv inventory.Inventory) {
	count := inv.Count()
	list := inv.List()

	if count != len(list) {
		t.Fatalf("Count()=%d but len(List())=%d", count, len(list))
	}

	seen := make(map[string]bool)
	for _, b := range list {
		if b.ISBN == "" {
			t.Fatalf("book %q has empty ISBN", b.Title)
		}
		if seen[b.ISBN] {
			t.Fatalf("duplicate ISBN %q found in List()", b.ISBN)
		}
		seen[b.ISBN] = true

		if b.Status != inventory.StatusAvailable && b.Status != inventory.StatusIssued {
			t.Fatalf("book %q has unknown status %q", b.ISBN, b.Status)
		}

		found, ok := inv.FindByISBN(b.ISBN)
		if !ok {
			t.Fatalf("FindByISBN(%q) missed a listed book", b.ISBN)
		}
		assertBooksEqual(t, b, found)
	}
}
