package proptest

import (
	"shelf/internal/inventory"
	"slices"

	"pgregory.net/rapid"
)

// StateTracker is the reference model: books in insertion order plus a
// status per ISBN.
type StateTracker struct {
	order []string
	books map[string]inventory.Book
}

func newStateTracker() *StateTracker {
	return &StateTracker{
		books: make(map[string]inventory.Book),
	}
}

func (s *StateTracker) Add(b inventory.Book) bool {
	if _, exists := s.books[b.ISBN]; exists {
		return false
	}
	s.order = append(s.order, b.ISBN)
	s.books[b.ISBN] = b
	return true
}

func (s *StateTracker) setStatus(isbn string, from, to inventory.Status) inventory.Outcome {
	b, ok := s.books[isbn]
	if !ok {
		return inventory.OutcomeNotFound
	}
	if b.Status != from {
		return inventory.OutcomeRejected
	}
	b.Status = to
	s.books[isbn] = b
	return inventory.OutcomeDone
}

func (s *StateTracker) Issue(isbn string) inventory.Outcome {
	return s.setStatus(isbn, inventory.StatusAvailable, inventory.StatusIssued)
}

func (s *StateTracker) Return(isbn string) inventory.Outcome {
	return s.setStatus(isbn, inventory.StatusIssued, inventory.StatusAvailable)
}

func (s *StateTracker) ISBNs() []string {
	isbns := slices.Clone(s.order)
	slices.Sort(isbns)
	return isbns
}

func (s *StateTracker) List() []inventory.Book {
	books := make([]inventory.Book, 0, len(s.order))
	for _, isbn := range s.order {
		books = append(books, s.books[isbn])
	}
	return books
}

func (s *StateTracker) Count() int {
	return len(s.order)
}

type CheckedInventory struct {
	real  inventory.Inventory
	model *StateTracker
	t     *rapid.T
}

func NewCheckedInventory(t *rapid.T, inv inventory.Inventory) *CheckedInventory {
	return &CheckedInventory{
		real:  inv,
		model: newStateTracker(),
		t:     t,
	}
}

func (c *CheckedInventory) Model() *StateTracker {
	return c.model
}

func (c *CheckedInventory) Add(b inventory.Book) bool {
	realAdded, err := c.real.Add(b)
	if err != nil {
		c.t.Fatalf("Add(%q) failed to save: %v", b.ISBN, err)
	}
	modelAdded := c.model.Add(b)
	if realAdded != modelAdded {
		c.t.Fatalf("Add divergence: real=%v model=%v", realAdded, modelAdded)
	}
	verifyStructuralInvariants(c.t, c.real)
	return realAdded
}

func (c *CheckedInventory) Issue(isbn string) inventory.Outcome {
	return c.checkTransition("Issue", isbn, c.real.Issue, c.model.Issue)
}

func (c *CheckedInventory) Return(isbn string) inventory.Outcome {
	return c.checkTransition("Return", isbn, c.real.Return, c.model.Return)
}

func (c *CheckedInventory) checkTransition(
	name, isbn string,
	applyReal func(string) (inventory.Outcome, error),
	applyModel func(string) inventory.Outcome,
) inventory.Outcome {
	realOutcome, err := applyReal(isbn)
	if err != nil {
		c.t.Fatalf("%s(%q) failed to save: %v", name, isbn, err)
	}
	modelOutcome := applyModel(isbn)
	if realOutcome != modelOutcome {
		c.t.Fatalf("%s(%q) divergence: real=%v model=%v", name, isbn, realOutcome, modelOutcome)
	}
	verifyStructuralInvariants(c.t, c.real)
	return realOutcome
}

func (c *CheckedInventory) FindByISBN(isbn string) (inventory.Book, bool) {
	realBook, realOK := c.real.FindByISBN(isbn)
	modelBook, modelOK := c.model.books[isbn]
	if realOK != modelOK {
		c.t.Fatalf("FindByISBN(%q) divergence: real=%v model=%v", isbn, realOK, modelOK)
	}
	if realOK {
		assertBooksEqual(c.t, modelBook, realBook)
	}
	return realBook, realOK
}

func (c *CheckedInventory) List() []inventory.Book {
	realList := c.real.List()
	assertSameBooks(c.t, c.model.List(), realList)
	return realList
}

func (c *CheckedInventory) SearchTitle(query string) []inventory.Book {
	results := c.real.SearchTitle(query)
	assertSubset(c.t, results, c.real.List())
	assertTitlesContain(c.t, results, query)
	return results
}
