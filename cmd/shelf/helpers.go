package main

import (
	"errors"
	"fmt"
	"shelf/cmd/shelf/render"
	"shelf/internal/inventory"
	"shelf/internal/ui"
	"slices"
	"strings"
)

var (
	ErrDuplicateISBN  = errors.New("book with this ISBN already exists")
	ErrBookNotFound   = errors.New("book not found")
	ErrAlreadyInState = errors.New("book is already in the requested state")
)

func bookItem(b inventory.Book) render.BookItem {
	return render.BookItem{
		Title:     b.Title,
		Author:    b.Author,
		ISBN:      b.ISBN,
		Status:    string(b.Status),
		Available: b.IsAvailable(),
	}
}

func renderBooks(g *Globals, books []inventory.Book) {
	view := render.BookListView{Items: make([]render.BookItem, len(books))}
	for i, b := range books {
		view.Items[i] = bookItem(b)
	}
	fmt.Fprint(g.Out, g.Render.RenderBookList(view))
}

// sortedByTitle orders books for display only; the inventory keeps
// insertion order.
func sortedByTitle(books []inventory.Book) []inventory.Book {
	sorted := slices.Clone(books)
	slices.SortStableFunc(sorted, func(a, b inventory.Book) int {
		if c := strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title)); c != 0 {
			return c
		}
		return strings.Compare(a.ISBN, b.ISBN)
	})
	return sorted
}

func validateDraft(d ui.BookDraft) error {
	return errors.Join(
		inventory.ValidateField("title", d.Title),
		inventory.ValidateField("author", d.Author),
		inventory.ValidateField("isbn", d.ISBN),
	)
}

// addBook adds the drafted book and prints the result on success.
func addBook(g *Globals, d ui.BookDraft) error {
	if err := validateDraft(d); err != nil {
		return err
	}

	b := inventory.NewBook(d.Title, d.Author, d.ISBN)
	added, err := g.Inv.Add(b)
	if !added {
		return fmt.Errorf("%w: %s", ErrDuplicateISBN, d.ISBN)
	}

	fmt.Fprint(g.Out, ui.RenderNotice(ui.SymbolOK, "Added "+b.Title, b.String()))
	if err != nil {
		return fmt.Errorf("failed to save catalog: %w", err)
	}
	return nil
}

type statusChange struct {
	verb string
	past string
	run  func(inv inventory.Inventory, isbn string) (inventory.Outcome, error)
}

var (
	issueChange = statusChange{
		verb: "issue",
		past: "Issued",
		run:  inventory.Inventory.Issue,
	}
	returnChange = statusChange{
		verb: "return",
		past: "Returned",
		run:  inventory.Inventory.Return,
	}
)

// changeStatus applies an issue or return and prints the result on success.
// Not-found and already-in-state come back as distinct errors.
func changeStatus(g *Globals, change statusChange, isbn string) error {
	outcome, err := change.run(g.Inv, isbn)

	switch outcome {
	case inventory.OutcomeNotFound:
		return fmt.Errorf("%w: no book with ISBN %q", ErrBookNotFound, isbn)
	case inventory.OutcomeRejected:
		b, _ := g.Inv.FindByISBN(isbn)
		return fmt.Errorf("%w: cannot %s %q, it is already %s", ErrAlreadyInState, change.verb, b.Title, b.Status)
	}

	b, _ := g.Inv.FindByISBN(isbn)
	fmt.Fprint(g.Out, ui.RenderNotice(ui.SymbolOK, change.past+" "+b.Title,
		"Status: "+strings.ToUpper(string(b.Status))))
	if err != nil {
		return fmt.Errorf("failed to save catalog: %w", err)
	}
	return nil
}
