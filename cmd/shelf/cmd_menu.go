package main

import (
	"errors"
	"fmt"
	"shelf/internal/config"
	"shelf/internal/inventory"
	"shelf/internal/ui"
)

const (
	menuAdd    = "1"
	menuIssue  = "2"
	menuReturn = "3"
	menuView   = "4"
	menuSearch = "5"
	menuExit   = "6"

	searchByTitle = "title"
	searchByISBN  = "isbn"
)

var menuChoices = []ui.Choice{
	{Key: menuAdd, Label: "1. Add new book"},
	{Key: menuIssue, Label: "2. Issue book"},
	{Key: menuReturn, Label: "3. Return book"},
	{Key: menuView, Label: "4. View all books"},
	{Key: menuSearch, Label: "5. Search book"},
	{Key: menuExit, Label: "6. Exit"},
}

var searchChoices = []ui.Choice{
	{Key: searchByTitle, Label: "1. Search by title"},
	{Key: searchByISBN, Label: "2. Search by ISBN"},
}

var errCritical = errors.New("critical error in menu loop")

type MenuCmd struct {
	SaveOnExit bool `default:"true" negatable:"" help:"Always attempt one final save on shutdown, even after an error"`
}

// Run loops until the user exits. Failed operations are reported and the
// loop continues; a prompt failure or panic ends it. With SaveOnExit the
// catalog is saved once more on the way out, whatever ended the loop.
func (cmd *MenuCmd) Run(g *Globals) error {
	if cmd.SaveOnExit {
		defer saveOnExit(g)
	}

	fmt.Fprintf(g.Out, "Catalog: %s (%d books)\n", config.ShortenPath(g.CatalogPath), g.Inv.Count())

	for {
		key, err := g.Prompt.Choose("Library Inventory Manager", menuChoices)
		if errors.Is(err, ui.ErrAborted) || (err == nil && key == menuExit) {
			break
		}
		if err != nil {
			g.Log.Error("menu prompt failed", "error", err)
			return err
		}

		err = cmd.dispatch(g, key)
		if errors.Is(err, ui.ErrAborted) {
			fmt.Fprintln(g.Out, "Operation cancelled.")
			continue
		}
		if err != nil {
			g.Log.Error("unhandled error in menu loop", "choice", key, "error", err)
			fmt.Fprint(g.Out, ui.RenderNotice(ui.SymbolFailure, "Critical error", err.Error()))
			return err
		}
	}

	fmt.Fprintln(g.Out, "Thank you for using the Library Inventory Manager.")
	g.Log.Info("application exited")
	return nil
}

// dispatch runs one menu action. Only prompt failures and panics are
// returned; operation failures are printed by the action itself.
func (cmd *MenuCmd) dispatch(g *Globals, key string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", errCritical, r)
		}
	}()

	switch key {
	case menuAdd:
		return cmd.add(g)
	case menuIssue:
		return cmd.changeStatus(g, issueChange)
	case menuReturn:
		return cmd.changeStatus(g, returnChange)
	case menuView:
		renderBooks(g, sortedByTitle(g.Inv.List()))
		return nil
	case menuSearch:
		return cmd.search(g)
	default:
		g.Log.Warn("invalid menu choice", "choice", key)
		fmt.Fprintln(g.Out, "Invalid choice. Please pick one of the listed options.")
		return nil
	}
}

func (cmd *MenuCmd) add(g *Globals) error {
	d, err := g.Prompt.AskBook(inventory.ValidateField)
	if err != nil {
		return err
	}
	renderDraftSummary(g, d)
	report(g, addBook(g, d))
	return nil
}

func (cmd *MenuCmd) changeStatus(g *Globals, change statusChange) error {
	isbn, err := g.Prompt.Ask(fmt.Sprintf("ISBN of the book to %s", change.verb), requireValue("isbn"))
	if err != nil {
		return err
	}
	report(g, changeStatus(g, change, isbn))
	return nil
}

func (cmd *MenuCmd) search(g *Globals) error {
	by, err := g.Prompt.Choose("Search", searchChoices)
	if err != nil {
		return err
	}

	switch by {
	case searchByTitle:
		term, err := g.Prompt.Ask("Part of the title", requireValue("search term"))
		if err != nil {
			return err
		}
		renderBooks(g, g.Inv.SearchTitle(term))
	case searchByISBN:
		isbn, err := g.Prompt.Ask("Exact ISBN", requireValue("isbn"))
		if err != nil {
			return err
		}
		var results []inventory.Book
		if b, ok := g.Inv.FindByISBN(isbn); ok {
			results = append(results, b)
		}
		renderBooks(g, results)
	default:
		fmt.Fprintln(g.Out, "Invalid search choice. Returning to main menu.")
	}
	return nil
}

func renderDraftSummary(g *Globals, d ui.BookDraft) {
	fields := []ui.Field{
		{Label: "Title", Value: d.Title},
		{Label: "Author", Value: d.Author},
		{Label: "ISBN", Value: d.ISBN},
	}
	fmt.Fprint(g.Out, ui.RenderWizard("Add new book", fields))
}

func requireValue(label string) func(string) error {
	return func(s string) error {
		return inventory.ValidateField(label, s)
	}
}

// report prints a failed operation and lets the loop carry on.
func report(g *Globals, err error) {
	if err == nil {
		return
	}

	symbol := ui.SymbolFailure
	if errors.Is(err, ErrAlreadyInState) || errors.Is(err, ErrBookNotFound) {
		symbol = ui.SymbolWarn
	}
	g.Log.Info("menu operation failed", "error", err)
	fmt.Fprint(g.Out, ui.RenderNotice(symbol, err.Error()))
}

func saveOnExit(g *Globals) {
	if err := g.Inv.Save(); err != nil {
		g.Log.Error("failed to save catalog during final shutdown", "error", err)
		fmt.Fprint(g.Out, ui.RenderNotice(ui.SymbolFailure, "Could not save catalog on exit", err.Error()))
	}
}
