package ui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"
)

// ErrAborted is returned when the user cancels a prompt (Ctrl-C or Esc).
var ErrAborted = errors.New("prompt aborted")

type Choice struct {
	Key   string
	Label string
}

// BookDraft holds the raw, trimmed answers of the add-book form.
type BookDraft struct {
	Title  string
	Author string
	ISBN   string
}

type Prompter interface {
	Choose(title string, choices []Choice) (string, error)
	Ask(title string, validate func(string) error) (string, error)
	AskBook(validate func(label, value string) error) (BookDraft, error)
}

type HuhPrompter struct {
	Accessible bool
}

func (p HuhPrompter) Choose(title string, choices []Choice) (string, error) {
	options := make([]huh.Option[string], len(choices))
	for i, c := range choices {
		options[i] = huh.NewOption(c.Label, c.Key)
	}

	var key string
	err := p.run(huh.NewGroup(
		huh.NewSelect[string]().
			Title(title).
			Options(options...).
			Value(&key),
	))
	return key, err
}

func (p HuhPrompter) Ask(title string, validate func(string) error) (string, error) {
	var value string
	input := huh.NewInput().Title(title).Value(&value)
	if validate != nil {
		input = input.Validate(validate)
	}

	err := p.run(huh.NewGroup(input))
	return strings.TrimSpace(value), err
}

func (p HuhPrompter) AskBook(validate func(label, value string) error) (BookDraft, error) {
	var d BookDraft

	field := func(label string, value *string) *huh.Input {
		input := huh.NewInput().Title(label).Value(value)
		if validate != nil {
			input = input.Validate(func(s string) error { return validate(label, s) })
		}
		return input
	}

	err := p.run(
		huh.NewGroup(field("Title", &d.Title)),
		huh.NewGroup(field("Author", &d.Author)),
		huh.NewGroup(field("ISBN", &d.ISBN).Description("Unique identifier")),
	)

	d.Title = strings.TrimSpace(d.Title)
	d.Author = strings.TrimSpace(d.Author)
	d.ISBN = strings.TrimSpace(d.ISBN)
	return d, err
}

func (p HuhPrompter) run(groups ...*huh.Group) error {
	form := huh.NewForm(groups...).
		WithTheme(WizardTheme()).
		WithAccessible(p.Accessible)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrAborted
		}
		return err
	}
	return nil
}
