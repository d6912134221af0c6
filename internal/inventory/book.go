package inventory

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidStatus = errors.New("invalid book status")

type Status string

const (
	StatusAvailable Status = "available"
	StatusIssued    Status = "issued"
)

// ParseStatus accepts the canonical forms in any letter case.
func ParseStatus(s string) (Status, error) {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusAvailable:
		return StatusAvailable, nil
	case StatusIssued:
		return StatusIssued, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

type Book struct {
	ISBN   string
	Title  string
	Author string
	Status Status
}

func NewBook(title, author, isbn string) Book {
	return NewBookWithStatus(title, author, isbn, StatusAvailable)
}

func NewBookWithStatus(title, author, isbn string, status Status) Book {
	return Book{
		ISBN:   isbn,
		Title:  title,
		Author: author,
		Status: status,
	}
}

// Issue moves an available book to issued. It reports false and leaves the
// book untouched when the book is not available.
func (b *Book) Issue() bool {
	if !b.IsAvailable() {
		return false
	}
	b.Status = StatusIssued
	return true
}

// Return is the inverse of Issue.
func (b *Book) Return() bool {
	if b.Status != StatusIssued {
		return false
	}
	b.Status = StatusAvailable
	return true
}

func (b Book) IsAvailable() bool {
	return b.Status == StatusAvailable
}

func (b Book) Fields() map[string]string {
	return map[string]string{
		"title":  b.Title,
		"author": b.Author,
		"isbn":   b.ISBN,
		"status": strings.ToLower(string(b.Status)),
	}
}

func (b Book) String() string {
	return fmt.Sprintf("Title: %s | Author: %s | ISBN: %s | Status: %s",
		b.Title, b.Author, b.ISBN, strings.ToUpper(string(b.Status)))
}

var ErrEmptyField = errors.New("field cannot be empty")

// ValidateField rejects blank user input for the named field.
func ValidateField(label, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s: %w", label, ErrEmptyField)
	}
	return nil
}
