package main

import (
	"shelf/internal/ui"
	"strings"
)

type AddCmd struct {
	Title  string `arg:"" help:"Book title"`
	Author string `arg:"" help:"Book author"`
	ISBN   string `arg:"" name:"isbn" help:"Unique identifier (ISBN)"`
}

func (cmd *AddCmd) Run(g *Globals) error {
	return addBook(g, ui.BookDraft{
		Title:  strings.TrimSpace(cmd.Title),
		Author: strings.TrimSpace(cmd.Author),
		ISBN:   strings.TrimSpace(cmd.ISBN),
	})
}
