package main

import "fmt"

type ListCmd struct {
	ISBNs bool `name:"isbns" short:"i" help:"Output only ISBNs (one per line)"`
}

func (cmd *ListCmd) Run(g *Globals) error { //nolint:unparam // error required by kong interface
	books := sortedByTitle(g.Inv.List())

	if cmd.ISBNs {
		for _, b := range books {
			fmt.Fprintln(g.Out, b.ISBN)
		}
		return nil
	}

	renderBooks(g, books)
	return nil
}
