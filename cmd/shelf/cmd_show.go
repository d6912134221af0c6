package main

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

type ShowCmd struct {
	ISBN string `arg:"" name:"isbn" help:"Exact ISBN"`
	JSON bool   `help:"Output the stored record as JSON"`
}

func (cmd *ShowCmd) Run(g *Globals) error {
	b, ok := g.Inv.FindByISBN(cmd.ISBN)
	if !ok {
		return fmt.Errorf("%w: no book with ISBN %q", ErrBookNotFound, cmd.ISBN)
	}

	if cmd.JSON {
		data, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(b.Fields(), "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(g.Out, string(data))
		return nil
	}

	fmt.Fprint(g.Out, g.Render.RenderBook(bookItem(b)))
	return nil
}
