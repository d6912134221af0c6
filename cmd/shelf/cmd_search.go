package main

type SearchCmd struct {
	Query string `arg:"" optional:"" help:"Part of the title (case-insensitive)"`
}

func (cmd *SearchCmd) Run(g *Globals) error { //nolint:unparam // error required by kong interface
	renderBooks(g, g.Inv.SearchTitle(cmd.Query))
	return nil
}
