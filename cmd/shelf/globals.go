package main

import (
	"io"
	"shelf/cmd/shelf/render"
	"shelf/internal/inventory"
	"shelf/internal/ui"
)

type Globals struct {
	Inv         inventory.Inventory
	CatalogPath string
	Out         io.Writer
	Render      render.Renderer
	Log         inventory.Logger
	Prompt      ui.Prompter
}
