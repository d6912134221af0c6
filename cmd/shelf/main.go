package main

import (
	"fmt"
	"io"
	"os"
	"shelf/cmd/shelf/render"
	"shelf/internal/config"
	"shelf/internal/inventory"
	"shelf/internal/logging"
	"shelf/internal/ui"

	"github.com/alecthomas/kong"
)

type CLI struct {
	Menu   MenuCmd   `cmd:"" default:"1" help:"Interactive menu (default)"`
	Add    AddCmd    `cmd:"" aliases:"a" help:"Add a book to the catalog"`
	Issue  IssueCmd  `cmd:"" help:"Issue a book by ISBN"`
	Return ReturnCmd `cmd:"" help:"Return an issued book by ISBN"`
	List   ListCmd   `cmd:"" aliases:"ls" help:"List all books sorted by title"`
	Search SearchCmd `cmd:"" aliases:"s" help:"Search books by title"`
	Show   ShowCmd   `cmd:"" help:"Show a book by exact ISBN"`

	CatalogPath string `name:"catalog" short:"c" env:"SHELF_CATALOG" help:"Path to catalog file"`
	ConfigPath  string `name:"config" help:"Path to config file"`
	LogFile     string `name:"log-file" help:"Path to log file"`
	LogLevel    string `name:"log-level" help:"Log level (debug, info, warn, error)"`

	logCloser io.Closer `kong:"-"`
}

func (c *CLI) AfterApply(ctx *kong.Context) error {
	configPath := c.ConfigPath
	if configPath == "" {
		configPath = config.DefaultConfigPath()
	}

	settings, err := config.LoadSettings(configPath)
	if err != nil {
		return err
	}
	settings, err = settings.Override(c.CatalogPath, c.LogFile, c.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	logger, closer, err := logging.New(logging.Options{
		File:    settings.Log.File,
		Level:   settings.Log.Level,
		Console: os.Stderr,
	})
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	c.logCloser = closer

	inv, err := inventory.NewJSONInventory(settings.Catalog, inventory.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to create catalog: %w", err)
	}
	inv.Load()

	globals := &Globals{
		Inv:         inv,
		CatalogPath: settings.Catalog,
		Out:         os.Stdout,
		Render:      render.NewLipglossRendererAuto(os.Stdout),
		Log:         logger,
		Prompt:      ui.HuhPrompter{Accessible: os.Getenv("ACCESSIBLE") != ""},
	}
	ctx.Bind(globals)
	return nil
}

func (c *CLI) Close() {
	if c.logCloser != nil {
		_ = c.logCloser.Close()
	}
}

func main() {
	cli := CLI{}
	ctx := kong.Parse(&cli,
		kong.Name("shelf"),
		kong.Description("Library inventory manager"),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	cli.Close()
	ctx.FatalIfErrorf(err)
}
