// Command read-bible tracks where you are in reading the Bible.
// It saves a book, chapter and verse between runs and steps through the
// text by verse, chapter or book.
package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/samber/do/v2"
)

const version = "0.1.0"

// Globals are flags shared by every command.
type Globals struct {
	Path          string `name:"path" short:"p" help:"Save file path (.json, .yaml or .yml)" env:"READ_BIBLE_PATH" type:"path"`
	Config        string `name:"config" help:"YAML config file" env:"READ_BIBLE_CONFIG" type:"path"`
	QueueCapacity int    `name:"queue-capacity" help:"Persistence queue capacity" hidden:""`
	LogLevel      string `name:"log-level" help:"Log level (debug, info, warn, error)"`
	LogFormat     string `name:"log-format" help:"Log format (text, json)"`
}

// CLI defines the command-line interface for read-bible.
type CLI struct {
	Globals

	Show     ShowCmd     `cmd:"" default:"1" help:"Show the saved position"`
	Set      SetCmd      `cmd:"" help:"Set and save the position"`
	Next     NextCmd     `cmd:"" help:"Step forward and save"`
	Previous PreviousCmd `cmd:"" aliases:"prev" help:"Step backward and save"`
	Books    BooksCmd    `cmd:"" help:"List books with chapter and verse counts"`
	Version  VersionCmd  `cmd:"" help:"Print version information"`
}

// App is bound into every command's Run method.
type App struct {
	Out      io.Writer
	Injector *do.RootScope
}

func newApp(globals *Globals, stdout, stderr io.Writer) *App {
	return &App{
		Out:      stdout,
		Injector: NewContainer(globals, Streams{Out: stdout, Err: stderr}),
	}
}

// Shutdown stops every service the command started.
func (a *App) Shutdown() {
	a.Injector.Shutdown()
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("read-bible"),
		kong.Description("Keep your place while reading the Bible"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	app := newApp(&cli.Globals, os.Stdout, os.Stderr)
	err := ctx.Run(app)
	app.Shutdown()
	ctx.FatalIfErrorf(err)
}
