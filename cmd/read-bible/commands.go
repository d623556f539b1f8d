package main

import (
	"fmt"
	"io/fs"
	"log/slog"
	"text/tabwriter"

	"github.com/samber/do/v2"

	"github.com/FocuswithJustin/bibleread/core/bible"
	"github.com/FocuswithJustin/bibleread/core/catalog"
	"github.com/FocuswithJustin/bibleread/core/errors"
	"github.com/FocuswithJustin/bibleread/core/position"
	"github.com/FocuswithJustin/bibleread/core/reference"
	"github.com/FocuswithJustin/bibleread/internal/config"
	"github.com/FocuswithJustin/bibleread/internal/reading"
)

// services resolves what the save-file commands need.
func (a *App) services() (*reading.Client, *catalog.Catalog, *slog.Logger, error) {
	h, err := do.Invoke[*ClientHandle](a.Injector)
	if err != nil {
		return nil, nil, nil, err
	}
	return h.Client, do.MustInvoke[*catalog.Catalog](a.Injector), do.MustInvoke[*slog.Logger](a.Injector), nil
}

// current loads the saved position. With no save file, or one that cannot
// be used, reading starts at Genesis 1:1.
func current(client *reading.Client, cat *catalog.Catalog, log *slog.Logger) (position.Position, error) {
	p, err := client.GetFromFile()
	switch {
	case err == nil:
		return p, nil
	case errors.Is(err, fs.ErrNotExist):
		return position.Start(cat), nil
	case errors.Is(err, errors.ErrInvalidInput):
		log.Warn("ignoring unreadable save file", slog.Any("error", err))
		return position.Start(cat), nil
	default:
		return position.Position{}, err
	}
}

func save(client *reading.Client, p position.Position) error {
	if err := client.SetCurrent(p); err != nil {
		return err
	}
	return client.SaveToFile()
}

// ShowCmd prints the saved position.
type ShowCmd struct {
	OSIS bool `help:"Print the OSIS id (e.g. Gen.1.1) instead of the name"`
}

func (c *ShowCmd) Run(app *App) error {
	client, _, _, err := app.services()
	if err != nil {
		return err
	}
	cfg := do.MustInvoke[*config.Config](app.Injector)

	p, err := client.GetFromFile()
	switch {
	case errors.Is(err, fs.ErrNotExist):
		fmt.Fprintf(app.Out, "No reading position saved yet (%s).\n", cfg.Path)
		return nil
	case errors.Is(err, errors.ErrInvalidInput):
		return errors.Wrapf(err, "save file %s is unreadable", cfg.Path)
	case err != nil:
		return err
	}

	if c.OSIS {
		fmt.Fprintln(app.Out, p.OSISID())
	} else {
		fmt.Fprintln(app.Out, p.String())
	}
	return nil
}

// SetCmd sets the position from a reference, individual fields, or both.
type SetCmd struct {
	Reference string `arg:"" optional:"" help:"Reference such as \"John 3:16\" or \"Gen.1.1\""`
	Book      string `short:"b" help:"Book name, slug or OSIS id"`
	Chapter   int    `short:"c" help:"Chapter number"`
	Verse     int    `short:"v" help:"Verse number"`
}

func (c *SetCmd) Run(app *App) error {
	client, cat, log, err := app.services()
	if err != nil {
		return err
	}
	base, err := current(client, cat, log)
	if err != nil {
		return err
	}

	book, chapter, verse, err := c.resolve(base)
	if err != nil {
		return err
	}
	p, err := position.New(cat, book, chapter, verse)
	if err != nil {
		return err
	}
	if err := save(client, p); err != nil {
		return err
	}
	fmt.Fprintln(app.Out, p.String())
	return nil
}

// resolve merges the reference and flags over base. A reference without a
// chapter or verse means the first one; flags override the reference.
func (c *SetCmd) resolve(base position.Position) (bible.BookID, bible.ChapterNumber, bible.VerseNumber, error) {
	book, chapter, verse := base.Book(), base.Chapter(), base.Verse()

	if c.Reference != "" {
		ref, err := reference.Parse(c.Reference)
		if err != nil {
			return 0, bible.ChapterNumber{}, bible.VerseNumber{}, err
		}
		book, chapter, verse = ref.Book, bible.MustChapter(1), bible.MustVerse(1)
		if ref.HasChapter() {
			chapter = ref.Chapter
		}
		if ref.HasVerse() {
			verse = ref.Verse
		}
	}

	var err error
	if c.Book != "" {
		if book, err = bible.ParseBookID(c.Book); err != nil {
			return 0, bible.ChapterNumber{}, bible.VerseNumber{}, err
		}
	}
	if c.Chapter != 0 {
		if chapter, err = bible.NewChapterNumber(c.Chapter); err != nil {
			return 0, bible.ChapterNumber{}, bible.VerseNumber{}, err
		}
	}
	if c.Verse != 0 {
		if verse, err = bible.NewVerseNumber(c.Verse); err != nil {
			return 0, bible.ChapterNumber{}, bible.VerseNumber{}, err
		}
	}
	return book, chapter, verse, nil
}

// StepFlags are shared by next and previous.
type StepFlags struct {
	Entity string `short:"e" enum:"book,chapter,verse" default:"verse" help:"What to step by (book, chapter, verse)"`
	Count  uint   `short:"n" default:"1" help:"How many to step"`
}

func (f StepFlags) run(app *App, dir position.Direction) error {
	unit, err := position.ParseUnit(f.Entity)
	if err != nil {
		return err
	}
	client, cat, log, err := app.services()
	if err != nil {
		return err
	}
	p, err := current(client, cat, log)
	if err != nil {
		return err
	}

	next := p.Step(dir, unit, f.Count)
	log.Debug("stepped",
		slog.String("direction", dir.String()),
		slog.String("unit", unit.String()),
		slog.Uint64("count", uint64(f.Count)),
		slog.String("from", p.String()),
		slog.String("to", next.String()))

	if err := save(client, next); err != nil {
		return err
	}
	fmt.Fprintln(app.Out, next.String())
	return nil
}

// NextCmd steps forward.
type NextCmd struct {
	StepFlags `embed:""`
}

func (c *NextCmd) Run(app *App) error {
	return c.run(app, position.Next)
}

// PreviousCmd steps backward.
type PreviousCmd struct {
	StepFlags `embed:""`
}

func (c *PreviousCmd) Run(app *App) error {
	return c.run(app, position.Previous)
}

// BooksCmd lists catalog books.
type BooksCmd struct {
	From string `help:"First book to list" default:"genesis"`
	To   string `help:"Last book to list" default:"revelation"`
}

func (c *BooksCmd) Run(app *App) error {
	from, err := bible.ParseBookID(c.From)
	if err != nil {
		return err
	}
	to, err := bible.ParseBookID(c.To)
	if err != nil {
		return err
	}
	if from > to {
		return errors.NewValidation("from", c.From, fmt.Sprintf("%s comes after %s", from, to))
	}

	cat, err := do.Invoke[*catalog.Catalog](app.Injector)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(app.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "BOOK\tOSIS\tCHAPTERS\tVERSES")
	for _, b := range cat.Range(from, to) {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\n", b.Name(), b.OSIS(), b.ChapterCount(), b.VerseCount())
	}
	return tw.Flush()
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run(app *App) error {
	fmt.Fprintf(app.Out, "read-bible version %s\n", version)
	return nil
}
