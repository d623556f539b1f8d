package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/ulikunitz/xz"

	"github.com/FocuswithJustin/bibleread/core/bible"
	"github.com/FocuswithJustin/bibleread/core/errors"
	"github.com/FocuswithJustin/bibleread/internal/logging"
)

// maxNameLength bounds book display names, in bytes.
const maxNameLength = 50

// xzMagic is the header of an xz stream.
var xzMagic = []byte{0xFD, '7', 'z', 'X', 'Z', 0x00}

//go:embed data/kjv.json.xz
var embeddedKJV []byte

// dataset is the on-disk layout of a catalog file.
type dataset struct {
	Versification string       `json:"versification"`
	Books         []bookRecord `json:"books"`
}

type bookRecord struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	OSIS   string `json:"osis"`
	Verses []int  `json:"verses"` // verse count per chapter, chapter 1 first
}

type options struct {
	logger *slog.Logger
	source string
}

// Option configures catalog loading.
type Option func(*options)

// WithLogger sets the logger used for load-time warnings.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithSource names the dataset in errors and logs.
func WithSource(name string) Option {
	return func(o *options) { o.source = name }
}

func newOptions(opts []Option) *options {
	o := &options{
		logger: logging.Discard(),
		source: "catalog",
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Load parses a catalog dataset from r. The dataset is JSON, optionally
// xz-compressed.
func Load(r io.Reader, opts ...Option) (*Catalog, error) {
	o := newOptions(opts)

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.NewIO("read", o.source, err)
	}

	if bytes.HasPrefix(data, xzMagic) {
		zr, err := xz.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, parseErr(o, "invalid xz stream", err)
		}
		data, err = io.ReadAll(zr)
		if err != nil {
			return nil, parseErr(o, "failed to decompress", err)
		}
	}

	var ds dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, parseErr(o, "invalid JSON", err)
	}

	return build(ds, o)
}

// Embedded loads the bundled KJV dataset.
func Embedded(opts ...Option) (*Catalog, error) {
	opts = append([]Option{WithSource("embedded kjv.json.xz")}, opts...)
	return Load(bytes.NewReader(embeddedKJV), opts...)
}

// MustEmbedded loads the bundled dataset and panics if it is malformed. The
// dataset ships with the binary, so a failure here is a build defect.
func MustEmbedded(opts ...Option) *Catalog {
	c, err := Embedded(opts...)
	if err != nil {
		panic(fmt.Sprintf("catalog: bundled dataset is malformed: %v", err))
	}
	return c
}

// New builds a catalog from per-book verse counts, using the canonical book
// names. It is meant for fixtures that need a smaller text.
func New(versification string, verses [bible.BookCount][]int, opts ...Option) (*Catalog, error) {
	ds := dataset{Versification: versification, Books: make([]bookRecord, bible.BookCount)}
	for i, id := range bible.All() {
		ds.Books[i] = bookRecord{
			ID:     id.Slug(),
			Name:   id.Name(),
			OSIS:   id.OSIS(),
			Verses: verses[i],
		}
	}
	return build(ds, newOptions(opts))
}

func build(ds dataset, o *options) (*Catalog, error) {
	if len(ds.Books) != bible.BookCount {
		return nil, parseErr(o, fmt.Sprintf("expected %d books, found %d", bible.BookCount, len(ds.Books)), nil)
	}

	c := &Catalog{versification: ds.Versification}
	for i, rec := range ds.Books {
		id := bible.BookID(i)
		book, err := buildBook(id, rec, o)
		if err != nil {
			return nil, err
		}
		c.books[i] = book
	}

	o.logger.Debug("catalog loaded",
		"source", o.source,
		"versification", c.versification,
		"chapters", c.ChapterCount(),
	)
	return c, nil
}

func buildBook(id bible.BookID, rec bookRecord, o *options) (*Book, error) {
	if rec.ID != id.Slug() {
		return nil, parseErr(o, fmt.Sprintf("book %d: expected %q, found %q", id.Rank()+1, id.Slug(), rec.ID), nil)
	}
	if rec.Name == "" {
		return nil, parseErr(o, fmt.Sprintf("book %s: empty name", rec.ID), nil)
	}
	if len(rec.Name) > maxNameLength {
		return nil, parseErr(o, fmt.Sprintf("book %s: name longer than %d bytes", rec.ID, maxNameLength), nil)
	}
	if len(rec.Verses) == 0 {
		return nil, parseErr(o, fmt.Sprintf("book %s: no chapters", rec.ID), nil)
	}

	book := &Book{
		id:       id,
		name:     rec.Name,
		osis:     rec.OSIS,
		chapters: make([]Chapter, 0, len(rec.Verses)),
	}

	for i, count := range rec.Verses {
		number, err := bible.NewChapterNumber(i + 1)
		if err != nil {
			// Chapter numbers past the global bound cannot be addressed
			// by a Position, so they are left out of the catalog.
			o.logger.Info("skipping unaddressable chapters",
				"book", rec.Name,
				"from", i+1,
				"to", len(rec.Verses),
				"max_chapter", bible.MaxChapter,
			)
			break
		}
		maxVerse, err := bible.NewVerseNumber(count)
		if err != nil {
			return nil, parseErr(o, fmt.Sprintf("%s %d: bad verse count", rec.Name, i+1), err)
		}
		book.chapters = append(book.chapters, Chapter{Number: number, MaxVerse: maxVerse})
	}

	return book, nil
}

func parseErr(o *options, msg string, cause error) error {
	return &errors.ParseError{Format: "catalog", Path: o.source, Message: msg, Err: cause}
}
