// Package position models a reader's place in the text and the rules for
// moving it.
//
// A Position is always valid against the catalog it was built with: the
// chapter exists in the book and the verse exists in the chapter. Every
// constructor and mutator validates the whole triple before committing.
//
// Navigation is a three-level odometer. Overflowing the verse axis moves to
// the next chapter, overflowing the chapter axis moves to the next book, and
// the book axis wraps around from Revelation to Genesis (and back).
package position

import (
	"fmt"

	"github.com/FocuswithJustin/bibleread/core/bible"
	"github.com/FocuswithJustin/bibleread/core/catalog"
	"github.com/FocuswithJustin/bibleread/core/errors"
)

// Reason says why a triple was rejected.
type Reason int

const (
	// ChapterNotInBook means the chapter number does not exist in the book.
	ChapterNotInBook Reason = iota + 1
	// VerseNotInChapter means the verse is past the chapter's last verse.
	VerseNotInChapter
)

// Sentinels for errors.Is checks against an InvalidError.
var (
	ErrChapterNotInBook  = errors.New("chapter is not listed in the book")
	ErrVerseNotInChapter = errors.New("verse is not in the chapter")
)

// InvalidError is returned when a book/chapter/verse triple does not exist.
type InvalidError struct {
	Book    bible.BookID
	Chapter bible.ChapterNumber
	Verse   bible.VerseNumber
	Reason  Reason
}

func (e *InvalidError) Error() string {
	switch e.Reason {
	case ChapterNotInBook:
		return fmt.Sprintf("%s has no chapter %d", e.Book.Name(), e.Chapter.Int())
	case VerseNotInChapter:
		return fmt.Sprintf("%s %d has no verse %d", e.Book.Name(), e.Chapter.Int(), e.Verse.Int())
	default:
		return "invalid position"
	}
}

// Unwrap lets callers match both the reason and ErrInvalidInput.
func (e *InvalidError) Unwrap() []error {
	switch e.Reason {
	case ChapterNotInBook:
		return []error{ErrChapterNotInBook, errors.ErrInvalidInput}
	case VerseNotInChapter:
		return []error{ErrVerseNotInChapter, errors.ErrInvalidInput}
	default:
		return []error{errors.ErrInvalidInput}
	}
}

// Position is a validated book, chapter and verse. The zero value is not a
// valid position; use New or Start.
type Position struct {
	cat     *catalog.Catalog
	book    bible.BookID
	chapter bible.ChapterNumber
	verse   bible.VerseNumber
}

// New validates the triple against cat.
func New(cat *catalog.Catalog, book bible.BookID, chapter bible.ChapterNumber, verse bible.VerseNumber) (Position, error) {
	if err := validate(cat, book, chapter, verse); err != nil {
		return Position{}, err
	}
	return Position{cat: cat, book: book, chapter: chapter, verse: verse}, nil
}

// Start returns Genesis 1:1.
func Start(cat *catalog.Catalog) Position {
	return Position{cat: cat, book: bible.Genesis, chapter: bible.MustChapter(1), verse: bible.MustVerse(1)}
}

func validate(cat *catalog.Catalog, book bible.BookID, chapter bible.ChapterNumber, verse bible.VerseNumber) error {
	if cat == nil {
		return errors.NewValidation("catalog", "", "catalog is required")
	}
	if !book.Valid() {
		return errors.NewValidation("book", fmt.Sprint(uint8(book)), "not a canonical book")
	}
	if chapter.IsZero() {
		return errors.NewValidation("chapter", "0", "chapter is required")
	}
	if verse.IsZero() {
		return errors.NewValidation("verse", "0", "verse is required")
	}

	ch, ok := cat.Book(book).Chapter(chapter)
	if !ok {
		return &InvalidError{Book: book, Chapter: chapter, Verse: verse, Reason: ChapterNotInBook}
	}
	if !ch.Contains(verse) {
		return &InvalidError{Book: book, Chapter: chapter, Verse: verse, Reason: VerseNotInChapter}
	}
	return nil
}

// Modify replaces all three fields after validating the new triple. On
// error p is left unchanged.
func (p *Position) Modify(book bible.BookID, chapter bible.ChapterNumber, verse bible.VerseNumber) error {
	next, err := New(p.cat, book, chapter, verse)
	if err != nil {
		return err
	}
	*p = next
	return nil
}

// SetBook moves to another book, keeping chapter and verse.
func (p *Position) SetBook(book bible.BookID) error {
	return p.Modify(book, p.chapter, p.verse)
}

// SetChapter moves to another chapter, keeping book and verse.
func (p *Position) SetChapter(chapter bible.ChapterNumber) error {
	return p.Modify(p.book, chapter, p.verse)
}

// SetVerse moves to another verse in the current chapter.
func (p *Position) SetVerse(verse bible.VerseNumber) error {
	return p.Modify(p.book, p.chapter, verse)
}

// Book returns the current book.
func (p Position) Book() bible.BookID { return p.book }

// Chapter returns the current chapter number.
func (p Position) Chapter() bible.ChapterNumber { return p.chapter }

// Verse returns the current verse number.
func (p Position) Verse() bible.VerseNumber { return p.verse }

// Catalog returns the catalog the position was validated against.
func (p Position) Catalog() *catalog.Catalog { return p.cat }

// IsZero reports whether p is the zero value.
func (p Position) IsZero() bool { return p.cat == nil }

// Equal compares book, chapter and verse.
func (p Position) Equal(o Position) bool {
	return p.book == o.book && p.chapter == o.chapter && p.verse == o.verse
}

// String renders the position as "Genesis 1:1", using the catalog's name.
func (p Position) String() string {
	if p.IsZero() {
		return "<none>"
	}
	return fmt.Sprintf("%s %d:%d", p.cat.Book(p.book).Name(), p.chapter.Int(), p.verse.Int())
}

// OSISID renders the position as an OSIS reference, e.g. "Gen.1.1".
func (p Position) OSISID() string {
	if p.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s.%d.%d", p.book.OSIS(), p.chapter.Int(), p.verse.Int())
}
