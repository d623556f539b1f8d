package position

import (
	"fmt"
	"strings"

	"github.com/FocuswithJustin/bibleread/core/bible"
	"github.com/FocuswithJustin/bibleread/core/catalog"
)

// Stepping never fails. The zero Position has nowhere to go and is returned
// unchanged by every stepping method.
//
// Otherwise each target is either taken from the catalog or is
// a 1:1 of some book, both of which exist by construction, so must is only
// a guard against a broken invariant.
func (p Position) must(book bible.BookID, chapter bible.ChapterNumber, verse bible.VerseNumber) Position {
	next, err := New(p.cat, book, chapter, verse)
	if err != nil {
		panic(fmt.Sprintf("position: navigation produced invalid target: %v", err))
	}
	return next
}

func (p Position) bookStart(book bible.BookID) Position {
	return p.must(book, p.cat.Book(book).FirstChapter().Number, bible.MustVerse(1))
}

func (p Position) chapterStart(ch catalog.Chapter) Position {
	return p.must(p.book, ch.Number, bible.MustVerse(1))
}

// NextVerse advances count verses within the chapter. If that runs past the
// chapter's last verse it moves to the start of the next chapter instead;
// the remainder is not carried.
func (p Position) NextVerse(count uint) Position {
	if p.IsZero() {
		return p
	}
	ch, _ := p.cat.Book(p.book).Chapter(p.chapter)
	if remaining := uint(ch.MaxVerse.Int() - p.verse.Int()); count <= remaining {
		return p.must(p.book, p.chapter, bible.MustVerse(p.verse.Int()+int(count)))
	}
	return p.NextChapter(1)
}

// NextChapter moves to verse 1 of the count-th chapter after the current
// one. If the book ends first it moves to the next book.
func (p Position) NextChapter(count uint) Position {
	if p.IsZero() {
		return p
	}
	book := p.cat.Book(p.book)
	if count < uint(book.ChapterCount()) {
		if ch, ok := book.ChapterAfter(p.chapter, int(count)); ok {
			return p.chapterStart(ch)
		}
	}
	return p.NextBook(1)
}

// NextBook moves to 1:1 of the count-th book after the current one. Past
// Revelation it wraps to Genesis.
func (p Position) NextBook(count uint) Position {
	if p.IsZero() {
		return p
	}
	if count < uint(bible.BookCount) {
		if id, ok := p.book.Advance(int(count)); ok {
			return p.bookStart(id)
		}
	}
	return p.bookStart(bible.First)
}

// PreviousVerse steps back count verses within the chapter. If that runs
// before verse 1 it moves to the start of the previous chapter.
func (p Position) PreviousVerse(count uint) Position {
	if p.IsZero() {
		return p
	}
	current := uint(p.verse.Int())
	if count < current {
		return p.must(p.book, p.chapter, bible.MustVerse(int(current-count)))
	}
	return p.PreviousChapter(1)
}

// PreviousChapter moves to verse 1 of the count-th chapter before the
// current one. If the book starts first it moves to the previous book.
func (p Position) PreviousChapter(count uint) Position {
	if p.IsZero() {
		return p
	}
	book := p.cat.Book(p.book)
	if count < uint(book.ChapterCount()) {
		if ch, ok := book.ChapterBefore(p.chapter, int(count)); ok {
			return p.chapterStart(ch)
		}
	}
	return p.PreviousBook(1)
}

// PreviousBook moves to 1:1 of the count-th book before the current one.
// Before Genesis it wraps to Revelation.
func (p Position) PreviousBook(count uint) Position {
	if p.IsZero() {
		return p
	}
	if count < uint(bible.BookCount) {
		if id, ok := p.book.Advance(-int(count)); ok {
			return p.bookStart(id)
		}
	}
	return p.bookStart(bible.Last)
}

// Unit selects the navigation axis.
type Unit int

const (
	UnitVerse Unit = iota
	UnitChapter
	UnitBook
)

func (u Unit) String() string {
	switch u {
	case UnitVerse:
		return "verse"
	case UnitChapter:
		return "chapter"
	case UnitBook:
		return "book"
	default:
		return fmt.Sprintf("Unit(%d)", int(u))
	}
}

// ParseUnit accepts "book", "chapter" or "verse".
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "verse", "v":
		return UnitVerse, nil
	case "chapter", "c":
		return UnitChapter, nil
	case "book", "b":
		return UnitBook, nil
	}
	return 0, fmt.Errorf("unknown unit %q (want book, chapter or verse)", s)
}

// Direction selects forward or backward stepping.
type Direction int

const (
	Next Direction = iota
	Previous
)

func (d Direction) String() string {
	if d == Previous {
		return "previous"
	}
	return "next"
}

// Step moves count units in the given direction.
func (p Position) Step(dir Direction, unit Unit, count uint) Position {
	switch dir {
	case Previous:
		switch unit {
		case UnitBook:
			return p.PreviousBook(count)
		case UnitChapter:
			return p.PreviousChapter(count)
		default:
			return p.PreviousVerse(count)
		}
	default:
		switch unit {
		case UnitBook:
			return p.NextBook(count)
		case UnitChapter:
			return p.NextChapter(count)
		default:
			return p.NextVerse(count)
		}
	}
}
