// Package catalog holds the immutable shape of the text: for every book, its
// ordered chapters and each chapter's last verse.
//
// A Catalog is built once at process start, by Load or Embedded, and is
// read-only afterwards. Pass it explicitly to whatever needs it; there is no
// package-level instance.
package catalog

import (
	"fmt"

	"github.com/FocuswithJustin/bibleread/core/bible"
)

// Chapter is one chapter's verse bound.
type Chapter struct {
	Number   bible.ChapterNumber
	MaxVerse bible.VerseNumber
}

// Contains reports whether v falls inside the chapter.
func (c Chapter) Contains(v bible.VerseNumber) bool {
	return !v.IsZero() && v.Int() <= c.MaxVerse.Int()
}

// Book is a catalog entry. Chapters are contiguous from 1, so chapter n is
// stored at index n-1.
type Book struct {
	id       bible.BookID
	name     string
	osis     string
	chapters []Chapter
}

// ID returns the book identifier.
func (b *Book) ID() bible.BookID { return b.id }

// Name returns the display name from the dataset.
func (b *Book) Name() string { return b.name }

// OSIS returns the OSIS book id from the dataset.
func (b *Book) OSIS() string { return b.osis }

// ChapterCount returns the number of addressable chapters.
func (b *Book) ChapterCount() int { return len(b.chapters) }

// Chapters returns a copy of the chapters in ascending order.
func (b *Book) Chapters() []Chapter {
	out := make([]Chapter, len(b.chapters))
	copy(out, b.chapters)
	return out
}

// Chapter looks up chapter n.
func (b *Book) Chapter(n bible.ChapterNumber) (Chapter, bool) {
	i := n.Int() - 1
	if i < 0 || i >= len(b.chapters) {
		return Chapter{}, false
	}
	return b.chapters[i], true
}

// FirstChapter returns the book's first chapter.
func (b *Book) FirstChapter() Chapter { return b.chapters[0] }

// LastChapter returns the book's last chapter.
func (b *Book) LastChapter() Chapter { return b.chapters[len(b.chapters)-1] }

// ChapterAfter returns the count-th chapter after n in this book. A count of
// zero returns n itself. The second result is false when the book ends first.
func (b *Book) ChapterAfter(n bible.ChapterNumber, count int) (Chapter, bool) {
	return b.chapterAt(n.Int() - 1 + count)
}

// ChapterBefore returns the count-th chapter before n in this book. A count
// of zero returns n itself. The second result is false when the book starts
// first.
func (b *Book) ChapterBefore(n bible.ChapterNumber, count int) (Chapter, bool) {
	return b.chapterAt(n.Int() - 1 - count)
}

func (b *Book) chapterAt(i int) (Chapter, bool) {
	if i < 0 || i >= len(b.chapters) {
		return Chapter{}, false
	}
	return b.chapters[i], true
}

// VerseCount returns the total number of verses in the book.
func (b *Book) VerseCount() int {
	total := 0
	for _, c := range b.chapters {
		total += c.MaxVerse.Int()
	}
	return total
}

func (b *Book) String() string {
	return fmt.Sprintf("%s (%d chapters)", b.name, len(b.chapters))
}

// Catalog maps every BookID to its Book.
type Catalog struct {
	versification string
	books         [bible.BookCount]*Book
}

// Versification names the verse numbering system of the dataset.
func (c *Catalog) Versification() string { return c.versification }

// Book returns the entry for id. Every valid BookID is present; an id
// outside the canon is a programming error and panics.
func (c *Catalog) Book(id bible.BookID) *Book {
	if !id.Valid() {
		panic(fmt.Sprintf("catalog: invalid book id %d", id))
	}
	return c.books[id]
}

// Books returns every book in canonical order.
func (c *Catalog) Books() []*Book {
	out := make([]*Book, len(c.books))
	copy(out, c.books[:])
	return out
}

// Range returns the books from..to in canonical order, both ends included.
// It returns nil when from comes after to.
func (c *Catalog) Range(from, to bible.BookID) []*Book {
	ids := bible.Between(from, to)
	if ids == nil {
		return nil
	}
	out := make([]*Book, len(ids))
	for i, id := range ids {
		out[i] = c.books[id]
	}
	return out
}

// ChapterCount returns the number of addressable chapters in the catalog.
func (c *Catalog) ChapterCount() int {
	total := 0
	for _, b := range c.books {
		total += len(b.chapters)
	}
	return total
}
