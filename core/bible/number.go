package bible

import (
	"fmt"

	"github.com/FocuswithJustin/bibleread/core/errors"
)

// Global bounds shared by every book. They are catalog-wide maxima, not
// per-book limits: a chapter number can be in range yet absent from a book.
const (
	MaxChapter = 149
	MaxVerse   = 176
)

// RangeKind describes why a bounded value was rejected.
type RangeKind int

const (
	// RangeZero means the value was zero (or negative).
	RangeZero RangeKind = iota + 1
	// RangeTooLarge means the value exceeded the type's maximum.
	RangeTooLarge
)

func (k RangeKind) String() string {
	switch k {
	case RangeZero:
		return "zero"
	case RangeTooLarge:
		return "too large"
	default:
		return "unknown"
	}
}

// RangeError is returned when a chapter or verse number is out of range.
type RangeError struct {
	Field string // "chapter" or "verse"
	Value int
	Max   int
	Kind  RangeKind
}

func (e *RangeError) Error() string {
	if e.Kind == RangeZero {
		return fmt.Sprintf("%s number cannot be zero", e.Field)
	}
	return fmt.Sprintf("%s number %d is too large (max %d)", e.Field, e.Value, e.Max)
}

func (e *RangeError) Unwrap() error {
	return errors.ErrInvalidInput
}

// UnknownBookError is returned when a string names no canonical book.
type UnknownBookError struct {
	Input string
}

func (e *UnknownBookError) Error() string {
	return fmt.Sprintf("%q is not a book of the Bible", e.Input)
}

func (e *UnknownBookError) Unwrap() error {
	return errors.ErrNotFound
}

// ChapterNumber is a chapter number in [1, MaxChapter].
type ChapterNumber struct {
	n uint8
}

// VerseNumber is a verse number in [1, MaxVerse].
type VerseNumber struct {
	n uint8
}

func checkRange(field string, n, max int) error {
	switch {
	case n <= 0:
		return &RangeError{Field: field, Value: n, Max: max, Kind: RangeZero}
	case n > max:
		return &RangeError{Field: field, Value: n, Max: max, Kind: RangeTooLarge}
	}
	return nil
}

// NewChapterNumber validates n as a chapter number.
func NewChapterNumber(n int) (ChapterNumber, error) {
	if err := checkRange("chapter", n, MaxChapter); err != nil {
		return ChapterNumber{}, err
	}
	return ChapterNumber{n: uint8(n)}, nil
}

// NewVerseNumber validates n as a verse number.
func NewVerseNumber(n int) (VerseNumber, error) {
	if err := checkRange("verse", n, MaxVerse); err != nil {
		return VerseNumber{}, err
	}
	return VerseNumber{n: uint8(n)}, nil
}

// MustChapter is NewChapterNumber for constants; it panics on bad input.
func MustChapter(n int) ChapterNumber {
	c, err := NewChapterNumber(n)
	if err != nil {
		panic(err)
	}
	return c
}

// MustVerse is NewVerseNumber for constants; it panics on bad input.
func MustVerse(n int) VerseNumber {
	v, err := NewVerseNumber(n)
	if err != nil {
		panic(err)
	}
	return v
}

// Int returns the raw chapter number. The zero value returns 0.
func (c ChapterNumber) Int() int { return int(c.n) }

// IsZero reports whether c is the unset zero value.
func (c ChapterNumber) IsZero() bool { return c.n == 0 }

// Less orders chapter numbers ascending.
func (c ChapterNumber) Less(o ChapterNumber) bool { return c.n < o.n }

func (c ChapterNumber) String() string { return fmt.Sprint(c.n) }

// Int returns the raw verse number. The zero value returns 0.
func (v VerseNumber) Int() int { return int(v.n) }

// IsZero reports whether v is the unset zero value.
func (v VerseNumber) IsZero() bool { return v.n == 0 }

// Less orders verse numbers ascending.
func (v VerseNumber) Less(o VerseNumber) bool { return v.n < o.n }

func (v VerseNumber) String() string { return fmt.Sprint(v.n) }
