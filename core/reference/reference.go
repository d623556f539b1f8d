// Package reference parses human and OSIS style scripture references such as
// "John 3:16", "1 John 3", "Song of Solomon 2:4" and "Gen.1.1".
package reference

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/FocuswithJustin/bibleread/core/bible"
	"github.com/FocuswithJustin/bibleread/core/errors"
)

// Reference is a parsed reference. Chapter and Verse are zero when the
// input did not name them.
type Reference struct {
	Book    bible.BookID
	Chapter bible.ChapterNumber
	Verse   bible.VerseNumber
}

//nolint:govet // participle grammar tags are not standard struct tags
type refGrammar struct {
	Prefix  string       `@Int?`
	Words   []string     `@Ident ( "-"? @Ident )*`
	Chapter *chapterPart `( "."? @@ )?`
}

//nolint:govet // participle grammar tags are not standard struct tags
type chapterPart struct {
	Number int  `@Int`
	Verse  *int `( ( ":" | "." ) @Int )?`
}

var refLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Ident", Pattern: `[A-Za-z]+`},
	{Name: "Punct", Pattern: `[:.\-]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var refParser = participle.MustBuild[refGrammar](
	participle.Lexer(refLexer),
	participle.Elide("Whitespace"),
)

// Parse reads a reference. Supported forms:
//   - "Genesis" (book only)
//   - "Genesis 1" or "Gen.1" (book and chapter)
//   - "Genesis 1:1" or "Gen.1.1" (book, chapter and verse)
//   - "1 John 3:16", "1John.3.16", "first-john 3:16" (numbered books)
//
// Book names are matched case-insensitively against names, slugs and OSIS
// ids. Chapter and verse numbers are range-checked but not checked against
// a catalog; position.New does that.
func Parse(s string) (Reference, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Reference{}, errors.NewParse("reference", "", "empty reference")
	}

	parsed, err := refParser.ParseString("", s)
	if err != nil {
		pe := errors.NewParse("reference", "", fmt.Sprintf("invalid reference %q", s))
		pe.Err = err
		return Reference{}, pe
	}

	book, err := bible.ParseBookID(parsed.Prefix + strings.Join(parsed.Words, " "))
	if err != nil {
		return Reference{}, err
	}
	ref := Reference{Book: book}

	if parsed.Chapter == nil {
		return ref, nil
	}
	if ref.Chapter, err = bible.NewChapterNumber(parsed.Chapter.Number); err != nil {
		return Reference{}, err
	}
	if parsed.Chapter.Verse != nil {
		if ref.Verse, err = bible.NewVerseNumber(*parsed.Chapter.Verse); err != nil {
			return Reference{}, err
		}
	}
	return ref, nil
}

// HasChapter reports whether the reference named a chapter.
func (r Reference) HasChapter() bool { return !r.Chapter.IsZero() }

// HasVerse reports whether the reference named a verse.
func (r Reference) HasVerse() bool { return !r.Verse.IsZero() }

// String renders the reference as "John 3:16", "John 3" or "John".
func (r Reference) String() string {
	switch {
	case r.HasVerse():
		return fmt.Sprintf("%s %d:%d", r.Book.Name(), r.Chapter.Int(), r.Verse.Int())
	case r.HasChapter():
		return fmt.Sprintf("%s %d", r.Book.Name(), r.Chapter.Int())
	default:
		return r.Book.Name()
	}
}

// OSISID renders the reference in OSIS form, e.g. "John.3.16".
func (r Reference) OSISID() string {
	var sb strings.Builder
	sb.WriteString(r.Book.OSIS())
	if r.HasChapter() {
		fmt.Fprintf(&sb, ".%d", r.Chapter.Int())
		if r.HasVerse() {
			fmt.Fprintf(&sb, ".%d", r.Verse.Int())
		}
	}
	return sb.String()
}
