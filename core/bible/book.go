// Package bible defines the fixed shape of the canon: the 66 book identifiers
// in canonical order and the bounded chapter and verse number types.
package bible

import (
	"fmt"
	"strings"
)

// BookID identifies one of the 66 books of the Protestant canon. The
// underlying value is the canonical rank: Genesis is 0, Revelation is 65.
type BookID uint8

// Canonical books, in Bible order.
const (
	Genesis BookID = iota
	Exodus
	Leviticus
	Numbers
	Deuteronomy
	Joshua
	Judges
	Ruth
	FirstSamuel
	SecondSamuel
	FirstKings
	SecondKings
	FirstChronicles
	SecondChronicles
	Ezra
	Nehemiah
	Esther
	Job
	Psalms
	Proverbs
	Ecclesiastes
	SongOfSolomon
	Isaiah
	Jeremiah
	Lamentations
	Ezekiel
	Daniel
	Hosea
	Joel
	Amos
	Obadiah
	Jonah
	Micah
	Nahum
	Habakkuk
	Zephaniah
	Haggai
	Zechariah
	Malachi
	Matthew
	Mark
	Luke
	John
	Acts
	Romans
	FirstCorinthians
	SecondCorinthians
	Galatians
	Ephesians
	Philippians
	Colossians
	FirstThessalonians
	SecondThessalonians
	FirstTimothy
	SecondTimothy
	Titus
	Philemon
	Hebrews
	James
	FirstPeter
	SecondPeter
	FirstJohn
	SecondJohn
	ThirdJohn
	Jude
	Revelation
)

// BookCount is the number of books in the canon.
const BookCount = int(Revelation) + 1

// First and Last bound the book axis.
const (
	First = Genesis
	Last  = Revelation
)

type bookInfo struct {
	ident string // Go-style identifier, e.g. "FirstSamuel"
	slug  string // kebab-case form used on disk, e.g. "first-samuel"
	name  string // English display name, e.g. "1 Samuel"
	osis  string // OSIS book id, e.g. "1Sam"
}

var books = [BookCount]bookInfo{
	{"Genesis", "genesis", "Genesis", "Gen"},
	{"Exodus", "exodus", "Exodus", "Exod"},
	{"Leviticus", "leviticus", "Leviticus", "Lev"},
	{"Numbers", "numbers", "Numbers", "Num"},
	{"Deuteronomy", "deuteronomy", "Deuteronomy", "Deut"},
	{"Joshua", "joshua", "Joshua", "Josh"},
	{"Judges", "judges", "Judges", "Judg"},
	{"Ruth", "ruth", "Ruth", "Ruth"},
	{"FirstSamuel", "first-samuel", "1 Samuel", "1Sam"},
	{"SecondSamuel", "second-samuel", "2 Samuel", "2Sam"},
	{"FirstKings", "first-kings", "1 Kings", "1Kgs"},
	{"SecondKings", "second-kings", "2 Kings", "2Kgs"},
	{"FirstChronicles", "first-chronicles", "1 Chronicles", "1Chr"},
	{"SecondChronicles", "second-chronicles", "2 Chronicles", "2Chr"},
	{"Ezra", "ezra", "Ezra", "Ezra"},
	{"Nehemiah", "nehemiah", "Nehemiah", "Neh"},
	{"Esther", "esther", "Esther", "Esth"},
	{"Job", "job", "Job", "Job"},
	{"Psalms", "psalms", "Psalms", "Ps"},
	{"Proverbs", "proverbs", "Proverbs", "Prov"},
	{"Ecclesiastes", "ecclesiastes", "Ecclesiastes", "Eccl"},
	{"SongOfSolomon", "song-of-solomon", "Song of Solomon", "Song"},
	{"Isaiah", "isaiah", "Isaiah", "Isa"},
	{"Jeremiah", "jeremiah", "Jeremiah", "Jer"},
	{"Lamentations", "lamentations", "Lamentations", "Lam"},
	{"Ezekiel", "ezekiel", "Ezekiel", "Ezek"},
	{"Daniel", "daniel", "Daniel", "Dan"},
	{"Hosea", "hosea", "Hosea", "Hos"},
	{"Joel", "joel", "Joel", "Joel"},
	{"Amos", "amos", "Amos", "Amos"},
	{"Obadiah", "obadiah", "Obadiah", "Obad"},
	{"Jonah", "jonah", "Jonah", "Jonah"},
	{"Micah", "micah", "Micah", "Mic"},
	{"Nahum", "nahum", "Nahum", "Nah"},
	{"Habakkuk", "habakkuk", "Habakkuk", "Hab"},
	{"Zephaniah", "zephaniah", "Zephaniah", "Zeph"},
	{"Haggai", "haggai", "Haggai", "Hag"},
	{"Zechariah", "zechariah", "Zechariah", "Zech"},
	{"Malachi", "malachi", "Malachi", "Mal"},
	{"Matthew", "matthew", "Matthew", "Matt"},
	{"Mark", "mark", "Mark", "Mark"},
	{"Luke", "luke", "Luke", "Luke"},
	{"John", "john", "John", "John"},
	{"Acts", "acts", "Acts", "Acts"},
	{"Romans", "romans", "Romans", "Rom"},
	{"FirstCorinthians", "first-corinthians", "1 Corinthians", "1Cor"},
	{"SecondCorinthians", "second-corinthians", "2 Corinthians", "2Cor"},
	{"Galatians", "galatians", "Galatians", "Gal"},
	{"Ephesians", "ephesians", "Ephesians", "Eph"},
	{"Philippians", "philippians", "Philippians", "Phil"},
	{"Colossians", "colossians", "Colossians", "Col"},
	{"FirstThessalonians", "first-thessalonians", "1 Thessalonians", "1Thess"},
	{"SecondThessalonians", "second-thessalonians", "2 Thessalonians", "2Thess"},
	{"FirstTimothy", "first-timothy", "1 Timothy", "1Tim"},
	{"SecondTimothy", "second-timothy", "2 Timothy", "2Tim"},
	{"Titus", "titus", "Titus", "Titus"},
	{"Philemon", "philemon", "Philemon", "Phlm"},
	{"Hebrews", "hebrews", "Hebrews", "Heb"},
	{"James", "james", "James", "Jas"},
	{"FirstPeter", "first-peter", "1 Peter", "1Pet"},
	{"SecondPeter", "second-peter", "2 Peter", "2Pet"},
	{"FirstJohn", "first-john", "1 John", "1John"},
	{"SecondJohn", "second-john", "2 John", "2John"},
	{"ThirdJohn", "third-john", "3 John", "3John"},
	{"Jude", "jude", "Jude", "Jude"},
	{"Revelation", "revelation", "Revelation", "Rev"},
}

// lookup maps every normalized spelling of a book to its ID.
var lookup = func() map[string]BookID {
	m := make(map[string]BookID, BookCount*4)
	for i, b := range books {
		id := BookID(i)
		for _, key := range []string{b.ident, b.slug, b.name, b.osis} {
			m[normalize(key)] = id
		}
	}
	return m
}()

// normalize folds case and drops separators so "Song of Solomon",
// "song-of-solomon" and "SongOfSolomon" compare equal.
func normalize(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		switch r {
		case ' ', '-', '_', '.', '\t':
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// ParseBookID resolves an identifier, slug, English name or OSIS id to a
// BookID. Matching ignores case, spaces and hyphens.
func ParseBookID(s string) (BookID, error) {
	if id, ok := lookup[normalize(s)]; ok {
		return id, nil
	}
	return 0, &UnknownBookError{Input: s}
}

// Valid reports whether b is one of the 66 canonical books.
func (b BookID) Valid() bool {
	return int(b) < BookCount
}

// Rank returns the zero-based canonical position of the book.
func (b BookID) Rank() int {
	return int(b)
}

// Name returns the English display name, e.g. "1 Samuel".
func (b BookID) Name() string {
	if !b.Valid() {
		return fmt.Sprintf("BookID(%d)", uint8(b))
	}
	return books[b].name
}

// Slug returns the kebab-case identifier, e.g. "first-samuel".
func (b BookID) Slug() string {
	if !b.Valid() {
		return ""
	}
	return books[b].slug
}

// OSIS returns the OSIS book id, e.g. "1Sam".
func (b BookID) OSIS() string {
	if !b.Valid() {
		return ""
	}
	return books[b].osis
}

// Identifier returns the identifier form, e.g. "FirstSamuel".
func (b BookID) Identifier() string {
	if !b.Valid() {
		return ""
	}
	return books[b].ident
}

func (b BookID) String() string {
	return b.Name()
}

// Advance returns the book n places after b, and false when that runs past
// Revelation.
func (b BookID) Advance(n int) (BookID, bool) {
	r := b.Rank() + n
	if r < 0 || r >= BookCount {
		return 0, false
	}
	return BookID(r), true
}

// MarshalText encodes the book as its slug.
func (b BookID) MarshalText() ([]byte, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("invalid book id %d", uint8(b))
	}
	return []byte(b.Slug()), nil
}

// UnmarshalText accepts any spelling understood by ParseBookID.
func (b *BookID) UnmarshalText(text []byte) error {
	id, err := ParseBookID(string(text))
	if err != nil {
		return err
	}
	*b = id
	return nil
}

// All returns every book in canonical order.
func All() []BookID {
	ids := make([]BookID, BookCount)
	for i := range ids {
		ids[i] = BookID(i)
	}
	return ids
}

// Between returns the books from..to in canonical order, both ends
// included. It returns nil when from comes after to.
func Between(from, to BookID) []BookID {
	if from > to || !to.Valid() {
		return nil
	}
	ids := make([]BookID, 0, int(to-from)+1)
	for id := from; id <= to; id++ {
		ids = append(ids, id)
	}
	return ids
}
