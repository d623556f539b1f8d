package catalog

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FocuswithJustin/bibleread/core/bible"
	"github.com/FocuswithJustin/bibleread/core/errors"
)

func loadKJV(t *testing.T) *Catalog {
	t.Helper()
	c, err := Embedded()
	require.NoError(t, err)
	return c
}

func TestEmbedded(t *testing.T) {
	c := loadKJV(t)

	assert.Equal(t, "KJV", c.Versification())
	assert.Len(t, c.Books(), 66)

	gen := c.Book(bible.Genesis)
	assert.Equal(t, "Genesis", gen.Name())
	assert.Equal(t, "Gen", gen.OSIS())
	assert.Equal(t, 50, gen.ChapterCount())

	ch, ok := gen.Chapter(bible.MustChapter(1))
	require.True(t, ok)
	assert.Equal(t, 31, ch.MaxVerse.Int())

	rev := c.Book(bible.Revelation)
	assert.Equal(t, 22, rev.ChapterCount())
	assert.Equal(t, 21, rev.LastChapter().MaxVerse.Int())
}

func TestEmbedded_BooksInCanonicalOrder(t *testing.T) {
	c := loadKJV(t)
	for i, b := range c.Books() {
		assert.Equal(t, bible.BookID(i), b.ID())
		assert.Equal(t, b.ID().Name(), b.Name())
	}
}

func TestEmbedded_PsalmsStopsAtChapterBound(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	c, err := Embedded(WithLogger(logger))
	require.NoError(t, err)

	ps := c.Book(bible.Psalms)
	assert.Equal(t, bible.MaxChapter, ps.ChapterCount())

	ch, ok := ps.Chapter(bible.MustChapter(119))
	require.True(t, ok)
	assert.Equal(t, bible.MaxVerse, ch.MaxVerse.Int())

	assert.Contains(t, buf.String(), "skipping unaddressable chapters")
	assert.Contains(t, buf.String(), `"book":"Psalms"`)
	assert.Equal(t, 1188, c.ChapterCount())
}

func TestMustEmbedded(t *testing.T) {
	assert.NotPanics(t, func() { MustEmbedded() })
}

func TestRange(t *testing.T) {
	c := loadKJV(t)

	books := c.Range(bible.Exodus, bible.Numbers)
	require.Len(t, books, 3)
	names := []string{books[0].Name(), books[1].Name(), books[2].Name()}
	assert.Equal(t, []string{"Exodus", "Leviticus", "Numbers"}, names)

	assert.Len(t, c.Range(bible.Matthew, bible.Revelation), 27)
	assert.Len(t, c.Range(bible.Genesis, bible.Malachi), 39)
	assert.Len(t, c.Range(bible.Jude, bible.Jude), 1)
	assert.Nil(t, c.Range(bible.Numbers, bible.Exodus))
}

func TestBookChapterNavigation(t *testing.T) {
	c := loadKJV(t)
	ruth := c.Book(bible.Ruth)

	next, ok := ruth.ChapterAfter(bible.MustChapter(1), 2)
	require.True(t, ok)
	assert.Equal(t, 3, next.Number.Int())

	_, ok = ruth.ChapterAfter(bible.MustChapter(3), 2)
	assert.False(t, ok)

	same, ok := ruth.ChapterAfter(bible.MustChapter(2), 0)
	require.True(t, ok)
	assert.Equal(t, 2, same.Number.Int())

	prev, ok := ruth.ChapterBefore(bible.MustChapter(4), 3)
	require.True(t, ok)
	assert.Equal(t, 1, prev.Number.Int())

	_, ok = ruth.ChapterBefore(bible.MustChapter(1), 1)
	assert.False(t, ok)

	_, ok = ruth.Chapter(bible.MustChapter(5))
	assert.False(t, ok)

	assert.Equal(t, 85, ruth.VerseCount())
	assert.Equal(t, "Ruth (4 chapters)", ruth.String())
}

func TestChaptersIsACopy(t *testing.T) {
	c := loadKJV(t)
	chapters := c.Book(bible.Jude).Chapters()
	chapters[0] = Chapter{}
	assert.Equal(t, 25, c.Book(bible.Jude).FirstChapter().MaxVerse.Int())
}

func TestChapterContains(t *testing.T) {
	ch := Chapter{Number: bible.MustChapter(1), MaxVerse: bible.MustVerse(31)}
	assert.True(t, ch.Contains(bible.MustVerse(31)))
	assert.False(t, ch.Contains(bible.MustVerse(32)))
	assert.False(t, ch.Contains(bible.VerseNumber{}))
}

func TestBookPanicsOutsideCanon(t *testing.T) {
	c := loadKJV(t)
	assert.Panics(t, func() { c.Book(bible.BookID(66)) })
}

// fixtureJSON renders a dataset with every book given the same chapters.
func fixtureJSON(t *testing.T, mutate func(*dataset)) string {
	t.Helper()
	ds := dataset{Versification: "fixture"}
	for _, id := range bible.All() {
		ds.Books = append(ds.Books, bookRecord{
			ID:     id.Slug(),
			Name:   id.Name(),
			OSIS:   id.OSIS(),
			Verses: []int{3, 2},
		})
	}
	if mutate != nil {
		mutate(&ds)
	}
	data, err := json.Marshal(ds)
	require.NoError(t, err)
	return string(data)
}

func TestLoad_PlainJSON(t *testing.T) {
	c, err := Load(strings.NewReader(fixtureJSON(t, nil)))
	require.NoError(t, err)
	assert.Equal(t, "fixture", c.Versification())
	assert.Equal(t, 2, c.Book(bible.Obadiah).ChapterCount())
}

func TestLoad_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{
			name:    "not json",
			input:   "{books",
			wantMsg: "invalid JSON",
		},
		{
			name:    "missing book",
			input:   fixtureJSON(t, func(ds *dataset) { ds.Books = ds.Books[:65] }),
			wantMsg: "expected 66 books, found 65",
		},
		{
			name: "books out of order",
			input: fixtureJSON(t, func(ds *dataset) {
				ds.Books[1], ds.Books[2] = ds.Books[2], ds.Books[1]
			}),
			wantMsg: `book 2: expected "exodus", found "leviticus"`,
		},
		{
			name:    "empty name",
			input:   fixtureJSON(t, func(ds *dataset) { ds.Books[0].Name = "" }),
			wantMsg: "book genesis: empty name",
		},
		{
			name: "name too long",
			input: fixtureJSON(t, func(ds *dataset) {
				ds.Books[0].Name = strings.Repeat("x", 51)
			}),
			wantMsg: "name longer than 50 bytes",
		},
		{
			name:    "no chapters",
			input:   fixtureJSON(t, func(ds *dataset) { ds.Books[7].Verses = nil }),
			wantMsg: "book ruth: no chapters",
		},
		{
			name:    "zero verses",
			input:   fixtureJSON(t, func(ds *dataset) { ds.Books[0].Verses = []int{0} }),
			wantMsg: "Genesis 1: bad verse count",
		},
		{
			name:    "too many verses",
			input:   fixtureJSON(t, func(ds *dataset) { ds.Books[0].Verses = []int{177} }),
			wantMsg: "Genesis 1: bad verse count",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.input), WithSource("fixture.json"))
			require.Error(t, err)
			assert.ErrorIs(t, err, errors.ErrInvalidInput)

			var parseErr *errors.ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, "fixture.json", parseErr.Path)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestLoad_CorruptXZ(t *testing.T) {
	data := append([]byte{}, xzMagic...)
	data = append(data, 0x00, 0x01, 0x02)
	_, err := Load(bytes.NewReader(data))
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidInput)
}

func TestNew(t *testing.T) {
	var counts [bible.BookCount][]int
	for i := range counts {
		counts[i] = []int{5}
	}
	counts[bible.Psalms] = []int{1, 2, 3}

	c, err := New("tiny", counts)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Book(bible.Psalms).ChapterCount())
	assert.Equal(t, 1, c.Book(bible.Genesis).ChapterCount())
	assert.Equal(t, "Song of Solomon", c.Book(bible.SongOfSolomon).Name())

	counts[bible.Genesis] = nil
	_, err = New("tiny", counts)
	assert.Error(t, err)
}
