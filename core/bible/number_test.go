package bible

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FocuswithJustin/bibleread/core/errors"
)

func TestNewChapterNumber_FullRange(t *testing.T) {
	for n := 1; n <= MaxChapter; n++ {
		c, err := NewChapterNumber(n)
		require.NoError(t, err, n)
		assert.Equal(t, n, c.Int())
	}
}

func TestNewVerseNumber_FullRange(t *testing.T) {
	for n := 1; n <= MaxVerse; n++ {
		v, err := NewVerseNumber(n)
		require.NoError(t, err, n)
		assert.Equal(t, n, v.Int())
	}
}

func TestNumberOutOfRange(t *testing.T) {
	tests := []struct {
		name    string
		newFunc func(int) error
		input   int
		kind    RangeKind
		wantMsg string
	}{
		{"chapter zero", chapterErr, 0, RangeZero, "chapter number cannot be zero"},
		{"chapter negative", chapterErr, -3, RangeZero, "chapter number cannot be zero"},
		{"chapter 150", chapterErr, 150, RangeTooLarge, "chapter number 150 is too large (max 149)"},
		{"chapter 151", chapterErr, 151, RangeTooLarge, "chapter number 151 is too large (max 149)"},
		{"verse zero", verseErr, 0, RangeZero, "verse number cannot be zero"},
		{"verse 177", verseErr, 177, RangeTooLarge, "verse number 177 is too large (max 176)"},
		{"verse 255", verseErr, 255, RangeTooLarge, "verse number 255 is too large (max 176)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.newFunc(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, errors.ErrInvalidInput)

			var rangeErr *RangeError
			require.ErrorAs(t, err, &rangeErr)
			assert.Equal(t, tt.kind, rangeErr.Kind)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func chapterErr(n int) error {
	_, err := NewChapterNumber(n)
	return err
}

func verseErr(n int) error {
	_, err := NewVerseNumber(n)
	return err
}

func TestNumberOrdering(t *testing.T) {
	a, b := MustChapter(3), MustChapter(12)
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.Equal(t, MustChapter(3), a)

	seen := map[VerseNumber]bool{MustVerse(1): true}
	assert.True(t, seen[MustVerse(1)])
	assert.False(t, seen[MustVerse(2)])
}

func TestZeroValues(t *testing.T) {
	assert.True(t, ChapterNumber{}.IsZero())
	assert.True(t, VerseNumber{}.IsZero())
	assert.False(t, MustVerse(9).IsZero())
	assert.Equal(t, "9", MustVerse(9).String())
}

func TestMustPanics(t *testing.T) {
	assert.Panics(t, func() { MustChapter(0) })
	assert.Panics(t, func() { MustVerse(MaxVerse + 1) })
}

func TestRangeKindString(t *testing.T) {
	assert.Equal(t, "zero", RangeZero.String())
	assert.Equal(t, "too large", RangeTooLarge.String())
	assert.Equal(t, "unknown", RangeKind(0).String())
}
