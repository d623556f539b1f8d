package bible

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FocuswithJustin/bibleread/core/errors"
)

func TestBookCount(t *testing.T) {
	assert.Equal(t, 66, BookCount)
	assert.Equal(t, 0, Genesis.Rank())
	assert.Equal(t, 65, Revelation.Rank())
	assert.Len(t, All(), 66)
}

func TestBookMetadata(t *testing.T) {
	tests := []struct {
		id    BookID
		name  string
		slug  string
		osis  string
		ident string
	}{
		{Genesis, "Genesis", "genesis", "Gen", "Genesis"},
		{FirstSamuel, "1 Samuel", "first-samuel", "1Sam", "FirstSamuel"},
		{SongOfSolomon, "Song of Solomon", "song-of-solomon", "Song", "SongOfSolomon"},
		{Matthew, "Matthew", "matthew", "Matt", "Matthew"},
		{ThirdJohn, "3 John", "third-john", "3John", "ThirdJohn"},
		{Revelation, "Revelation", "revelation", "Rev", "Revelation"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.id.Name())
			assert.Equal(t, tt.name, tt.id.String())
			assert.Equal(t, tt.slug, tt.id.Slug())
			assert.Equal(t, tt.osis, tt.id.OSIS())
			assert.Equal(t, tt.ident, tt.id.Identifier())
		})
	}
}

func TestParseBookID(t *testing.T) {
	tests := []struct {
		input string
		want  BookID
	}{
		{"Genesis", Genesis},
		{"genesis", Genesis},
		{"Gen", Genesis},
		{"FirstSamuel", FirstSamuel},
		{"first-samuel", FirstSamuel},
		{"1 Samuel", FirstSamuel},
		{"1Sam", FirstSamuel},
		{"Song of Solomon", SongOfSolomon},
		{"SONG-OF-SOLOMON", SongOfSolomon},
		{"1 John", FirstJohn},
		{"John", John},
		{"Phlm", Philemon},
		{"Phil", Philippians},
		{"  Rev ", Revelation},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseBookID(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseBookID_Unknown(t *testing.T) {
	_, err := ParseBookID("Tobit")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrNotFound)

	var unknown *UnknownBookError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "Tobit", unknown.Input)
	assert.Equal(t, `"Tobit" is not a book of the Bible`, err.Error())
}

func TestEverySpellingRoundTrips(t *testing.T) {
	for _, id := range All() {
		for _, s := range []string{id.Name(), id.Slug(), id.OSIS(), id.Identifier()} {
			got, err := ParseBookID(s)
			require.NoError(t, err, s)
			assert.Equal(t, id, got, s)
		}
	}
}

func TestAdvance(t *testing.T) {
	next, ok := Genesis.Advance(1)
	assert.True(t, ok)
	assert.Equal(t, Exodus, next)

	_, ok = Revelation.Advance(1)
	assert.False(t, ok)

	prev, ok := Exodus.Advance(-1)
	assert.True(t, ok)
	assert.Equal(t, Genesis, prev)

	_, ok = Genesis.Advance(-1)
	assert.False(t, ok)
}

func TestBetween(t *testing.T) {
	assert.Equal(t, []BookID{Exodus, Leviticus, Numbers}, Between(Exodus, Numbers))
	assert.Equal(t, []BookID{Jude, Revelation}, Between(Jude, Revelation))
	assert.Equal(t, []BookID{Ruth}, Between(Ruth, Ruth))
	assert.Nil(t, Between(Numbers, Exodus))
}

func TestBookIDText(t *testing.T) {
	text, err := SecondKings.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "second-kings", string(text))

	var id BookID
	require.NoError(t, id.UnmarshalText([]byte("2 Kings")))
	assert.Equal(t, SecondKings, id)

	assert.Error(t, id.UnmarshalText([]byte("Enoch")))

	_, err = BookID(66).MarshalText()
	assert.Error(t, err)
	assert.False(t, BookID(66).Valid())
}
