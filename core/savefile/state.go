// Package savefile defines the on-disk record of a reading position and the
// codecs that read and write it.
package savefile

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/zeebo/blake3"

	"github.com/FocuswithJustin/bibleread/core/bible"
	"github.com/FocuswithJustin/bibleread/core/catalog"
	"github.com/FocuswithJustin/bibleread/core/errors"
	"github.com/FocuswithJustin/bibleread/core/position"
)

// ErrDigestMismatch is returned when a save file's digest does not match
// its book, chapter and verse.
var ErrDigestMismatch = errors.New("save file digest mismatch")

// SavedState is the record written to disk.
type SavedState struct {
	Book    string    `json:"book" yaml:"book"`
	Chapter int       `json:"chapter" yaml:"chapter"`
	Verse   int       `json:"verse" yaml:"verse"`
	Digest  string    `json:"digest,omitempty" yaml:"digest,omitempty"`
	SavedAt time.Time `json:"saved_at" yaml:"saved_at"`
}

// FromPosition builds the record for p, stamped with savedAt.
func FromPosition(p position.Position, savedAt time.Time) SavedState {
	s := SavedState{
		Book:    p.Book().Slug(),
		Chapter: p.Chapter().Int(),
		Verse:   p.Verse().Int(),
		SavedAt: savedAt.UTC().Truncate(time.Second),
	}
	s.Digest = s.computeDigest()
	return s
}

// Canonical is the string the digest covers, e.g. "genesis:1:1".
func (s SavedState) Canonical() string {
	return fmt.Sprintf("%s:%d:%d", s.Book, s.Chapter, s.Verse)
}

func (s SavedState) computeDigest() string {
	sum := blake3.Sum256([]byte(s.Canonical()))
	return hex.EncodeToString(sum[:])
}

// Position validates the record against cat. An empty digest is accepted
// so a save file can be written by hand; a wrong one is not.
func (s SavedState) Position(cat *catalog.Catalog) (position.Position, error) {
	if s.Digest != "" && s.Digest != s.computeDigest() {
		return position.Position{}, ErrDigestMismatch
	}

	book, err := bible.ParseBookID(s.Book)
	if err != nil {
		return position.Position{}, err
	}
	chapter, err := bible.NewChapterNumber(s.Chapter)
	if err != nil {
		return position.Position{}, err
	}
	verse, err := bible.NewVerseNumber(s.Verse)
	if err != nil {
		return position.Position{}, err
	}
	return position.New(cat, book, chapter, verse)
}
