// Package catalogtest provides small fixture catalogs for tests.
package catalogtest

import (
	"testing"

	"github.com/FocuswithJustin/bibleread/core/bible"
	"github.com/FocuswithJustin/bibleread/core/catalog"
)

// Uniform returns a catalog where every book has the given number of
// chapters and every chapter the given number of verses.
func Uniform(t testing.TB, chapters, verses int) *catalog.Catalog {
	t.Helper()
	var counts [bible.BookCount][]int
	for i := range counts {
		counts[i] = make([]int, chapters)
		for j := range counts[i] {
			counts[i][j] = verses
		}
	}
	c, err := catalog.New("fixture", counts)
	if err != nil {
		t.Fatalf("failed to build fixture catalog: %v", err)
	}
	return c
}

// KJV returns the bundled catalog, failing the test if it does not load.
func KJV(t testing.TB) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Embedded()
	if err != nil {
		t.Fatalf("failed to load embedded catalog: %v", err)
	}
	return c
}
