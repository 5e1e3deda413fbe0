package catalog

import (
	"cmp"
	"errors"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/example/filmly/internal/validator"
)

type SortKey string

const (
	SortNone   SortKey = ""
	SortRating SortKey = "rating"
	SortName   SortKey = "name"
	SortGenre  SortKey = "genre"
)

var ErrInvalidSortKey = errors.New("invalid sort key")

// SortSafelist holds every accepted value of the sort query parameter.
var SortSafelist = []string{string(SortRating), string(SortName), string(SortGenre)}

func ParseSortKey(raw string) (SortKey, error) {
	if !validator.In(raw, SortSafelist...) {
		return SortNone, ErrInvalidSortKey
	}
	return SortKey(raw), nil
}

// Filters narrows a listing. Zero values mean "no constraint".
type Filters struct {
	GenreIDs      []int
	From          int
	To            int
	FavoritesOnly bool
	Sort          SortKey
}

// Match reports whether m passes every constraint. favorite is the live
// favorites membership of m.
func (f Filters) Match(m Movie, favorite bool) bool {
	if f.FavoritesOnly && !favorite {
		return false
	}
	if len(f.GenreIDs) > 0 && !m.HasAnyGenre(f.GenreIDs) {
		return false
	}
	if f.From > 0 && m.ReleaseYear < f.From {
		return false
	}
	if f.To > 0 && m.ReleaseYear > f.To {
		return false
	}
	return true
}

// Sort returns the movies ordered by key. The input slice is never modified
// and equal keys keep their relative input order.
func Sort(movies []Movie, key SortKey) []Movie {
	out := slices.Clone(movies)
	switch key {
	case SortRating:
		slices.SortStableFunc(out, func(a, b Movie) int {
			return cmp.Compare(b.Rating, a.Rating)
		})
	case SortName:
		// Collators keep internal buffers and are not safe for concurrent use.
		c := collate.New(language.English)
		slices.SortStableFunc(out, func(a, b Movie) int {
			return c.CompareString(a.Title, b.Title)
		})
	case SortGenre:
		slices.SortStableFunc(out, func(a, b Movie) int {
			return cmp.Compare(a.primaryGenre(), b.primaryGenre())
		})
	}
	return out
}
