package collection

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects the field books are ordered by.
type SortKey string

// The four supported sort keys.
const (
	SortTitle  SortKey = "title"
	SortAuthor SortKey = "author"
	SortSeries SortKey = "series"
	SortRating SortKey = "rating"
)

// Direction is the sort direction.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Toggle flips the direction.
func (d Direction) Toggle() Direction {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

// ParseSortKey validates a sort key string, defaulting to title.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortAuthor, SortSeries, SortRating:
		return SortKey(s)
	default:
		return SortTitle
	}
}

// collator performs locale-aware string comparison, ignoring case the way
// the browser's localeCompare does.
var collator = collate.New(language.Und, collate.Loose)

// Comparator returns the single ordering function used by every sort call
// site. String keys compare with locale collation; rating numerically.
// Absent ratings and absent series always order after present values, in
// both directions: the direction flips comparisons between present values
// only, never the placement of absent ones.
func Comparator(key SortKey, dir Direction) func(a, b Book) int {
	flip := 1
	if dir == Descending {
		flip = -1
	}
	return func(a, b Book) int {
		switch key {
		case SortAuthor:
			return flip * collator.CompareString(a.Author, b.Author)
		case SortSeries:
			switch {
			case a.Series == "" && b.Series == "":
				return 0
			case a.Series == "":
				return 1
			case b.Series == "":
				return -1
			}
			return flip * collator.CompareString(a.Series, b.Series)
		case SortRating:
			switch {
			case a.Rating == nil && b.Rating == nil:
				return 0
			case a.Rating == nil:
				return 1
			case b.Rating == nil:
				return -1
			}
			return flip * (*a.Rating - *b.Rating)
		default:
			return flip * collator.CompareString(a.Title, b.Title)
		}
	}
}

// SortBooks orders books in place, stably, by the given key and direction.
func SortBooks(books []Book, key SortKey, dir Direction) {
	cmp := Comparator(key, dir)
	sort.SliceStable(books, func(i, j int) bool {
		return cmp(books[i], books[j]) < 0
	})
}
