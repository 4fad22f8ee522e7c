package collection_test

import (
	"testing"

	"github.com/shelfsync/shelfsync/internal/collection"
)

func intp(n int) *int { return &n }

// --- Status mapping ---

func TestStatusRoundTrip(t *testing.T) {
	// The persisted enum is closed and maps bijectively to display names.
	// The original client carried a lowercase "read" entry in one mapping
	// table that could never match the persisted enum; that defect is
	// deliberately not reproduced here.
	cases := []struct {
		status  collection.Status
		display string
	}{
		{collection.StatusWantToRead, "Want to Read"},
		{collection.StatusReading, "Currently Reading"},
		{collection.StatusRead, "Read"},
	}
	for _, c := range cases {
		if got := c.status.Display(); got != c.display {
			t.Errorf("%s.Display() = %q, want %q", c.status, got, c.display)
		}
		back, ok := collection.StatusFromDisplay(c.display)
		if !ok || back != c.status {
			t.Errorf("StatusFromDisplay(%q) = %q, %v; want %q", c.display, back, ok, c.status)
		}
	}
	if _, ok := collection.StatusFromDisplay("read"); ok {
		t.Error("lowercase display name should not map to a status")
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range collection.Statuses() {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	for _, s := range []collection.Status{"", "read", "ARCHIVED", "want_to_read"} {
		if s.Valid() {
			t.Errorf("%q should not be valid", s)
		}
	}
}

// --- Store ---

func TestReplace_PartitionsAndDrops(t *testing.T) {
	s := collection.NewStore()
	dropped := s.Replace([]collection.Book{
		{ID: "1", Title: "A", Status: collection.StatusWantToRead},
		{ID: "2", Title: "B", Status: collection.StatusRead},
		{ID: "3", Title: "C", Status: "ARCHIVED"},
		{ID: "4", Title: "D", Status: collection.StatusReading},
	})
	if dropped != 1 {
		t.Errorf("dropped = %d, want 1", dropped)
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
	if _, ok := s.Get("3"); ok {
		t.Error("book with unrecognized status should not be stored")
	}
	if got := len(s.Shelf(collection.StatusRead)); got != 1 {
		t.Errorf("Read shelf has %d books, want 1", got)
	}
}

func TestReplace_Idempotent(t *testing.T) {
	s := collection.NewStore()
	books := []collection.Book{
		{ID: "1", Title: "A", Status: collection.StatusWantToRead},
		{ID: "2", Title: "B", Status: collection.StatusReading},
	}
	s.Replace(books)
	s.Replace(books)
	if s.Len() != 2 {
		t.Errorf("Len() after double Replace = %d, want 2 (no duplication)", s.Len())
	}
}

func TestMove_BetweenShelves(t *testing.T) {
	s := collection.NewStore()
	s.Replace([]collection.Book{{ID: "1", Title: "A", Status: collection.StatusWantToRead}})

	b, ok := s.Move("1", collection.StatusReading)
	if !ok {
		t.Fatal("Move failed")
	}
	if b.Status != collection.StatusReading {
		t.Errorf("moved book status = %s, want READING", b.Status)
	}
	if len(s.Shelf(collection.StatusWantToRead)) != 0 {
		t.Error("book still on source shelf after move")
	}
	if len(s.Shelf(collection.StatusReading)) != 1 {
		t.Error("book not on destination shelf after move")
	}
}

func TestMove_InvalidDestination(t *testing.T) {
	s := collection.NewStore()
	s.Replace([]collection.Book{{ID: "1", Status: collection.StatusRead}})
	if _, ok := s.Move("1", "ARCHIVED"); ok {
		t.Error("Move to unrecognized status should fail")
	}
	if len(s.Shelf(collection.StatusRead)) != 1 {
		t.Error("failed move must leave the book in place")
	}
}

func TestUpdate_RelocatesOnStatusChange(t *testing.T) {
	s := collection.NewStore()
	s.Replace([]collection.Book{{ID: "1", Title: "A", Status: collection.StatusWantToRead}})

	if !s.Update(collection.Book{ID: "1", Title: "A", Rating: intp(8), Status: collection.StatusRead}) {
		t.Fatal("Update failed")
	}
	if len(s.Shelf(collection.StatusWantToRead)) != 0 {
		t.Error("book left on old shelf after status update")
	}
	got, _ := s.Get("1")
	if got.Rating == nil || *got.Rating != 8 {
		t.Error("rating not patched in place")
	}
}

func TestRemove(t *testing.T) {
	s := collection.NewStore()
	s.Replace([]collection.Book{
		{ID: "1", Status: collection.StatusRead},
		{ID: "2", Status: collection.StatusRead},
	})
	if !s.Remove("1") {
		t.Fatal("Remove failed")
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
	if s.Remove("1") {
		t.Error("second Remove of same id should report false")
	}
}

func TestFindByTitleAuthor_CaseInsensitive(t *testing.T) {
	s := collection.NewStore()
	s.Replace([]collection.Book{
		{ID: "1", Title: "The Hobbit", Author: "J.R.R. Tolkien", Status: collection.StatusRead},
	})
	b, ok := s.FindByTitleAuthor("the hobbit", "j.r.r. tolkien")
	if !ok || b.ID != "1" {
		t.Error("case-insensitive exact match should find the book")
	}
	if _, ok := s.FindByTitleAuthor("The Hobbit", "Tolkien"); ok {
		t.Error("partial author must not match")
	}
}

// --- Sort Engine ---

func titles(books []collection.Book) []string {
	out := make([]string, len(books))
	for i, b := range books {
		out[i] = b.Title
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSort_RatingAbsentLastBothDirections(t *testing.T) {
	mk := func() []collection.Book {
		return []collection.Book{
			{Title: "eight", Rating: intp(8)},
			{Title: "none"},
			{Title: "three", Rating: intp(3)},
		}
	}

	asc := mk()
	collection.SortBooks(asc, collection.SortRating, collection.Ascending)
	if got := titles(asc); !equal(got, []string{"three", "eight", "none"}) {
		t.Errorf("ascending = %v, want [three eight none]", got)
	}

	desc := mk()
	collection.SortBooks(desc, collection.SortRating, collection.Descending)
	if got := titles(desc); !equal(got, []string{"eight", "three", "none"}) {
		t.Errorf("descending = %v, want [eight three none]", got)
	}
}

func TestSort_SeriesAbsentLastBothDirections(t *testing.T) {
	mk := func() []collection.Book {
		return []collection.Book{
			{Title: "b", Series: "Beta"},
			{Title: "solo"},
			{Title: "a", Series: "Alpha"},
		}
	}

	asc := mk()
	collection.SortBooks(asc, collection.SortSeries, collection.Ascending)
	if got := titles(asc); !equal(got, []string{"a", "b", "solo"}) {
		t.Errorf("ascending = %v, want [a b solo]", got)
	}

	desc := mk()
	collection.SortBooks(desc, collection.SortSeries, collection.Descending)
	if got := titles(desc); !equal(got, []string{"b", "a", "solo"}) {
		t.Errorf("descending = %v, want [b a solo]", got)
	}
}

func TestSort_TitleLocaleAware(t *testing.T) {
	books := []collection.Book{
		{Title: "Émile"},
		{Title: "Zoo"},
		{Title: "apple"},
	}
	collection.SortBooks(books, collection.SortTitle, collection.Ascending)
	// Locale collation orders É with E, not after Z the way byte order would.
	if got := titles(books); !equal(got, []string{"apple", "Émile", "Zoo"}) {
		t.Errorf("locale sort = %v, want [apple Émile Zoo]", got)
	}
}

func TestSort_StableOnTies(t *testing.T) {
	books := []collection.Book{
		{ID: "first", Title: "Same", Rating: intp(5)},
		{ID: "second", Title: "Same", Rating: intp(5)},
		{ID: "third", Title: "Same", Rating: intp(5)},
	}
	collection.SortBooks(books, collection.SortRating, collection.Ascending)
	if books[0].ID != "first" || books[1].ID != "second" || books[2].ID != "third" {
		t.Errorf("tie order changed: %s %s %s", books[0].ID, books[1].ID, books[2].ID)
	}
}

func TestSort_DirectionFlipsPresentValues(t *testing.T) {
	books := []collection.Book{
		{Title: "Alpha", Author: "Zimmer"},
		{Title: "Beta", Author: "Abbot"},
	}
	collection.SortBooks(books, collection.SortAuthor, collection.Descending)
	if books[0].Author != "Zimmer" {
		t.Errorf("descending author sort got %s first", books[0].Author)
	}
}

func TestParseSortKey(t *testing.T) {
	if got := collection.ParseSortKey("rating"); got != collection.SortRating {
		t.Errorf("ParseSortKey(rating) = %s", got)
	}
	if got := collection.ParseSortKey("bogus"); got != collection.SortTitle {
		t.Errorf("ParseSortKey(bogus) = %s, want title default", got)
	}
}

// --- Book helpers ---

func TestSeriesLabel(t *testing.T) {
	cases := []struct {
		book collection.Book
		want string
	}{
		{collection.Book{Series: "Dune", SeriesIndex: 2}, "Dune Book 2"},
		{collection.Book{Series: "Dune"}, "Dune"},
		{collection.Book{}, ""},
	}
	for _, c := range cases {
		if got := c.book.SeriesLabel(); got != c.want {
			t.Errorf("SeriesLabel() = %q, want %q", got, c.want)
		}
	}
}

func TestOpenLibraryURL(t *testing.T) {
	cases := []struct {
		id   string
		want string
	}{
		{"OL12345M", "https://openlibrary.org/books/OL12345M"},
		{"OL54321W", "https://openlibrary.org/works/OL54321W"},
		{"/works/OL54321W", "https://openlibrary.org/works/OL54321W"},
		{"", ""},
	}
	for _, c := range cases {
		b := collection.Book{OpenLibraryID: c.id}
		if got := b.OpenLibraryURL(); got != c.want {
			t.Errorf("OpenLibraryURL(%q) = %q, want %q", c.id, got, c.want)
		}
	}
}

func TestCoverURL_Placeholder(t *testing.T) {
	b := collection.Book{}
	if got := b.CoverURL("placeholder.png"); got != "placeholder.png" {
		t.Errorf("CoverURL fallback = %q", got)
	}
	b.Thumbnail = "real.png"
	if got := b.CoverURL("placeholder.png"); got != "real.png" {
		t.Errorf("CoverURL = %q, want real.png", got)
	}
}

func TestStoreSearch_TitleAndAuthorSubstrings(t *testing.T) {
	s := collection.NewStore()
	s.Replace([]collection.Book{
		{ID: "1", Title: "Dune", Author: "Frank Herbert", Status: collection.StatusWantToRead},
		{ID: "2", Title: "Dune Messiah", Author: "Frank Herbert", Status: collection.StatusRead},
		{ID: "3", Title: "Emma", Author: "Jane Austen", Status: collection.StatusReading},
	})

	if got := s.Search("dune"); len(got) != 2 {
		t.Fatalf("Search(dune) = %d results, want 2", len(got))
	}
	if got := s.Search("AUSTEN"); len(got) != 1 || got[0].ID != "3" {
		t.Fatalf("Search(AUSTEN) = %+v, want Emma", got)
	}
	if got := s.Search("  "); got != nil {
		t.Fatalf("blank query matched %d books, want none", len(got))
	}
	if got := s.Search("tolkien"); got != nil {
		t.Fatalf("no-match query returned %+v", got)
	}
}
