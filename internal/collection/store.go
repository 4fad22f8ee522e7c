package collection

import "strings"

// Store holds the in-memory collection, partitioned by status. It is the
// source of truth for rendering once loaded; rendered views are disposable
// projections of it. Not safe for concurrent use — all access happens on
// the UI event loop.
type Store struct {
	shelves map[Status][]Book
}

// NewStore returns an empty store with all three shelves present.
func NewStore() *Store {
	s := &Store{}
	s.reset()
	return s
}

func (s *Store) reset() {
	s.shelves = map[Status][]Book{
		StatusWantToRead: nil,
		StatusReading:    nil,
		StatusRead:       nil,
	}
}

// Replace swaps the entire collection for the given records, partitioning
// them by status. Records with an unrecognized status are dropped; the
// count of dropped records is returned. Calling Replace again fully
// replaces prior state.
func (s *Store) Replace(books []Book) (dropped int) {
	s.reset()
	for _, b := range books {
		if !b.Status.Valid() {
			dropped++
			continue
		}
		s.shelves[b.Status] = append(s.shelves[b.Status], b)
	}
	return dropped
}

// Shelf returns the books currently on the given shelf.
func (s *Store) Shelf(status Status) []Book {
	return s.shelves[status]
}

// SetShelf replaces the ordering of one shelf. Used after sorting; the
// set of books must be the same shelf's books.
func (s *Store) SetShelf(status Status, books []Book) {
	if status.Valid() {
		s.shelves[status] = books
	}
}

// All returns every book across the three shelves.
func (s *Store) All() []Book {
	var out []Book
	for _, status := range Statuses() {
		out = append(out, s.shelves[status]...)
	}
	return out
}

// Len returns the total number of books.
func (s *Store) Len() int {
	n := 0
	for _, status := range Statuses() {
		n += len(s.shelves[status])
	}
	return n
}

// Get returns the book with the given id.
func (s *Store) Get(id string) (Book, bool) {
	for _, status := range Statuses() {
		for _, b := range s.shelves[status] {
			if b.ID == id {
				return b, true
			}
		}
	}
	return Book{}, false
}

// Add appends a book to its status shelf. Books with an unrecognized
// status are dropped, mirroring Replace.
func (s *Store) Add(b Book) bool {
	if !b.Status.Valid() {
		return false
	}
	s.shelves[b.Status] = append(s.shelves[b.Status], b)
	return true
}

// Remove deletes the book with the given id from whichever shelf holds it.
func (s *Store) Remove(id string) bool {
	for _, status := range Statuses() {
		for i, b := range s.shelves[status] {
			if b.ID == id {
				s.shelves[status] = append(s.shelves[status][:i], s.shelves[status][i+1:]...)
				return true
			}
		}
	}
	return false
}

// Move relocates a book to another shelf, updating its status. It returns
// the moved book. Moving to the shelf the book is already on is a no-op.
func (s *Store) Move(id string, to Status) (Book, bool) {
	if !to.Valid() {
		return Book{}, false
	}
	b, ok := s.Get(id)
	if !ok {
		return Book{}, false
	}
	if b.Status == to {
		return b, true
	}
	s.Remove(id)
	b.Status = to
	s.shelves[to] = append(s.shelves[to], b)
	return b, true
}

// Update replaces the stored record with the same id in place, moving it
// between shelves when the status changed.
func (s *Store) Update(b Book) bool {
	if !b.Status.Valid() {
		return false
	}
	for _, status := range Statuses() {
		for i, old := range s.shelves[status] {
			if old.ID != b.ID {
				continue
			}
			if status == b.Status {
				s.shelves[status][i] = b
			} else {
				s.shelves[status] = append(s.shelves[status][:i], s.shelves[status][i+1:]...)
				s.shelves[b.Status] = append(s.shelves[b.Status], b)
			}
			return true
		}
	}
	return false
}

// FindByTitleAuthor locates a book by case-insensitive exact title and
// author match across the full collection. Used to mark catalog search
// results that are already shelved.
func (s *Store) FindByTitleAuthor(title, author string) (Book, bool) {
	for _, status := range Statuses() {
		for _, b := range s.shelves[status] {
			if strings.EqualFold(b.Title, title) && strings.EqualFold(b.Author, author) {
				return b, true
			}
		}
	}
	return Book{}, false
}

// Search returns the books whose title or author contains the query,
// case-insensitively, in shelf order. An empty query matches nothing.
func (s *Store) Search(query string) []Book {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []Book
	for _, status := range Statuses() {
		for _, b := range s.shelves[status] {
			if strings.Contains(strings.ToLower(b.Title), q) ||
				strings.Contains(strings.ToLower(b.Author), q) {
				out = append(out, b)
			}
		}
	}
	return out
}
