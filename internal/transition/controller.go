// Package transition applies user-initiated changes to the collection:
// shelf moves, detail edits, deletes, and catalog adds. Local state is
// updated optimistically; a failed status move falls back to a hard
// resync — discard everything local and re-fetch — rather than a partial
// rollback.
//
// The store is not safe for concurrent use. The Fetch*/Persist* methods
// touch only the network and may run on any goroutine; every method that
// reads or writes the store must stay on the goroutine that owns it (the
// TUI event loop, or the single CLI goroutine). The composite methods
// (Reload, Move, SaveDetails, Delete, AddCandidate, Search) do both and
// are for single-goroutine callers.
package transition

import (
	"errors"
	"fmt"

	"github.com/shelfsync/shelfsync/internal/api"
	"github.com/shelfsync/shelfsync/internal/collection"
)

// ErrNoChanges is returned when an edit patch is empty; the editor is
// dismissed without a network call.
var ErrNoChanges = errors.New("no changes")

// AlreadyShelvedError marks a catalog candidate that exactly matches a
// book already in the collection.
type AlreadyShelvedError struct {
	Shelf collection.Status
}

func (e *AlreadyShelvedError) Error() string {
	return fmt.Sprintf("already in shelf %q", e.Shelf.Display())
}

// Controller coordinates the store and the remote API.
type Controller struct {
	api   BooksAPI
	store *collection.Store
}

// BooksAPI is the remote surface the controller drives. *api.Client
// satisfies it; tests substitute fakes.
type BooksAPI interface {
	ListBooks() ([]collection.Book, error)
	CreateBook(req api.CreateBookRequest) (collection.Book, error)
	UpdateBook(id string, patch api.BookPatch) (collection.Book, error)
	DeleteBook(id string) error
	SearchCatalog(query string) ([]api.Candidate, error)
}

// New creates a Controller over the given API and store.
func New(booksAPI BooksAPI, store *collection.Store) *Controller {
	return &Controller{api: booksAPI, store: store}
}

// Store exposes the collection store the controller mutates.
func (c *Controller) Store() *collection.Store {
	return c.store
}

// FetchAll retrieves the full collection. Network only; the store is
// untouched until the caller applies the result.
func (c *Controller) FetchAll() ([]collection.Book, error) {
	return c.api.ListBooks()
}

// Reload replaces the whole store from the server. Records with an
// unrecognized status are dropped; their count is returned.
func (c *Controller) Reload() (dropped int, err error) {
	books, err := c.FetchAll()
	if err != nil {
		return 0, err
	}
	return c.store.Replace(books), nil
}

// MoveResult reports the outcome of a shelf move.
type MoveResult struct {
	Book     collection.Book
	Err      error
	Reloaded bool // true when a failed write forced a full resync
}

// PersistStatus writes a status change for one book. Network only.
func (c *Controller) PersistStatus(id string, to collection.Status) (collection.Book, error) {
	status := to
	updated, err := c.api.UpdateBook(id, api.BookPatch{Status: &status})
	if err != nil {
		return collection.Book{}, fmt.Errorf("updating status: %w", err)
	}
	return updated, nil
}

// Move relocates a book to another shelf: the store is updated first
// (optimistic), then the status change is persisted. On write failure the
// store is reloaded wholesale so the client converges on whatever the
// server holds — the book ends on the shelf the reload reports, not the
// optimistic one.
func (c *Controller) Move(id string, to collection.Status) MoveResult {
	moved, ok := c.store.Move(id, to)
	if !ok {
		return MoveResult{Err: fmt.Errorf("unknown book %q", id)}
	}

	updated, err := c.PersistStatus(id, to)
	if err != nil {
		_, _ = c.Reload()
		return MoveResult{Err: err, Reloaded: true}
	}

	// The server may normalize other fields; keep its record.
	if updated.Status.Valid() {
		c.store.Update(updated)
		moved = updated
	}
	return MoveResult{Book: moved}
}

// PersistDetails writes an edit patch for one book. Empty patches return
// ErrNoChanges without touching the network. Network only.
func (c *Controller) PersistDetails(id string, patch api.BookPatch) (collection.Book, error) {
	if patch.Empty() {
		return collection.Book{}, ErrNoChanges
	}
	updated, err := c.api.UpdateBook(id, patch)
	if err != nil {
		return collection.Book{}, fmt.Errorf("saving details: %w", err)
	}
	return updated, nil
}

// SaveDetails persists an edit patch and applies the server record to the
// store. On failure nothing local changes, so the editor can stay open
// with its unsaved values.
func (c *Controller) SaveDetails(id string, patch api.BookPatch) (collection.Book, error) {
	updated, err := c.PersistDetails(id, patch)
	if err != nil {
		return collection.Book{}, err
	}
	if updated.Status.Valid() {
		c.store.Update(updated)
	}
	return updated, nil
}

// PersistDelete removes a book remotely. Network only.
func (c *Controller) PersistDelete(id string) error {
	if err := c.api.DeleteBook(id); err != nil {
		return fmt.Errorf("deleting book: %w", err)
	}
	return nil
}

// Delete removes a book remotely, then from the store. Callers confirm
// with the user before calling. On failure the record stays visible.
func (c *Controller) Delete(id string) error {
	if err := c.PersistDelete(id); err != nil {
		return err
	}
	c.store.Remove(id)
	return nil
}

// ShelfOf reports the shelf of the book exactly matching title and author
// (case-insensitively), if any. Reads the store.
func (c *Controller) ShelfOf(title, author string) (collection.Status, bool) {
	existing, ok := c.store.FindByTitleAuthor(title, author)
	if !ok {
		return "", false
	}
	return existing.Status, true
}

// PersistAdd creates a catalog candidate on the Want to Read shelf.
// Network only; duplicate checking is the caller's job (see ShelfOf).
func (c *Controller) PersistAdd(cand api.Candidate) (collection.Book, error) {
	created, err := c.api.CreateBook(api.CreateBookRequest{
		Title:     cand.Title,
		Author:    cand.Author,
		Status:    collection.StatusWantToRead,
		Thumbnail: cand.Thumbnail,
	})
	if err != nil {
		return collection.Book{}, fmt.Errorf("adding book: %w", err)
	}
	return created, nil
}

// AddCandidate adds a catalog search result to the Want to Read shelf.
// A candidate whose title and author exactly match an existing book
// (case-insensitively) is rejected with AlreadyShelvedError.
func (c *Controller) AddCandidate(cand api.Candidate) (collection.Book, error) {
	if shelf, ok := c.ShelfOf(cand.Title, cand.Author); ok {
		return collection.Book{}, &AlreadyShelvedError{Shelf: shelf}
	}
	created, err := c.PersistAdd(cand)
	if err != nil {
		return collection.Book{}, err
	}
	c.store.Add(created)
	return created, nil
}

// MarkedCandidate pairs a catalog result with the shelf of the matching
// collection book, if any.
type MarkedCandidate struct {
	api.Candidate
	ExistingShelf collection.Status // zero when not in the collection
}

// FetchCandidates queries the external catalog. Network only.
func (c *Controller) FetchCandidates(query string) ([]api.Candidate, error) {
	results, err := c.api.SearchCatalog(query)
	if err != nil {
		return nil, fmt.Errorf("searching catalog: %w", err)
	}
	return results, nil
}

// MarkCandidates cross-references catalog results against the collection
// so already-owned items render non-actionable. Reads the store.
func (c *Controller) MarkCandidates(results []api.Candidate) []MarkedCandidate {
	marked := make([]MarkedCandidate, len(results))
	for i, r := range results {
		marked[i] = MarkedCandidate{Candidate: r}
		if shelf, ok := c.ShelfOf(r.Title, r.Author); ok {
			marked[i].ExistingShelf = shelf
		}
	}
	return marked
}

// Search queries the catalog and marks each result against the store.
func (c *Controller) Search(query string) ([]MarkedCandidate, error) {
	results, err := c.FetchCandidates(query)
	if err != nil {
		return nil, err
	}
	return c.MarkCandidates(results), nil
}
