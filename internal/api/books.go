package api

import "github.com/shelfsync/shelfsync/internal/collection"

// CreateBookRequest is the POST /books payload. New books always start
// on the Want to Read shelf unless the caller says otherwise.
type CreateBookRequest struct {
	Title     string            `json:"title"`
	Author    string            `json:"author"`
	Status    collection.Status `json:"status"`
	Thumbnail string            `json:"thumbnail"`
}

// BookPatch is a partial update for PUT /books/{id}. Nil fields are
// omitted from the payload; the server only touches fields that are sent.
type BookPatch struct {
	Title       *string            `json:"title,omitempty"`
	Author      *string            `json:"author,omitempty"`
	Status      *collection.Status `json:"status,omitempty"`
	Series      *string            `json:"series,omitempty"`
	SeriesIndex *int               `json:"series_index,omitempty"`
	Rating      *int               `json:"rating,omitempty"`
	Review      *string            `json:"review,omitempty"`
	Type        *string            `json:"type,omitempty"`
	Comments    *string            `json:"comments,omitempty"`
}

// Empty reports whether the patch carries no fields at all.
func (p BookPatch) Empty() bool {
	return p.Title == nil && p.Author == nil && p.Status == nil &&
		p.Series == nil && p.SeriesIndex == nil && p.Rating == nil &&
		p.Review == nil && p.Type == nil && p.Comments == nil
}

// ListBooks fetches the full collection in its persisted form.
func (c *Client) ListBooks() ([]collection.Book, error) {
	var books []collection.Book
	if err := c.doJSON("GET", c.url("books"), nil, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// CreateBook adds a new book and returns the server's record for it.
func (c *Client) CreateBook(req CreateBookRequest) (collection.Book, error) {
	var created collection.Book
	if err := c.doJSON("POST", c.url("books"), req, &created); err != nil {
		return collection.Book{}, err
	}
	return created, nil
}

// UpdateBook applies a partial patch and returns the updated record.
func (c *Client) UpdateBook(id string, patch BookPatch) (collection.Book, error) {
	var updated collection.Book
	if err := c.doJSON("PUT", c.url("books", id), patch, &updated); err != nil {
		return collection.Book{}, err
	}
	return updated, nil
}

// DeleteBook removes a book. The API answers 204 with no body.
func (c *Client) DeleteBook(id string) error {
	return c.doJSON("DELETE", c.url("books", id), nil, nil)
}
