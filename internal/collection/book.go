package collection

import (
	"fmt"
	"strings"
)

// Book types.
const (
	TypeBook      = "book"
	TypeAudiobook = "audiobook"
)

// Book is one record in the reading collection, in the API's wire form.
type Book struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Author        string   `json:"author"`
	Status        Status   `json:"status"`
	Rating        *int     `json:"rating,omitempty"`
	Series        string   `json:"series,omitempty"`
	SeriesIndex   int      `json:"series_index,omitempty"`
	Type          string   `json:"type,omitempty"`
	Comments      string   `json:"comments,omitempty"`
	Review        string   `json:"review,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	StartedAt     string   `json:"started_at,omitempty"`
	FinishedAt    string   `json:"finished_at,omitempty"`
	Thumbnail     string   `json:"thumbnail,omitempty"`
	OpenLibraryID string   `json:"open_library_id,omitempty"`
}

// IsAudiobook reports whether the book is marked as an audiobook.
// An empty type means the default "book".
func (b Book) IsAudiobook() bool {
	return b.Type == TypeAudiobook
}

// CoverURL returns the thumbnail URL, falling back to placeholder when unset.
func (b Book) CoverURL(placeholder string) string {
	if b.Thumbnail != "" {
		return b.Thumbnail
	}
	return placeholder
}

// SeriesLabel renders the series line: "Name Book 3" when an index is
// present, otherwise just the series name. Empty when the book has no series.
func (b Book) SeriesLabel() string {
	if b.Series == "" {
		return ""
	}
	if b.SeriesIndex > 0 {
		return fmt.Sprintf("%s Book %d", b.Series, b.SeriesIndex)
	}
	return b.Series
}

// RatingLabel renders "Rating: 7/10", or empty when unrated.
func (b Book) RatingLabel() string {
	if b.Rating == nil {
		return ""
	}
	return fmt.Sprintf("Rating: %d/10", *b.Rating)
}

// OpenLibraryURL derives the Open Library page for the book's external
// identifier. The stored ID may be a bare edition/work code (OL…M / OL…W)
// or a path containing one. Returns empty when no ID is stored.
func (b Book) OpenLibraryURL() string {
	olid := b.OpenLibraryID
	if olid == "" {
		return ""
	}
	if strings.Contains(olid, "/") {
		parts := strings.Split(olid, "/")
		olid = parts[len(parts)-1]
	}
	if strings.HasPrefix(olid, "OL") && strings.HasSuffix(olid, "M") {
		return "https://openlibrary.org/books/" + olid
	}
	return "https://openlibrary.org/works/" + olid
}
