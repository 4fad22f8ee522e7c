package tui

import (
	"strings"

	"github.com/shelfsync/shelfsync/internal/collection"
)

// CardView is the full-mode projection of a book record. Every field the
// renderer can show is carried as display text so the projection round-trips
// through RowView without consulting the store.
type CardView struct {
	ID        string
	Cover     string // cover image URL, placeholder when the record has none
	Title     string
	Author    string
	Series    string // series label ("Dune Book 2"), empty when unset
	Rating    string // "Rating: 7/10", empty when unrated
	Audiobook bool
}

// RowView is the compact-mode projection. Absent optional fields render as
// a dash placeholder rather than an empty cell.
type RowView struct {
	ID        string
	Cover     string
	Title     string
	Author    string
	Series    string
	Rating    string // "7/10" or "-"
	Audiobook bool
}

const absentCell = "-"

const ratingPrefix = "Rating: "

// NewCardView projects a book record into its full-mode view.
func NewCardView(b collection.Book, placeholderCover string) CardView {
	return CardView{
		ID:        b.ID,
		Cover:     b.CoverURL(placeholderCover),
		Title:     b.Title,
		Author:    b.Author,
		Series:    b.SeriesLabel(),
		Rating:    b.RatingLabel(),
		Audiobook: b.IsAudiobook(),
	}
}

// Row converts the card into its compact-mode equivalent.
func (c CardView) Row() RowView {
	r := RowView{
		ID:        c.ID,
		Cover:     c.Cover,
		Title:     c.Title,
		Author:    c.Author,
		Series:    c.Series,
		Rating:    strings.TrimPrefix(c.Rating, ratingPrefix),
		Audiobook: c.Audiobook,
	}
	if r.Series == "" {
		r.Series = absentCell
	}
	if r.Rating == "" {
		r.Rating = absentCell
	}
	return r
}

// Card converts the row back into its full-mode equivalent.
func (r RowView) Card() CardView {
	c := CardView{
		ID:        r.ID,
		Cover:     r.Cover,
		Title:     r.Title,
		Author:    r.Author,
		Series:    r.Series,
		Rating:    r.Rating,
		Audiobook: r.Audiobook,
	}
	if c.Series == absentCell {
		c.Series = ""
	}
	if c.Rating == absentCell {
		c.Rating = ""
	} else {
		c.Rating = ratingPrefix + c.Rating
	}
	return c
}
