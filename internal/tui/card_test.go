package tui

import (
	"testing"

	"github.com/shelfsync/shelfsync/internal/collection"
)

func intPtr(n int) *int { return &n }

func TestCardRowRoundTrip_AllFields(t *testing.T) {
	b := collection.Book{
		ID:          "b1",
		Title:       "Dune Messiah",
		Author:      "Frank Herbert",
		Status:      collection.StatusReading,
		Series:      "Dune",
		SeriesIndex: 2,
		Rating:      intPtr(8),
		Type:        collection.TypeAudiobook,
		Thumbnail:   "https://covers.example/b1.jpg",
	}

	card := NewCardView(b, "https://placeholder/cover.png")
	back := card.Row().Card()

	if back != card {
		t.Fatalf("round trip changed the card:\n got %+v\nwant %+v", back, card)
	}
	if card.Series != "Dune Book 2" {
		t.Errorf("Series = %q, want %q", card.Series, "Dune Book 2")
	}
	if card.Rating != "Rating: 8/10" {
		t.Errorf("Rating = %q, want %q", card.Rating, "Rating: 8/10")
	}
	if !card.Audiobook {
		t.Error("Audiobook = false, want true")
	}
	if card.Cover != "https://covers.example/b1.jpg" {
		t.Errorf("Cover = %q", card.Cover)
	}
}

func TestCardRowRoundTrip_NoOptionalFields(t *testing.T) {
	b := collection.Book{
		ID:     "b2",
		Title:  "Solaris",
		Author: "Stanisław Lem",
		Status: collection.StatusWantToRead,
	}

	card := NewCardView(b, "https://placeholder/cover.png")
	row := card.Row()

	if row.Series != "-" || row.Rating != "-" {
		t.Fatalf("absent fields should render as dashes, got series=%q rating=%q",
			row.Series, row.Rating)
	}
	if row.Cover != "https://placeholder/cover.png" {
		t.Errorf("Cover = %q, want placeholder", row.Cover)
	}

	back := row.Card()
	if back != card {
		t.Fatalf("round trip changed the card:\n got %+v\nwant %+v", back, card)
	}
	if back.Series != "" || back.Rating != "" {
		t.Errorf("absent fields should come back empty, got series=%q rating=%q",
			back.Series, back.Rating)
	}
}

func TestCompactRating_BareValue(t *testing.T) {
	b := collection.Book{ID: "b3", Title: "X", Author: "Y", Rating: intPtr(3)}
	row := NewCardView(b, "").Row()
	if row.Rating != "3/10" {
		t.Errorf("compact rating = %q, want %q", row.Rating, "3/10")
	}
}
