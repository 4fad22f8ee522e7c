package tui

import (
	"strings"
	"testing"

	"github.com/shelfsync/shelfsync/internal/collection"
)

func editBook() collection.Book {
	return collection.Book{
		ID:          "b1",
		Title:       "Dune",
		Author:      "Frank Herbert",
		Status:      collection.StatusRead,
		Series:      "Dune",
		SeriesIndex: 1,
		Rating:      intPtr(9),
		Review:      "classic",
	}
}

func TestEditForm_UntouchedPatchIsEmpty(t *testing.T) {
	f := newEditForm(editBook())
	patch, err := f.Patch()
	if err != nil {
		t.Fatalf("Patch: %v", err)
	}
	if !patch.Empty() {
		t.Fatalf("untouched form produced a non-empty patch: %+v", patch)
	}
}

func TestEditForm_OnlyChangedFieldsInPatch(t *testing.T) {
	f := newEditForm(editBook())
	f.inputs[fieldRating].SetValue("7")
	f.inputs[fieldComments].SetValue("reread someday")

	patch, err := f.Patch()
	if err != nil {
		t.Fatalf("Patch: %v", err)
	}
	if patch.Rating == nil || *patch.Rating != 7 {
		t.Errorf("Rating not patched: %+v", patch.Rating)
	}
	if patch.Comments == nil || *patch.Comments != "reread someday" {
		t.Errorf("Comments not patched: %+v", patch.Comments)
	}
	if patch.Series != nil || patch.SeriesIndex != nil || patch.Review != nil || patch.Type != nil {
		t.Errorf("unchanged fields leaked into patch: %+v", patch)
	}
}

func TestEditForm_TypeToggleProducesPatch(t *testing.T) {
	f := newEditForm(editBook())
	f.audiobook = true

	patch, err := f.Patch()
	if err != nil {
		t.Fatalf("Patch: %v", err)
	}
	if patch.Type == nil || *patch.Type != collection.TypeAudiobook {
		t.Errorf("Type = %v, want audiobook", patch.Type)
	}
}

func TestEditForm_RatingValidation(t *testing.T) {
	for _, bad := range []string{"0", "11", "ten", "-1"} {
		f := newEditForm(editBook())
		f.inputs[fieldRating].SetValue(bad)
		if _, err := f.Patch(); err == nil {
			t.Errorf("rating %q: want validation error", bad)
		}
	}
}

func TestEditForm_SeriesIndexValidation(t *testing.T) {
	f := newEditForm(editBook())
	f.inputs[fieldSeriesIndex].SetValue("two")
	if _, err := f.Patch(); err == nil {
		t.Fatal("want validation error for non-numeric series index")
	}
}

func TestEditForm_ClearedFieldsNotSent(t *testing.T) {
	f := newEditForm(editBook())
	f.inputs[fieldSeries].SetValue("")
	f.inputs[fieldReview].SetValue("")

	patch, err := f.Patch()
	if err != nil {
		t.Fatalf("Patch: %v", err)
	}
	if patch.Series != nil {
		t.Errorf("emptied series sent as %q, want dropped from patch", *patch.Series)
	}
	if patch.Review != nil {
		t.Errorf("emptied review sent as %q, want dropped from patch", *patch.Review)
	}
	if !patch.Empty() {
		t.Errorf("patch not empty: %+v", patch)
	}
}

func TestEditForm_ShowsOpenLibraryLink(t *testing.T) {
	b := editBook()
	b.OpenLibraryID = "OL893415W"
	f := newEditForm(b)

	view := f.View()
	if !strings.Contains(view, "https://openlibrary.org/works/OL893415W") {
		t.Error("details view missing the Open Library link")
	}

	noLink := newEditForm(editBook())
	if strings.Contains(noLink.View(), "openlibrary.org") {
		t.Error("details view shows a link for a book without an Open Library id")
	}
}
