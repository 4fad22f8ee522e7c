package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shelfsync/shelfsync/internal/api"
	"github.com/shelfsync/shelfsync/internal/collection"
)

// Field indexes into editFormModel.inputs; fieldType is the audiobook
// toggle row after the text inputs.
const (
	fieldSeries = iota
	fieldSeriesIndex
	fieldRating
	fieldReview
	fieldComments
	fieldType
)

type formStatus int

const (
	formEditing formStatus = iota
	formSubmit
	formCancel
)

// editFormModel edits the detail fields of one book. Submitting builds a
// patch carrying only the fields that differ from the record it opened
// with, so an untouched form is a no-op.
type editFormModel struct {
	book      collection.Book
	inputs    []textinput.Model
	audiobook bool
	focus     int
	errMsg    string
}

func newEditForm(b collection.Book) editFormModel {
	mk := func(placeholder, value string, limit int) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.SetValue(value)
		in.CharLimit = limit
		in.Width = 44
		return in
	}

	indexVal := ""
	if b.SeriesIndex > 0 {
		indexVal = strconv.Itoa(b.SeriesIndex)
	}
	ratingVal := ""
	if b.Rating != nil {
		ratingVal = strconv.Itoa(*b.Rating)
	}

	f := editFormModel{
		book: b,
		inputs: []textinput.Model{
			mk("series name", b.Series, 120),
			mk("book number in series", indexVal, 4),
			mk("1-10", ratingVal, 2),
			mk("short review", b.Review, 500),
			mk("private notes", b.Comments, 500),
		},
		audiobook: b.IsAudiobook(),
	}
	f.inputs[fieldSeries].Focus()
	return f
}

func (f editFormModel) Update(msg tea.Msg) (editFormModel, tea.Cmd, formStatus) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return f, nil, formEditing
	}

	switch keyMsg.String() {
	case "esc":
		return f, nil, formCancel

	case "enter":
		if _, err := f.Patch(); err != nil {
			f.errMsg = err.Error()
			return f, nil, formEditing
		}
		return f, nil, formSubmit

	case "tab", "down":
		f.setFocus((f.focus + 1) % (fieldType + 1))
		return f, nil, formEditing

	case "shift+tab", "up":
		f.setFocus((f.focus + fieldType) % (fieldType + 1))
		return f, nil, formEditing
	}

	if f.focus == fieldType {
		switch keyMsg.String() {
		case "left", "right", " ":
			f.audiobook = !f.audiobook
		}
		return f, nil, formEditing
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	f.errMsg = ""
	return f, cmd, formEditing
}

func (f *editFormModel) setFocus(i int) {
	for j := range f.inputs {
		f.inputs[j].Blur()
	}
	f.focus = i
	if i < len(f.inputs) {
		f.inputs[i].Focus()
	}
}

// Patch builds the changed-fields-only update. Emptied text fields are
// dropped from the payload rather than sent as clears. Validation errors
// surface before anything is sent.
func (f editFormModel) Patch() (api.BookPatch, error) {
	var patch api.BookPatch

	if s := strings.TrimSpace(f.inputs[fieldSeries].Value()); s != "" && s != f.book.Series {
		patch.Series = &s
	}

	if raw := strings.TrimSpace(f.inputs[fieldSeriesIndex].Value()); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return api.BookPatch{}, fmt.Errorf("series number must be a whole number")
		}
		if n != f.book.SeriesIndex {
			patch.SeriesIndex = &n
		}
	}

	if raw := strings.TrimSpace(f.inputs[fieldRating].Value()); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 10 {
			return api.BookPatch{}, fmt.Errorf("rating must be between 1 and 10")
		}
		if f.book.Rating == nil || *f.book.Rating != n {
			patch.Rating = &n
		}
	}

	if v := f.inputs[fieldReview].Value(); v != "" && v != f.book.Review {
		patch.Review = &v
	}
	if v := f.inputs[fieldComments].Value(); v != "" && v != f.book.Comments {
		patch.Comments = &v
	}

	if f.audiobook != f.book.IsAudiobook() {
		t := collection.TypeBook
		if f.audiobook {
			t = collection.TypeAudiobook
		}
		patch.Type = &t
	}

	return patch, nil
}

func (f editFormModel) View() string {
	var b strings.Builder

	b.WriteString(StyleHeader.Render("Edit: "+f.book.Title) + "\n")
	b.WriteString(StyleHelp.Render("by "+f.book.Author) + "\n")
	if link := f.book.OpenLibraryURL(); link != "" {
		b.WriteString(StyleSeries.Render(link) + "\n")
	}
	b.WriteString("\n")

	labels := []string{"Series", "Series #", "Rating", "Review", "Comments"}
	for i, in := range f.inputs {
		label := labels[i]
		if i == f.focus {
			b.WriteString(StyleHighlight.Render("▸ "+label) + "\n")
		} else {
			b.WriteString(StyleNormal.Render("  "+label) + "\n")
		}
		b.WriteString("  " + in.View() + "\n\n")
	}

	typeLabel := "Book"
	if f.audiobook {
		typeLabel = "Audiobook 🎧"
	}
	if f.focus == fieldType {
		b.WriteString(StyleHighlight.Render("▸ Type: "+typeLabel) + StyleHelp.Render("  (space to toggle)") + "\n")
	} else {
		b.WriteString(StyleNormal.Render("  Type: "+typeLabel) + "\n")
	}

	if f.errMsg != "" {
		b.WriteString("\n" + StyleNotice.Render(f.errMsg) + "\n")
	}

	b.WriteString("\n" + StyleHelp.Render("enter save • esc cancel • tab next field"))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
