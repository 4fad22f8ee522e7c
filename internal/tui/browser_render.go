package tui

import (
	"fmt"
	"strings"

	"github.com/shelfsync/shelfsync/internal/collection"
	"github.com/shelfsync/shelfsync/internal/state"
)

const audiobookIcon = "🎧"

func (m BrowserModel) View() string {
	if m.phase == phaseEdit {
		return m.form.View()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())

	if !m.ready {
		b.WriteString(StyleHelp.Render("  loading shelves…") + "\n")
		return b.String()
	}

	if m.phase == phaseSearch {
		b.WriteString(m.renderSearch())
		return b.String()
	}

	for i := range m.shelves {
		b.WriteString(m.renderShelf(i))
	}

	if m.phase == phaseConfirmDelete {
		b.WriteString("\n" + StyleNotice.Render(
			fmt.Sprintf("Delete %q? (y/n)", m.pendingDelete.Title)) + "\n")
	}

	b.WriteString("\n" + m.renderFooter())
	return b.String()
}

func (m BrowserModel) renderHeader() string {
	title := StyleHeader.Render("shelfsync")
	if m.email != "" {
		title += StyleHelp.Render("  " + m.email)
	}

	mode := "full"
	if m.viewMode == state.ViewCompact {
		mode = "compact"
	}
	title += StyleHelp.Render("  [" + mode + "]")

	if m.loading {
		title += "  " + m.spin.View() + StyleHelp.Render("working…")
	}

	out := title + "\n"
	if m.notice != "" {
		out += StyleNotice.Render(m.notice) + "\n"
	}
	return out + "\n"
}

func (m BrowserModel) renderShelf(i int) string {
	p := m.shelves[i]
	books := m.shelfBooks(i)

	header := fmt.Sprintf("%s (%d)", p.status.Display(), len(books))
	if i == m.active {
		header = StyleHighlight.Render("▶ " + header)
	} else {
		header = StyleHeader.Render("  " + header)
	}

	var b strings.Builder
	b.WriteString(header + "\n")

	if len(books) == 0 {
		b.WriteString(StyleHelp.Render("    (empty)") + "\n\n")
		return b.String()
	}

	if m.viewMode == state.ViewCompact {
		b.WriteString(m.renderCompactShelf(i, books))
	} else {
		b.WriteString(m.renderFullShelf(i, books))
	}
	b.WriteString("\n")
	return b.String()
}

func (m BrowserModel) renderFullShelf(i int, books []collection.Book) string {
	var b strings.Builder
	for j, book := range books {
		card := NewCardView(book, m.placeholder)

		cursor := "  "
		titleStyle := StyleNormal
		if i == m.active && j == m.shelves[i].cursor {
			cursor = "▸ "
			titleStyle = StyleHighlight
		}

		titleLine := titleStyle.Bold(true).Render(card.Title)
		if card.Audiobook {
			titleLine += " " + audiobookIcon
		}
		b.WriteString("  " + cursor + titleLine + "\n")
		b.WriteString("      " + StyleHelp.Render("by "+card.Author) + "\n")
		if card.Series != "" {
			b.WriteString("      " + StyleSeries.Render(card.Series) + "\n")
		}
		if card.Rating != "" {
			b.WriteString("      " + StyleNormal.Render(card.Rating) + "\n")
		}
	}
	return b.String()
}

func (m BrowserModel) renderCompactShelf(i int, books []collection.Book) string {
	p := m.shelves[i]
	w := computeColumnWidths(m.paneWidth())

	arrow := " ▲"
	if p.dir == collection.Descending {
		arrow = " ▼"
	}
	col := func(label string, k collection.SortKey, width int) string {
		if p.key == k {
			return padOrTruncate(label+arrow, width)
		}
		return padOrTruncate(label, width)
	}

	var b strings.Builder
	b.WriteString("    " + StyleHelp.Render(
		col("TITLE", collection.SortTitle, w.title)+
			col("AUTHOR", collection.SortAuthor, w.author)+
			col("SERIES", collection.SortSeries, w.series)+
			col("RATING", collection.SortRating, w.rating)) + "\n")

	for j, book := range books {
		row := NewCardView(book, m.placeholder).Row()

		cursor := "  "
		style := StyleNormal
		if i == m.active && j == p.cursor {
			cursor = "▸ "
			style = StyleHighlight
		}

		title := row.Title
		if row.Audiobook {
			title = audiobookIcon + " " + title
		}

		b.WriteString("  " + cursor + style.Render(
			padOrTruncate(title, w.title)+
				padOrTruncate(row.Author, w.author)+
				padOrTruncate(row.Series, w.series)+
				padOrTruncate(row.Rating, w.rating)) + "\n")
	}
	return b.String()
}

func (m BrowserModel) renderSearch() string {
	var b strings.Builder
	b.WriteString(StyleHeader.Render("Catalog search") + "\n\n")
	b.WriteString("  " + m.searchInput.View() + "\n\n")

	if len(m.localResults) > 0 {
		b.WriteString(StyleHeader.Render("  In your collection") + "\n")
		for _, book := range m.localResults {
			line := StyleNormal.Render(book.Title) + StyleHelp.Render(" by "+book.Author) +
				"  " + StyleSeries.Render(book.Status.Display())
			b.WriteString("    " + line + "\n")
		}
		b.WriteString("\n")
	}

	switch {
	case !m.searched:
		b.WriteString(StyleHelp.Render("  type a title or author and press enter") + "\n")
	case len(m.searchResults) == 0:
		b.WriteString(StyleHelp.Render("  no results") + "\n")
	default:
		for j, r := range m.searchResults {
			cursor := "  "
			style := StyleNormal
			if !m.searchInput.Focused() && j == m.searchCursor {
				cursor = "▸ "
				style = StyleHighlight
			}

			line := style.Render(r.Title) + StyleHelp.Render(" by "+r.Author)
			if r.ExistingShelf != "" {
				line += "  " + StyleAdded.Render("✓ on "+r.ExistingShelf.Display())
			}
			b.WriteString("  " + cursor + line + "\n")
		}
	}

	var hint string
	if m.searchInput.Focused() {
		hint = "enter search • esc back"
	} else {
		hint = "↑/↓ select • enter add • / new search • esc back"
	}
	b.WriteString("\n" + StyleHelp.Render("  "+hint) + "\n")
	return b.String()
}

func (m BrowserModel) renderFooter() string {
	return RenderFooterBar([]ShortcutEntry{
		{Key: "tab", Label: "tab shelf"},
		{Key: "enter", Label: "enter edit"},
		{Key: "1", Label: "1/2/3 move"},
		{Key: "t", Label: "t/a/e/r sort"},
		{Key: "v", Label: "v view"},
		{Key: "/", Label: "/ search"},
		{Key: "d", Label: "d delete"},
		{Key: "q", Label: "q quit"},
	}, "")
}

func (m BrowserModel) paneWidth() int {
	if m.width > 0 {
		return m.width
	}
	return 80
}
