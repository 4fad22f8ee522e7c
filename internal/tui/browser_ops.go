package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shelfsync/shelfsync/internal/api"
	"github.com/shelfsync/shelfsync/internal/collection"
)

// Completion messages for async shelf operations. Commands touch only
// the network; every store read or write happens back on the event loop
// when the completion message is handled, since the store is not safe
// for concurrent use.
type (
	loadedMsg struct {
		books []collection.Book
		err   error
	}

	movedMsg struct {
		book collection.Book
		err  error
	}

	savedMsg struct {
		book collection.Book
		err  error
	}

	deletedMsg struct {
		id    string
		title string
		err   error
	}

	searchDoneMsg struct {
		results []api.Candidate
		err     error
	}

	addedMsg struct {
		index int
		book  collection.Book
		err   error
	}

	// applySavedViewMsg fires when the initial load has not completed within
	// the fallback window; the saved view mode is applied anyway.
	applySavedViewMsg struct{}
)

func (m *BrowserModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		books, err := m.ctrl.FetchAll()
		return loadedMsg{books: books, err: err}
	}
}

func (m *BrowserModel) moveCmd(id string, to collection.Status) tea.Cmd {
	return func() tea.Msg {
		book, err := m.ctrl.PersistStatus(id, to)
		return movedMsg{book: book, err: err}
	}
}

func (m *BrowserModel) saveCmd(id string, patch api.BookPatch) tea.Cmd {
	return func() tea.Msg {
		book, err := m.ctrl.PersistDetails(id, patch)
		return savedMsg{book: book, err: err}
	}
}

func (m *BrowserModel) deleteCmd(b collection.Book) tea.Cmd {
	return func() tea.Msg {
		return deletedMsg{id: b.ID, title: b.Title, err: m.ctrl.PersistDelete(b.ID)}
	}
}

func (m *BrowserModel) searchCmd(query string) tea.Cmd {
	return func() tea.Msg {
		results, err := m.ctrl.FetchCandidates(query)
		return searchDoneMsg{results: results, err: err}
	}
}

func (m *BrowserModel) addCmd(index int, cand api.Candidate) tea.Cmd {
	return func() tea.Msg {
		book, err := m.ctrl.PersistAdd(cand)
		return addedMsg{index: index, book: book, err: err}
	}
}

func viewModeFallbackCmd() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return applySavedViewMsg{}
	})
}
