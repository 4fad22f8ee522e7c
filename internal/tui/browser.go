package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shelfsync/shelfsync/internal/collection"
	"github.com/shelfsync/shelfsync/internal/state"
	"github.com/shelfsync/shelfsync/internal/transition"
)

type browserPhase int

const (
	phaseBrowse browserPhase = iota
	phaseEdit
	phaseConfirmDelete
	phaseSearch
)

// shelfPane is the per-shelf view state: which column the shelf is
// sorted by, in which direction, and where the cursor sits.
type shelfPane struct {
	status collection.Status
	key    collection.SortKey
	dir    collection.Direction
	cursor int
}

// BrowserModel is the interactive three-shelf collection browser.
type BrowserModel struct {
	ctrl        *transition.Controller
	stateFile   *state.File
	st          *state.State
	placeholder string
	email       string

	keys    browserKeys
	shelves []shelfPane
	active  int

	viewMode    string
	viewApplied bool

	phase         browserPhase
	form          editFormModel
	pendingDelete collection.Book

	searchInput   textinput.Model
	searchResults []transition.MarkedCandidate
	localResults  []collection.Book
	searchCursor  int
	searched      bool

	spin    spinner.Model
	loading bool
	notice  string
	ready   bool

	width  int
	height int
}

// NewBrowser builds the browser over an already-authenticated controller.
// Saved per-shelf sort keys are applied immediately; the saved view mode
// is applied once the first load lands (or after a fallback delay).
func NewBrowser(ctrl *transition.Controller, stateFile *state.File, placeholderCover, email string) BrowserModel {
	st, err := stateFile.Load()
	if err != nil {
		st = &state.State{}
	}

	shelves := make([]shelfPane, 0, 3)
	for _, status := range collection.Statuses() {
		shelves = append(shelves, shelfPane{
			status: status,
			key:    collection.ParseSortKey(st.SortKeyFor(string(status))),
			dir:    collection.Ascending,
		})
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = StyleHighlight

	in := textinput.New()
	in.Placeholder = "title or author"
	in.CharLimit = 200
	in.Width = 44

	return BrowserModel{
		ctrl:        ctrl,
		stateFile:   stateFile,
		st:          st,
		placeholder: placeholderCover,
		email:       email,
		keys:        newBrowserKeys(),
		shelves:     shelves,
		viewMode:    state.ViewFull,
		spin:        sp,
		searchInput: in,
		loading:     true,
	}
}

func (m BrowserModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.loadCmd(), viewModeFallbackCmd())
}

func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case loadedMsg:
		m.loading = false
		m.ready = true
		if msg.err != nil {
			m.notice = "Load failed: " + msg.err.Error()
		} else {
			m.notice = ""
			if dropped := m.ctrl.Store().Replace(msg.books); dropped > 0 {
				m.notice = fmt.Sprintf("Skipped %d record(s) with an unknown shelf", dropped)
			}
		}
		m.resortAll()
		m.clampCursors()
		m.applySavedViewMode()
		return m, nil

	case applySavedViewMsg:
		m.applySavedViewMode()
		return m, nil

	case movedMsg:
		if msg.err != nil {
			// Hard resync: one full reload, and the book ends on whatever
			// shelf the server reports.
			m.notice = "Move failed, reloading shelves: " + msg.err.Error()
			m.loading = true
			return m, tea.Batch(m.spin.Tick, m.loadCmd())
		}
		m.loading = false
		if msg.book.Status.Valid() {
			m.ctrl.Store().Update(msg.book)
		}
		m.notice = fmt.Sprintf("Moved %q to %s", msg.book.Title, msg.book.Status.Display())
		m.resortAll()
		m.clampCursors()
		return m, nil

	case savedMsg:
		m.loading = false
		if msg.err != nil {
			if errors.Is(msg.err, transition.ErrNoChanges) {
				m.phase = phaseBrowse
				return m, nil
			}
			// Keep the editor open with its unsaved values.
			m.form.errMsg = msg.err.Error()
			return m, nil
		}
		m.phase = phaseBrowse
		if msg.book.Status.Valid() {
			m.ctrl.Store().Update(msg.book)
		}
		m.notice = fmt.Sprintf("Saved %q", msg.book.Title)
		m.resortAll()
		return m, nil

	case deletedMsg:
		m.loading = false
		m.phase = phaseBrowse
		if msg.err != nil {
			m.notice = "Delete failed: " + msg.err.Error()
		} else {
			m.ctrl.Store().Remove(msg.id)
			m.notice = fmt.Sprintf("Deleted %q", msg.title)
			m.clampCursors()
		}
		return m, nil

	case searchDoneMsg:
		m.loading = false
		m.searched = true
		if msg.err != nil {
			m.notice = "Search failed: " + msg.err.Error()
			return m, nil
		}
		m.searchResults = m.ctrl.MarkCandidates(msg.results)
		m.searchCursor = 0
		m.searchInput.Blur()
		return m, nil

	case addedMsg:
		m.loading = false
		if msg.err != nil {
			m.notice = "Add failed: " + msg.err.Error()
			return m, nil
		}
		m.ctrl.Store().Add(msg.book)
		if msg.index >= 0 && msg.index < len(m.searchResults) {
			m.searchResults[msg.index].ExistingShelf = msg.book.Status
		}
		m.notice = fmt.Sprintf("Added %q to %s", msg.book.Title, msg.book.Status.Display())
		m.resortAll()
		return m, nil

	case tea.KeyMsg:
		switch m.phase {
		case phaseEdit:
			return m.updateEdit(msg)
		case phaseConfirmDelete:
			return m.updateConfirmDelete(msg)
		case phaseSearch:
			return m.updateSearch(msg)
		default:
			return m.updateBrowse(msg)
		}
	}

	return m, nil
}

func (m BrowserModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.NextShelf):
		m.active = (m.active + 1) % len(m.shelves)

	case key.Matches(msg, m.keys.PrevShelf):
		m.active = (m.active + len(m.shelves) - 1) % len(m.shelves)

	case key.Matches(msg, m.keys.Up):
		if p := &m.shelves[m.active]; p.cursor > 0 {
			p.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		p := &m.shelves[m.active]
		if p.cursor < len(m.shelfBooks(m.active))-1 {
			p.cursor++
		}

	case key.Matches(msg, m.keys.Edit):
		if b, ok := m.cursorBook(); ok {
			m.form = newEditForm(b)
			m.phase = phaseEdit
		}

	case key.Matches(msg, m.keys.Delete):
		if b, ok := m.cursorBook(); ok {
			m.pendingDelete = b
			m.phase = phaseConfirmDelete
		}

	case key.Matches(msg, m.keys.Search):
		m.phase = phaseSearch
		m.searchInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.ToggleView):
		if m.viewMode == state.ViewCompact {
			m.viewMode = state.ViewFull
		} else {
			m.viewMode = state.ViewCompact
		}
		m.viewApplied = true
		m.st.ViewMode = m.viewMode
		_ = m.stateFile.Save(m.st)

	case key.Matches(msg, m.keys.MoveWant):
		return m.startMove(collection.StatusWantToRead)
	case key.Matches(msg, m.keys.MoveRead):
		return m.startMove(collection.StatusReading)
	case key.Matches(msg, m.keys.MoveDone):
		return m.startMove(collection.StatusRead)

	case key.Matches(msg, m.keys.SortTitle):
		m.setSort(collection.SortTitle)
	case key.Matches(msg, m.keys.SortAuthor):
		m.setSort(collection.SortAuthor)
	case key.Matches(msg, m.keys.SortSeries):
		m.setSort(collection.SortSeries)
	case key.Matches(msg, m.keys.SortRating):
		m.setSort(collection.SortRating)
	}

	return m, nil
}

func (m BrowserModel) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	form, cmd, status := m.form.Update(msg)
	m.form = form

	switch status {
	case formCancel:
		m.phase = phaseBrowse
		return m, nil
	case formSubmit:
		patch, err := m.form.Patch()
		if err != nil {
			return m, nil
		}
		m.loading = true
		return m, tea.Batch(m.spin.Tick, m.saveCmd(m.form.book.ID, patch))
	}

	return m, cmd
}

func (m BrowserModel) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		m.loading = true
		return m, tea.Batch(m.spin.Tick, m.deleteCmd(m.pendingDelete))
	case "n", "N", "esc", "q":
		m.phase = phaseBrowse
	}
	return m, nil
}

func (m BrowserModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searchInput.Focused() {
		switch msg.String() {
		case "esc":
			m.phase = phaseBrowse
			m.searchInput.Blur()
			return m, nil
		case "enter":
			query := m.searchInput.Value()
			if query == "" {
				return m, nil
			}
			// Collection-local matches render immediately; the catalog
			// answers asynchronously.
			m.localResults = m.ctrl.Store().Search(query)
			m.loading = true
			return m, tea.Batch(m.spin.Tick, m.searchCmd(query))
		}
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "esc", "q":
		m.phase = phaseBrowse
	case "/":
		m.searchInput.Focus()
		return m, textinput.Blink
	case "up", "k":
		if m.searchCursor > 0 {
			m.searchCursor--
		}
	case "down", "j":
		if m.searchCursor < len(m.searchResults)-1 {
			m.searchCursor++
		}
	case "enter", "a":
		if m.searchCursor < len(m.searchResults) {
			r := m.searchResults[m.searchCursor]
			if r.ExistingShelf != "" {
				m.notice = fmt.Sprintf("%q is already on %s", r.Title, r.ExistingShelf.Display())
				return m, nil
			}
			m.loading = true
			return m, tea.Batch(m.spin.Tick, m.addCmd(m.searchCursor, r.Candidate))
		}
	}
	return m, nil
}

func (m *BrowserModel) startMove(to collection.Status) (tea.Model, tea.Cmd) {
	b, ok := m.cursorBook()
	if !ok || b.Status == to {
		return *m, nil
	}
	// Optimistic: the book shows on the target shelf before the write is
	// confirmed. A failed write triggers a full reload in the movedMsg
	// handler.
	if _, moved := m.ctrl.Store().Move(b.ID, to); !moved {
		return *m, nil
	}
	m.resortAll()
	m.clampCursors()
	m.loading = true
	return *m, tea.Batch(m.spin.Tick, m.moveCmd(b.ID, to))
}

// setSort switches the active shelf to the given column, toggling the
// direction when the column is already active. The chosen column is
// saved as the shelf's default; direction always resets to ascending
// next session.
func (m *BrowserModel) setSort(k collection.SortKey) {
	p := &m.shelves[m.active]
	if p.key == k {
		p.dir = p.dir.Toggle()
	} else {
		p.key = k
		p.dir = collection.Ascending
	}
	m.resortShelf(m.active)

	m.st.SetSortKeyFor(string(p.status), string(p.key))
	_ = m.stateFile.Save(m.st)
}

func (m *BrowserModel) applySavedViewMode() {
	if m.viewApplied {
		return
	}
	m.viewApplied = true
	if m.st.ViewMode == state.ViewCompact {
		m.viewMode = state.ViewCompact
	}
}

func (m *BrowserModel) shelfBooks(i int) []collection.Book {
	return m.ctrl.Store().Shelf(m.shelves[i].status)
}

func (m *BrowserModel) cursorBook() (collection.Book, bool) {
	books := m.shelfBooks(m.active)
	cursor := m.shelves[m.active].cursor
	if cursor < 0 || cursor >= len(books) {
		return collection.Book{}, false
	}
	return books[cursor], true
}

func (m *BrowserModel) resortShelf(i int) {
	p := m.shelves[i]
	books := m.ctrl.Store().Shelf(p.status)
	collection.SortBooks(books, p.key, p.dir)
	m.ctrl.Store().SetShelf(p.status, books)
}

func (m *BrowserModel) resortAll() {
	for i := range m.shelves {
		m.resortShelf(i)
	}
}

func (m *BrowserModel) clampCursors() {
	for i := range m.shelves {
		n := len(m.shelfBooks(i))
		if m.shelves[i].cursor >= n {
			m.shelves[i].cursor = n - 1
		}
		if m.shelves[i].cursor < 0 {
			m.shelves[i].cursor = 0
		}
	}
}
