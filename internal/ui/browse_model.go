package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yourusername/pagescope/internal/adapter/github"
	"github.com/yourusername/pagescope/internal/domain"
	"github.com/yourusername/pagescope/internal/ui/components"
	"github.com/yourusername/pagescope/internal/ui/layout"
	"github.com/yourusername/pagescope/internal/usecase"
)

// BrowseState represents the state of the browse view.
type BrowseState int

const (
	StateInput BrowseState = iota
	StateLoading
	StateError
	StateEmpty
	StateGrid
)

// PagesLister runs the fetch-and-narrow cycle.
type PagesLister interface {
	Execute(ctx context.Context, req usecase.ListPagesRequest) (*usecase.ListPagesResponse, error)
}

// URLOpener opens a link outside the TUI.
type URLOpener func(ctx context.Context, url string) error

type reposFetchedMsg struct {
	seq      int
	username string
	repos    []domain.Repo
}

type fetchFailedMsg struct {
	seq int
	err error
}

// BrowseModel is the interactive browser over a user's Pages sites.
type BrowseModel struct {
	state BrowseState

	usernameInput textinput.Model
	filterInput   textinput.Model
	spinner       spinner.Model

	lister PagesLister
	opener URLOpener

	// Result of the most recent completed fetch. repos holds only the
	// Pages-enabled set; filtered is re-derived on every filter keystroke.
	username  string
	repos     []domain.Repo
	filtered  []domain.Repo
	hasResult bool

	selectedIndex int

	// fetchSeq tags each issued fetch; responses carrying an older tag are
	// discarded so a slow fetch can never overwrite a newer one.
	fetchSeq int

	errMsg     string
	errActions []string
	notice     string

	windowWidth  int
	windowHeight int
	quitting     bool
}

// NewBrowseModel creates the browse view. When initialUsername is set, the
// first fetch starts on load.
func NewBrowseModel(lister PagesLister, opener URLOpener, initialUsername string) BrowseModel {
	usernameInput := textinput.New()
	usernameInput.Placeholder = "GitHub username"
	usernameInput.CharLimit = 39
	usernameInput.Width = 30
	usernameInput.Focus()

	filterInput := textinput.New()
	filterInput.Placeholder = "type to filter"
	filterInput.Width = 30

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = loadingStyle

	m := BrowseModel{
		state:         StateInput,
		usernameInput: usernameInput,
		filterInput:   filterInput,
		spinner:       sp,
		lister:        lister,
		opener:        opener,
		windowWidth:   120,
		windowHeight:  30,
	}

	if initialUsername != "" {
		m.usernameInput.SetValue(initialUsername)
		m.state = StateLoading
		m.username = initialUsername
		m.fetchSeq = 1
	}

	return m
}

// Init starts the spinner and, when a username was preconfigured, the
// initial fetch.
func (m BrowseModel) Init() tea.Cmd {
	if m.state == StateLoading {
		return tea.Batch(m.spinner.Tick, m.fetchCmd(m.fetchSeq, m.username))
	}
	return textinput.Blink
}

// fetchCmd runs one fetch as a background command, tagged with seq.
func (m BrowseModel) fetchCmd(seq int, username string) tea.Cmd {
	lister := m.lister
	return func() tea.Msg {
		resp, err := lister.Execute(context.Background(), usecase.ListPagesRequest{Username: username})
		if err != nil {
			return fetchFailedMsg{seq: seq, err: err}
		}
		return reposFetchedMsg{seq: seq, username: resp.Username, repos: resp.Repos}
	}
}

// Update handles messages.
func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height
		return m, nil

	case spinner.TickMsg:
		if m.state != StateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case reposFetchedMsg:
		if msg.seq != m.fetchSeq {
			return m, nil
		}
		m.username = msg.username
		m.repos = msg.repos
		m.hasResult = true
		m.errMsg = ""
		m.errActions = nil
		m.selectedIndex = 0
		m.applyFilter()
		if len(m.repos) == 0 {
			m.state = StateEmpty
		} else {
			m.state = StateGrid
		}
		return m, nil

	case fetchFailedMsg:
		if msg.seq != m.fetchSeq {
			return m, nil
		}
		// The previously fetched list is kept; only the banner changes.
		m.state = StateError
		m.errMsg = msg.err.Error()
		m.errActions = remediation(msg.err)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m BrowseModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.state {
	case StateInput:
		return m.handleInputKey(msg)
	case StateLoading:
		if msg.String() == "esc" {
			m.fetchSeq++ // orphan the in-flight fetch
			m.state = StateInput
			m.usernameInput.Focus()
			return m, textinput.Blink
		}
		return m, nil
	case StateError:
		return m.handleErrorKey(msg)
	case StateEmpty:
		return m.handleEmptyKey(msg)
	case StateGrid:
		return m.handleGridKey(msg)
	}

	return m, nil
}

func (m BrowseModel) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		username := strings.TrimSpace(m.usernameInput.Value())
		if username == "" {
			return m, nil
		}
		return m.startFetch(username)
	case "esc":
		if m.hasResult {
			m.state = StateGrid
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.usernameInput, cmd = m.usernameInput.Update(msg)
	return m, cmd
}

func (m BrowseModel) handleErrorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		if m.hasResult && len(m.repos) > 0 {
			m.state = StateGrid
		} else if m.hasResult {
			m.state = StateEmpty
		} else {
			m.state = StateInput
			m.usernameInput.Focus()
			return m, textinput.Blink
		}
		return m, nil
	case "r":
		return m.startFetch(m.username)
	case "u":
		return m.switchToInput()
	}
	return m, nil
}

func (m BrowseModel) handleEmptyKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "r":
		return m.startFetch(m.username)
	case "u", "esc":
		return m.switchToInput()
	}
	return m, nil
}

func (m BrowseModel) handleGridKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filterInput.Focused() {
		switch msg.String() {
		case "esc", "enter":
			m.filterInput.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.filterInput, cmd = m.filterInput.Update(msg)
		m.applyFilter()
		if m.selectedIndex >= len(m.filtered) {
			m.selectedIndex = 0
		}
		return m, cmd
	}

	switch msg.String() {
	case "q", "esc":
		m.quitting = true
		return m, tea.Quit
	case "/":
		m.filterInput.Focus()
		return m, textinput.Blink
	case "u":
		return m.switchToInput()
	case "r":
		return m.startFetch(m.username)
	case "up", "k":
		cols := layout.GridColumns(m.windowWidth)
		if m.selectedIndex-cols >= 0 {
			m.selectedIndex -= cols
		}
	case "down", "j":
		cols := layout.GridColumns(m.windowWidth)
		if m.selectedIndex+cols < len(m.filtered) {
			m.selectedIndex += cols
		}
	case "left", "h":
		if m.selectedIndex > 0 {
			m.selectedIndex--
		}
	case "right", "l":
		if m.selectedIndex < len(m.filtered)-1 {
			m.selectedIndex++
		}
	case "o":
		return m.openSelected(func(r domain.Repo) string { return r.SiteURL(m.username) })
	case "g":
		return m.openSelected(func(r domain.Repo) string { return r.HTMLURL })
	}

	return m, nil
}

func (m BrowseModel) startFetch(username string) (tea.Model, tea.Cmd) {
	m.fetchSeq++
	m.username = username
	m.state = StateLoading
	m.notice = ""
	return m, tea.Batch(m.spinner.Tick, m.fetchCmd(m.fetchSeq, username))
}

func (m BrowseModel) switchToInput() (tea.Model, tea.Cmd) {
	m.state = StateInput
	m.usernameInput.SetValue("")
	m.usernameInput.Focus()
	m.filterInput.Blur()
	return m, textinput.Blink
}

func (m BrowseModel) openSelected(link func(domain.Repo) string) (tea.Model, tea.Cmd) {
	if m.opener == nil || len(m.filtered) == 0 || m.selectedIndex >= len(m.filtered) {
		return m, nil
	}
	if err := m.opener(context.Background(), link(m.filtered[m.selectedIndex])); err != nil {
		m.notice = err.Error()
	}
	return m, nil
}

// applyFilter re-derives the visible set from the fetched set and the
// current filter term.
func (m *BrowseModel) applyFilter() {
	m.filtered = domain.Filter(m.repos, strings.TrimSpace(m.filterInput.Value()))
}

// remediation extracts banner actions from a fetch error.
func remediation(err error) []string {
	var reqErr *github.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Remediation()
	}
	return []string{"Check your network connection", "Verify the username exists"}
}

// View renders the browse view.
func (m BrowseModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.renderInput())
	case StateLoading:
		b.WriteString(m.renderLoading())
	case StateError:
		b.WriteString(m.renderError())
	case StateEmpty:
		b.WriteString(m.renderEmpty())
	case StateGrid:
		b.WriteString(m.renderGrid())
	}

	b.WriteString("\n\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m BrowseModel) renderHeader() string {
	title := titleStyle.Render("pagescope")
	sub := subtitleStyle.Render("GitHub Pages site browser")
	if m.username != "" && m.state != StateInput {
		sub = subtitleStyle.Render("Pages sites for " + m.username)
	}
	return title + "  " + sub
}

func (m BrowseModel) renderInput() string {
	return labelStyle.Render("Username:") + "\n" + m.usernameInput.View() + "\n\n" +
		subtitleStyle.Render("Press Enter to fetch repositories")
}

func (m BrowseModel) renderLoading() string {
	cols := layout.GridColumns(m.windowWidth)
	width := m.cardWidth(cols)

	row := make([]string, 0, cols)
	for i := 0; i < cols; i++ {
		row = append(row, components.PlaceholderCard(width))
	}
	grid := lipgloss.JoinHorizontal(lipgloss.Top, row...)

	return m.spinner.View() + loadingStyle.Render(" Fetching repositories for "+m.username+"...") +
		"\n\n" + grid
}

func (m BrowseModel) renderError() string {
	banner := components.NewErrorBanner(m.errMsg).
		WithActions(m.errActions...).
		WithWidth(min(m.windowWidth, 80)).
		Render()

	if m.hasResult && len(m.repos) > 0 {
		// Stale-but-valid results stay visible under the banner.
		return banner + "\n\n" + m.renderGrid()
	}
	return banner
}

func (m BrowseModel) renderEmpty() string {
	return emptyStyle.Render(fmt.Sprintf("No repositories with GitHub Pages found for %s.", m.username)) +
		"\n" + subtitleStyle.Render("Press u to try another username.")
}

func (m BrowseModel) renderGrid() string {
	var b strings.Builder

	b.WriteString(labelStyle.Render("Filter: "))
	b.WriteString(m.filterInput.View())
	b.WriteString("  ")
	b.WriteString(countStyle.Render(fmt.Sprintf("showing %d of %d sites", len(m.filtered), len(m.repos))))
	b.WriteString("\n\n")

	if len(m.filtered) == 0 {
		b.WriteString(emptyStyle.Render("No sites match the current filter."))
		return b.String()
	}

	cols := layout.GridColumns(m.windowWidth)
	width := m.cardWidth(cols)

	var rows []string
	for start := 0; start < len(m.filtered); start += cols {
		end := start + cols
		if end > len(m.filtered) {
			end = len(m.filtered)
		}

		row := make([]string, 0, cols)
		for i := start; i < end; i++ {
			card := components.NewRepoCard(m.filtered[i], m.username, width).
				SetSelected(i == m.selectedIndex)
			row = append(row, card.Render())
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	b.WriteString(strings.Join(rows, "\n"))
	return b.String()
}

func (m BrowseModel) renderFooter() string {
	var shortcuts []components.Shortcut

	switch m.state {
	case StateInput:
		shortcuts = []components.Shortcut{
			{Key: "enter", Description: "fetch"},
			{Key: "esc", Description: "quit"},
		}
	case StateLoading:
		shortcuts = []components.Shortcut{
			{Key: "esc", Description: "cancel"},
		}
	case StateError:
		shortcuts = []components.Shortcut{
			{Key: "r", Description: "retry"},
			{Key: "u", Description: "new user"},
			{Key: "esc", Description: "back"},
		}
	case StateEmpty:
		shortcuts = []components.Shortcut{
			{Key: "u", Description: "new user"},
			{Key: "r", Description: "refresh"},
			{Key: "q", Description: "quit"},
		}
	case StateGrid:
		shortcuts = []components.Shortcut{
			{Key: "↑↓←→", Description: "navigate"},
			{Key: "/", Description: "filter"},
			{Key: "o", Description: "open site"},
			{Key: "g", Description: "open repo"},
			{Key: "u", Description: "new user"},
			{Key: "r", Description: "refresh"},
			{Key: "q", Description: "quit"},
		}
	}

	return components.NewFooter(shortcuts).
		WithMetadata(m.notice).
		WithWidth(m.windowWidth).
		Render()
}

func (m BrowseModel) cardWidth(cols int) int {
	w := (m.windowWidth - (cols-1)*layout.GridGutter) / cols
	if w < layout.CardMinWidth {
		w = layout.CardMinWidth
	}
	return w
}

// Repos returns the current Pages-enabled set. Exposed for the root model
// and tests.
func (m BrowseModel) Repos() []domain.Repo {
	return m.repos
}

// Filtered returns the currently visible set.
func (m BrowseModel) Filtered() []domain.Repo {
	return m.filtered
}

// State returns the current view state.
func (m BrowseModel) State() BrowseState {
	return m.state
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
