package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rkhatta1/TheVersusProject/internal/models"
	"github.com/rkhatta1/TheVersusProject/internal/session"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	FeedView ViewState = iota
	IngestView
	SavedView
)

// Model represents the TUI application state.
type Model struct {
	ctx        context.Context
	view       ViewState
	controller *session.Controller
	width      int
	height     int
	feedList   list.Model
	savedList  list.Model
	urlInput   textinput.Model
	notice     string
	err        error
	help       help.Model
	keys       keyMap
}

// NewModel creates a new TUI model over the session controller.
func NewModel(ctx context.Context, controller *session.Controller) *Model {
	input := textinput.New()
	input.Placeholder = "Paste an article URL to process..."
	input.CharLimit = 512

	m := &Model{
		ctx:        ctx,
		view:       FeedView,
		controller: controller,
		urlInput:   input,
		help:       help.New(),
		keys:       newKeyMap(),
	}
	m.feedList = newItemList("Versus Feed", controller.Items())
	m.savedList = newItemList("Saved Captions", nil)

	return m
}

// Init implements tea.Model; the cached feed renders immediately.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.feedList.SetSize(msg.Width-4, msg.Height-8)
		m.savedList.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case FeedView:
			return m.handleFeedKeys(msg)
		case IngestView:
			return m.handleIngestKeys(msg)
		case SavedView:
			return m.handleSavedKeys(msg)
		}

	case aggregationDoneMsg:
		m.err = msg.err
		m.notice = ""
		if msg.err == nil {
			if msg.outcome.Halted || msg.outcome.Notice != "" {
				m.notice = msg.outcome.Notice
			}
			m.reloadFeedList()
		}
		return m, nil

	case haltDoneMsg:
		m.err = msg.err
		if msg.err == nil {
			m.notice = msg.ack
		}
		return m, nil

	case ingestDoneMsg:
		m.err = msg.err
		m.notice = ""
		if msg.err == nil {
			if msg.outcome.Duplicate {
				m.notice = msg.outcome.Message
			} else {
				m.urlInput.SetValue("")
				m.reloadFeedList()
			}
		}
		return m, nil

	case saveDoneMsg:
		m.err = msg.err
		if msg.err == nil {
			m.notice = fmt.Sprintf("Saved %q", msg.item.Headline)
			m.reloadFeedList()
		}
		return m, nil

	case savedFetchedMsg:
		m.err = msg.err
		if msg.err == nil {
			m.savedList.SetItems(toListItems(msg.items))
		}
		return m, nil

	case deleteDoneMsg:
		m.err = msg.err
		if msg.err == nil {
			m.savedList.SetItems(toListItems(m.controller.SavedItems()))
		}
		return m, nil
	}

	return m, nil
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	switch m.view {
	case FeedView:
		return m.renderFeed()
	case IngestView:
		return m.renderIngest()
	case SavedView:
		return m.renderSaved()
	default:
		return ""
	}
}

func (m *Model) handleFeedKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.run):
		if m.controller.IsAggregating() {
			return m, nil
		}
		m.notice = "Running the main loop..."
		return m, m.startAggregation()

	case key.Matches(msg, m.keys.halt):
		if !m.controller.IsAggregating() {
			return m, nil
		}
		return m, m.haltAggregation()

	case key.Matches(msg, m.keys.ingest):
		m.view = IngestView
		m.urlInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.save):
		if it, ok := m.selectedFeedItem(); ok && !it.Saved {
			return m, m.saveItem(it)
		}
		return m, nil

	case key.Matches(msg, m.keys.trash):
		if it, ok := m.selectedFeedItem(); ok {
			m.controller.TrashItem(it)
			m.reloadFeedList()
		}
		return m, nil

	case key.Matches(msg, m.keys.cycle):
		m.cycleTimeLimit()
		return m, nil

	case key.Matches(msg, m.keys.toggle):
		m.view = SavedView
		return m, m.loadSaved()
	}

	var cmd tea.Cmd
	m.feedList, cmd = m.feedList.Update(msg)
	return m, cmd
}

func (m *Model) handleIngestKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = FeedView
		m.urlInput.Blur()
		return m, nil
	case "enter":
		url := m.urlInput.Value()
		if url == "" || m.controller.IsIngesting() {
			return m, nil
		}
		m.view = FeedView
		m.urlInput.Blur()
		m.notice = "Processing URL..."
		return m, m.ingestURL(url)
	}

	var cmd tea.Cmd
	m.urlInput, cmd = m.urlInput.Update(msg)
	return m, cmd
}

func (m *Model) handleSavedKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.toggle), key.Matches(msg, m.keys.back):
		m.view = FeedView
		return m, nil

	case key.Matches(msg, m.keys.deleteK):
		if it, ok := m.selectedSavedItem(); ok && it.ID != 0 {
			return m, m.deleteSaved(it.ID)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.savedList, cmd = m.savedList.Update(msg)
	return m, cmd
}

func (m *Model) renderFeed() string {
	header := styles.title.Render("The Versus Project")
	status := styles.help.Render(fmt.Sprintf("time limit: last %d hours • identity: %s", m.controller.TimeLimit(), m.identityLabel()))
	if m.controller.IsAggregating() {
		status = styles.notice.Render("Running...") + "  " + status
	}

	return fmt.Sprintf("%s\n%s\n\n%s\n%s\n%s", header, status, m.feedList.View(), m.renderFooter(), m.help.View(m.keys))
}

func (m *Model) renderIngest() string {
	header := styles.title.Render("Process a URL")
	return fmt.Sprintf("%s\n\n%s\n\n%s\n%s", header, m.urlInput.View(), m.renderFooter(), styles.help.Render("enter to submit • esc to cancel"))
}

func (m *Model) renderSaved() string {
	header := styles.title.Render("Saved Captions")
	return fmt.Sprintf("%s\n\n%s\n%s\n%s", header, m.savedList.View(), m.renderFooter(), m.help.View(m.keys))
}

func (m *Model) renderFooter() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Error: %v", m.err))
	}
	if standing := m.controller.IngestionError(); standing != "" {
		return styles.err.Render(standing)
	}
	if standing := m.controller.AggregationError(); standing != "" {
		return styles.err.Render("Error: " + standing)
	}
	if m.notice != "" {
		return styles.notice.Render(m.notice)
	}
	return ""
}

func (m *Model) identityLabel() string {
	if m.controller.Identity() == "" {
		return "guest"
	}
	return "signed in"
}

func (m *Model) selectedFeedItem() (models.NewsItem, bool) {
	selected := m.feedList.SelectedItem()
	if selected == nil {
		return models.NewsItem{}, false
	}
	entry, ok := selected.(newsListItem)
	return entry.item, ok
}

func (m *Model) selectedSavedItem() (models.NewsItem, bool) {
	selected := m.savedList.SelectedItem()
	if selected == nil {
		return models.NewsItem{}, false
	}
	entry, ok := selected.(newsListItem)
	return entry.item, ok
}

func (m *Model) reloadFeedList() {
	m.feedList.SetItems(toListItems(m.controller.Items()))
}

func (m *Model) cycleTimeLimit() {
	current := m.controller.TimeLimit()
	next := models.AllowedTimeLimits[0]
	for i, h := range models.AllowedTimeLimits {
		if h == current && i+1 < len(models.AllowedTimeLimits) {
			next = models.AllowedTimeLimits[i+1]
			break
		}
	}
	// next is always one of AllowedTimeLimits.
	_ = m.controller.SetTimeLimit(next)
}
