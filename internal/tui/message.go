package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rkhatta1/TheVersusProject/internal/models"
	"github.com/rkhatta1/TheVersusProject/internal/session"
)

type aggregationDoneMsg struct {
	outcome *session.AggregationOutcome
	err     error
}

type haltDoneMsg struct {
	ack string
	err error
}

type ingestDoneMsg struct {
	outcome *session.IngestOutcome
	err     error
}

type saveDoneMsg struct {
	item models.NewsItem
	err  error
}

type savedFetchedMsg struct {
	items []models.NewsItem
	err   error
}

type deleteDoneMsg struct {
	id  int
	err error
}

func (m *Model) startAggregation() tea.Cmd {
	return func() tea.Msg {
		outcome, err := m.controller.StartAggregation(m.ctx)
		return aggregationDoneMsg{outcome: outcome, err: err}
	}
}

func (m *Model) haltAggregation() tea.Cmd {
	return func() tea.Msg {
		ack, err := m.controller.HaltAggregation(m.ctx)
		return haltDoneMsg{ack: ack, err: err}
	}
}

func (m *Model) ingestURL(url string) tea.Cmd {
	return func() tea.Msg {
		outcome, err := m.controller.IngestURL(m.ctx, url)
		return ingestDoneMsg{outcome: outcome, err: err}
	}
}

func (m *Model) saveItem(item models.NewsItem) tea.Cmd {
	return func() tea.Msg {
		err := m.controller.SaveItem(m.ctx, item)
		return saveDoneMsg{item: item, err: err}
	}
}

func (m *Model) loadSaved() tea.Cmd {
	return func() tea.Msg {
		items, err := m.controller.LoadPersistedItems(m.ctx)
		return savedFetchedMsg{items: items, err: err}
	}
}

func (m *Model) deleteSaved(id int) tea.Cmd {
	return func() tea.Msg {
		err := m.controller.DeletePersistedItem(m.ctx, id)
		return deleteDoneMsg{id: id, err: err}
	}
}
