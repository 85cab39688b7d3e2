package tui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/rkhatta1/TheVersusProject/internal/models"
)

// newsListItem wraps [models.NewsItem] to implement list.Item.
type newsListItem struct {
	item models.NewsItem
}

func (i newsListItem) FilterValue() string { return i.item.Headline }
func (i newsListItem) Title() string {
	if i.item.Saved {
		return "✔ " + i.item.Headline
	}
	return i.item.Headline
}
func (i newsListItem) Description() string {
	if i.item.VersusCaption != "" {
		return i.item.VersusCaption
	}
	return i.item.Summary
}

func newItemList(title string, items []models.NewsItem) list.Model {
	entries := make([]list.Item, len(items))
	for i, it := range items {
		entries[i] = newsListItem{item: it}
	}
	l := list.New(entries, list.NewDefaultDelegate(), 0, 0)
	l.Title = title
	l.SetShowHelp(false)
	return l
}

func toListItems(items []models.NewsItem) []list.Item {
	entries := make([]list.Item, len(items))
	for i, it := range items {
		entries[i] = newsListItem{item: it}
	}
	return entries
}
