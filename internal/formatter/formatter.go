// package formatter provides functions to export news item lists to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/rkhatta1/TheVersusProject/internal/models"
)

// ExportToCSV converts an item list to CSV with columns: Headline, Summary, Source, VersusCaption, Saved, SavedAt
func ExportToCSV(items []models.NewsItem) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Headline", "Summary", "Source", "VersusCaption", "Saved", "SavedAt"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, item := range items {
		record := []string{
			item.Headline,
			item.Summary,
			item.SourceCaption,
			item.VersusCaption,
			strconv.FormatBool(item.Saved),
			formatSavedAt(item.SavedAt),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts an item list to a Markdown digest
func ExportToMarkdown(title string, items []models.NewsItem) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", title))
	buf.WriteString(fmt.Sprintf("**Items**: %d\n\n", len(items)))

	for _, item := range items {
		buf.WriteString(fmt.Sprintf("## %s\n\n", item.Headline))
		buf.WriteString(fmt.Sprintf("%s\n\n", item.Summary))
		if item.SourceCaption != "" {
			buf.WriteString(fmt.Sprintf("> %s\n\n", item.SourceCaption))
		}
		if item.VersusCaption != "" {
			buf.WriteString(fmt.Sprintf("**Versus Caption**: %s\n\n", item.VersusCaption))
		}
		if item.SavedAt != nil {
			buf.WriteString(fmt.Sprintf("*Saved: %s*\n\n", item.SavedAt.Format(time.RFC1123)))
		}
	}

	return buf.Bytes()
}

// ExportToText converts an item list to plain text for terminal output
func ExportToText(items []models.NewsItem) []byte {
	var buf bytes.Buffer

	for i, item := range items {
		marker := " "
		if item.Saved {
			marker = "*"
		}
		buf.WriteString(fmt.Sprintf("%d.%s %s\n", i+1, marker, item.Headline))
		buf.WriteString(fmt.Sprintf("   %s\n", item.Summary))
		if item.VersusCaption != "" {
			buf.WriteString(fmt.Sprintf("   Versus: %s\n", item.VersusCaption))
		}
		if item.SavedAt != nil {
			buf.WriteString(fmt.Sprintf("   Saved: %s\n", item.SavedAt.Format(time.RFC1123)))
		}
		buf.WriteString("\n")
	}

	return buf.Bytes()
}

func formatSavedAt(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
