// Package progress evaluates the daily checklist record and builds the alert
// sent when parts of it are still open.
package progress

import (
	"strings"

	"github.com/edgard/studybot/internal/notion"
)

// Item is one checklist entry: the name shown to the user and the checkbox
// column that tracks it.
type Item struct {
	Name     string
	Property string
}

// Checklist is the fixed set of daily goals, in the order they are reported.
var Checklist = []Item{
	{Name: "Paragraf", Property: "Paragraf ✅"},
	{Name: "Blok 1-2", Property: "Blok 1-2 ✅"},
	{Name: "Blok 3-4", Property: "Blok 3-4 ✅"},
}

const (
	alertHeader  = "⚠️ Bugünkü hedeflerin henüz tamamlanmadı!"
	alertMarker  = "❌ "
	alertClosing = "Hadi, gün bitmeden tamamla! 💪"
)

// Evaluate returns the names of checklist items that are not ticked on page,
// in Checklist order. Absent or empty checkboxes count as not ticked.
func Evaluate(page notion.Page) []string {
	var missing []string
	for _, item := range Checklist {
		prop, ok := page.Properties[item.Property]
		if ok && prop.Checkbox != nil && *prop.Checkbox {
			continue
		}
		missing = append(missing, item.Name)
	}
	return missing
}

// AlertMessage lists the missing items, one per line, between a fixed header
// and closing line.
func AlertMessage(missing []string) string {
	var sb strings.Builder
	sb.WriteString(alertHeader)
	sb.WriteString("\n\n")
	for _, name := range missing {
		sb.WriteString(alertMarker)
		sb.WriteString(name)
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(alertClosing)
	return sb.String()
}
