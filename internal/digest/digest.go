// Package digest turns the day's study tasks into the Telegram digest message.
package digest

import (
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/edgard/studybot/internal/notion"
)

// Fixed texts of the digest.
const (
	NoTasksMessage   = "🎉 Bugün planlı bir çalışman yok! Dinlenme günü."
	TopicPlaceholder = "Konu belirtilmemiş"
	DefaultIcon      = "📌"

	headerDateLayout = "02.01.2006"
)

// subjectIcons maps subject names, as stored in the Ders select column, to icons.
var subjectIcons = map[string]string{
	"Matematik":    "🧮",
	"Tarih":        "📜",
	"Coğrafya":     "🌍",
	"Vatandaşlık":  "⚖️",
	"Türkçe":       "📘",
	"Genel Tekrar": "🔄",
	"Deneme":       "📝",
}

// Icon returns the icon for subject, or DefaultIcon for unknown subjects.
func Icon(subject string) string {
	if icon, ok := subjectIcons[subject]; ok {
		return icon
	}
	return DefaultIcon
}

// Task is a study task extracted from a plan database page.
type Task struct {
	Subject string
	Topic   string
	Minutes int
}

// ExtractTask reads subject, topic and duration from a page. It fails only
// when the subject cannot be read or a topic segment carries no text.
func ExtractTask(page notion.Page) (Task, error) {
	subjectProp, ok := page.Properties[notion.SubjectProperty]
	if !ok {
		return Task{}, fmt.Errorf("property %q not found", notion.SubjectProperty)
	}
	if subjectProp.Select == nil {
		return Task{}, fmt.Errorf("property %q has no select value", notion.SubjectProperty)
	}

	topic, err := extractTopic(page.Properties)
	if err != nil {
		return Task{}, err
	}

	return Task{
		Subject: subjectProp.Select.Name,
		Topic:   topic,
		Minutes: extractMinutes(page.Properties),
	}, nil
}

// extractTopic looks the topic up through TopicProperties, reading the title
// segments before the rich text ones.
func extractTopic(props map[string]notion.Property) (string, error) {
	prop, _, ok := FirstPresent(props, notion.TopicProperties...)
	if !ok {
		return TopicPlaceholder, nil
	}

	segments := prop.Title
	if len(segments) == 0 {
		segments = prop.RichText
	}
	if len(segments) == 0 {
		return TopicPlaceholder, nil
	}

	return segments[0].Content()
}

func extractMinutes(props map[string]notion.Property) int {
	prop, ok := props[notion.DurationProperty]
	if !ok || prop.Number == nil {
		return 0
	}
	return int(math.Round(*prop.Number))
}

// Format builds the digest for day. Pages that cannot be read are logged
// with their property names and left out.
func Format(pages []notion.Page, day time.Time, log *slog.Logger) string {
	if len(pages) == 0 {
		return NoTasksMessage
	}
	if log == nil {
		log = slog.Default()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "📅 *KPSS Günlük Plan - %s*\n\n", day.Format(headerDateLayout))

	totalMinutes := 0
	for _, page := range pages {
		task, err := ExtractTask(page)
		if err != nil {
			log.Warn("Skipping task with unreadable properties",
				"page_id", page.ID,
				"error", err,
				"properties", page.PropertyNames())
			continue
		}

		totalMinutes += task.Minutes
		fmt.Fprintf(&sb, "%s *%s* (%d dk)\n└ _%s_\n\n", Icon(task.Subject), task.Subject, task.Minutes, task.Topic)
	}

	sb.WriteString("⏱️ *Toplam:* " + FormatTotal(totalMinutes))
	return sb.String()
}

// FormatTotal renders minutes as whole hours and remaining minutes.
func FormatTotal(minutes int) string {
	return fmt.Sprintf("%d saat %d dakika", minutes/60, minutes%60)
}
