package notion

import (
	"fmt"
	"sort"
)

// Page is a single database row as returned by the query endpoint.
type Page struct {
	ID         string              `json:"id"`
	Properties map[string]Property `json:"properties"`
}

// PropertyNames returns the property keys of the page, sorted.
func (p Page) PropertyNames() []string {
	names := make([]string, 0, len(p.Properties))
	for name := range p.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Property holds the value of one page property. Only the field matching
// Type is populated by the API; the rest stay nil or empty.
type Property struct {
	ID       string        `json:"id,omitempty"`
	Type     string        `json:"type"`
	Title    []RichText    `json:"title,omitempty"`
	RichText []RichText    `json:"rich_text,omitempty"`
	Select   *SelectOption `json:"select,omitempty"`
	Number   *float64      `json:"number,omitempty"`
	Checkbox *bool         `json:"checkbox,omitempty"`
	Date     *DateValue    `json:"date,omitempty"`
}

// RichText is one segment of a title or rich_text property.
type RichText struct {
	Type      string       `json:"type,omitempty"`
	PlainText string       `json:"plain_text"`
	Text      *TextContent `json:"text,omitempty"`
}

// Content returns the text of the segment, preferring text.content over plain_text.
func (r RichText) Content() (string, error) {
	if r.Text != nil {
		return r.Text.Content, nil
	}
	if r.PlainText != "" {
		return r.PlainText, nil
	}
	return "", fmt.Errorf("rich text segment of type %q has no text content", r.Type)
}

// TextContent is the payload of a "text" rich text segment.
type TextContent struct {
	Content string `json:"content"`
}

// SelectOption is the value of a select property.
type SelectOption struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// DateValue is the value of a date property.
type DateValue struct {
	Start string `json:"start"`
	End   string `json:"end,omitempty"`
}

// QueryResponse is one page of results from a database query.
type QueryResponse struct {
	Object     string `json:"object"`
	Results    []Page `json:"results"`
	HasMore    bool   `json:"has_more"`
	NextCursor string `json:"next_cursor,omitempty"`
}
