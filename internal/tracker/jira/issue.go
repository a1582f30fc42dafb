package jira

import (
	"encoding/json"
	"strings"
	"time"
)

type Issue struct {
	ID     string                     `json:"id"`
	Key    string                     `json:"key"`
	Fields map[string]json.RawMessage `json:"fields"`
}

type searchResponse struct {
	Total  int     `json:"total"`
	Issues []Issue `json:"issues"`
}

// Jira renders datetime fields with a numeric zone without a colon.
var timeLayouts = []string{
	"2006-01-02T15:04:05.000-0700",
	"2006-01-02T15:04:05-0700",
	time.RFC3339Nano,
	"2006-01-02",
}

func (i Issue) Summary() string {
	s, _ := i.TextField("summary")
	return s
}

func (i Issue) Description() string {
	s, _ := i.TextField("description")
	return s
}

// TextField reads field name as text. Plain strings, option objects
// ({"value": ...} or {"name": ...}) and Atlassian Document Format documents
// are understood. ok is false when the field is absent, null or empty.
func (i Issue) TextField(name string) (string, bool) {
	raw, found := i.Fields[name]
	if !found || len(raw) == 0 || string(raw) == "null" {
		return "", false
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		s = strings.TrimSpace(s)
		return s, s != ""
	}

	var obj struct {
		Value       string    `json:"value"`
		Name        string    `json:"name"`
		DisplayName string    `json:"displayName"`
		Type        string    `json:"type"`
		Content     []adfNode `json:"content"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return "", false
	}

	var text string
	switch {
	case obj.Type == "doc":
		text = flattenADF(obj.Content)
	case obj.Value != "":
		text = obj.Value
	case obj.Name != "":
		text = obj.Name
	default:
		text = obj.DisplayName
	}

	text = strings.TrimSpace(text)
	return text, text != ""
}

// TimeField reads field name as a Jira date or datetime.
func (i Issue) TimeField(name string) (time.Time, bool) {
	s, ok := i.TextField(name)
	if !ok {
		return time.Time{}, false
	}

	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}

	return time.Time{}, false
}

type adfNode struct {
	Type    string    `json:"type"`
	Text    string    `json:"text"`
	Content []adfNode `json:"content"`
}

// flattenADF extracts the text of an Atlassian Document Format body, one line
// per block node.
func flattenADF(nodes []adfNode) string {
	var b strings.Builder

	var walk func(nodes []adfNode)
	walk = func(nodes []adfNode) {
		for _, n := range nodes {
			switch n.Type {
			case "text":
				b.WriteString(n.Text)
			case "hardBreak":
				b.WriteString("\n")
			default:
				walk(n.Content)
				if isBlock(n.Type) && !strings.HasSuffix(b.String(), "\n") {
					b.WriteString("\n")
				}
			}
		}
	}
	walk(nodes)

	return strings.TrimSpace(b.String())
}

func isBlock(nodeType string) bool {
	switch nodeType {
	case "paragraph", "heading", "listItem", "blockquote", "codeBlock", "rule", "tableRow":
		return true
	}
	return false
}
