package jira

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeIssue(t *testing.T, body string) Issue {
	t.Helper()

	var issue Issue
	require.NoError(t, json.Unmarshal([]byte(body), &issue))

	return issue
}

func TestIssue_TextField(t *testing.T) {
	t.Parallel()

	issue := decodeIssue(t, `{
		"id": "10001",
		"key": "EV-1",
		"fields": {
			"summary": "  Tech Talk on AI ",
			"customfield_10020": {"self": "https://x", "value": "Main Hall", "id": "1"},
			"customfield_10030": {"name": "Library"},
			"customfield_10040": null,
			"customfield_10050": "",
			"customfield_10060": 42
		}
	}`)

	assert.Equal(t, "Tech Talk on AI", issue.Summary())

	loc, ok := issue.TextField("customfield_10020")
	assert.True(t, ok)
	assert.Equal(t, "Main Hall", loc)

	name, ok := issue.TextField("customfield_10030")
	assert.True(t, ok)
	assert.Equal(t, "Library", name)

	for _, field := range []string{"customfield_10040", "customfield_10050", "customfield_10060", "missing"} {
		_, ok = issue.TextField(field)
		assert.False(t, ok, field)
	}
}

func TestIssue_Description_ADF(t *testing.T) {
	t.Parallel()

	issue := decodeIssue(t, `{
		"id": "10001",
		"key": "EV-1",
		"fields": {
			"description": {
				"type": "doc",
				"version": 1,
				"content": [
					{"type": "paragraph", "content": [
						{"type": "text", "text": "A discussion on "},
						{"type": "text", "text": "AI", "marks": [{"type": "strong"}]},
						{"type": "hardBreak"},
						{"type": "text", "text": "and ethics."}
					]},
					{"type": "bulletList", "content": [
						{"type": "listItem", "content": [
							{"type": "paragraph", "content": [{"type": "text", "text": "Q&A"}]}
						]}
					]}
				]
			}
		}
	}`)

	assert.Equal(t, "A discussion on AI\nand ethics.\nQ&A", issue.Description())
}

func TestIssue_Description_PlainAndMissing(t *testing.T) {
	t.Parallel()

	plain := decodeIssue(t, `{"id": "1", "key": "EV-1", "fields": {"description": "Live music"}}`)
	assert.Equal(t, "Live music", plain.Description())

	missing := decodeIssue(t, `{"id": "2", "key": "EV-2", "fields": {"description": null}}`)
	assert.Equal(t, "", missing.Description())
}

func TestIssue_TimeField(t *testing.T) {
	t.Parallel()

	issue := decodeIssue(t, `{
		"id": "10001",
		"key": "EV-1",
		"fields": {
			"datetime": "2025-04-01T16:00:00.000+0200",
			"rfc3339": "2025-04-01T14:00:00Z",
			"date": "2025-04-01",
			"garbage": "next tuesday"
		}
	}`)

	want := time.Date(2025, 4, 1, 14, 0, 0, 0, time.UTC)

	got, ok := issue.TimeField("datetime")
	assert.True(t, ok)
	assert.True(t, want.Equal(got))
	assert.Equal(t, time.UTC, got.Location())

	got, ok = issue.TimeField("rfc3339")
	assert.True(t, ok)
	assert.True(t, want.Equal(got))

	got, ok = issue.TimeField("date")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), got)

	_, ok = issue.TimeField("garbage")
	assert.False(t, ok)

	_, ok = issue.TimeField("missing")
	assert.False(t, ok)
}
