// ABOUTME: Note model for the knowledge table.
// ABOUTME: Tags are lowercased on write so search never cares about case.
package models

import (
	"strings"
	"time"

	"github.com/harperreed/lifeos/internal/store"
)

// Note is one knowledge entry.
type Note struct {
	ID        string
	Title     string
	Content   string
	Tags      string // lowercased comma list
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewNote creates a note, lowercasing tags for search.
func NewNote(title, content, tags string) *Note {
	return &Note{
		Title:   title,
		Content: content,
		Tags:    strings.ToLower(tags),
	}
}

// Fields converts the note to store fields.
func (n *Note) Fields() store.Fields {
	f := store.Fields{}
	f.Set("title", n.Title)
	f.Set("content", n.Content)
	f.Set("tags", strings.ToLower(n.Tags))
	return f
}

// NoteFromRecord builds a Note from a stored record.
func NoteFromRecord(r store.Record) *Note {
	return &Note{
		ID:        r.ID,
		Title:     r.Fields.Get("title"),
		Content:   r.Fields.Get("content"),
		Tags:      r.Fields.Get("tags"),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// Matches reports whether the note's title, tags, or content contain the
// query, case-insensitively.
func (n *Note) Matches(query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(n.Title), q) ||
		strings.Contains(strings.ToLower(n.Tags), q) ||
		strings.Contains(strings.ToLower(n.Content), q)
}
