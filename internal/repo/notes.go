// ABOUTME: Note repository over the knowledge_notes table.
// ABOUTME: Append-only with case-insensitive substring search.
package repo

import (
	"fmt"
	"sort"

	"github.com/harperreed/lifeos/internal/models"
	"github.com/harperreed/lifeos/internal/store"
)

// NoteRepo is the typed view over the knowledge_notes table.
type NoteRepo struct {
	store *store.Store
}

// Add appends one note.
func (r *NoteRepo) Add(n *models.Note) error {
	rec, err := r.store.Insert(store.TableNotes, n.Fields())
	if err != nil {
		return fmt.Errorf("insert note: %w", err)
	}
	n.ID = rec.ID
	n.CreatedAt = rec.CreatedAt
	return nil
}

// All returns every note, newest first.
func (r *NoteRepo) All() ([]*models.Note, error) {
	return r.Search("")
}

// Search returns notes whose title, tags, or content contain the query,
// newest first. An empty query matches everything.
func (r *NoteRepo) Search(query string) ([]*models.Note, error) {
	recs, err := r.store.ReadAll(store.TableNotes)
	if err != nil {
		return nil, fmt.Errorf("read notes: %w", err)
	}
	var notes []*models.Note
	for _, rec := range recs {
		n := models.NoteFromRecord(rec)
		if query == "" || n.Matches(query) {
			notes = append(notes, n)
		}
	}
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].CreatedAt.After(notes[j].CreatedAt)
	})
	return notes, nil
}
