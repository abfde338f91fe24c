// Package store holds the in-memory todo collection for one interpreter
// session. It is the only owner of todo records: ids are handed out here,
// and the completed flag is only ever flipped here.
package store

import (
	"errors"
	"strings"
	"time"

	"github.com/taskline/taskline/internal/models"
	"github.com/taskline/taskline/internal/search"
)

// ErrNotFound is returned when an id does not reference a stored todo.
var ErrNotFound = errors.New("todo not found")

// Item pairs a todo with its precomputed search document.
type Item struct {
	Todo *models.Todo
	Doc  search.Document
}

// Store is an append-only, process-local todo collection. Ids start at 0 and
// increase by one per Add; nothing is ever removed, so a todo's id doubles
// as its position in the slice.
//
// Not safe for concurrent use. The interpreter handles one command at a
// time, so no locking is needed.
type Store struct {
	nextID int64
	items  []*Item
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}

// Add creates a todo with the next id and returns it. The description is
// kept verbatim; its whitespace-delimited words are indexed for search.
// Duplicate tags are dropped, first occurrence wins, order is preserved.
func (s *Store) Add(description string, tags []string) *models.Todo {
	todo := &models.Todo{
		ID:          s.nextID,
		Description: description,
		Tags:        dedupeTags(tags),
		CreatedAt:   time.Now().UTC(),
	}
	s.nextID++

	s.items = append(s.items, &Item{
		Todo: todo,
		Doc:  search.NewDocument(strings.Fields(description), todo.Tags),
	})
	return todo
}

// Done marks the todo with the given id as completed. Marking an already
// completed todo again is a no-op that still succeeds.
func (s *Store) Done(id int64) error {
	if id < 0 || id >= s.nextID {
		return ErrNotFound
	}
	s.items[id].Todo.Completed = true
	return nil
}

// Get returns the todo with the given id.
func (s *Store) Get(id int64) (*models.Todo, bool) {
	if id < 0 || id >= s.nextID {
		return nil, false
	}
	return s.items[id].Todo, true
}

// Len returns the number of stored todos.
func (s *Store) Len() int {
	return len(s.items)
}

// Search returns every todo matching the query, most recently created
// first. Completed todos are included; the completed flag is informational
// and never filters results.
func (s *Store) Search(q search.Query) []*models.Todo {
	results := make([]*models.Todo, 0)
	for i := len(s.items) - 1; i >= 0; i-- {
		item := s.items[i]
		if q.Match(item.Doc) {
			results = append(results, item.Todo)
		}
	}
	return results
}

func dedupeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
