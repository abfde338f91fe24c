package search

import (
	"strings"
	"testing"
)

func doc(description string, tags ...string) Document {
	return NewDocument(strings.Fields(description), tags)
}

func TestQueryMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query Query
		doc   Document
		want  bool
	}{
		{
			name:  "empty query matches everything",
			query: Query{},
			doc:   doc("buy bread", "groceries"),
			want:  true,
		},
		{
			name:  "empty query matches untagged",
			query: Query{},
			doc:   doc("call parents"),
			want:  true,
		},
		{
			name:  "single word subsequence",
			query: Query{Words: []string{"bed"}},
			doc:   doc("buy bread"),
			want:  true,
		},
		{
			name:  "word must match some description word",
			query: Query{Words: []string{"milk"}},
			doc:   doc("buy bread"),
			want:  false,
		},
		{
			name:  "all words must match",
			query: Query{Words: []string{"buy", "bed"}},
			doc:   doc("buy bread"),
			want:  true,
		},
		{
			name:  "one failing word fails the todo",
			query: Query{Words: []string{"buy", "milk"}},
			doc:   doc("buy bread"),
			want:  false,
		},
		{
			name:  "words may hit different description words",
			query: Query{Words: []string{"cl", "prts"}},
			doc:   doc("call parents"),
			want:  true,
		},
		{
			name:  "tag intersection",
			query: Query{Tags: []string{"groceries"}},
			doc:   doc("buy bread", "groceries"),
			want:  true,
		},
		{
			name:  "any shared tag suffices",
			query: Query{Tags: []string{"work", "groceries"}},
			doc:   doc("buy bread", "groceries", "errands"),
			want:  true,
		},
		{
			name:  "no shared tag fails",
			query: Query{Tags: []string{"work"}},
			doc:   doc("buy bread", "groceries"),
			want:  false,
		},
		{
			name:  "tags are not subsequence matched",
			query: Query{Tags: []string{"groc"}},
			doc:   doc("buy bread", "groceries"),
			want:  false,
		},
		{
			name:  "tag filter on untagged todo fails",
			query: Query{Tags: []string{"groceries"}},
			doc:   doc("buy bread"),
			want:  false,
		},
		{
			name:  "both clauses must hold",
			query: Query{Words: []string{"buy"}, Tags: []string{"work"}},
			doc:   doc("buy bread", "groceries"),
			want:  false,
		},
		{
			name:  "words and tags together",
			query: Query{Words: []string{"bd"}, Tags: []string{"groceries"}},
			doc:   doc("buy bread", "groceries"),
			want:  true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.query.Match(tt.doc); got != tt.want {
				t.Errorf("Match(%v, %v) = %v, want %v", tt.query, tt.doc.Words, got, tt.want)
			}
		})
	}
}

func TestQueryIsEmpty(t *testing.T) {
	t.Parallel()

	if !(Query{}).IsEmpty() {
		t.Error("zero query should be empty")
	}
	if (Query{Words: []string{"a"}}).IsEmpty() {
		t.Error("query with words should not be empty")
	}
	if (Query{Tags: []string{"a"}}).IsEmpty() {
		t.Error("query with tags should not be empty")
	}
}
