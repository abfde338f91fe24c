package search

// Document is the searchable view of one todo: its description split into
// whitespace words, its tags, and the precomputed word position mask. Built
// once at creation time by the store.
type Document struct {
	Words []string
	Tags  []string
	mask  []uint32
}

// NewDocument indexes a description's words and tags for matching.
func NewDocument(words, tags []string) Document {
	return Document{
		Words: words,
		Tags:  tags,
		mask:  buildMask(words),
	}
}

// Query is a parsed search request: free-text words and tag filters.
// Either part may be empty; an empty part constrains nothing.
type Query struct {
	Words []string
	Tags  []string
}

// IsEmpty reports whether the query constrains nothing (matches everything).
func (q Query) IsEmpty() bool {
	return len(q.Words) == 0 && len(q.Tags) == 0
}

// Match applies the two-clause rule:
//
//   - every query word must be a subsequence of at least one document word
//     (AND over query words, OR over document words);
//   - when query tags are present, at least one must equal a document tag.
//
// Both clauses are vacuously true when their query part is empty. Completion
// status is not part of the rule; completed todos stay searchable.
func (q Query) Match(d Document) bool {
	if q.IsEmpty() {
		return true
	}
	for _, w := range q.Words {
		if !matchWord(w, d) {
			return false
		}
	}
	if len(q.Tags) == 0 {
		return true
	}
	for _, tag := range q.Tags {
		for _, have := range d.Tags {
			if tag == have {
				return true
			}
		}
	}
	return false
}

// matchWord runs the mask prefilter, then confirms against the individual
// words. The prefilter only ever skips work, never changes the answer.
func matchWord(pattern string, d Document) bool {
	if !maskMatch(pattern, d.mask) {
		return false
	}
	for _, w := range d.Words {
		if IsSubsequence(pattern, w) {
			return true
		}
	}
	return false
}
