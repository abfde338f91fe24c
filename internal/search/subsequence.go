package search

// foldRune maps ASCII uppercase letters to lowercase. Matching compares
// alphabet positions, so "BUY" finds "buy"; everything outside A-Z/a-z
// compares as-is.
func foldRune(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r - 'A' + 'a'
	}
	return r
}

// IsSubsequence reports whether pattern occurs as a (not necessarily
// contiguous) subsequence of word: the characters of pattern appear in word
// in order. The empty pattern matches every word, including the empty one.
//
// Two-cursor scan: the word cursor always advances, the pattern cursor
// advances on a match. O(len(word)) time, no allocation beyond the pattern
// decode.
func IsSubsequence(pattern, word string) bool {
	if pattern == "" {
		return true
	}
	runes := []rune(pattern)
	i := 0
	for _, c := range word {
		if foldRune(c) == foldRune(runes[i]) {
			i++
			if i == len(runes) {
				return true
			}
		}
	}
	return false
}
