package search

// Position masks are a cheap prefilter in front of IsSubsequence. For one
// document, position i of the mask is the OR of the character bits of the
// i-th character of every word. A pattern that cannot be threaded through
// the superimposed mask cannot be a subsequence of any individual word, so
// the exact per-word check can be skipped for most non-matching documents.

const hyphenBit = 1 << 28

// CharMask returns the prefilter bit for a character: one bit per letter of
// the alphabet (case folded) plus a dedicated bit for '-'. Characters with
// no assigned bit return 0 and are exempt from prefiltering.
func CharMask(r rune) uint32 {
	switch {
	case r >= 'a' && r <= 'z':
		return 1 << (r - 'a')
	case r >= 'A' && r <= 'Z':
		return 1 << (r - 'A')
	case r == '-':
		return hyphenBit
	}
	return 0
}

// buildMask superimposes all words into one position mask. The mask is as
// long as the longest word, counted in runes.
func buildMask(words []string) []uint32 {
	var mask []uint32
	for _, w := range words {
		i := 0
		for _, c := range w {
			if i >= len(mask) {
				mask = append(mask, CharMask(c))
			} else {
				mask[i] |= CharMask(c)
			}
			i++
		}
	}
	return mask
}

// maskMatch reports whether pattern can be threaded through the position
// mask. It never rejects a pattern that IsSubsequence would accept for some
// word of the document: a character without an assigned bit only consumes a
// position, it is never used to rule anything out.
func maskMatch(pattern string, mask []uint32) bool {
	i := 0
	for _, c := range pattern {
		bit := CharMask(c)
		if bit != 0 {
			for i < len(mask) && mask[i]&bit == 0 {
				i++
			}
		}
		if i >= len(mask) {
			return false
		}
		i++
	}
	return true
}
