package ustring

// JaroDistance returns the Jaro similarity of a and b over their grapheme
// sequences, a float in [0,1]. Identical inputs score 1; if only one side
// is empty the score is 0. Otherwise matches are collected within a sliding
// window of radius max(0, max(len1,len2)/2 - 1) around the aligned
// position, each matched cluster is consumed so it cannot match twice, and
// a match found at an index not greater than the previous match's index
// counts as a transposition. O(shorter * window).
func JaroDistance(a, b string) float64 {
	if a == b {
		return 1
	}
	if a == "" || b == "" {
		return 0
	}

	ga, gb := Graphemes(a), Graphemes(b)
	// Scan the shorter sequence against the longer one.
	if len(ga) > len(gb) {
		ga, gb = gb, ga
	}
	len1, len2 := len(ga), len(gb)

	window := len2/2 - 1
	if window < 0 {
		window = 0
	}

	used := make([]bool, len2)
	comm, trans := 0, 0
	prev := -1
	for i, g := range ga {
		lo := i - window
		if lo < 0 {
			lo = 0
		}
		hi := i + window
		if hi > len2-1 {
			hi = len2 - 1
		}
		for j := lo; j <= hi; j++ {
			if used[j] || gb[j] != g {
				continue
			}
			used[j] = true
			if j <= prev {
				trans++
			}
			prev = j
			comm++
			break
		}
	}

	if comm == 0 {
		return 0
	}
	c := float64(comm)
	return (c/float64(len1) + c/float64(len2) + (c-float64(trans))/c) / 3
}
