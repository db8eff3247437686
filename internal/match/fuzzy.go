package match

// ratio computes the Ratcliff/Obershelp similarity of two strings: twice the
// number of matching characters divided by the total length. Matching
// characters are found by locating the longest common substring and recursing
// on the pieces to its left and right.
func ratio(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	matched := commonChars(a, b)
	return 2 * float64(matched) / float64(len(a)+len(b))
}

type fuzzPair struct {
	a, b string
}

func commonChars(a, b string) int {
	total := 0
	stack := []fuzzPair{{a, b}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if p.a == "" || p.b == "" {
			continue
		}
		ai, bi, n := longestCommonSubstring(p.a, p.b)
		if n == 0 {
			continue
		}
		total += n
		stack = append(stack,
			fuzzPair{p.a[:ai], p.b[:bi]},
			fuzzPair{p.a[ai+n:], p.b[bi+n:]},
		)
	}
	return total
}

// longestCommonSubstring returns the start offsets and length of the longest
// substring common to a and b, preferring the leftmost match in a.
func longestCommonSubstring(a, b string) (ai, bi, n int) {
	// prev[j] holds the match length ending at a[i-1], b[j-1].
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1] + 1
				if cur[j] > n {
					n = cur[j]
					ai = i - n
					bi = j - n
				}
			} else {
				cur[j] = 0
			}
		}
		prev, cur = cur, prev
	}
	return ai, bi, n
}
