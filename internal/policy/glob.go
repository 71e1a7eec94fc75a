package policy

// matchGlob reports whether s matches pattern. Patterns support '*' (any run
// of characters, including none) and '?' (exactly one character), evaluated
// over the full URL string. There is no escaping; URLs do not contain literal
// '*' and a literal '?' separates the query string, which is matched as-is
// by '?' anyway.
func matchGlob(pattern, s string) bool {
	pi, si := 0, 0
	star, mark := -1, 0
	for si < len(s) {
		switch {
		case pi < len(pattern) && (pattern[pi] == '?' || pattern[pi] == s[si]):
			pi++
			si++
		case pi < len(pattern) && pattern[pi] == '*':
			star = pi
			mark = si
			pi++
		case star >= 0:
			// Backtrack: let the last '*' absorb one more character.
			pi = star + 1
			mark++
			si = mark
		default:
			return false
		}
	}
	for pi < len(pattern) && pattern[pi] == '*' {
		pi++
	}
	return pi == len(pattern)
}
