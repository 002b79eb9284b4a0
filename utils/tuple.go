package utils

// Unpack2 returns the first two elements of s, zero-filling whatever is
// missing. Extra elements are ignored.
func Unpack2[Slice ~[]T, T any](s Slice) (first T, second T) {
	switch len(s) {
	default:
		return s[0], s[1]
	case 0:
		return
	case 1:
		first = s[0]
		return
	}
}
