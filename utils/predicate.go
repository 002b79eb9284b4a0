package utils

type number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// InSpan checks if value lies in the half-open span [start, start+length).
// A non-positive length never contains anything.
func InSpan[T number](start T, value T, length T) bool {
	return length > 0 && start <= value && value < start+length
}
