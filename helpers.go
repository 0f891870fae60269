package gotodo

// NormalizeLimit replaces an unspecified (zero) limit with DefaultListLimit.
func NormalizeLimit(limit uint32) uint32 {
	if limit == 0 {
		return DefaultListLimit
	}
	return limit
}

// ClampRange converts an offset/limit pair into [start, end) positions over
// a collection of the given size. An offset at or past the end yields an
// empty range, and offset+limit is clamped to size rather than wrapping.
func ClampRange(offset, limit uint32, size int) (start, end int) {
	if size < 0 {
		size = 0
	}
	if uint64(offset) >= uint64(size) {
		return size, size
	}
	start = int(offset)
	span := uint64(offset) + uint64(limit)
	if span > uint64(size) {
		return start, size
	}
	return start, int(span)
}
