package utils

// Chunk splits items into consecutive slices of at most size elements,
// preserving order; the last chunk may be shorter. Chunks alias the input
// slice, they are not copies. size must be positive, callers validate.
func Chunk[T any](items []T, size int) [][]T {
	if len(items) == 0 {
		return nil
	}

	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		chunks = append(chunks, items[start:end])
	}
	return chunks
}
