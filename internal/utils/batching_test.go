package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChunk(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	chunks := Chunk(items, 3)
	assert.Equal(t, [][]int{{1, 2, 3}, {4, 5, 6}, {7}}, chunks)

	chunks = Chunk(items, 10)
	assert.Equal(t, [][]int{{1, 2, 3, 4, 5, 6, 7}}, chunks)

	chunks = Chunk(items, 1)
	assert.Len(t, chunks, 7)

	assert.Nil(t, Chunk([]int{}, 3))
	assert.Nil(t, Chunk[int](nil, 3))
}
