package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChunkText(t *testing.T) {
	chunker := NewTextChunker()

	assert.Equal(t,
		[]string{"a1 a2 a3", "a3 a4 a5", "a5 a6"},
		chunker.ChunkText("a1 a2 a3\n\na4 a5 a6", 8, 2))

	assert.Empty(t, chunker.ChunkText("   ", 8, 2))
	assert.Equal(t, []string{"abcdefghij"}, chunker.ChunkText("abcdefghij", 5, 1))
}

func TestChunkTextRespectsLimit(t *testing.T) {
	text := strings.Repeat("resume keyword ", 300)
	chunks := NewTextChunker().ChunkText(text, DefaultChunkSize, DefaultChunkOverlap)

	assert.Greater(t, len(chunks), 1)
	for _, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk), DefaultChunkSize)
	}
}
