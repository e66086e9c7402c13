package services

import (
	"strings"
	"unicode/utf8"
)

const (
	DefaultChunkSize    = 1000
	DefaultChunkOverlap = 200
)

type TextChunker interface {
	ChunkText(text string, maxChunkSize int, overlap int) []string
}

type textChunker struct{}

func NewTextChunker() TextChunker {
	return &textChunker{}
}

// ChunkText splits text on word boundaries into chunks of at most maxChunkSize runes.
// Each chunk after the first repeats up to overlap runes of trailing words from the
// previous one. A single word longer than maxChunkSize becomes its own chunk.
func (tc *textChunker) ChunkText(text string, maxChunkSize int, overlap int) []string {
	if maxChunkSize <= 0 {
		maxChunkSize = DefaultChunkSize
	}
	if overlap < 0 {
		overlap = 0
	}
	if overlap >= maxChunkSize {
		overlap = maxChunkSize / 4
	}

	words := strings.Fields(text)
	var chunks []string
	var current []string
	size := 0

	for _, word := range words {
		wordLen := utf8.RuneCountInString(word)
		if len(current) > 0 && size+1+wordLen > maxChunkSize {
			chunks = append(chunks, strings.Join(current, " "))
			current = tailWords(current, overlap)
			size = joinedLen(current)
			if len(current) > 0 && size+1+wordLen > maxChunkSize {
				current, size = nil, 0
			}
		}
		if len(current) > 0 {
			size++
		}
		current = append(current, word)
		size += wordLen
	}

	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, " "))
	}
	return chunks
}

func tailWords(words []string, limit int) []string {
	start := len(words)
	size := 0
	for start > 0 {
		next := utf8.RuneCountInString(words[start-1])
		if size > 0 {
			next++
		}
		if size+next > limit {
			break
		}
		size += next
		start--
	}
	return append([]string(nil), words[start:]...)
}

func joinedLen(words []string) int {
	if len(words) == 0 {
		return 0
	}
	n := len(words) - 1
	for _, w := range words {
		n += utf8.RuneCountInString(w)
	}
	return n
}
