package services

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingReaderAt records whether the document bytes were touched.
type countingReaderAt struct {
	reads int
	data  *strings.Reader
}

func (c *countingReaderAt) ReadAt(p []byte, off int64) (int, error) {
	c.reads++
	return c.data.ReadAt(p, off)
}

func readerFor(s string) (*countingReaderAt, int64) {
	return &countingReaderAt{data: strings.NewReader(s)}, int64(len(s))
}

func requireInputError(t *testing.T, err error, message string) {
	t.Helper()
	var inputErr *InputError
	require.True(t, errors.As(err, &inputErr), "expected InputError, got %v", err)
	assert.Equal(t, message, inputErr.Message)
}

func TestValidateExtension(t *testing.T) {
	tests := []struct {
		filename string
		want     DocumentType
		message  string
	}{
		{"resume.pdf", DocumentPDF, ""},
		{"RESUME.PDF", DocumentPDF, ""},
		{"notes.final.txt", DocumentTXT, ""},
		{"resume.docx", "", MsgInvalidFormat},
		{"resume", "", MsgInvalidFormat},
		{"resume.pdf.exe", "", MsgInvalidFormat},
		{"", "", MsgNoFile},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			got, err := ValidateExtension(tt.filename)
			if tt.message != "" {
				requireInputError(t, err, tt.message)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadDocumentRejectsUnsupportedBeforeReading(t *testing.T) {
	r, size := readerFor("Jane Doe")

	_, err := NewDocumentReader(nil).ReadDocument("resume.docx", r, size)
	requireInputError(t, err, MsgInvalidFormat)
	assert.Zero(t, r.reads)
}

func TestReadDocumentTXT(t *testing.T) {
	reader := NewDocumentReader(nil)

	r, size := readerFor("Jane Doe\nGo developer")
	text, err := reader.ReadDocument("resume.TXT", r, size)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nGo developer", text)

	r, size = readerFor(string([]byte{0xff, 0xfe, 0x00}))
	_, err = reader.ReadDocument("resume.txt", r, size)
	requireInputError(t, err, MsgUnreadableTXT)

	r, size = readerFor("  \n\t ")
	_, err = reader.ReadDocument("resume.txt", r, size)
	requireInputError(t, err, MsgEmptyContent)
}

func TestReadDocumentBrokenPDF(t *testing.T) {
	r, size := readerFor("this is not a pdf")

	_, err := NewDocumentReader(nil).ReadDocument("resume.pdf", r, size)
	requireInputError(t, err, MsgEmptyContent)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "jane.txt")
	require.NoError(t, os.WriteFile(path, []byte("Jane Doe"), 0o644))

	reader := NewDocumentReader(nil)
	text, err := reader.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", text)

	_, err = reader.ReadFile(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
	assert.False(t, IsInputError(err))

	_, err = reader.ReadFile(filepath.Join(dir, "missing.docx"))
	requireInputError(t, err, MsgInvalidFormat)
}
