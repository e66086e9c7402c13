package services

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"
)

type DocumentType string

const (
	DocumentPDF DocumentType = "pdf"
	DocumentTXT DocumentType = "txt"
)

// ValidateExtension accepts only .pdf and .txt filenames. It runs before any bytes are read.
func ValidateExtension(filename string) (DocumentType, error) {
	if strings.TrimSpace(filename) == "" {
		return "", &InputError{Message: MsgNoFile}
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return DocumentPDF, nil
	case ".txt":
		return DocumentTXT, nil
	default:
		return "", &InputError{Message: MsgInvalidFormat}
	}
}

// IsSupportedDocument reports whether the filename has an accepted extension.
func IsSupportedDocument(filename string) bool {
	_, err := ValidateExtension(filename)
	return err == nil
}

type DocumentReader interface {
	ReadDocument(filename string, r io.ReaderAt, size int64) (string, error)
	ReadFile(path string) (string, error)
}

type documentReader struct {
	log *zap.Logger
}

func NewDocumentReader(log *zap.Logger) DocumentReader {
	if log == nil {
		log = zap.NewNop()
	}
	return &documentReader{log: log}
}

func (d *documentReader) ReadFile(path string) (string, error) {
	if _, err := ValidateExtension(path); err != nil {
		return "", err
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open document: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat document: %w", err)
	}

	return d.ReadDocument(filepath.Base(path), f, info.Size())
}

// ReadDocument returns the raw text of a PDF or TXT document. Failed and empty
// extractions both come back as an InputError.
func (d *documentReader) ReadDocument(filename string, r io.ReaderAt, size int64) (string, error) {
	docType, err := ValidateExtension(filename)
	if err != nil {
		return "", err
	}

	var text string
	switch docType {
	case DocumentPDF:
		text, err = readPDF(r, size)
		if err != nil {
			d.log.Error("PDF extraction failed", zap.String("file", filename), zap.Error(err))
			return "", &InputError{Message: MsgEmptyContent, Cause: err}
		}
	case DocumentTXT:
		text, err = readTXT(r, size)
		if err != nil {
			return "", err
		}
	}

	if strings.TrimSpace(text) == "" {
		return "", &InputError{Message: MsgEmptyContent}
	}
	return text, nil
}

func readPDF(r io.ReaderAt, size int64) (text string, err error) {
	// The pdf package panics on some malformed documents.
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("malformed PDF: %v", p)
		}
	}()

	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	pages := make([]string, 0, reader.NumPage())
	for pageIndex := 1; pageIndex <= reader.NumPage(); pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		pages = append(pages, pageText)
	}

	return strings.Join(pages, " "), nil
}

var errInvalidUTF8 = errors.New("text is not valid UTF-8")

func readTXT(r io.ReaderAt, size int64) (string, error) {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, io.NewSectionReader(r, 0, size)); err != nil {
		return "", &InputError{Message: MsgUnreadableTXT, Cause: err}
	}
	if !utf8.Valid(buf.Bytes()) {
		return "", &InputError{Message: MsgUnreadableTXT, Cause: errInvalidUTF8}
	}
	return buf.String(), nil
}
