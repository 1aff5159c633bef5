// Package extraction pulls raw text out of uploaded resume documents and
// extracts skill tokens from that text.
package extraction

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// UnsupportedTypeError indicates an upload with a file type the extractor
// cannot handle.
type UnsupportedTypeError struct {
	Filename string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported file type: %s (expected .pdf, .docx, .txt, or .html)", e.Filename)
}

// ParseError indicates a document of a supported type that could not be
// decoded. It is the uploader's document that is broken, not the service.
type ParseError struct {
	Filename string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not read %s: %v", e.Filename, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ExtractText extracts plain text from a resume document, dispatching on the
// file extension.
func ExtractText(filename string, data []byte) (string, error) {
	var text string
	var err error

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		text, err = extractPDFText(data)
	case ".doc", ".docx":
		text, err = extractDocxText(data)
	case ".txt":
		return string(data), nil
	case ".html", ".htm":
		text, err = extractHTMLText(data)
	default:
		return "", &UnsupportedTypeError{Filename: filename}
	}

	if err != nil {
		return "", &ParseError{Filename: filename, Err: err}
	}
	return text, nil
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, _ := page.GetPlainText(nil)
		sb.WriteString(text)
	}
	return sb.String(), nil
}

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	defer doc.Close()

	return doc.Editable().GetContent(), nil
}

func extractHTMLText(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", err
	}

	// Script and style bodies are markup noise, not resume text.
	doc.Find("script, style").Remove()
	return doc.Text(), nil
}
