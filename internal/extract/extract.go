package extract

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"skribe/internal/shared/metrics"
	"skribe/internal/shared/telemetry"
)

// Format is the document kind resolved from a file name or format hint.
type Format int

const (
	FormatUnsupported Format = iota
	FormatPDF
	FormatDOCX
	FormatPlainText
)

func (f Format) String() string {
	switch f {
	case FormatPDF:
		return "pdf"
	case FormatDOCX:
		return "docx"
	case FormatPlainText:
		return "txt"
	default:
		return "unsupported"
	}
}

// FormatFromName resolves the format from a file suffix (".pdf", ".docx", ".txt").
// A bare hint such as "pdf" is accepted too. Matching is case-insensitive.
func FormatFromName(name string) Format {
	ext := strings.ToLower(strings.TrimSpace(name))
	if i := strings.LastIndex(ext, "."); i >= 0 {
		ext = ext[i+1:]
	}
	switch ext {
	case "pdf":
		return FormatPDF
	case "docx":
		return FormatDOCX
	case "txt":
		return FormatPlainText
	default:
		return FormatUnsupported
	}
}

// SourceDocument is an uploaded artifact together with its extracted text.
// Text is "" when the format is unsupported or extraction failed.
type SourceDocument struct {
	Name   string
	Format Format
	Data   []byte
	Text   string
}

// Extract returns the plain text of an uploaded file, or "" when nothing can be read.
func Extract(fileName string, data []byte) string {
	return Read(fileName, data).Text
}

// Read resolves the format of fileName and extracts the text of data.
// It never returns an error: unsupported or unreadable input yields empty text.
func Read(fileName string, data []byte) SourceDocument {
	doc := SourceDocument{
		Name:   fileName,
		Format: FormatFromName(fileName),
		Data:   data,
	}

	text, err := extractText(doc.Format, data)
	outcome := "ok"
	switch {
	case doc.Format == FormatUnsupported:
		outcome = "unsupported"
	case err != nil:
		outcome = "failed"
		telemetry.Warn("extract.failed", map[string]any{
			"file_name":  fileName,
			"format":     doc.Format.String(),
			"size_bytes": len(data),
			"error":      err,
		})
		text = ""
	case text == "":
		outcome = "empty"
	}
	metrics.ObserveExtraction(doc.Format.String(), outcome)

	doc.Text = text
	return doc
}

func extractText(format Format, data []byte) (text string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			text = ""
			err = fmt.Errorf("extract %s: panic: %v", format, rec)
		}
	}()

	switch format {
	case FormatPDF:
		return extractPDF(data)
	case FormatDOCX:
		return extractDOCX(data)
	case FormatPlainText:
		return string(data), nil
	case FormatUnsupported:
		return "", nil
	default:
		return "", fmt.Errorf("unknown format %d", format)
	}
}

// extractPDF concatenates page text in page order. Pages without
// interpretable text are skipped rather than failing the document.
func extractPDF(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	for i := 1; i <= pdfReader.NumPage(); i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		buf.WriteString(text)
	}
	return buf.String(), nil
}

func extractDOCX(data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty docx data")
	}

	raw, err := docxDocumentXML(data)
	if err != nil {
		return "", err
	}

	paragraphs, err := docxParagraphs(raw)
	if err != nil {
		return "", err
	}
	return strings.Join(paragraphs, "\n"), nil
}

// docxDocumentXML returns the main document part. Packages the docx reader
// rejects (for example ones without document relationships) are read directly.
func docxDocumentXML(data []byte) (string, error) {
	replaceDoc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err == nil {
		defer replaceDoc.Close()
		return replaceDoc.Editable().GetContent(), nil
	}

	zr, zipErr := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if zipErr != nil {
		return "", zipErr
	}
	for _, f := range zr.File {
		if strings.ReplaceAll(f.Name, "\\", "/") != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", err
		}
		defer rc.Close()
		content, err := io.ReadAll(rc)
		if err != nil {
			return "", err
		}
		return string(content), nil
	}
	return "", fmt.Errorf("document.xml file not found: %w", err)
}
