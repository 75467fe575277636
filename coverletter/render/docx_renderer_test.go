package render

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"
	"testing"

	"github.com/nguyenthenguyen/docx"

	"skribe/internal/extract"
)

func TestRenderDocxOneParagraphPerLine(t *testing.T) {
	text := "Dear Hiring Manager,\n\nI am excited to apply.\n• Built services in Go\n\nSincerely,\nJane"

	data, err := RenderDocx(text)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	paragraphs := readParagraphs(t, data)
	lines := strings.Split(text, "\n")
	if len(paragraphs) != len(lines) {
		t.Fatalf("expected %d paragraphs, got %d", len(lines), len(paragraphs))
	}
	for i := range lines {
		if paragraphs[i] != lines[i] {
			t.Fatalf("paragraph %d = %q, want %q", i, paragraphs[i], lines[i])
		}
	}
}

func TestRenderDocxEmptyTextHasOneEmptyParagraph(t *testing.T) {
	data, err := RenderDocx("")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	paragraphs := readParagraphs(t, data)
	if len(paragraphs) != 1 || paragraphs[0] != "" {
		t.Fatalf("expected a single empty paragraph, got %q", paragraphs)
	}
}

func TestRenderDocxEscapesMarkup(t *testing.T) {
	text := "R&D <lead> \"quoted\"\tand tabbed"
	data, err := RenderDocx(text)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	paragraphs := readParagraphs(t, data)
	if len(paragraphs) != 1 || paragraphs[0] != text {
		t.Fatalf("unexpected paragraphs: %q", paragraphs)
	}
}

func TestRenderDocxRoundTripsThroughExtractor(t *testing.T) {
	text := "First line\nSecond line\n\nFourth line"
	data, err := RenderDocx(text)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if got := extract.Extract(DocxFileName, data); got != text {
		t.Fatalf("round trip mismatch:\n got %q\nwant %q", got, text)
	}
}

func TestNewDocxReaderStartsAtBeginning(t *testing.T) {
	reader, err := NewDocxReader("hello")
	if err != nil {
		t.Fatalf("reader failed: %v", err)
	}
	head := make([]byte, 2)
	if _, err := io.ReadFull(reader, head); err != nil {
		t.Fatalf("read head: %v", err)
	}
	if string(head) != "PK" {
		t.Fatalf("expected zip signature at offset 0, got %q", head)
	}
}

// readParagraphs opens the package with the docx reader and returns the
// text of each body paragraph.
func readParagraphs(t *testing.T, data []byte) []string {
	t.Helper()

	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("open docx: %v", err)
	}
	defer doc.Close()

	decoder := xml.NewDecoder(strings.NewReader(doc.Editable().GetContent()))
	var (
		paragraphs []string
		current    strings.Builder
		inText     bool
	)
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("decode document.xml: %v", err)
		}
		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "p":
				current.Reset()
			case "t":
				inText = true
			}
		case xml.EndElement:
			switch el.Name.Local {
			case "p":
				paragraphs = append(paragraphs, current.String())
			case "t":
				inText = false
			}
		case xml.CharData:
			if inText {
				current.Write(el)
			}
		}
	}
	return paragraphs
}
