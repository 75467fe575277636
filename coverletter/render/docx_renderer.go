package render

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"strings"
	"time"
)

const (
	// DocxFileName is the download name offered for the generated cover letter.
	DocxFileName = "cover_letter.docx"
	// DocxContentType is the MIME type of the emitted document.
	DocxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

const (
	contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/><Default Extension="xml" ContentType="application/xml"/><Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/></Types>`

	packageRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/></Relationships>`

	documentRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`

	documentHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"><w:body>`

	documentFooter = `<w:sectPr><w:pgSz w:w="12240" w:h="15840"/><w:pgMar w:top="1440" w:right="1440" w:bottom="1440" w:left="1440" w:header="720" w:footer="720" w:gutter="0"/></w:sectPr></w:body></w:document>`
)

type zipPart struct {
	name    string
	content string
}

// RenderDocx writes text as a DOCX package. Every "\n" separated line becomes
// one paragraph, in order; blank lines stay as empty paragraphs.
func RenderDocx(text string) ([]byte, error) {
	documentXML, err := renderDocumentXML(text)
	if err != nil {
		return nil, err
	}

	parts := []zipPart{
		{name: "[Content_Types].xml", content: contentTypesXML},
		{name: "_rels/.rels", content: packageRelsXML},
		{name: "word/_rels/document.xml.rels", content: documentRelsXML},
		{name: "word/document.xml", content: documentXML},
	}

	var output bytes.Buffer
	writer := zip.NewWriter(&output)
	modified := time.Now().UTC()
	for _, part := range parts {
		if err := writeZipFile(writer, part, modified); err != nil {
			_ = writer.Close()
			return nil, err
		}
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}
	return output.Bytes(), nil
}

// NewDocxReader renders text and returns the document positioned at its start.
func NewDocxReader(text string) (*bytes.Reader, error) {
	data, err := RenderDocx(text)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(data), nil
}

func renderDocumentXML(text string) (string, error) {
	var b strings.Builder
	b.WriteString(documentHeader)
	for _, line := range strings.Split(text, "\n") {
		if err := writeParagraph(&b, line); err != nil {
			return "", err
		}
	}
	b.WriteString(documentFooter)
	return b.String(), nil
}

func writeParagraph(b *strings.Builder, line string) error {
	if line == "" {
		b.WriteString(`<w:p/>`)
		return nil
	}
	b.WriteString(`<w:p><w:r><w:t xml:space="preserve">`)
	if err := xml.EscapeText(b, []byte(line)); err != nil {
		return err
	}
	b.WriteString(`</w:t></w:r></w:p>`)
	return nil
}

func writeZipFile(writer *zip.Writer, part zipPart, modified time.Time) error {
	header := &zip.FileHeader{
		Name:     part.name,
		Method:   zip.Deflate,
		Modified: modified,
	}
	w, err := writer.CreateHeader(header)
	if err != nil {
		return err
	}
	_, err = w.Write([]byte(part.content))
	return err
}
