package extract

import (
	"encoding/xml"
	"io"
	"strings"
)

// docxParagraphs returns the text of each paragraph that is a direct child of
// w:body, in document order. Paragraphs inside tables or text boxes are skipped.
func docxParagraphs(documentXML string) ([]string, error) {
	decoder := xml.NewDecoder(strings.NewReader(documentXML))

	var (
		stack      []string
		paragraphs []string
		current    strings.Builder
		inBodyPara bool
		nested     int
	)

	parent := func() string {
		if len(stack) == 0 {
			return ""
		}
		return stack[len(stack)-1]
	}

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			name := t.Name.Local
			if name == "p" {
				switch {
				case !inBodyPara && parent() == "body":
					inBodyPara = true
					current.Reset()
				case inBodyPara:
					nested++
				}
			}
			if inBodyPara && nested == 0 && parent() == "r" {
				switch name {
				case "tab":
					current.WriteByte('\t')
				case "br", "cr":
					current.WriteByte('\n')
				}
			}
			stack = append(stack, name)
		case xml.CharData:
			if inBodyPara && nested == 0 && parent() == "t" {
				current.Write(t)
			}
		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
			if t.Name.Local != "p" || !inBodyPara {
				continue
			}
			if nested > 0 {
				nested--
				continue
			}
			inBodyPara = false
			paragraphs = append(paragraphs, current.String())
		}
	}
	return paragraphs, nil
}
