package generate

import (
	"skribe/coverletter/render"
	"skribe/coverletter/service"
	"skribe/internal/extract"
)

// ExtractResponse is the outward-facing representation of one extraction.
type ExtractResponse struct {
	FileName string `json:"fileName"`
	Format   string `json:"format"`
	Text     string `json:"text"`
}

// DocumentPayload carries the rendered cover letter; Data is base64 in JSON.
type DocumentPayload struct {
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	Data        []byte `json:"data"`
}

// GenerationResponse is returned by POST /generations.
type GenerationResponse struct {
	RequestID   string          `json:"requestId"`
	CoverLetter string          `json:"coverLetter"`
	Suggestions string          `json:"suggestions"`
	Document    DocumentPayload `json:"document"`
}

func toExtractResponse(doc extract.SourceDocument) ExtractResponse {
	return ExtractResponse{
		FileName: doc.Name,
		Format:   doc.Format.String(),
		Text:     doc.Text,
	}
}

func toGenerationResponse(requestID string, result service.Result) GenerationResponse {
	return GenerationResponse{
		RequestID:   requestID,
		CoverLetter: result.CoverLetter,
		Suggestions: result.Suggestions,
		Document: DocumentPayload{
			FileName:    render.DocxFileName,
			ContentType: render.DocxContentType,
			Data:        result.Document,
		},
	}
}
