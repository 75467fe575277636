// Package prompt builds the two fixed prompts sent to the completion endpoint.
package prompt

import (
	_ "embed"
	"strings"
)

const (
	placeholderJobDescription = "{{JOB_DESCRIPTION}}"
	placeholderResume         = "{{RESUME}}"
)

var (
	//go:embed templates/cover_letter.txt
	coverLetterTemplate string
	//go:embed templates/suggestions.txt
	suggestionsTemplate string
)

// CoverLetter returns the prompt asking for a four paragraph cover letter
// tailored to jobText and resumeText.
func CoverLetter(jobText, resumeText string) string {
	return render(coverLetterTemplate, jobText, resumeText)
}

// Suggestions returns the prompt asking for six resume improvements without
// rewriting the resume.
func Suggestions(jobText, resumeText string) string {
	return render(suggestionsTemplate, jobText, resumeText)
}

// render substitutes both placeholders in a single pass, so placeholder-like
// text inside the inputs is copied verbatim.
func render(template, jobText, resumeText string) string {
	replacer := strings.NewReplacer(
		placeholderJobDescription, jobText,
		placeholderResume, resumeText,
	)
	return replacer.Replace(template)
}
