package prompt

import (
	"strings"
	"testing"
)

const (
	jobText    = "Senior Engineer role requiring Go and distributed systems experience."
	resumeText = "5 years backend engineer, built microservices in Go."
)

func TestCoverLetterEmbedsInputsAndScaffolding(t *testing.T) {
	got := CoverLetter(jobText, resumeText)

	for _, want := range []string{
		jobText,
		resumeText,
		"Write a personalized cover letter for this job description and resume.",
		"250–300 words in 4 paragraphs",
		"third paragraph should have 3 pointers",
		"professional, and enthusiastic",
		"Job Description:\n" + jobText,
		"Resume:\n" + resumeText,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("cover letter prompt missing %q:\n%s", want, got)
		}
	}
	if strings.Index(got, jobText) > strings.Index(got, resumeText) {
		t.Fatalf("expected job description before resume")
	}
}

func TestSuggestionsEmbedsInputsAndScaffolding(t *testing.T) {
	got := Suggestions(jobText, resumeText)

	for _, want := range []string{
		jobText,
		resumeText,
		"You are an AI resume coach.",
		"Do not rewrite the resume.",
		"Provide 6 specific, actionable suggestions in plain English.",
		"Resume:\n" + resumeText,
		"Job Description:\n" + jobText,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("suggestions prompt missing %q:\n%s", want, got)
		}
	}
	if !strings.HasSuffix(got, "Suggestions:\n") {
		t.Fatalf("expected prompt to end with the suggestions cue, got %q", got[len(got)-20:])
	}
}

func TestPromptsAreDeterministic(t *testing.T) {
	if CoverLetter(jobText, resumeText) != CoverLetter(jobText, resumeText) {
		t.Fatalf("cover letter prompt is not deterministic")
	}
	if Suggestions(jobText, resumeText) != Suggestions(jobText, resumeText) {
		t.Fatalf("suggestions prompt is not deterministic")
	}
	if CoverLetter(jobText, resumeText) == CoverLetter("different job", resumeText) {
		t.Fatalf("expected prompt to change when input changes")
	}
}

func TestPlaceholderTextInInputsIsNotExpanded(t *testing.T) {
	job := "Role mentions {{RESUME}} literally"
	got := CoverLetter(job, "my resume")
	if !strings.Contains(got, job) {
		t.Fatalf("expected job text verbatim, got:\n%s", got)
	}
	if strings.Count(got, "my resume") != 1 {
		t.Fatalf("resume must be embedded exactly once, got:\n%s", got)
	}
}
