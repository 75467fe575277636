package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"skribe/coverletter/prompt"
	"skribe/coverletter/render"
	"skribe/internal/llm"
	"skribe/internal/shared/metrics"
	"skribe/internal/shared/telemetry"
)

var (
	// ErrMissingInput is returned when the job description or resume text is blank.
	ErrMissingInput = errors.New("job description and resume are required")
	// ErrNoClient is returned when the service was built without a completion client.
	ErrNoClient = errors.New("missing llm client")
)

// Result is the outcome of one generation.
type Result struct {
	CoverLetter string
	Suggestions string
	Document    []byte
}

// Service runs the cover letter pipeline for a single request.
type Service struct {
	LLM llm.Client
}

// New constructs a Service.
func New(client llm.Client) *Service {
	return &Service{LLM: client}
}

// Generate composes both prompts, runs both completions in order and renders
// the cover letter as DOCX. Completion failures come back as text in the
// result; only a render failure is returned as an error.
func (s *Service) Generate(ctx context.Context, jobText, resumeText string) (Result, error) {
	if err := s.check(jobText, resumeText); err != nil {
		return Result{}, err
	}
	start := time.Now()

	letter := llm.CallCompletion(ctx, s.LLM, prompt.CoverLetter(jobText, resumeText))
	suggestions := llm.CallCompletion(ctx, s.LLM, prompt.Suggestions(jobText, resumeText))

	doc, err := render.RenderDocx(letter)
	if err != nil {
		metrics.ObserveGeneration("failed")
		return Result{}, fmt.Errorf("render cover letter: %w", err)
	}

	metrics.ObserveGeneration("ok")
	telemetry.Info("generation.complete", map[string]any{
		"request_id":         RequestIDFromContext(ctx),
		"provider":           s.LLM.Provider(),
		"job_chars":          len(jobText),
		"resume_chars":       len(resumeText),
		"cover_letter_chars": len(letter),
		"suggestions_chars":  len(suggestions),
		"document_bytes":     len(doc),
		"duration_ms":        float64(time.Since(start).Microseconds()) / 1000.0,
	})

	return Result{
		CoverLetter: letter,
		Suggestions: suggestions,
		Document:    doc,
	}, nil
}

// CoverLetter runs only the cover letter completion and returns its text with
// the rendered document.
func (s *Service) CoverLetter(ctx context.Context, jobText, resumeText string) (string, []byte, error) {
	if err := s.check(jobText, resumeText); err != nil {
		return "", nil, err
	}
	start := time.Now()

	letter := llm.CallCompletion(ctx, s.LLM, prompt.CoverLetter(jobText, resumeText))
	doc, err := render.RenderDocx(letter)
	if err != nil {
		metrics.ObserveGeneration("failed")
		return "", nil, fmt.Errorf("render cover letter: %w", err)
	}

	metrics.ObserveGeneration("ok")
	telemetry.Info("generation.complete", map[string]any{
		"request_id":         RequestIDFromContext(ctx),
		"provider":           s.LLM.Provider(),
		"cover_letter_chars": len(letter),
		"document_bytes":     len(doc),
		"duration_ms":        float64(time.Since(start).Microseconds()) / 1000.0,
	})
	return letter, doc, nil
}

func (s *Service) check(jobText, resumeText string) error {
	if strings.TrimSpace(jobText) == "" || strings.TrimSpace(resumeText) == "" {
		metrics.ObserveGeneration("rejected")
		return ErrMissingInput
	}
	if s == nil || s.LLM == nil {
		return ErrNoClient
	}
	return nil
}
