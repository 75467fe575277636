package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"skribe/coverletter/prompt"
	"skribe/internal/extract"
	"skribe/internal/llm"
	"skribe/internal/llm/llmtest"
	"skribe/internal/shared/config"
	"skribe/internal/shared/telemetry"
)

func stubCompleter(t *testing.T, client llm.Client) *config.Config {
	t.Helper()
	var seen config.Config
	prev := newCompleter
	newCompleter = func(ctx context.Context, cfg config.Config) (llm.Client, error) {
		seen = cfg
		return client, nil
	}
	t.Cleanup(func() { newCompleter = prev })
	return &seen
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	telemetry.SetOutput(io.Discard)

	cmd := NewRootCommand(config.NewViper())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestGenerateWritesDocxAndPrintsSuggestions(t *testing.T) {
	dir := t.TempDir()
	jobPath := writeFile(t, dir, "job.txt", "Platform engineer, Go")
	resumePath := writeFile(t, dir, "resume.txt", "Jane Doe\nGo developer")
	outPath := filepath.Join(dir, "letter.docx")

	client := &llmtest.MockClient{Name: "OpenAI"}
	client.On("Complete", mock.Anything, prompt.CoverLetter("Platform engineer, Go", "Jane Doe\nGo developer")).
		Return("Dear Hiring Manager,\n\nRegards", nil).Once()
	client.On("Complete", mock.Anything, prompt.Suggestions("Platform engineer, Go", "Jane Doe\nGo developer")).
		Return("1. Quantify results.", nil).Once()
	stubCompleter(t, client)

	out, err := runCLI(t, "generate", "--job", jobPath, "--resume", resumePath, "--out", outPath)
	require.NoError(t, err)
	client.AssertExpectations(t)

	assert.Contains(t, out, "Cover letter written to "+outPath)
	assert.Contains(t, out, "1. Quantify results.")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "Dear Hiring Manager,\n\nRegards", extract.Extract(outPath, data))
}

func TestGenerateJobTextWinsOverFile(t *testing.T) {
	dir := t.TempDir()
	jobPath := writeFile(t, dir, "job.txt", "from file")
	resumePath := writeFile(t, dir, "resume.txt", "resume")

	client := new(llmtest.MockClient)
	client.On("Complete", mock.Anything, prompt.CoverLetter("from flag", "resume")).Return("letter", nil).Once()
	client.On("Complete", mock.Anything, prompt.Suggestions("from flag", "resume")).Return("tips", nil).Once()
	stubCompleter(t, client)

	_, err := runCLI(t, "generate", "--job", jobPath, "--job-text", "from flag", "--resume", resumePath,
		"--out", filepath.Join(dir, "out.docx"))
	require.NoError(t, err)
	client.AssertExpectations(t)
}

func TestGenerateMissingResume(t *testing.T) {
	client := new(llmtest.MockClient)
	stubCompleter(t, client)

	_, err := runCLI(t, "generate", "--job-text", "job", "--out", filepath.Join(t.TempDir(), "out.docx"))
	require.EqualError(t, err, "Please provide both job description and resume.")
	client.AssertNumberOfCalls(t, "Complete", 0)
}

func TestGenerateProviderFlagOverridesConfig(t *testing.T) {
	dir := t.TempDir()
	resumePath := writeFile(t, dir, "resume.txt", "resume")

	client := new(llmtest.MockClient)
	client.On("Complete", mock.Anything, mock.Anything).Return("text", nil)
	seen := stubCompleter(t, client)

	_, err := runCLI(t, "--provider", "gemini", "--model", "gemini-1.5-pro", "generate",
		"--job-text", "job", "--resume", resumePath, "--out", filepath.Join(dir, "out.docx"))
	require.NoError(t, err)
	assert.Equal(t, config.ProviderGemini, seen.LLMProvider)
	assert.Equal(t, "gemini-1.5-pro", seen.LLMModel)
}

func TestExtractCommand(t *testing.T) {
	path := writeFile(t, t.TempDir(), "notes.txt", "hello world")

	out, err := runCLI(t, "extract", path)
	require.NoError(t, err)
	assert.Equal(t, "hello world\n", out)

	out, err = runCLI(t, "extract", "--json", path)
	require.NoError(t, err)
	assert.Contains(t, out, `"format": "txt"`)
}

func TestExtractMissingFile(t *testing.T) {
	_, err := runCLI(t, "extract", filepath.Join(t.TempDir(), "nope.pdf"))
	require.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "skribe version "+Version))
}
