package bootstrap

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"skribe/internal/llm"
	"skribe/internal/llm/gemini"
	"skribe/internal/llm/openai"
	"skribe/internal/shared/config"
	"skribe/internal/shared/telemetry"
)

func TestNewLLMClientByProvider(t *testing.T) {
	telemetry.SetOutput(io.Discard)
	ctx := context.Background()

	client, err := NewLLMClient(ctx, config.Config{LLMProvider: config.ProviderOpenAI, OpenAIAPIKey: "k"})
	if err != nil {
		t.Fatalf("openai client: %v", err)
	}
	if _, ok := client.(*openai.Client); !ok {
		t.Fatalf("expected *openai.Client, got %T", client)
	}

	client, err = NewLLMClient(ctx, config.Config{LLMProvider: config.ProviderGemini, GeminiAPIKey: "k"})
	if err != nil {
		t.Fatalf("gemini client: %v", err)
	}
	if _, ok := client.(*gemini.Client); !ok {
		t.Fatalf("expected *gemini.Client, got %T", client)
	}
}

func TestNewLLMClientWithoutKeyFailsSoft(t *testing.T) {
	telemetry.SetOutput(io.Discard)

	client, err := NewLLMClient(context.Background(), config.Config{LLMProvider: config.ProviderOpenAI})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := llm.CallCompletion(context.Background(), client, "prompt")
	if out != "Error calling OpenAI: OPENAI_API_KEY is not set" {
		t.Fatalf("unexpected content: %q", out)
	}
}

func TestNewLLMClientUnknownProvider(t *testing.T) {
	if _, err := NewLLMClient(context.Background(), config.Config{LLMProvider: "llama"}); err == nil {
		t.Fatalf("expected error for unknown provider")
	}
}

func TestBuildWiresRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	telemetry.SetOutput(io.Discard)

	app, err := Build(context.Background(), config.Config{LLMProvider: config.ProviderGemini, MaxUploadBytes: 1 << 20})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if app.Config.Env != "dev" {
		t.Fatalf("expected env default dev, got %q", app.Config.Env)
	}

	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	if resp.Code != http.StatusOK || !strings.Contains(resp.Body.String(), `"provider":"Gemini"`) {
		t.Fatalf("unexpected health response %d %s", resp.Code, resp.Body.String())
	}

	resp = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/generations", strings.NewReader(""))
	app.Router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty generation request, got %d", resp.Code)
	}
}
