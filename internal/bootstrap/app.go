package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"skribe/coverletter/service"
	"skribe/internal/generate"
	"skribe/internal/llm"
	"skribe/internal/llm/gemini"
	"skribe/internal/llm/openai"
	"skribe/internal/shared/config"
	"skribe/internal/shared/server"
	"skribe/internal/shared/telemetry"
)

// App holds shared dependencies.
type App struct {
	Config   config.Config
	Router   *gin.Engine
	LLM      llm.Client
	Service  *service.Service
	Generate *generate.Handler
}

// Build prepares dependencies and wires routes.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}

	client, err := NewLLMClient(ctx, cfg)
	if err != nil {
		return nil, err
	}

	svc := service.New(client)
	handler := generate.NewHandler(svc, cfg.MaxUploadBytes)

	app := &App{
		Config:   cfg,
		LLM:      client,
		Service:  svc,
		Generate: handler,
	}
	app.Router = server.NewRouter(server.RouterDeps{
		Config:   cfg,
		Provider: client.Provider(),
		Handlers: []server.RouteRegistrar{handler},
	})

	return app, nil
}

// NewLLMClient builds the completion client for cfg.LLMProvider. A missing
// API key is not fatal: the returned client reports the problem on every
// call, and that message becomes the generated content.
func NewLLMClient(ctx context.Context, cfg config.Config) (llm.Client, error) {
	switch cfg.LLMProvider {
	case config.ProviderGemini:
		if cfg.APIKey() == "" {
			return unconfigured(gemini.ProviderName, "GEMINI_API_KEY"), nil
		}
		client, err := gemini.NewClient(ctx, gemini.Config{
			APIKey:  cfg.APIKey(),
			Model:   cfg.LLMModel,
			BaseURL: cfg.LLMBaseURL,
			Timeout: cfg.LLMTimeout,
		})
		if err != nil {
			return nil, err
		}
		return client, nil
	case config.ProviderOpenAI, "":
		if cfg.APIKey() == "" {
			return unconfigured(openai.ProviderName, "OPENAI_API_KEY"), nil
		}
		client, err := openai.NewClient(openai.Config{
			APIKey:  cfg.APIKey(),
			Model:   cfg.LLMModel,
			BaseURL: cfg.LLMBaseURL,
			Timeout: cfg.LLMTimeout,
		})
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported LLM_PROVIDER %q", cfg.LLMProvider)
	}
}

func unconfigured(provider, envVar string) llm.Client {
	telemetry.Warn("llm.unconfigured", map[string]any{
		"provider": provider,
		"env":      envVar,
	})
	return llm.UnconfiguredClient{
		Name:   provider,
		Reason: fmt.Errorf("%s is not set", envVar),
	}
}
