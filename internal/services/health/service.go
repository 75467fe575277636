package health

// Service encapsulates health-related checks.
type Service struct {
	provider string
}

// NewService constructs a new health service reporting the active LLM provider.
func NewService(provider string) *Service {
	return &Service{provider: provider}
}

// Status returns a simple health payload.
func (s *Service) Status() map[string]any {
	return map[string]any{"ok": true, "provider": s.provider}
}
