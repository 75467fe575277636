package health

import "testing"

func TestStatus(t *testing.T) {
	got := NewService("Gemini").Status()
	if got["ok"] != true {
		t.Fatalf("expected ok=true, got %v", got["ok"])
	}
	if got["provider"] != "Gemini" {
		t.Fatalf("unexpected provider: %v", got["provider"])
	}
}
