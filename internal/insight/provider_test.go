package insight

import (
	"context"
	"errors"
	"testing"

	"github.com/solvetrace/solvetrace/internal/analyzer"
)

type stubCompleter struct {
	response string
	err      error

	gotSystem string
	gotUser   string
}

func (s *stubCompleter) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	s.gotSystem = systemPrompt
	s.gotUser = userPrompt
	return s.response, s.err
}

func enabledConfig() Config {
	return Config{APIKey: "test-key", BaseURL: "http://localhost", Model: "m"}
}

func TestConfigEnabled(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"", false},
		{"   ", false},
		{"not-configured", false},
		{"pk-123", true},
	}
	for _, tc := range tests {
		cfg := Config{APIKey: tc.key}
		if got := cfg.Enabled(); got != tc.want {
			t.Errorf("Enabled() with key %q = %v, want %v", tc.key, got, tc.want)
		}
	}
}

func TestProviderGenerate_Disabled(t *testing.T) {
	stub := &stubCompleter{response: "should not be called"}
	p := NewProvider(Config{APIKey: "not-configured"}, stub, nil)

	_, err := p.Generate(context.Background(), analyzer.Profile{UserID: "u1"})
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
	if stub.gotUser != "" {
		t.Error("completer must not be called when disabled")
	}
}

func TestProviderGenerate_Passthrough(t *testing.T) {
	stub := &stubCompleter{response: "narrative analysis text"}
	p := NewProvider(enabledConfig(), stub, nil)

	got, err := p.Generate(context.Background(), analyzer.Profile{UserID: "u1", TotalRuns: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "narrative analysis text" {
		t.Errorf("response = %q, want verbatim passthrough", got)
	}
	if stub.gotSystem == "" {
		t.Error("system prompt not forwarded")
	}
	if stub.gotUser == "" {
		t.Error("user prompt not forwarded")
	}
}

func TestProviderGenerate_CompleterError(t *testing.T) {
	stub := &stubCompleter{err: errors.New("network down")}
	p := NewProvider(enabledConfig(), stub, nil)

	_, err := p.Generate(context.Background(), analyzer.Profile{UserID: "u1"})
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
}

func TestProviderGenerate_BlankResponse(t *testing.T) {
	stub := &stubCompleter{response: "   \n  "}
	p := NewProvider(enabledConfig(), stub, nil)

	_, err := p.Generate(context.Background(), analyzer.Profile{UserID: "u1"})
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
}
