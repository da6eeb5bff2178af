package insight

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/solvetrace/solvetrace/internal/analyzer"
)

// Provider turns a coding profile into a narrative analysis using a
// Completer. It reports ErrUnavailable whenever no usable text can be
// produced, leaving the fallback decision to the caller.
type Provider struct {
	cfg       Config
	completer Completer
	log       *zap.Logger
}

// NewProvider wires a provider. A nil completer gets the default HTTP
// client built from cfg.
func NewProvider(cfg Config, completer Completer, log *zap.Logger) *Provider {
	if log == nil {
		log = zap.NewNop()
	}
	if completer == nil {
		completer = NewHTTPClient(cfg, log)
	}
	return &Provider{cfg: cfg, completer: completer, log: log}
}

// Generate produces the model's narrative analysis for the profile.
// The text is returned verbatim; parsing belongs downstream.
func (p *Provider) Generate(ctx context.Context, profile analyzer.Profile) (string, error) {
	if !p.cfg.Enabled() {
		p.log.Debug("language model disabled, no API key configured")
		return "", ErrUnavailable
	}

	prompt := BuildPrompt(profile)
	p.log.Debug("requesting analysis",
		zap.String("user_id", profile.UserID),
		zap.Int("prompt_length", len(prompt)))

	content, err := p.completer.Complete(ctx, systemPrompt, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("%w: empty response", ErrUnavailable)
	}
	return content, nil
}
