// Package insight generates narrative coding-pattern analysis through an
// OpenAI-compatible chat-completions API, with retry, timeout, and a
// structured-output contract. It never parses the model's answer; that is
// the reconciler's job.
package insight

import (
	"errors"
	"strings"
	"time"
)

// ErrUnavailable is returned whenever the language model cannot produce a
// usable response: missing credentials, timeout, exhausted retries, or a
// blank reply. Callers are expected to fall back to heuristics.
var ErrUnavailable = errors.New("language model unavailable")

// placeholderKey is the config placeholder meaning "AI disabled".
const placeholderKey = "not-configured"

// Config carries everything the provider needs. It is passed by value at
// construction; components hold no global mutable state.
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
	MaxRetries  int
}

// Enabled reports whether an API key is configured.
func (c Config) Enabled() bool {
	key := strings.TrimSpace(c.APIKey)
	return key != "" && key != placeholderKey
}
