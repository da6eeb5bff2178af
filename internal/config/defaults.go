// Package config provides configuration loading and defaults for solvetrace.
package config

// DefaultConfigDir is the default location for solvetrace configuration.
const DefaultConfigDir = "~/.config/solvetrace"

// DefaultDBName is the filename for the SQLite database.
const DefaultDBName = "solvetrace.db"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// APIKeyEnv is the environment variable that overrides the configured API key.
const APIKeyEnv = "SOLVETRACE_API_KEY"

// PlaceholderAPIKey means "no key configured"; the analysis engine falls
// back to heuristics when it sees it.
const PlaceholderAPIKey = "not-configured"

// DefaultAPI holds the default language-model API settings.
var DefaultAPI = API{
	Key:         PlaceholderAPIKey,
	BaseURL:     "https://api.perplexity.ai",
	Model:       "sonar-pro",
	TimeoutMS:   30000,
	MaxTokens:   2000,
	Temperature: 0.3,
	MaxRetries:  2,
}

// DefaultServer holds the default HTTP server settings.
var DefaultServer = Server{
	Addr: ":8080",
}

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
}
