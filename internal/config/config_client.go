package config

import (
	"fmt"
	"time"
)

const (
	// DefaultRequestTimeout bounds a directory request when none is configured.
	DefaultRequestTimeout = 15 * time.Second

	// DefaultLogLevel is used when no level is configured.
	DefaultLogLevel = "info"
)

// Client output formats.
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputTUI   = "tui"
)

// ClientDirectory holds settings used by the directory client.
type ClientDirectory struct {
	// APIURL is the flag/JSON override of the base address; empty when the
	// base address comes from API_URL or the default.
	APIURL string
	// RequestTimeout is the timeout for outbound directory requests.
	RequestTimeout time.Duration
}

// ClientLog holds client logger settings.
type ClientLog struct {
	// Level is a zerolog level name.
	Level string
	// FilePath is the rotating log file; empty means stderr.
	FilePath string
}

// ClientOutput holds client presentation settings.
type ClientOutput struct {
	// Format is one of [OutputTable], [OutputJSON] or [OutputTUI].
	Format string
	// Query filters listed users; empty lists all.
	Query string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Directory contains directory request settings.
	Directory ClientDirectory
	// Log contains logger settings.
	Log ClientLog
	// Output contains presentation settings.
	Output ClientOutput
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, fills defaults, and validates the result.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		Directory: ClientDirectory{
			APIURL:         cfg.Directory.APIURL,
			RequestTimeout: cfg.Directory.RequestTimeout,
		},
		Log: ClientLog{
			Level:    cfg.Log.Level,
			FilePath: cfg.Log.FilePath,
		},
		Output: ClientOutput{
			Format: cfg.Output.Format,
			Query:  cfg.Output.Query,
		},
	}

	if clientCfg.Directory.RequestTimeout == 0 {
		clientCfg.Directory.RequestTimeout = DefaultRequestTimeout
	}
	if clientCfg.Log.Level == "" {
		clientCfg.Log.Level = DefaultLogLevel
	}
	if clientCfg.Output.Format == "" {
		clientCfg.Output.Format = OutputTable
	}

	return clientCfg
}

// Lookup returns the [Lookup] handed to [ResolveBaseURL]. A base address set
// by flag or JSON answers [APIURLKey]; every other query goes to fallback.
func (cfg *ClientConfig) Lookup(fallback Lookup) Lookup {
	override := cfg.Directory.APIURL

	return func(key string) (string, bool) {
		if key == APIURLKey && override != "" {
			return override, true
		}
		if fallback == nil {
			return "", false
		}
		return fallback(key)
	}
}
