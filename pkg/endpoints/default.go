package endpoints

import (
	"os"
	"sync"
)

const (
	// EnvBaseURL overrides the base URL of the process-wide registry.
	EnvBaseURL = "NEXT_PUBLIC_API_URL"

	// DefaultBaseURL is used when EnvBaseURL is unset or empty.
	DefaultBaseURL = "http://localhost:8000"
)

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry. The environment is read on the first call only.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = New(ResolveBaseURL(os.LookupEnv))
	})
	return defaultRegistry
}

// BaseURL returns the base URL of the process-wide registry.
func BaseURL() string {
	return Default().BaseURL()
}

// ResolveBaseURL returns the value of EnvBaseURL from lookup, or DefaultBaseURL when the
// variable is unset or empty. The value is returned as-is.
func ResolveBaseURL(lookup func(string) (string, bool)) string {
	if v, ok := lookup(EnvBaseURL); ok && v != "" {
		return v
	}
	return DefaultBaseURL
}
