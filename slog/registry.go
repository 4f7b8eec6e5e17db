package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/catalog"
)

// Ensure LoggingRegistry implements catalog.ProfileRegistry.
var _ catalog.ProfileRegistry = (*LoggingRegistry)(nil)

// LoggingRegistry wraps a ProfileRegistry with logging of profile resolution.
type LoggingRegistry struct {
	next   catalog.ProfileRegistry
	logger *slog.Logger
}

// NewLoggingRegistry creates a new LoggingRegistry.
func NewLoggingRegistry(next catalog.ProfileRegistry, logger *slog.Logger) *LoggingRegistry {
	return &LoggingRegistry{next: next, logger: logger}
}

// Get resolves the profile and logs which one was selected.
func (r *LoggingRegistry) Get(name string) (p *catalog.Profile, err error) {
	defer func(begin time.Time) {
		baseURL := ""
		if p != nil {
			baseURL = p.BaseURL
		}
		r.logger.Debug("profile resolution",
			"profile", name,
			"base_url", baseURL,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Get(name)
}

// List delegates to the wrapped registry.
func (r *LoggingRegistry) List() []string {
	return r.next.List()
}
