// Package ports defines interfaces for the boundaries the widget helpers talk to.
// Adapters depend on these contracts instead of concrete implementations.
package ports

import (
	"context"

	"github.com/jsamuelsen/signin-widget-helpers/internal/domain"
)

// Warner is the logging sink for developer-facing warnings.
// *slog.Logger satisfies it.
type Warner interface {
	Warn(msg string, args ...any)
}

// WidgetService exposes the locale and OAuth use cases to the HTTP layer.
type WidgetService interface {
	// Languages returns the fallback chain for the requested languages,
	// falling back to the Accept-Language header and then to configured
	// defaults, along with the source that was used.
	Languages(ctx context.Context, requested []string, acceptLanguage string) ([]string, domain.LanguageSource)

	// Negotiate picks the first fallback-chain entry found in supported.
	// Returns domain.ErrUnsupportedLanguage when nothing matches.
	Negotiate(ctx context.Context, requested []string, acceptLanguage string, supported []string) (string, error)

	// OAuthParams merges per-call options over the widget configuration.
	// Returns a domain.ValidationError for mistyped options.
	OAuthParams(ctx context.Context, opts domain.OAuthOptions) (domain.OAuthConfig, error)

	// BaseConfig returns the widget-level OAuth configuration.
	BaseConfig() domain.OAuthConfig
}
