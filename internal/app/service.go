// Package app contains the widget's normalization use cases.
// This is the application layer - it holds the locale and OAuth rules and
// coordinates them with configured defaults.
//
// What does NOT belong here:
//   - HTTP specifics (that's adapters)
//   - Error body translation (that's the acl adapter)
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen/signin-widget-helpers/internal/domain"
	"github.com/jsamuelsen/signin-widget-helpers/internal/platform/logging"
)

// WidgetService applies widget-level defaults to per-request inputs.
type WidgetService struct {
	base             domain.OAuthConfig
	defaultLanguages []string
	logger           *slog.Logger
}

// WidgetServiceConfig contains configuration for the widget service.
type WidgetServiceConfig struct {
	// Base is the widget-level OAuth configuration overrides are merged onto.
	Base domain.OAuthConfig

	// DefaultLanguages is used when a request names no language.
	DefaultLanguages []string

	// Logger defaults to slog.Default() when nil.
	Logger *slog.Logger
}

// NewWidgetService creates a widget service.
func NewWidgetService(cfg WidgetServiceConfig) *WidgetService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &WidgetService{
		base:             cfg.Base,
		defaultLanguages: cfg.DefaultLanguages,
		logger:           logger,
	}
}

// BaseConfig returns the widget-level OAuth configuration.
func (s *WidgetService) BaseConfig() domain.OAuthConfig {
	return s.base
}

// Languages returns the fallback chain for the requested languages and the
// source the chain was built from. Without explicit languages the
// Accept-Language header is used, then the configured defaults. A header
// that yields no tags counts as absent.
func (s *WidgetService) Languages(ctx context.Context, requested []string, acceptLanguage string) ([]string, domain.LanguageSource) {
	source := domain.LanguageSourceQuery

	if len(requested) == 0 {
		requested = ParseAcceptLanguage(acceptLanguage)
		source = domain.LanguageSourceHeader
	}

	if len(requested) == 0 {
		requested = s.defaultLanguages
		source = domain.LanguageSourceDefault
	}

	expanded := ExpandLanguages(requested)

	logging.FromContextOr(ctx, s.logger).DebugContext(ctx, "expanded languages",
		slog.String("source", string(source)),
		slog.Any("requested", requested),
		slog.Int("count", len(expanded)),
	)

	return expanded, source
}

// OAuthParams merges per-call options over the widget configuration.
func (s *WidgetService) OAuthParams(ctx context.Context, opts domain.OAuthOptions) (domain.OAuthConfig, error) {
	merged, err := FilterOAuthParams(opts, s.base)
	if err != nil {
		return domain.OAuthConfig{}, fmt.Errorf("merging oauth options: %w", err)
	}

	logging.FromContextOr(ctx, s.logger).DebugContext(ctx, "merged oauth params",
		slog.Int("option_count", len(opts)),
		slog.Any("response_type", merged.AuthParams.ResponseType()),
	)

	return merged, nil
}

// Negotiate picks the first entry of the fallback chain that appears in
// supported. Returns domain.ErrUnsupportedLanguage when nothing matches.
func (s *WidgetService) Negotiate(ctx context.Context, requested []string, acceptLanguage string, supported []string) (string, error) {
	chain, _ := s.Languages(ctx, requested, acceptLanguage)

	tag, ok := FirstSupported(chain, supported)
	if !ok {
		return "", fmt.Errorf("%w: none of %v", domain.ErrUnsupportedLanguage, chain)
	}

	return tag, nil
}
