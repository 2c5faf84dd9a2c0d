package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"

	"github.com/jsamuelsen/signin-widget-helpers/internal/domain"
	"github.com/jsamuelsen/signin-widget-helpers/internal/ports"
)

// ErrDuplicateChecker is returned when a checker name is registered twice.
var ErrDuplicateChecker = errors.New("duplicate health checker")

// HealthRegistry is a thread-safe ports.HealthRegistry.
type HealthRegistry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker
}

// NewHealthRegistry creates a registry holding the given checkers.
func NewHealthRegistry(checkers ...ports.HealthChecker) (*HealthRegistry, error) {
	r := &HealthRegistry{}

	for _, c := range checkers {
		if err := r.Register(c); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Register adds a checker to the registry.
func (r *HealthRegistry) Register(checker ports.HealthChecker) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := checker.Name()
	for _, c := range r.checkers {
		if c.Name() == name {
			return fmt.Errorf("%w: %s", ErrDuplicateChecker, name)
		}
	}

	r.checkers = append(r.checkers, checker)

	return nil
}

// CheckAll runs all registered checks concurrently. A failing check marks the
// overall result unhealthy but never stops the others.
func (r *HealthRegistry) CheckAll(ctx context.Context) *ports.HealthResult {
	r.mu.RLock()
	checkers := append([]ports.HealthChecker(nil), r.checkers...)
	r.mu.RUnlock()

	result := &ports.HealthResult{
		Status:    ports.HealthStatusHealthy,
		Checks:    make(map[string]*ports.CheckResult, len(checkers)),
		Timestamp: time.Now(),
	}

	var (
		g  errgroup.Group
		mu sync.Mutex
	)

	for _, checker := range checkers {
		g.Go(func() error {
			start := time.Now()
			err := checker.Check(ctx)

			cr := &ports.CheckResult{
				Status:   ports.HealthStatusHealthy,
				Duration: time.Since(start),
			}
			if err != nil {
				cr.Status = ports.HealthStatusUnhealthy
				cr.Message = err.Error()
			}

			mu.Lock()
			defer mu.Unlock()

			result.Checks[checker.Name()] = cr
			if cr.Status == ports.HealthStatusUnhealthy {
				result.Status = ports.HealthStatusUnhealthy
			}

			return nil
		})
	}

	_ = g.Wait()

	return result
}

// LanguageCheck reports whether the configured default languages contain at
// least one well-formed BCP 47 tag.
type LanguageCheck struct {
	Languages []string
}

// Name implements ports.HealthChecker.
func (LanguageCheck) Name() string { return "languages" }

// Check implements ports.HealthChecker.
func (c LanguageCheck) Check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, tag := range c.Languages {
		if _, err := language.Parse(tag); err == nil {
			return nil
		}
	}

	return fmt.Errorf("%w: no valid default language in %v", domain.ErrUnsupportedLanguage, c.Languages)
}

// OAuthConfigCheck reports whether the widget OAuth configuration can serve
// as a merge base.
type OAuthConfigCheck struct {
	Base domain.OAuthConfig
}

// Name implements ports.HealthChecker.
func (OAuthConfigCheck) Name() string { return "oauth_config" }

// Check implements ports.HealthChecker.
func (c OAuthConfigCheck) Check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if c.Base.BaseURL == "" {
		return domain.NewValidationError(domain.KeyBaseURL, "is not configured")
	}

	if _, err := FilterOAuthParams(nil, c.Base); err != nil {
		return fmt.Errorf("base configuration: %w", err)
	}

	return nil
}
