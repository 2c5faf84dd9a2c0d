package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/signin-widget-helpers/internal/domain"
	"github.com/jsamuelsen/signin-widget-helpers/internal/ports"
)

type stubChecker struct {
	name string
	err  error
}

func (s stubChecker) Name() string                  { return s.name }
func (s stubChecker) Check(_ context.Context) error { return s.err }

func TestHealthRegistry_DuplicateName(t *testing.T) {
	_, err := NewHealthRegistry(stubChecker{name: "a"}, stubChecker{name: "a"})

	require.ErrorIs(t, err, ErrDuplicateChecker)
	assert.Contains(t, err.Error(), "a")
}

func TestHealthRegistry_CheckAll_Empty(t *testing.T) {
	r, err := NewHealthRegistry()
	require.NoError(t, err)

	result := r.CheckAll(context.Background())

	assert.Equal(t, ports.HealthStatusHealthy, result.Status)
	assert.Empty(t, result.Checks)
	assert.False(t, result.Timestamp.IsZero())
}

func TestHealthRegistry_CheckAll_Mixed(t *testing.T) {
	r, err := NewHealthRegistry(
		stubChecker{name: "ok"},
		stubChecker{name: "broken", err: errors.New("boom")},
	)
	require.NoError(t, err)

	result := r.CheckAll(context.Background())

	assert.Equal(t, ports.HealthStatusUnhealthy, result.Status)
	require.Len(t, result.Checks, 2)
	assert.Equal(t, ports.HealthStatusHealthy, result.Checks["ok"].Status)
	assert.Equal(t, ports.HealthStatusUnhealthy, result.Checks["broken"].Status)
	assert.Equal(t, "boom", result.Checks["broken"].Message)
}

func TestLanguageCheck(t *testing.T) {
	tests := []struct {
		name      string
		languages []string
		wantErr   bool
	}{
		{name: "valid", languages: []string{"en"}},
		{name: "one valid among invalid", languages: []string{"!!", "fr-CA"}},
		{name: "none", languages: nil, wantErr: true},
		{name: "all invalid", languages: []string{"!!", "12345678901"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := LanguageCheck{Languages: tt.languages}.Check(context.Background())
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrUnsupportedLanguage)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestLanguageCheck_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := LanguageCheck{Languages: []string{"en"}}.Check(ctx)

	require.ErrorIs(t, err, context.Canceled)
}

func TestOAuthConfigCheck(t *testing.T) {
	ok := OAuthConfigCheck{Base: domain.OAuthConfig{BaseURL: "https://example.okta.com"}}
	require.NoError(t, ok.Check(context.Background()))

	missing := OAuthConfigCheck{}
	err := missing.Check(context.Background())
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.Equal(t, "oauth_config", missing.Name())
}
