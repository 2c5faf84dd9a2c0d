package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/signin-widget-helpers/internal/domain"
)

// TestLoad_DefaultValues tests that hardcoded defaults are applied correctly.
// This test doesn't depend on YAML files - it only tests the defaults() function.
func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "signin-widget-helpers", cfg.App.Name)
	assert.Equal(t, "dev", cfg.App.Version)
	assert.Equal(t, "local", cfg.App.Environment)
	assert.Equal(t, DefaultServerPort, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, int64(DefaultMaxRequestSize), cfg.Server.MaxRequestSize)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "https://example.okta.com", cfg.Widget.BaseURL)
	assert.Empty(t, cfg.Widget.ClientID)
	assert.Equal(t, "OAUTH2", cfg.Widget.AuthScheme)
	assert.Equal(t, []string{"en"}, cfg.Widget.Languages)

	require.NoError(t, cfg.Validate())
}

// TestLoad_EnvVarOverrides tests that environment variables override defaults.
func TestLoad_EnvVarOverrides(t *testing.T) {
	t.Setenv("APP_SERVER_PORT", "9090")
	t.Setenv("APP_LOG_LEVEL", "warn")
	t.Setenv("APP_SERVER_READ_TIMEOUT", "3s")
	t.Setenv("APP_WIDGET_CLIENT_ID", "0oa1client")
	t.Setenv("APP_WIDGET_REDIRECT_URI", "https://app.example.com/callback")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 3*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "0oa1client", cfg.Widget.ClientID)
	assert.Equal(t, "https://app.example.com/callback", cfg.Widget.RedirectURI)
}

// TestLoad_ListEnvVar tests that comma-separated list variables are split.
func TestLoad_ListEnvVar(t *testing.T) {
	t.Setenv("APP_WIDGET_LANGUAGES", "fr-CA, en ,")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, []string{"fr-CA", "en"}, cfg.Widget.Languages)
}

// TestLoad_DurationParsing tests that duration strings are parsed correctly.
func TestLoad_DurationParsing(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 120*time.Second, cfg.Server.IdleTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, DefaultOAuthTimeout, cfg.Widget.OAuthTimeout)
}

// TestLoad_NonExistentProfile tests that a missing profile file doesn't cause errors.
func TestLoad_NonExistentProfile(t *testing.T) {
	cfg, err := Load("nonexistent")
	require.NoError(t, err)

	assert.Equal(t, "signin-widget-helpers", cfg.App.Name)
}

// TestLoad_ProfileFile tests that YAML files are layered over the defaults.
func TestLoad_ProfileFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "configs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "base.yaml"), []byte(`
widget:
  client_id: base-client
  languages: [de, en]
`), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "qa.yaml"), []byte(`
app:
  environment: qa
widget:
  client_id: qa-client
`), 0o600))
	t.Chdir(dir)

	cfg, err := Load("qa")
	require.NoError(t, err)

	assert.Equal(t, "qa", cfg.App.Environment)
	assert.Equal(t, "qa-client", cfg.Widget.ClientID)
	assert.Equal(t, []string{"de", "en"}, cfg.Widget.Languages)
}

// TestLoad_InvalidYAML tests that a malformed file is reported.
func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "configs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "base.yaml"), []byte("widget: [unclosed"), 0o600))
	t.Chdir(dir)

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading base config")
}

// TestLoad_LogFileDefaults tests that log file defaults are set correctly.
func TestLoad_LogFileDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.False(t, cfg.Log.File.Enabled)
	assert.Equal(t, "./logs/app.log", cfg.Log.File.Path)
	assert.Equal(t, DefaultLogFileMaxSizeMB, cfg.Log.File.MaxSizeMB)
	assert.Equal(t, DefaultLogFileMaxBackups, cfg.Log.File.MaxBackups)
	assert.Equal(t, DefaultLogFileMaxAgeDays, cfg.Log.File.MaxAgeDays)
	assert.True(t, cfg.Log.File.Compress)
}

// TestLoad_BoolEnvVar tests that boolean environment variables are parsed correctly.
func TestLoad_BoolEnvVar(t *testing.T) {
	t.Setenv("APP_TELEMETRY_ENABLED", "true")
	t.Setenv("APP_TELEMETRY_SAMPLING_RATE", "0.25")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.True(t, cfg.Telemetry.Enabled)
	assert.InDelta(t, 0.25, cfg.Telemetry.SamplingRate, 1e-9)
	assert.Equal(t, "localhost:4317", cfg.Telemetry.Endpoint)
}

// TestLoad_AuthParamDefaults tests the default authParams block.
func TestLoad_AuthParamDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	params := domain.AuthParams(cfg.Widget.AuthParams)
	assert.Equal(t, []string{domain.ResponseTypeIDToken}, params.ResponseType())
	assert.Equal(t, []string{"openid", "email"}, params.Strings(domain.ParamScopes))
}

func TestWidgetConfig_OAuthConfig(t *testing.T) {
	w := WidgetConfig{
		BaseURL:      "https://example.okta.com",
		ClientID:     "cid",
		RedirectURI:  "https://app.example.com/cb",
		AuthScheme:   "OAUTH2",
		Issuer:       "https://example.okta.com/oauth2/default",
		OAuthTimeout: 12 * time.Second,
		AuthParams:   map[string]any{"display": "page"},
	}

	got := w.OAuthConfig()

	assert.Equal(t, domain.OAuthConfig{
		BaseURL:      "https://example.okta.com",
		ClientID:     "cid",
		RedirectURI:  "https://app.example.com/cb",
		AuthScheme:   "OAUTH2",
		Issuer:       "https://example.okta.com/oauth2/default",
		OAuthTimeout: 12000,
		AuthParams:   domain.AuthParams{"display": "page"},
	}, got)

	got.AuthParams["display"] = "popup"
	assert.Equal(t, "page", w.AuthParams["display"])
}

func TestWidgetConfig_OAuthConfig_NoParams(t *testing.T) {
	w := WidgetConfig{BaseURL: "https://example.okta.com"}

	assert.Nil(t, w.OAuthConfig().AuthParams)
}

func TestEnvKeyMapper(t *testing.T) {
	mapper := envKeyMapper([]string{"widget.client_id", "widget.auth_params.responseType"})

	assert.Equal(t, "widget.client_id", mapper("APP_WIDGET_CLIENT_ID"))
	assert.Equal(t, "widget.auth_params.responseType", mapper("APP_WIDGET_AUTH_PARAMS_RESPONSETYPE"))
	assert.Equal(t, "server.port", mapper("APP_SERVER_PORT"))
}

// TestDefaults tests that the defaults map contains expected values.
func TestDefaults(t *testing.T) {
	d := defaults()

	assert.Equal(t, "signin-widget-helpers", d["app.name"])
	assert.Equal(t, DefaultServerPort, d["server.port"])
	assert.Equal(t, "info", d["log.level"])
	assert.Equal(t, "OAUTH2", d["widget.auth_scheme"])
	assert.Equal(t, []string{"en"}, d["widget.languages"])
}
