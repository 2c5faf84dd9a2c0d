// Package config provides configuration loading and management using koanf.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/jsamuelsen/signin-widget-helpers/internal/domain"
)

// Default configuration values.
const (
	// DefaultServerPort is the default HTTP server port.
	DefaultServerPort = 8080

	// DefaultMaxRequestSize is the default maximum request body size (64KB).
	// Widget payloads are small error bodies and option objects.
	DefaultMaxRequestSize = 64 << 10

	// DefaultOAuthTimeout is how long the widget waits on the authorization endpoint.
	DefaultOAuthTimeout = 12 * time.Second

	// DefaultLogFileMaxSizeMB is the default max log file size in megabytes.
	DefaultLogFileMaxSizeMB = 100

	// DefaultLogFileMaxBackups is the default number of old log files to retain.
	DefaultLogFileMaxBackups = 3

	// DefaultLogFileMaxAgeDays is the default max days to retain old log files.
	DefaultLogFileMaxAgeDays = 28
)

// envPrefix is the prefix of environment variable overrides.
const envPrefix = "APP_"

// Config is the root configuration structure.
type Config struct {
	App       AppConfig       `koanf:"app"       validate:"required"`
	Server    ServerConfig    `koanf:"server"    validate:"required"`
	Log       LogConfig       `koanf:"log"       validate:"required"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Widget    WidgetConfig    `koanf:"widget"    validate:"required"`
}

// AppConfig contains application-level settings.
type AppConfig struct {
	Name        string `koanf:"name"        validate:"required"`
	Version     string `koanf:"version"     validate:"required"`
	Environment string `koanf:"environment" validate:"required,oneof=local dev qa prod test"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"             validate:"required,min=1,max=65535"`
	Host            string        `koanf:"host"             validate:"required"`
	ReadTimeout     time.Duration `koanf:"read_timeout"     validate:"required,min=1s"`
	WriteTimeout    time.Duration `koanf:"write_timeout"    validate:"required,min=1s"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"     validate:"required,min=1s"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"required,min=1s"`
	RequestTimeout  time.Duration `koanf:"request_timeout"  validate:"required,min=100ms"`
	MaxRequestSize  int64         `koanf:"max_request_size" validate:"required,min=1"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string        `koanf:"level"  validate:"required,oneof=trace debug info warn error"`
	Format string        `koanf:"format" validate:"required,oneof=json text pretty"`
	File   LogFileConfig `koanf:"file"`
}

// LogFileConfig contains rolling log file settings.
type LogFileConfig struct {
	Enabled    bool   `koanf:"enabled"`
	Path       string `koanf:"path"        validate:"required_if=Enabled true"`
	MaxSizeMB  int    `koanf:"max_size"    validate:"omitempty,min=1,max=1024"`
	MaxBackups int    `koanf:"max_backups" validate:"omitempty,min=0,max=100"`
	MaxAgeDays int    `koanf:"max_age"     validate:"omitempty,min=0,max=365"`
	Compress   bool   `koanf:"compress"`
}

// TelemetryConfig contains OpenTelemetry export settings.
type TelemetryConfig struct {
	Enabled      bool    `koanf:"enabled"`
	Endpoint     string  `koanf:"endpoint"      validate:"required_if=Enabled true"`
	SamplingRate float64 `koanf:"sampling_rate" validate:"min=0,max=1"`
}

// WidgetConfig is the widget-level OAuth configuration and locale defaults.
type WidgetConfig struct {
	BaseURL      string         `koanf:"base_url"      validate:"required,url"`
	ClientID     string         `koanf:"client_id"`
	RedirectURI  string         `koanf:"redirect_uri"  validate:"omitempty,url"`
	AuthScheme   string         `koanf:"auth_scheme"   validate:"omitempty,oneof=OAUTH2 SESSION"`
	AuthorizeURL string         `koanf:"authorize_url" validate:"omitempty,url"`
	Issuer       string         `koanf:"issuer"        validate:"omitempty,url"`
	OAuthTimeout time.Duration  `koanf:"oauth_timeout" validate:"min=0"`
	AuthParams   map[string]any `koanf:"auth_params"`
	Languages    []string       `koanf:"languages"     validate:"required,min=1,dive,required"`
}

// OAuthConfig converts the widget settings into the domain configuration
// that per-call options are merged onto.
func (w *WidgetConfig) OAuthConfig() domain.OAuthConfig {
	var params domain.AuthParams
	if len(w.AuthParams) > 0 {
		params = make(domain.AuthParams, len(w.AuthParams))
		for k, v := range w.AuthParams {
			params[k] = v
		}
	}

	return domain.OAuthConfig{
		BaseURL:      w.BaseURL,
		ClientID:     w.ClientID,
		RedirectURI:  w.RedirectURI,
		AuthScheme:   w.AuthScheme,
		AuthorizeURL: w.AuthorizeURL,
		Issuer:       w.Issuer,
		OAuthTimeout: int(w.OAuthTimeout / time.Millisecond),
		AuthParams:   params,
	}
}

// defaults returns the default configuration values.
func defaults() map[string]any {
	return map[string]any{
		"app.name":        "signin-widget-helpers",
		"app.version":     "dev",
		"app.environment": "local",

		"server.port":             DefaultServerPort,
		"server.host":             "0.0.0.0",
		"server.read_timeout":     "10s",
		"server.write_timeout":    "10s",
		"server.idle_timeout":     "120s",
		"server.shutdown_timeout": "10s",
		"server.request_timeout":  "5s",
		"server.max_request_size": DefaultMaxRequestSize,

		"log.level":            "info",
		"log.format":           "json",
		"log.file.enabled":     false,
		"log.file.path":        "./logs/app.log",
		"log.file.max_size":    DefaultLogFileMaxSizeMB,
		"log.file.max_backups": DefaultLogFileMaxBackups,
		"log.file.max_age":     DefaultLogFileMaxAgeDays,
		"log.file.compress":    true,

		"telemetry.enabled":       false,
		"telemetry.endpoint":      "localhost:4317",
		"telemetry.sampling_rate": 1.0,

		"widget.base_url":      "https://example.okta.com",
		"widget.client_id":     "",
		"widget.redirect_uri":  "",
		"widget.auth_scheme":   "OAUTH2",
		"widget.authorize_url": "",
		"widget.issuer":        "",
		"widget.oauth_timeout": DefaultOAuthTimeout.String(),
		"widget.languages":     []string{"en"},
		"widget.auth_params": map[string]any{
			domain.ParamResponseType: []string{domain.ResponseTypeIDToken},
			domain.ParamScopes:       []string{"openid", "email"},
		},
	}
}

// Load loads configuration with the following precedence (highest to lowest):
//  1. Environment variables (APP_ prefix)
//  2. Profile config file (configs/{profile}.yaml)
//  3. Base config file (configs/base.yaml)
//  4. Default values
func Load(profile string) (*Config, error) {
	k := koanf.New(".")

	err := k.Load(confmap.Provider(defaults(), "."), nil)
	if err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	err = loadFileIfExists(k, "configs/base.yaml")
	if err != nil {
		return nil, fmt.Errorf("loading base config: %w", err)
	}

	if profile != "" {
		profilePath := fmt.Sprintf("configs/%s.yaml", profile)

		err := loadFileIfExists(k, profilePath)
		if err != nil {
			return nil, fmt.Errorf("loading profile config %q: %w", profile, err)
		}
	}

	err = k.Load(env.ProviderWithValue(envPrefix, ".", envMapper(k.Keys())), nil)
	if err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config

	err = k.Unmarshal("", &cfg)
	if err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return &cfg, nil
}

// listKeys are config keys whose environment values are comma-separated lists.
var listKeys = map[string]bool{
	"widget.languages":                true,
	"widget.auth_params.responseType": true,
	"widget.auth_params.scopes":       true,
}

// envMapper resolves the config key of an environment variable and splits
// list values, so APP_WIDGET_LANGUAGES=fr,en becomes []string{"fr", "en"}.
func envMapper(known []string) func(string, string) (string, any) {
	keyFor := envKeyMapper(known)

	return func(name, value string) (string, any) {
		key := keyFor(name)
		if !listKeys[key] {
			return key, value
		}

		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}

		return key, out
	}
}

// envKeyMapper maps APP_WIDGET_CLIENT_ID to widget.client_id. Underscores are
// ambiguous, so known keys are matched first; unknown variables fall back to
// treating every underscore as a level separator.
func envKeyMapper(known []string) func(string) string {
	lookup := make(map[string]string, len(known))
	for _, key := range known {
		lookup[strings.ToLower(strings.ReplaceAll(key, ".", "_"))] = key
	}

	return func(s string) string {
		name := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		if key, ok := lookup[name]; ok {
			return key
		}

		return strings.ReplaceAll(name, "_", ".")
	}
}

// loadFileIfExists loads a YAML config file if it exists.
// Returns nil if the file doesn't exist, error only for parse/read failures.
func loadFileIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return k.Load(file.Provider(path), yaml.Parser())
}
