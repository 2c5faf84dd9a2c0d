package app

import (
	"encoding/json"
	"maps"
	"math"
	"slices"

	"github.com/jsamuelsen/signin-widget-helpers/internal/domain"
)

// topLevelKeys lists the option names that override OAuthConfig fields.
// Every other option, except the token flags, is routed into AuthParams.
var topLevelKeys = map[string]struct{}{
	domain.KeyBaseURL:      {},
	domain.KeyClientID:     {},
	domain.KeyRedirectURI:  {},
	domain.KeyAuthScheme:   {},
	domain.KeyAuthorizeURL: {},
	domain.KeyIssuer:       {},
	domain.KeyOAuthTimeout: {},
}

// responseTypeFlags maps the token flags to the response type they request,
// in the order they are appended.
var responseTypeFlags = []struct {
	option       string
	responseType string
}{
	{option: domain.OptionGetAccessToken, responseType: domain.ResponseTypeToken},
	{option: domain.OptionGetIDToken, responseType: domain.ResponseTypeIDToken},
}

// IsTopLevelKey reports whether an option name overrides an OAuthConfig field.
func IsTopLevelKey(key string) bool {
	_, ok := topLevelKeys[key]
	return ok
}

// FilterOAuthParams merges per-call options over the widget configuration.
//
// Top-level keys replace the matching config field. getAccessToken and
// getIdToken append "token" and "id_token" to the configured responseType
// when missing. Anything else overrides the same-named auth param.
// base is never modified; with no options the result equals base.
//
// A top-level option holding a value of the wrong type yields a
// *domain.ValidationError.
func FilterOAuthParams(opts domain.OAuthOptions, base domain.OAuthConfig) (domain.OAuthConfig, error) {
	merged := base
	if base.AuthParams != nil {
		merged.AuthParams = maps.Clone(base.AuthParams)
	}

	for key, value := range opts {
		if !IsTopLevelKey(key) {
			continue
		}

		if err := setTopLevel(&merged, key, value); err != nil {
			return domain.OAuthConfig{}, err
		}
	}

	if responseType, changed := mergeResponseType(base.AuthParams.ResponseType(), opts); changed {
		merged.AuthParams = ensureParams(merged.AuthParams)
		merged.AuthParams[domain.ParamResponseType] = responseType
	}

	for key, value := range opts {
		if IsTopLevelKey(key) || key == domain.OptionGetAccessToken || key == domain.OptionGetIDToken {
			continue
		}

		merged.AuthParams = ensureParams(merged.AuthParams)
		merged.AuthParams[key] = value
	}

	return merged, nil
}

// mergeResponseType appends the response types requested by the token flags.
// changed is false when no flag added anything, so the caller can leave the
// configured value untouched.
func mergeResponseType(current []string, opts domain.OAuthOptions) ([]string, bool) {
	result := slices.Clone(current)
	changed := false

	for _, flag := range responseTypeFlags {
		if !truthy(opts[flag.option]) || slices.Contains(result, flag.responseType) {
			continue
		}

		result = append(result, flag.responseType)
		changed = true
	}

	return result, changed
}

// setTopLevel assigns a top-level option to its typed config field.
func setTopLevel(cfg *domain.OAuthConfig, key string, value any) error {
	if key == domain.KeyOAuthTimeout {
		timeout, ok := asInt(value)
		if !ok {
			return domain.NewValidationErrorWithValue(key, "must be a whole number of milliseconds", value)
		}
		cfg.OAuthTimeout = timeout

		return nil
	}

	s, ok := value.(string)
	if !ok {
		return domain.NewValidationErrorWithValue(key, "must be a string", value)
	}

	switch key {
	case domain.KeyBaseURL:
		cfg.BaseURL = s
	case domain.KeyClientID:
		cfg.ClientID = s
	case domain.KeyRedirectURI:
		cfg.RedirectURI = s
	case domain.KeyAuthScheme:
		cfg.AuthScheme = s
	case domain.KeyAuthorizeURL:
		cfg.AuthorizeURL = s
	case domain.KeyIssuer:
		cfg.Issuer = s
	}

	return nil
}

func ensureParams(p domain.AuthParams) domain.AuthParams {
	if p == nil {
		return domain.AuthParams{}
	}

	return p
}

// asInt accepts the numeric shapes produced by Go callers and JSON decoding.
func asInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case int32:
		return int(v), true
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}
		return int(v), true
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}

// truthy follows the loose flag semantics of widget options: false, zero,
// empty string and nil are off, anything else is on.
func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case int:
		return v != 0
	case float64:
		return v != 0
	default:
		return true
	}
}
