package domain

// Response types understood by the authorization endpoint.
const (
	ResponseTypeToken   = "token"
	ResponseTypeIDToken = "id_token"
	ResponseTypeCode    = "code"
)

// Keys with special meaning inside OAuth options and auth params.
const (
	OptionGetAccessToken = "getAccessToken"
	OptionGetIDToken     = "getIdToken"
	ParamResponseType    = "responseType"
	ParamScopes          = "scopes"
)

// Top-level widget configuration keys. An override option with one of these
// names replaces the matching OAuthConfig field; any other option is an auth param.
const (
	KeyBaseURL      = "baseUrl"
	KeyClientID     = "clientId"
	KeyRedirectURI  = "redirectUri"
	KeyAuthScheme   = "authScheme"
	KeyAuthorizeURL = "authorizeUrl"
	KeyIssuer       = "issuer"
	KeyOAuthTimeout = "oAuthTimeout"
)

// OAuthConfig is the widget-level OAuth configuration. The same type carries
// the merged result sent to the authorization endpoint.
type OAuthConfig struct {
	BaseURL      string     `json:"baseUrl"                koanf:"base_url"`
	ClientID     string     `json:"clientId,omitempty"     koanf:"client_id"`
	RedirectURI  string     `json:"redirectUri,omitempty"  koanf:"redirect_uri"`
	AuthScheme   string     `json:"authScheme,omitempty"   koanf:"auth_scheme"`
	AuthorizeURL string     `json:"authorizeUrl,omitempty" koanf:"authorize_url"`
	Issuer       string     `json:"issuer,omitempty"       koanf:"issuer"`
	OAuthTimeout int        `json:"oAuthTimeout,omitempty" koanf:"oauth_timeout"`
	AuthParams   AuthParams `json:"authParams,omitempty"   koanf:"auth_params"`
}

// AuthParams holds the authorization request parameters, keyed by their
// widget option names (responseType, scopes, display, ...).
type AuthParams map[string]any

// Strings returns the value under key as a string slice.
// Decoded JSON and YAML produce []any, so both shapes are accepted.
// Returns nil when the key is missing or holds something else.
func (p AuthParams) Strings(key string) []string {
	switch v := p[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil
			}
			out = append(out, s)
		}
		return out
	case string:
		return []string{v}
	default:
		return nil
	}
}

// ResponseType returns the configured response types.
func (p AuthParams) ResponseType() []string {
	return p.Strings(ParamResponseType)
}

// OAuthOptions are caller overrides passed per invocation.
type OAuthOptions map[string]any
