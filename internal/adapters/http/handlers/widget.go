package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/signin-widget-helpers/internal/adapters/acl"
	"github.com/jsamuelsen/signin-widget-helpers/internal/adapters/http/dto"
	"github.com/jsamuelsen/signin-widget-helpers/internal/domain"
	"github.com/jsamuelsen/signin-widget-helpers/internal/platform/telemetry"
	"github.com/jsamuelsen/signin-widget-helpers/internal/ports"
)

// WidgetHandler serves the sign-in widget helper endpoints.
type WidgetHandler struct {
	service ports.WidgetService
	metrics *telemetry.WidgetMetrics
}

// NewWidgetHandler creates a widget handler. metrics may be nil.
func NewWidgetHandler(service ports.WidgetService, metrics *telemetry.WidgetMetrics) *WidgetHandler {
	return &WidgetHandler{
		service: service,
		metrics: metrics,
	}
}

// RegisterRoutes registers the widget routes on the API group:
//   - POST /errors/normalize
//   - GET  /languages
//   - POST /oauth/params
func (h *WidgetHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/errors/normalize", h.NormalizeError)
	rg.GET("/languages", h.Languages)
	rg.POST("/oauth/params", h.OAuthParams)
}

// NormalizeError handles POST /api/v1/errors/normalize.
// The body is a failed request as the widget saw it; the response is the
// normalized error body.
func (h *WidgetHandler) NormalizeError(c *gin.Context) {
	var req dto.NormalizeRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleError(c, err)
		return
	}

	failure := req.ToFailure()
	outcome := acl.NormalizeFailure(failure)
	h.metrics.ObserveNormalization(string(outcome))

	c.JSON(http.StatusOK, failure.ResponseJSON)
}

// Languages handles GET /api/v1/languages.
// Languages come from repeated ?lang= parameters, then the Accept-Language
// header, then the configured defaults. With ?supported= the first supported
// entry of the chain is also selected.
func (h *WidgetHandler) Languages(c *gin.Context) {
	var query dto.LanguagesQuery
	if err := dto.BindQueryAndValidate(c, &query); err != nil {
		dto.HandleError(c, err)
		return
	}

	ctx := c.Request.Context()
	acceptLanguage := c.GetHeader("Accept-Language")

	languages, source := h.service.Languages(ctx, query.Lang, acceptLanguage)
	h.metrics.ObserveLanguageLookup(string(source))

	resp := dto.LanguagesResponse{Languages: languages}

	if len(query.Supported) > 0 {
		selected, err := h.service.Negotiate(ctx, query.Lang, acceptLanguage, query.Supported)
		if err != nil {
			dto.HandleError(c, err)
			return
		}

		resp.Selected = selected
	}

	c.JSON(http.StatusOK, resp)
}

// OAuthParams handles POST /api/v1/oauth/params.
// The body is the per-call option object; the response is the merged configuration.
func (h *WidgetHandler) OAuthParams(c *gin.Context) {
	opts := domain.OAuthOptions{}
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&opts); err != nil {
			dto.HandleError(c, dto.BindingError(err))
			return
		}
	}

	merged, err := h.service.OAuthParams(c.Request.Context(), opts)
	h.metrics.ObserveOAuthMerge(err != nil)

	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, merged)
}
