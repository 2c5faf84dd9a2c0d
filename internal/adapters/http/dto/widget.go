package dto

import (
	"github.com/jsamuelsen/signin-widget-helpers/internal/domain"
)

// NormalizeRequest is the body of POST /api/v1/errors/normalize: a failed
// request as the widget saw it.
type NormalizeRequest struct {
	Status       *int              `json:"status"       validate:"required,gte=0,lte=599"`
	ResponseJSON *domain.ErrorBody `json:"responseJSON"`
	ResponseText string            `json:"responseText"`
}

// ToFailure converts the request to the normalizer input.
func (r *NormalizeRequest) ToFailure() *domain.Failure {
	f := &domain.Failure{
		ResponseJSON: r.ResponseJSON,
		ResponseText: r.ResponseText,
	}
	if r.Status != nil {
		f.Status = *r.Status
	}

	return f
}

// LanguagesQuery holds the query parameters of GET /api/v1/languages.
type LanguagesQuery struct {
	Lang      []string `form:"lang"      validate:"max=20,dive,langtag"`
	Supported []string `form:"supported" validate:"max=20,dive,langtag"`
}

// LanguagesResponse is the fallback chain for a language request.
type LanguagesResponse struct {
	Languages []string `json:"languages"`
	Selected  string   `json:"selected,omitempty"`
}
