package acl

import (
	"encoding/json"

	"github.com/jsamuelsen/signin-widget-helpers/internal/domain"
)

// Messages used when the response carries nothing usable.
const (
	// MessageNetworkError is shown when no response was received (status 0).
	MessageNetworkError = "Unable to connect to the server. Please check your network connection."

	// MessageInternalError is shown when the body has no usable summary.
	MessageInternalError = "There was an unexpected internal error. Please try again."
)

// Outcome records which rule produced the final errorSummary.
type Outcome string

// Normalization outcomes.
const (
	OutcomeNetwork  Outcome = "network"
	OutcomeCode     Outcome = "error_code"
	OutcomeCause    Outcome = "error_cause"
	OutcomeSummary  Outcome = "error_summary"
	OutcomeInternal Outcome = "internal"
)

// NormalizeFailure resolves the error body of f and writes it back to
// f.ResponseJSON before returning. A decoded ResponseJSON is updated in place;
// otherwise a new body is attached. The returned Outcome is informational.
func NormalizeFailure(f *domain.Failure) Outcome {
	if f == nil {
		return OutcomeInternal
	}

	if f.Status == 0 {
		f.ResponseJSON = &domain.ErrorBody{ErrorSummary: MessageNetworkError}
		return OutcomeNetwork
	}

	body := f.ResponseJSON
	if body == nil {
		body = parseResponseText(f.ResponseText)
		f.ResponseJSON = body
	}

	outcome := OutcomeSummary

	if len(body.ErrorCauses) > 0 {
		if msg, ok := LookupErrorCode(body.ErrorCode); ok {
			body.ErrorSummary = msg
			body.ErrorCauses = nil
			outcome = OutcomeCode
		} else {
			body.ErrorSummary = body.ErrorCauses[0].ErrorSummary
			outcome = OutcomeCause
		}
	}

	if body.ErrorSummary == "" {
		body.ErrorSummary = MessageInternalError
		outcome = OutcomeInternal
	}

	return outcome
}

// parseResponseText decodes text as an error body.
// Empty or malformed text yields an empty body.
func parseResponseText(text string) *domain.ErrorBody {
	var body domain.ErrorBody
	if text == "" {
		return &body
	}

	if err := json.Unmarshal([]byte(text), &body); err != nil {
		return &domain.ErrorBody{}
	}

	return &body
}
