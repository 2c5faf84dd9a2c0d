package acl

import (
	"io"
	"net/http"

	"github.com/jsamuelsen/signin-widget-helpers/internal/domain"
)

// maxErrorBodyBytes caps how much of an error body is read.
const maxErrorBodyBytes = 64 << 10

// FailureFromResponse builds a Failure from the outcome of an HTTP call.
// A transport error or a nil response means nothing came back, so the
// Failure has status 0. The response body is read and closed.
func FailureFromResponse(resp *http.Response, transportErr error) *domain.Failure {
	if transportErr != nil || resp == nil {
		return &domain.Failure{Status: 0}
	}

	failure := &domain.Failure{Status: resp.StatusCode}

	if resp.Body != nil {
		defer func() { _ = resp.Body.Close() }()

		data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		if err == nil {
			failure.ResponseText = string(data)
		}
	}

	return failure
}

// Normalize converts a failed HTTP exchange into a normalized error body.
func Normalize(resp *http.Response, transportErr error) *domain.ErrorBody {
	failure := FailureFromResponse(resp, transportErr)
	NormalizeFailure(failure)

	return failure.ResponseJSON
}
