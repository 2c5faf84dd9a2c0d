// Package acl is the Anti-Corruption Layer between the widget and the
// authorization server's error responses.
//
// The server answers failed requests in several shapes: a decoded JSON body,
// raw text that may or may not be JSON, an errorCauses list with or without a
// known error code, or nothing at all when the network is down. The widget only
// ever wants to show one message, so this package folds every shape into a
// single [domain.ErrorBody] with a guaranteed errorSummary.
//
// # Resolution Order
//
//  1. Status 0 (no response) → network connection message
//  2. Body from responseJSON, else responseText parsed as JSON, else empty
//  3. errorCauses present with a known errorCode → canonical message, causes dropped
//  4. errorCauses present otherwise → first cause's errorSummary, causes kept
//  5. Still no errorSummary → generic internal error message
//
// Malformed JSON never surfaces as an error; it degrades to step 5.
//
// # Usage
//
// Callers holding a [domain.Failure] normalize it in place:
//
//	failure := &domain.Failure{Status: 400, ResponseText: body}
//	acl.NormalizeFailure(failure)
//	show(failure.ResponseJSON.ErrorSummary)
//
// Callers holding a Go HTTP exchange use [Normalize]:
//
//	resp, err := httpClient.Do(req)
//	if err != nil || resp.StatusCode >= http.StatusBadRequest {
//	    return acl.Normalize(resp, err)
//	}
package acl
