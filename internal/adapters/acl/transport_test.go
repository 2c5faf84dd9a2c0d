package acl

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// trackingBody records whether Close was called.
type trackingBody struct {
	io.Reader
	closed bool
}

func (b *trackingBody) Close() error {
	b.closed = true
	return nil
}

func TestFailureFromResponse_TransportError(t *testing.T) {
	failure := FailureFromResponse(nil, errors.New("dial tcp: connection refused"))

	assert.Equal(t, 0, failure.Status)
	assert.Empty(t, failure.ResponseText)
}

func TestFailureFromResponse_NilResponse(t *testing.T) {
	failure := FailureFromResponse(nil, nil)
	assert.Equal(t, 0, failure.Status)
}

func TestFailureFromResponse_ReadsAndClosesBody(t *testing.T) {
	body := &trackingBody{Reader: strings.NewReader(`{"errorSummary":"nope"}`)}
	resp := &http.Response{StatusCode: http.StatusUnauthorized, Body: body}

	failure := FailureFromResponse(resp, nil)

	assert.Equal(t, http.StatusUnauthorized, failure.Status)
	assert.JSONEq(t, `{"errorSummary":"nope"}`, failure.ResponseText)
	assert.Nil(t, failure.ResponseJSON)
	assert.True(t, body.closed)
}

func TestNormalize_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"errorCode":"E0000017","errorSummary":"raw","errorCauses":[{"errorSummary":"cause"}]}`))
	}))
	defer server.Close()

	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, server.URL, nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	body := Normalize(resp, nil)

	require.NotNil(t, body)
	assert.Equal(t, "Password reset failed", body.ErrorSummary)
	assert.Nil(t, body.ErrorCauses)
	assert.Equal(t, CodePasswordResetFailed, body.ErrorCode)
}

func TestNormalize_ServerUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, url, nil)
	require.NoError(t, err)

	resp, doErr := http.DefaultClient.Do(req)
	if resp != nil {
		defer func() { _ = resp.Body.Close() }()
	}
	require.Error(t, doErr)

	body := Normalize(resp, doErr)

	assert.Equal(t, MessageNetworkError, body.ErrorSummary)
}

func TestNormalize_PlainTextBody(t *testing.T) {
	resp := &http.Response{
		StatusCode: http.StatusBadGateway,
		Body:       io.NopCloser(strings.NewReader("upstream timed out")),
	}

	body := Normalize(resp, nil)

	assert.Equal(t, MessageInternalError, body.ErrorSummary)
}
