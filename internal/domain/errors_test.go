package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors_AreDistinct(t *testing.T) {
	assert.NotErrorIs(t, ErrValidation, ErrUnsupportedLanguage)
	assert.NotErrorIs(t, ErrUnsupportedLanguage, ErrValidation)
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name        string
		field       string
		message     string
		expectedMsg string
	}{
		{
			name:        "with field",
			field:       "baseUrl",
			message:     "must be a string",
			expectedMsg: "validation failed for baseUrl: must be a string",
		},
		{
			name:        "without field",
			field:       "",
			message:     "body is required",
			expectedMsg: "validation failed: body is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidationError(tt.field, tt.message)
			assert.Equal(t, tt.expectedMsg, err.Error())
			assert.True(t, IsValidation(err))
		})
	}
}

func TestValidationErrorWithValue(t *testing.T) {
	err := NewValidationErrorWithValue("oAuthTimeout", "must be a number", "soon")

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "soon", validationErr.Value)
	assert.Equal(t, "oAuthTimeout", validationErr.Field)
}

func TestIsHelpers_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("merging options: %w", NewValidationError("clientId", "must be a string"))
	assert.True(t, IsValidation(wrapped))
	assert.False(t, IsUnsupportedLanguage(wrapped))

	lang := fmt.Errorf("negotiating: %w", ErrUnsupportedLanguage)
	assert.True(t, IsUnsupportedLanguage(lang))
	assert.False(t, IsValidation(lang))
}

func TestErrorBody_Error(t *testing.T) {
	var err error = &ErrorBody{ErrorSummary: "Password reset failed"}
	assert.EqualError(t, err, "Password reset failed")
}

func TestAuthParams_Strings(t *testing.T) {
	tests := []struct {
		name     string
		params   AuthParams
		key      string
		expected []string
	}{
		{name: "string slice", params: AuthParams{"scopes": []string{"openid"}}, key: "scopes", expected: []string{"openid"}},
		{name: "decoded any slice", params: AuthParams{"scopes": []any{"openid", "email"}}, key: "scopes", expected: []string{"openid", "email"}},
		{name: "single string", params: AuthParams{"responseType": "code"}, key: "responseType", expected: []string{"code"}},
		{name: "mixed slice", params: AuthParams{"scopes": []any{"openid", 1}}, key: "scopes", expected: nil},
		{name: "missing key", params: AuthParams{}, key: "scopes", expected: nil},
		{name: "nil map", params: nil, key: "scopes", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.params.Strings(tt.key))
		})
	}
}

func TestAuthParams_ResponseType(t *testing.T) {
	params := AuthParams{ParamResponseType: []string{ResponseTypeIDToken, ResponseTypeToken}}
	assert.Equal(t, []string{"id_token", "token"}, params.ResponseType())
}
