package acl

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/signin-widget-helpers/internal/domain"
)

// --- NormalizeFailure Tests ---

func TestNormalizeFailure_NetworkError(t *testing.T) {
	tests := []struct {
		name    string
		failure *domain.Failure
	}{
		{name: "no body", failure: &domain.Failure{Status: 0}},
		{name: "text body ignored", failure: &domain.Failure{Status: 0, ResponseText: `{"errorSummary":"x"}`}},
		{
			name: "decoded body ignored",
			failure: &domain.Failure{
				Status:       0,
				ResponseJSON: &domain.ErrorBody{ErrorSummary: "x", ErrorCode: CodePasswordResetFailed},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := NormalizeFailure(tt.failure)

			require.NotNil(t, tt.failure.ResponseJSON)
			assert.Equal(t, MessageNetworkError, tt.failure.ResponseJSON.ErrorSummary)
			assert.Nil(t, tt.failure.ResponseJSON.ErrorCauses)
			assert.Equal(t, OutcomeNetwork, outcome)
		})
	}
}

func TestNormalizeFailure_NoBody(t *testing.T) {
	failure := &domain.Failure{Status: 400}

	outcome := NormalizeFailure(failure)

	require.NotNil(t, failure.ResponseJSON)
	assert.Equal(t, MessageInternalError, failure.ResponseJSON.ErrorSummary)
	assert.Equal(t, OutcomeInternal, outcome)
}

func TestNormalizeFailure_ResponseText(t *testing.T) {
	failure := &domain.Failure{
		Status:       400,
		ResponseText: `{"errorSummary": "errorSummary from responseText"}`,
	}

	outcome := NormalizeFailure(failure)

	assert.Equal(t, "errorSummary from responseText", failure.ResponseJSON.ErrorSummary)
	assert.Equal(t, OutcomeSummary, outcome)
}

func TestNormalizeFailure_MalformedResponseText(t *testing.T) {
	tests := []string{
		"not json",
		`{"errorSummary": `,
		`["errorSummary"]`,
		`"just a string"`,
	}

	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			failure := &domain.Failure{Status: 500, ResponseText: text}

			outcome := NormalizeFailure(failure)

			assert.Equal(t, MessageInternalError, failure.ResponseJSON.ErrorSummary)
			assert.Equal(t, OutcomeInternal, outcome)
		})
	}
}

func TestNormalizeFailure_ResponseJSONTakesPrecedence(t *testing.T) {
	body := &domain.ErrorBody{ErrorSummary: "from json"}
	failure := &domain.Failure{
		Status:       401,
		ResponseJSON: body,
		ResponseText: `{"errorSummary": "from text"}`,
	}

	NormalizeFailure(failure)

	assert.Same(t, body, failure.ResponseJSON)
	assert.Equal(t, "from json", failure.ResponseJSON.ErrorSummary)
}

func TestNormalizeFailure_CausesWithoutCode(t *testing.T) {
	causes := []domain.ErrorCause{{ErrorSummary: "errorSummary from errorCauses"}}
	failure := &domain.Failure{
		Status:       400,
		ResponseJSON: &domain.ErrorBody{ErrorCauses: causes},
	}

	outcome := NormalizeFailure(failure)

	assert.Equal(t, "errorSummary from errorCauses", failure.ResponseJSON.ErrorSummary)
	require.Len(t, failure.ResponseJSON.ErrorCauses, 1)
	assert.Same(t, &causes[0], &failure.ResponseJSON.ErrorCauses[0])
	assert.Equal(t, OutcomeCause, outcome)
}

func TestNormalizeFailure_CausesWithUnknownCode(t *testing.T) {
	causes := []domain.ErrorCause{{ErrorSummary: "errorSummary from errorCauses"}}
	failure := &domain.Failure{
		Status: 400,
		ResponseJSON: &domain.ErrorBody{
			ErrorCode:   "E01212AB",
			ErrorCauses: causes,
		},
	}

	NormalizeFailure(failure)

	assert.Equal(t, "errorSummary from errorCauses", failure.ResponseJSON.ErrorSummary)
	assert.Same(t, &causes[0], &failure.ResponseJSON.ErrorCauses[0])
}

func TestNormalizeFailure_CausesWithKnownCode(t *testing.T) {
	failure := &domain.Failure{
		Status: 400,
		ResponseJSON: &domain.ErrorBody{
			ErrorCode:   CodePasswordResetFailed,
			ErrorCauses: []domain.ErrorCause{{ErrorSummary: "errorSummary from errorCauses"}},
		},
	}

	outcome := NormalizeFailure(failure)

	assert.Equal(t, "Password reset failed", failure.ResponseJSON.ErrorSummary)
	assert.Nil(t, failure.ResponseJSON.ErrorCauses)
	assert.Equal(t, OutcomeCode, outcome)

	data, err := json.Marshal(failure.ResponseJSON)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "errorCauses")
}

func TestNormalizeFailure_ResponseTextKeepsUnknownFields(t *testing.T) {
	failure := &domain.Failure{
		Status:       403,
		ResponseText: `{"errorCode":"E0000017","errorId":"oae1","custom":{"x":1},"errorCauses":[{"errorSummary":"c","extra":"k"}]}`,
	}

	outcome := NormalizeFailure(failure)
	assert.Equal(t, OutcomeCode, outcome)

	data, err := json.Marshal(failure.ResponseJSON)
	require.NoError(t, err)
	assert.JSONEq(t, `{"errorCode":"E0000017","errorId":"oae1","errorSummary":"Password reset failed","custom":{"x":1}}`, string(data))
}

func TestNormalizeFailure_KnownCodeWithoutCausesKeepsSummary(t *testing.T) {
	failure := &domain.Failure{
		Status: 403,
		ResponseJSON: &domain.ErrorBody{
			ErrorCode:    CodePasswordResetFailed,
			ErrorSummary: "server supplied summary",
		},
	}

	NormalizeFailure(failure)

	assert.Equal(t, "server supplied summary", failure.ResponseJSON.ErrorSummary)
}

func TestNormalizeFailure_EmptyCauseSummaryFallsBack(t *testing.T) {
	failure := &domain.Failure{
		Status:       400,
		ResponseJSON: &domain.ErrorBody{ErrorCauses: []domain.ErrorCause{{Reason: "x"}}},
	}

	outcome := NormalizeFailure(failure)

	assert.Equal(t, MessageInternalError, failure.ResponseJSON.ErrorSummary)
	assert.Equal(t, OutcomeInternal, outcome)
}

func TestNormalizeFailure_CausesFromResponseText(t *testing.T) {
	failure := &domain.Failure{
		Status:       400,
		ResponseText: `{"errorCode":"E0000001","errorSummary":"Api validation failed","errorCauses":[{"errorSummary":"password: too short"}]}`,
	}

	NormalizeFailure(failure)

	assert.Equal(t, "password: too short", failure.ResponseJSON.ErrorSummary)
	assert.Len(t, failure.ResponseJSON.ErrorCauses, 1)
}

func TestNormalizeFailure_Nil(t *testing.T) {
	assert.NotPanics(t, func() {
		NormalizeFailure(nil)
	})
}

// --- Error Code Table Tests ---

func TestLookupErrorCode(t *testing.T) {
	msg, ok := LookupErrorCode(CodePasswordResetFailed)
	assert.True(t, ok)
	assert.Equal(t, "Password reset failed", msg)

	_, ok = LookupErrorCode("E01212AB")
	assert.False(t, ok)

	_, ok = LookupErrorCode("")
	assert.False(t, ok)
}

func TestErrorCodeMessages_AllNonEmpty(t *testing.T) {
	for code, msg := range errorCodeMessages {
		assert.NotEmpty(t, msg, "code %s has empty message", code)
	}
}
