package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorBody_JSONKeepsUnknownFields(t *testing.T) {
	input := `{
		"errorSummary": "Api validation failed",
		"errorCode": "E0000001",
		"custom": 1,
		"nested": {"a": [true]},
		"errorCauses": [{"errorSummary": "Password is too short", "extra": "k"}]
	}`

	var body ErrorBody
	require.NoError(t, json.Unmarshal([]byte(input), &body))

	assert.Equal(t, "Api validation failed", body.ErrorSummary)
	assert.Equal(t, "E0000001", body.ErrorCode)
	assert.JSONEq(t, `1`, string(body.Extra["custom"]))
	assert.NotContains(t, body.Extra, "errorSummary")
	require.Len(t, body.ErrorCauses, 1)
	assert.JSONEq(t, `"k"`, string(body.ErrorCauses[0].Extra["extra"]))

	out, err := json.Marshal(&body)
	require.NoError(t, err)
	assert.JSONEq(t, input, string(out))
}

func TestErrorBody_JSONWithoutUnknownFields(t *testing.T) {
	var body ErrorBody
	require.NoError(t, json.Unmarshal([]byte(`{"errorSummary":"x","errorCauses":[{"errorSummary":"c"}]}`), &body))

	assert.Nil(t, body.Extra)
	assert.Nil(t, body.ErrorCauses[0].Extra)

	out, err := json.Marshal(body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"errorSummary":"x","errorCauses":[{"errorSummary":"c"}]}`, string(out))
}

func TestErrorBody_MarshalKnownFieldsWin(t *testing.T) {
	body := ErrorBody{
		ErrorSummary: "real",
		Extra: map[string]json.RawMessage{
			"errorSummary": json.RawMessage(`"shadowed"`),
			"custom":       json.RawMessage(`"kept"`),
		},
	}

	out, err := json.Marshal(body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"errorSummary":"real","custom":"kept"}`, string(out))
}

func TestErrorBody_UnmarshalRejectsNonObject(t *testing.T) {
	var body ErrorBody
	assert.Error(t, json.Unmarshal([]byte(`["x"]`), &body))

	var cause ErrorCause
	assert.Error(t, json.Unmarshal([]byte(`"x"`), &cause))
}
