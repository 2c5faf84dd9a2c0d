package domain

import (
	"encoding/json"
)

// Failure is the raw result of a failed HTTP call as seen by the widget.
// The transport layer fills Status, ResponseJSON and ResponseText; the error
// normalizer rewrites ResponseJSON in place with the resolved body.
type Failure struct {
	// Status is the HTTP status code. Zero means no response was received.
	Status int `json:"status"`

	// ResponseJSON is the already-decoded error body, if any.
	ResponseJSON *ErrorBody `json:"responseJSON,omitempty"`

	// ResponseText is the raw body text. It may or may not be JSON.
	ResponseText string `json:"responseText,omitempty"`
}

// ErrorBody is the error envelope returned by the authorization server.
// After normalization ErrorSummary is always set and ErrorCauses is only
// present when no mapped error code applied. Fields the envelope does not
// model are kept in Extra and written back out unchanged.
type ErrorBody struct {
	ErrorCode    string       `json:"errorCode,omitempty"`
	ErrorSummary string       `json:"errorSummary"`
	ErrorLink    string       `json:"errorLink,omitempty"`
	ErrorID      string       `json:"errorId,omitempty"`
	ErrorCauses  []ErrorCause `json:"errorCauses,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

var errorBodyFields = []string{"errorCode", "errorSummary", "errorLink", "errorId", "errorCauses"}

// UnmarshalJSON decodes the known fields and keeps the rest in Extra.
func (b *ErrorBody) UnmarshalJSON(data []byte) error {
	type plain ErrorBody

	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	extra, err := unknownFields(data, errorBodyFields)
	if err != nil {
		return err
	}

	*b = ErrorBody(p)
	b.Extra = extra

	return nil
}

// MarshalJSON encodes the known fields followed by Extra.
// Known fields win over Extra entries of the same name.
func (b ErrorBody) MarshalJSON() ([]byte, error) {
	type plain ErrorBody
	return marshalWithExtra(plain(b), b.Extra)
}

// Error implements the error interface so a normalized body can be returned as an error.
func (b *ErrorBody) Error() string {
	return b.ErrorSummary
}

// ErrorCause is a single entry of an errorCauses list.
// Unmodeled fields round-trip through Extra like on ErrorBody.
type ErrorCause struct {
	ErrorSummary string `json:"errorSummary"`
	Reason       string `json:"reason,omitempty"`
	Location     string `json:"location,omitempty"`
	LocationType string `json:"locationType,omitempty"`
	Domain       string `json:"domain,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

var errorCauseFields = []string{"errorSummary", "reason", "location", "locationType", "domain"}

// UnmarshalJSON decodes the known fields and keeps the rest in Extra.
func (c *ErrorCause) UnmarshalJSON(data []byte) error {
	type plain ErrorCause

	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	extra, err := unknownFields(data, errorCauseFields)
	if err != nil {
		return err
	}

	*c = ErrorCause(p)
	c.Extra = extra

	return nil
}

// MarshalJSON encodes the known fields followed by Extra.
func (c ErrorCause) MarshalJSON() ([]byte, error) {
	type plain ErrorCause
	return marshalWithExtra(plain(c), c.Extra)
}

// unknownFields returns the members of the JSON object data that are not in
// known, or nil when there are none.
func unknownFields(data []byte, known []string) (map[string]json.RawMessage, error) {
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, err
	}

	for _, name := range known {
		delete(all, name)
	}

	if len(all) == 0 {
		return nil, nil
	}

	return all, nil
}

// marshalWithExtra encodes v as an object and adds the extra members that v
// does not already define.
func marshalWithExtra(v any, extra map[string]json.RawMessage) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil || len(extra) == 0 {
		return data, err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}

	for name, value := range extra {
		if _, ok := fields[name]; !ok {
			fields[name] = value
		}
	}

	return json.Marshal(fields)
}
