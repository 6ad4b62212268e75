package models

// APIError is a single human-readable error message carried inside the
// response envelope.
type APIError struct {
	Msg string `json:"msg"`
}

// Envelope is the uniform response shape produced by every HTTP handler:
// {code, error?, data?}. Exactly one of Error or Data is set on a
// well-formed response.
type Envelope struct {
	// Code mirrors the HTTP status code of the response.
	Code int `json:"code"`

	// Error holds one or more messages describing why the request failed.
	Error []APIError `json:"error,omitempty"`

	// Data holds the payload of a successful response.
	Data *EnvelopeData `json:"data,omitempty"`
}

// EnvelopeData enumerates every payload key the API can return. Only the
// keys relevant to the responding endpoint are populated.
type EnvelopeData struct {
	AccountInfo *User     `json:"accountInfo,omitempty"`
	TokenInfo   *Token    `json:"tokenInfo,omitempty"`
	ProjectInfo *Project  `json:"projectInfo,omitempty"`
	UserList    []User    `json:"userList,omitempty"`
	ProjectList []Project `json:"projectList,omitempty"`
}

// NewErrorEnvelope builds an error envelope from plain message strings.
func NewErrorEnvelope(code int, msgs ...string) Envelope {
	apiErrors := make([]APIError, 0, len(msgs))
	for _, msg := range msgs {
		apiErrors = append(apiErrors, APIError{Msg: msg})
	}

	return Envelope{Code: code, Error: apiErrors}
}

// Messages flattens the envelope's error list back into plain strings.
// Used by the client adapter when surfacing server-side failures.
func (e Envelope) Messages() []string {
	msgs := make([]string, 0, len(e.Error))
	for _, apiErr := range e.Error {
		msgs = append(msgs, apiErr.Msg)
	}

	return msgs
}
