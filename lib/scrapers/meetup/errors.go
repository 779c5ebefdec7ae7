package meetup

import (
	"fmt"
)

// RemoteProtocolError is returned when the API answers with an error body
// (one carrying a non-empty "code") or with a body that cannot be decoded.
type RemoteProtocolError struct {
	Code    string
	Problem string
	Details string
}

func (e *RemoteProtocolError) Error() string {
	if e.Details == "" {
		return fmt.Sprintf("meetup: %s: %s", e.Code, e.Problem)
	}
	return fmt.Sprintf("meetup: %s: %s (%s)", e.Code, e.Problem, e.Details)
}

// NotFoundError is returned when a lookup names an entity that does not exist
// remotely.
type NotFoundError struct {
	Kind string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.Key)
}

// TransportError wraps a failure to complete an exchange with the API.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("meetup: %s: %s", e.Op, e.Err.Error())
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

const malformedResponseCode = "malformed_response"
