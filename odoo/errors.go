package odoo

import (
	"errors"
	"fmt"
	"net/rpc"
	"regexp"
	"strconv"

	"github.com/kolo/xmlrpc"
)

var (
	// ErrAuthenticationFailed is returned when the authenticate call itself
	// could not be performed.
	ErrAuthenticationFailed = errors.New("authentication failed")
	// ErrInvalidCredentials is returned when the server answered authenticate
	// with a falsy uid.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnexpectedReply is returned when a reply does not have the shape
	// expected by the method that was called.
	ErrUnexpectedReply = errors.New("unexpected reply from the server")
	ErrInvalidURL      = errors.New("invalid server URL")
)

// RemoteError is returned by every failed execute_kw.
type RemoteError struct {
	// Fault is true when the server answered with an XML-RPC fault, false
	// when the call did not reach the server or its reply was unreadable.
	Fault   bool
	Code    int
	Message string
	Err     error
}

func (e *RemoteError) Error() string {
	return "Odoo API Error: " + e.Message
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

func newRemoteError(err error) *RemoteError {
	var remote *RemoteError
	if errors.As(err, &remote) {
		return remote
	}
	var fault *xmlrpc.FaultError
	if errors.As(err, &fault) {
		return &RemoteError{Fault: true, Code: fault.Code, Message: fault.String, Err: err}
	}
	return &RemoteError{Message: err.Error(), Err: err}
}

var faultRx = regexp.MustCompile(`(?s)^Fault\((-?\d+)\): (.*)$`)

// classifyCallError turns the errors of the net/rpc based xmlrpc client into
// *xmlrpc.FaultError for faults and leaves transport failures untouched.
func classifyCallError(err error) error {
	var serverErr rpc.ServerError
	if !errors.As(err, &serverErr) {
		return err
	}
	m := faultRx.FindStringSubmatch(string(serverErr))
	if m == nil {
		// bad status codes and unreadable bodies are reported as server errors too
		return fmt.Errorf("xmlrpc transport: %s", string(serverErr))
	}
	code, _ := strconv.Atoi(m[1])
	return &xmlrpc.FaultError{Code: code, String: m[2]}
}

// IsFault tells whether the error is an answer of the server, as opposed to
// a failure to reach it.
func IsFault(err error) bool {
	var fault *xmlrpc.FaultError
	if errors.As(err, &fault) {
		return true
	}
	var remote *RemoteError
	return errors.As(err, &remote) && remote.Fault
}

var (
	ErrNotFound         = errors.New("record not found")
	ErrDuplicate        = errors.New("duplicate record")
	ErrInvalidReference = errors.New("invalid reference")
	ErrValidation       = errors.New("invalid values")
)

// RecordError is returned by the model services. Its message is meant for
// the API consumer, Kind tells how to report it.
type RecordError struct {
	Kind    error
	Message string
}

func NewRecordError(kind error, format string, args ...interface{}) *RecordError {
	return &RecordError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

func (e *RecordError) Error() string {
	return e.Message
}

func (e *RecordError) Unwrap() error {
	return e.Kind
}
