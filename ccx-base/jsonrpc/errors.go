package jsonrpc

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrTransport is returned when the connection could not be made or
	// was dropped before a full response arrived.
	ErrTransport = errors.New("RPC server error")

	// ErrTimeout is returned when no response arrived within the timeout.
	ErrTimeout = errors.New("RPC timeout")
)

// ParseError is returned when a response body is not valid json.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// RPCError is the error member of a response. Its message is surfaced as is.
type RPCError struct {
	Code    int64
	Message string
	Data    []byte
}

func (e *RPCError) Error() string {
	return e.Message
}

// String includes the code, for logs.
func (e *RPCError) String() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}
