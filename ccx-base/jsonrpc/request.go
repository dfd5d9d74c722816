package jsonrpc

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Version is the jsonrpc protocol version carried by a request.
type Version string

const (
	V2 Version = "2.0"

	// DefaultID is the id sent with every request, conceal nodes ignore it.
	DefaultID = "0"

	// PathJSONRPC is the endpoint of jsonrpc calls on both wallet and daemon.
	PathJSONRPC = "/json_rpc"
)

// Params is a positional parameter list, e.g. Params{height}.
type Params []interface{}

// Request is a jsonrpc 2.0 request envelope.
type Request struct {
	JSONRPC Version         `json:"jsonrpc"`
	ID      string          `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params"`
}

// NewRequest wraps params in a jsonrpc 2.0 envelope. Nil params are sent as {}.
func NewRequest(method string, params interface{}) (*Request, error) {
	pb, err := RawBody(params)
	if err != nil {
		return nil, errors.Wrapf(err, "marshal params of %s failed", method)
	}

	return &Request{
		JSONRPC: V2,
		ID:      DefaultID,
		Method:  method,
		Params:  pb,
	}, nil
}

// Marshal returns the request encoded as json.
func (r *Request) Marshal() ([]byte, error) {
	return json.Marshal(r)
}

// RawBody encodes params as they are, without an envelope. It is what the
// daemon http handlers (/getinfo, /gettransactions, ...) expect.
func RawBody(params interface{}) ([]byte, error) {
	if params == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(params)
}

// BuildRequest is NewRequest followed by Marshal.
func BuildRequest(method string, params interface{}) ([]byte, error) {
	req, err := NewRequest(method, params)
	if err != nil {
		return nil, err
	}
	return req.Marshal()
}
