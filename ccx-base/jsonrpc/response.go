package jsonrpc

import (
	"bytes"
	"encoding/json"

	"github.com/buger/jsonparser"
)

// Response is the envelope a wallet or daemon answers with. Daemon http
// handlers answer with a bare object, in which case Result and Error are
// both empty.
type Response struct {
	ID     json.RawMessage `json:"id,omitempty"`
	Result json.RawMessage `json:"result,omitempty"`
	Error  json.RawMessage `json:"error,omitempty"`
}

// ParseResponse unwraps a response body.
//
// A body that is not json fails with a *ParseError. A truthy "error" member
// fails with an *RPCError. Otherwise the "result" member is returned when it
// is present and not null, and the whole body when it is not.
func ParseResponse(body []byte) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &ParseError{Err: err}
	}

	if !isObject(raw) {
		return raw, nil
	}

	var resp Response
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, &ParseError{Err: err}
	}

	if truthy(resp.Error) {
		return nil, newRPCError(resp.Error)
	}

	if isPresent(resp.Result) {
		return resp.Result, nil
	}
	return raw, nil
}

func isObject(data []byte) bool {
	data = bytes.TrimLeft(data, " \t\r\n")
	return len(data) > 0 && data[0] == '{'
}

func isPresent(data json.RawMessage) bool {
	return len(data) > 0 && !bytes.Equal(data, []byte("null"))
}

// truthy mirrors how the reference node clients test the error member:
// null, false, 0 and "" mean no error.
func truthy(data json.RawMessage) bool {
	if !isPresent(data) {
		return false
	}

	value, typ, _, err := jsonparser.Get(data)
	if err != nil {
		return true
	}

	switch typ {
	case jsonparser.Null, jsonparser.NotExist:
		return false
	case jsonparser.Boolean:
		b, _ := jsonparser.ParseBoolean(value)
		return b
	case jsonparser.Number:
		f, _ := jsonparser.ParseFloat(value)
		return f != 0
	case jsonparser.String:
		return len(value) > 0
	}
	return true
}

func newRPCError(data json.RawMessage) *RPCError {
	e := &RPCError{Data: data}

	value, typ, _, _ := jsonparser.Get(data)
	switch typ {
	case jsonparser.Object:
		e.Code, _ = jsonparser.GetInt(data, "code")
		e.Message, _ = jsonparser.GetString(data, "message")
	case jsonparser.String:
		e.Message, _ = jsonparser.ParseString(value)
	}

	if e.Message == "" {
		e.Message = string(data)
	}
	return e
}
