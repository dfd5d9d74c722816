package rpctest

import (
	"bytes"
	"io/ioutil"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func post(t *testing.T, url, body string) string {
	resp, err := http.Post(url, "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := ioutil.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(data)
}

func TestServerMethods(t *testing.T) {
	s := NewServer()
	defer s.Close()

	s.HandleMethod("getblockcount", map[string]interface{}{"count": 5, "status": "OK"})
	s.HandleMethodError("submitblock", -7, "Block not accepted")

	got := post(t, s.URL+"/json_rpc", `{"jsonrpc":"2.0","id":"0","method":"getblockcount","params":{}}`)
	assert.JSONEq(t, `{"jsonrpc":"2.0","id":"0","result":{"count":5,"status":"OK"}}`, got)

	got = post(t, s.URL+"/json_rpc", `{"jsonrpc":"2.0","id":"0","method":"submitblock","params":["00"]}`)
	assert.JSONEq(t, `{"jsonrpc":"2.0","id":"0","error":{"code":-7,"message":"Block not accepted"}}`, got)

	got = post(t, s.URL+"/json_rpc", `{"jsonrpc":"2.0","id":"0","method":"nope","params":{}}`)
	assert.Contains(t, got, "Method not found")

	calls := s.Calls()
	require.Len(t, calls, 3)
	assert.Equal(t, "getblockcount", calls[0].Method)
	assert.Equal(t, `["00"]`, string(calls[1].Params()))
	assert.Equal(t, "application/json", calls[1].Header.Get("Content-Type"))
}

func TestServerPaths(t *testing.T) {
	s := NewServer()
	defer s.Close()

	s.HandlePath("/getheight", `{"height":100,"status":"OK"}`)

	got := post(t, s.URL+"/getheight", `{}`)
	assert.JSONEq(t, `{"height":100,"status":"OK"}`, got)

	got = post(t, s.URL+"/getinfo", `{}`)
	assert.Contains(t, got, "404")

	last, ok := s.LastCall()
	require.True(t, ok)
	assert.Equal(t, "/getinfo", last.Path)
	assert.Equal(t, "{}", string(last.Body))
}

func TestServerAddress(t *testing.T) {
	s := NewServer()
	defer s.Close()

	assert.Equal(t, "http://127.0.0.1", s.Host())
	assert.NotZero(t, s.Port())

	_, ok := s.LastCall()
	assert.False(t, ok)
}
