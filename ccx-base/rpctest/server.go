// Package rpctest provides a fake conceal wallet/daemon server for tests.
package rpctest

import (
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"

	"ccx-rpc/ccx-base/jsonrpc"

	"github.com/buger/jsonparser"
	"github.com/gin-gonic/gin"
)

// Call is a request received by the server.
type Call struct {
	Path   string
	Method string
	Header http.Header
	Body   []byte
}

// Params returns the params member of a jsonrpc call.
func (c Call) Params() []byte {
	params, _, _, err := jsonparser.Get(c.Body, "params")
	if err != nil {
		return nil
	}
	return params
}

// Server answers jsonrpc methods on /json_rpc and bare json on any other
// path with canned bodies.
type Server struct {
	*httptest.Server

	mu      sync.Mutex
	methods map[string]string
	paths   map[string]string
	calls   []Call
}

// NewServer starts a server. Close it when done.
func NewServer() *Server {
	gin.SetMode(gin.TestMode)

	s := &Server{
		methods: make(map[string]string),
		paths:   make(map[string]string),
	}

	r := gin.New()
	r.POST(jsonrpc.PathJSONRPC, s.serveJSONRPC)
	r.NoRoute(s.serveRaw)

	s.Server = httptest.NewServer(r)
	return s
}

// HandleMethod answers method with {"jsonrpc":"2.0","id":"0","result":result}.
func (s *Server) HandleMethod(method string, result interface{}) {
	body, err := json.Marshal(map[string]interface{}{
		"jsonrpc": jsonrpc.V2,
		"id":      jsonrpc.DefaultID,
		"result":  result,
	})
	if err != nil {
		panic(err)
	}
	s.HandleMethodBody(method, string(body))
}

// HandleMethodError answers method with a jsonrpc error.
func (s *Server) HandleMethodError(method string, code int, message string) {
	body, err := json.Marshal(map[string]interface{}{
		"jsonrpc": jsonrpc.V2,
		"id":      jsonrpc.DefaultID,
		"error": map[string]interface{}{
			"code":    code,
			"message": message,
		},
	})
	if err != nil {
		panic(err)
	}
	s.HandleMethodBody(method, string(body))
}

// HandleMethodBody answers method with body as is.
func (s *Server) HandleMethodBody(method, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.methods[method] = body
}

// HandlePath answers POSTs to path with body as is.
func (s *Server) HandlePath(path, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paths[path] = body
}

// Calls returns the requests received so far.
func (s *Server) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Call(nil), s.calls...)
}

// LastCall returns the latest request, or false if none arrived.
func (s *Server) LastCall() (Call, bool) {
	calls := s.Calls()
	if len(calls) == 0 {
		return Call{}, false
	}
	return calls[len(calls)-1], true
}

// Host returns the server address as "http://host", the form ccx.New takes.
func (s *Server) Host() string {
	u, _ := url.Parse(s.URL)
	host, _, _ := net.SplitHostPort(u.Host)
	return u.Scheme + "://" + host
}

// Port returns the port the server listens on.
func (s *Server) Port() int {
	u, _ := url.Parse(s.URL)
	_, port, _ := net.SplitHostPort(u.Host)
	n, _ := strconv.Atoi(port)
	return n
}

func (s *Server) record(c *gin.Context, method string, body []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, Call{
		Path:   c.Request.URL.Path,
		Method: method,
		Header: c.Request.Header.Clone(),
		Body:   body,
	})
}

func (s *Server) serveJSONRPC(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	method, _ := jsonparser.GetString(body, "method")
	s.record(c, method, body)

	s.mu.Lock()
	resp, ok := s.methods[method]
	s.mu.Unlock()
	if !ok {
		c.JSON(http.StatusOK, gin.H{
			"jsonrpc": jsonrpc.V2,
			"id":      jsonrpc.DefaultID,
			"error": gin.H{
				"code":    -32601,
				"message": "Method not found",
			},
		})
		return
	}
	c.Data(http.StatusOK, "application/json", []byte(resp))
}

func (s *Server) serveRaw(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	s.record(c, "", body)

	s.mu.Lock()
	resp, ok := s.paths[c.Request.URL.Path]
	s.mu.Unlock()
	if !ok || c.Request.Method != http.MethodPost {
		c.Data(http.StatusNotFound, "text/plain", []byte("404 page not found"))
		return
	}
	c.Data(http.StatusOK, "application/json", []byte(resp))
}
