package jsonrpc

import (
	"context"
	"io"
	"io/ioutil"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"testing"
	"time"

	"ccx-rpc/ccx-base/monitor"

	"github.com/jarcoal/httpmock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func splitServerURL(t *testing.T, raw string) (string, int) {
	u, err := url.Parse(raw)
	require.NoError(t, err)
	host, portStr, err := net.SplitHostPort(u.Host)
	require.NoError(t, err)
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)
	return host, port
}

type recordedMetrics struct {
	sync.Mutex
	counts map[string]int64
	tags   []monitor.MetricsTags
}

func (m *recordedMetrics) Count(name string, value int64, tags monitor.MetricsTags) {
	m.Lock()
	defer m.Unlock()
	if m.counts == nil {
		m.counts = make(map[string]int64)
	}
	m.counts[name] += value
	m.tags = append(m.tags, tags)
}

func (m *recordedMetrics) Histogram(name string, value float64, tags monitor.MetricsTags) {}

func TestClientRoundTrip(t *testing.T) {
	var (
		gotContentType string
		gotLength      int64
		gotBody        []byte
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotLength = r.ContentLength
		gotBody, _ = ioutil.ReadAll(r.Body)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, PathJSONRPC, r.URL.Path)
		w.Write([]byte(`{"jsonrpc":"2.0","id":"0","result":{"count":5}}`))
	}))
	defer srv.Close()

	host, port := splitServerURL(t, srv.URL)
	metrics := &recordedMetrics{}
	c := NewClient("http", host, time.Second, WithMetrics(metrics))

	result, err := c.Call(context.Background(), port, "getblockcount", nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"count":5}`, string(result))

	assert.Equal(t, "application/json", gotContentType)
	assert.EqualValues(t, len(gotBody), gotLength)
	assert.Equal(t, `{"jsonrpc":"2.0","id":"0","method":"getblockcount","params":{}}`, string(gotBody))

	assert.EqualValues(t, 1, metrics.counts[metricRequest])
	assert.Equal(t, "ok", metrics.tags[0]["status"])
	assert.Equal(t, PathJSONRPC, metrics.tags[0]["path"])
}

func TestClientCallRaw(t *testing.T) {
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = ioutil.ReadAll(r.Body)
		assert.Equal(t, "/gettransactions", r.URL.Path)
		w.Write([]byte(`{"status":"OK","txs_as_hex":[]}`))
	}))
	defer srv.Close()

	host, port := splitServerURL(t, srv.URL)
	c := NewClient("http", host, time.Second)

	result, err := c.CallRaw(context.Background(), port, "/gettransactions", map[string][]string{"txs_hashes": {}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"OK","txs_as_hex":[]}`, string(result))
	assert.Equal(t, `{"txs_hashes":[]}`, string(gotBody))
}

func TestClientRPCError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"jsonrpc":"2.0","id":"0","error":{"message":"boom"}}`))
	}))
	defer srv.Close()

	host, port := splitServerURL(t, srv.URL)
	metrics := &recordedMetrics{}
	c := NewClient("http", host, time.Second, WithMetrics(metrics))

	_, err := c.Call(context.Background(), port, "getblockcount", nil)
	require.Error(t, err)
	assert.Equal(t, "boom", err.Error())
	assert.Equal(t, "rpc_error", metrics.tags[0]["status"])
}

func TestClientTimeout(t *testing.T) {
	aborted := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// the server notices a closed connection only once the body is read
		io.Copy(ioutil.Discard, r.Body)
		select {
		case <-r.Context().Done():
			close(aborted)
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	host, port := splitServerURL(t, srv.URL)
	c := NewClient("http", host, 50*time.Millisecond)

	start := time.Now()
	_, err := c.Call(context.Background(), port, "getblockcount", nil)
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTimeout), err.Error())
	assert.Equal(t, ErrTimeout.Error(), err.Error())
	assert.True(t, elapsed < 200*time.Millisecond, elapsed.String())

	assert.Eventually(t, func() bool {
		select {
		case <-aborted:
			return true
		default:
			return false
		}
	}, time.Second, 10*time.Millisecond)
}

func TestClientContextDeadline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// the server notices a closed connection only once the body is read
		io.Copy(ioutil.Discard, r.Body)
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	host, port := splitServerURL(t, srv.URL)
	c := NewClient("http", host, 5*time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.Call(ctx, port, "getblockcount", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTimeout), err.Error())
}

func TestClientTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	host, port := splitServerURL(t, srv.URL)
	srv.Close()

	c := NewClient("http", host, time.Second)
	_, err := c.Call(context.Background(), port, "getblockcount", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTransport), err.Error())
	assert.Equal(t, "RPC server error", err.Error())
}

func TestClientParseError(t *testing.T) {
	mock := httpmock.NewMockTransport()
	mock.RegisterResponder(http.MethodPost, "http://daemon.local:16000/getinfo",
		httpmock.NewStringResponder(http.StatusBadGateway, "<html>bad gateway</html>"))

	c := NewClient("http", "daemon.local", time.Second, WithHTTPClient(&http.Client{Transport: mock}))
	_, err := c.CallRaw(context.Background(), 16000, "/getinfo", nil)
	require.Error(t, err)

	var parseErr *ParseError
	assert.True(t, errors.As(err, &parseErr))
	assert.Contains(t, err.Error(), "invalid character")
	assert.Equal(t, 1, mock.GetTotalCallCount())
}

func TestClientKeepsCallerHTTPClient(t *testing.T) {
	mock := httpmock.NewMockTransport()
	mock.RegisterResponder(http.MethodPost, "http://daemon.local:16000/getheight",
		httpmock.NewStringResponder(http.StatusOK, `{"height":1,"status":"OK"}`))

	hc := &http.Client{Transport: mock, Timeout: time.Minute}
	c := NewClient("http", "daemon.local", 50*time.Millisecond, WithHTTPClient(hc))

	_, err := c.CallRaw(context.Background(), 16000, "/getheight", nil)
	require.NoError(t, err)

	assert.Equal(t, time.Minute, hc.Timeout)
	assert.Nil(t, hc.Jar)
	assert.Equal(t, mock, hc.Transport)
	assert.Equal(t, 1, mock.GetTotalCallCount())
}

func TestClientURL(t *testing.T) {
	c := NewClient("https", "node.conceal.network", time.Second)
	assert.Equal(t, "https://node.conceal.network:16000/json_rpc", c.URL(16000, PathJSONRPC))

	c = NewClient("http", "::1", time.Second)
	assert.Equal(t, "http://[::1]:3333/getheight", c.URL(3333, "/getheight"))
}
