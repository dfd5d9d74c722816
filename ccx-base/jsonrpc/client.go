package jsonrpc

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"net"
	"net/http"
	"strconv"
	"time"

	"ccx-rpc/ccx-base/monitor"
	"ccx-rpc/ccx-base/util"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/resty.v1"
)

const (
	metricRequest = "rpc.request"
	metricLatency = "rpc.latency_ms"
)

// Client posts json bodies to scheme://host:port{path} and unwraps the
// responses. It holds no per-call state and is safe for concurrent use.
type Client struct {
	scheme string
	host   string

	httpClient *http.Client
	rest       *resty.Client
	log        logrus.FieldLogger
	metrics    monitor.Metrics
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sends requests through a copy of hc, which keeps its
// Transport but uses the client timeout. hc itself is not modified.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger logs every call at debug level.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithMetrics reports a counter and a latency histogram per call.
func WithMetrics(m monitor.Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// NewClient returns a client for the given scheme (http or https) and host.
func NewClient(scheme, host string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		scheme: scheme,
		host:   host,
		log:    discardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient != nil {
		// resty sets the timeout and cookie jar on the client it is given.
		hc := *c.httpClient
		c.rest = resty.NewWithClient(&hc)
	} else {
		c.rest = resty.New()
	}
	c.rest.
		SetLogger(util.NewLogWriter(c.log.Debug)).
		SetRetryCount(0).
		SetTimeout(timeout)
	return c
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.Out = ioutil.Discard
	return l
}

// URL returns the address a request for port and path is sent to.
func (c *Client) URL(port int, path string) string {
	return c.scheme + "://" + net.JoinHostPort(c.host, strconv.Itoa(port)) + path
}

// Call sends a jsonrpc 2.0 request to the /json_rpc endpoint of port.
func (c *Client) Call(ctx context.Context, port int, method string, params interface{}) (json.RawMessage, error) {
	body, err := BuildRequest(method, params)
	if err != nil {
		return nil, err
	}
	return c.Post(ctx, port, PathJSONRPC, body)
}

// CallRaw sends params without an envelope to path on port.
func (c *Client) CallRaw(ctx context.Context, port int, path string, params interface{}) (json.RawMessage, error) {
	body, err := RawBody(params)
	if err != nil {
		return nil, errors.Wrapf(err, "marshal params of %s failed", path)
	}
	return c.Post(ctx, port, path, body)
}

// Post sends body and returns the unwrapped result.
//
// Failures are one of ErrTransport, ErrTimeout, the error of a cancelled ctx,
// a *ParseError or an *RPCError.
func (c *Client) Post(ctx context.Context, port int, path string, body []byte) (result json.RawMessage, err error) {
	url := c.URL(port, path)
	log := c.log.WithFields(logrus.Fields{
		"url":  url,
		"size": len(body),
	})

	span, ctx := monitor.StartDDSpan(ctx, "ccx.rpc", path, monitor.SpanTags{
		"http.url": url,
	})
	start := time.Now()
	defer func() {
		status := statusOf(err)
		monitor.FinishDDSpan(span, monitor.SpanTags{"rpc.status": status}, err)
		c.observe(path, status, time.Since(start))
	}()

	log.Debug("rpc request")
	resp, err := c.rest.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetContentLength(true).
		SetBody(body).
		Post(url)
	if err == nil && ctx.Err() != nil {
		// resty swallows the error of a request aborted through its context.
		err = ctx.Err()
	}
	if err == nil && (resp == nil || resp.RawResponse == nil) {
		err = ErrTransport
	}
	if err != nil {
		log.WithError(err).Debug("rpc request failed")
		return nil, classify(ctx, err)
	}

	result, err = ParseResponse(resp.Body())
	if err != nil {
		log.WithError(err).WithField("status", resp.StatusCode()).Debug("rpc response rejected")
		return nil, err
	}

	log.WithField("elapsed", time.Since(start)).Debug("rpc response")
	return result, nil
}

// classify maps an http client failure onto the transport error kinds.
func classify(ctx context.Context, err error) error {
	if ctx.Err() == context.Canceled {
		return errors.Wrap(ctx.Err(), "rpc request cancelled")
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return errors.WithStack(ErrTimeout)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return errors.WithStack(ErrTimeout)
	}
	return errors.WithStack(ErrTransport)
}

func statusOf(err error) string {
	if err == nil {
		return "ok"
	}

	var (
		rpcErr   *RPCError
		parseErr *ParseError
	)
	switch {
	case errors.Is(err, ErrTimeout):
		return "timeout"
	case errors.Is(err, ErrTransport):
		return "transport"
	case errors.As(err, &rpcErr):
		return "rpc_error"
	case errors.As(err, &parseErr):
		return "parse_error"
	}
	return "cancelled"
}

func (c *Client) observe(path, status string, elapsed time.Duration) {
	if c.metrics == nil {
		return
	}

	tags := monitor.MetricsTags{
		"path":   path,
		"status": status,
	}
	c.metrics.Count(metricRequest, 1, tags)
	c.metrics.Histogram(metricLatency, float64(elapsed)/float64(time.Millisecond), tags)
}
