// Package ccx is a client for the conceal wallet (concealwallet and walletd)
// and daemon (conceald) rpc interfaces.
//
// Every method validates its arguments first and returns a *ValidationError
// without touching the network when one is malformed. Results are returned
// as the raw json the node answered with, already unwrapped from the
// jsonrpc envelope.
package ccx

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"regexp"
	"strings"
	"time"

	"ccx-rpc/ccx-base/jsonrpc"
	"ccx-rpc/ccx-base/monitor"

	"github.com/sirupsen/logrus"
)

const (
	// DefaultTimeout is used when no timeout is given.
	DefaultTimeout = 5000 * time.Millisecond

	MinMixIn            = 2
	MaxMixIn            = 10
	DefaultUnlockHeight = 0
	// DefaultFee is the base fee of a transaction in raw units.
	DefaultFee = 10
	// DefaultCharacterFee is charged per message character in raw units.
	DefaultCharacterFee = 10
	MaxReserveSize      = 255
)

var hostPattern = regexp.MustCompile(`^(http|https)://(.+)$`)

// Config is the immutable configuration of a Client.
type Config struct {
	Scheme     string
	Host       string
	WalletPort int
	DaemonPort int
	Timeout    time.Duration
}

// Transport sends a serialized body to a port and path of the configured
// host and returns the unwrapped result. *jsonrpc.Client implements it.
type Transport interface {
	Post(ctx context.Context, port int, path string, body []byte) (json.RawMessage, error)
}

// Client exposes one method per wallet or daemon procedure. It is safe for
// concurrent use.
type Client struct {
	cfg       Config
	transport Transport
}

type options struct {
	timeout   time.Duration
	transport Transport
	rpcOpts   []jsonrpc.Option
}

// Option configures a Client.
type Option func(*options)

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.timeout = timeout
	}
}

// WithHTTPClient sends requests through hc.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) {
		o.rpcOpts = append(o.rpcOpts, jsonrpc.WithHTTPClient(hc))
	}
}

// WithLogger logs requests at debug level. Nothing is logged by default.
func WithLogger(log logrus.FieldLogger) Option {
	return func(o *options) {
		o.rpcOpts = append(o.rpcOpts, jsonrpc.WithLogger(log))
	}
}

// WithMetrics reports request counts and latencies, e.g. to a
// monitor.StatsdReporter.
func WithMetrics(m monitor.Metrics) Option {
	return func(o *options) {
		o.rpcOpts = append(o.rpcOpts, jsonrpc.WithMetrics(m))
	}
}

// WithTransport replaces the http transport. WithHTTPClient, WithLogger and
// WithMetrics have no effect with it.
func WithTransport(t Transport) Option {
	return func(o *options) {
		o.transport = t
	}
}

// New returns a client for host, which must be http:// or https:// followed
// by a hostname, an IPv4 address or a bracketed IPv6 address, without port
// or path. Ports are passed through unchecked.
func New(host string, walletPort, daemonPort int, opts ...Option) (*Client, error) {
	if host == "" {
		return nil, ErrHostRequired
	}
	m := hostPattern.FindStringSubmatch(host)
	if m == nil {
		return nil, ErrInvalidHost
	}
	hostname, ok := bareHost(m[2])
	if !ok {
		return nil, ErrInvalidHost
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.timeout <= 0 {
		o.timeout = DefaultTimeout
	}

	cfg := Config{
		Scheme:     m[1],
		Host:       hostname,
		WalletPort: walletPort,
		DaemonPort: daemonPort,
		Timeout:    o.timeout,
	}

	transport := o.transport
	if transport == nil {
		transport = jsonrpc.NewClient(cfg.Scheme, cfg.Host, cfg.Timeout, o.rpcOpts...)
	}

	return &Client{
		cfg:       cfg,
		transport: transport,
	}, nil
}

// bareHost returns the hostname or ip of the part after the scheme. A trailing
// slash is dropped and IPv6 brackets are removed. Ports, paths, queries and
// userinfo are rejected since ports are given separately.
func bareHost(s string) (string, bool) {
	s = strings.TrimSuffix(s, "/")
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		ip := s[1 : len(s)-1]
		if net.ParseIP(ip) == nil || !strings.Contains(ip, ":") {
			return "", false
		}
		return ip, true
	}
	if s == "" || strings.ContainsAny(s, ":/?#@[] \t") {
		return "", false
	}
	return s, true
}

// Config returns the client configuration.
func (c *Client) Config() Config {
	return c.cfg
}

func (c *Client) walletRPC(ctx context.Context, method string, params interface{}) (json.RawMessage, error) {
	return c.jsonRPC(ctx, c.cfg.WalletPort, method, params)
}

func (c *Client) daemonRPC(ctx context.Context, method string, params interface{}) (json.RawMessage, error) {
	return c.jsonRPC(ctx, c.cfg.DaemonPort, method, params)
}

func (c *Client) jsonRPC(ctx context.Context, port int, method string, params interface{}) (json.RawMessage, error) {
	body, err := jsonrpc.BuildRequest(method, params)
	if err != nil {
		return nil, err
	}
	return c.transport.Post(ctx, port, jsonrpc.PathJSONRPC, body)
}

// daemonHandler calls one of the daemon http handlers, which take the bare
// params object.
func (c *Client) daemonHandler(ctx context.Context, path string, params interface{}) (json.RawMessage, error) {
	body, err := jsonrpc.RawBody(params)
	if err != nil {
		return nil, err
	}
	return c.transport.Post(ctx, c.cfg.DaemonPort, path, body)
}
