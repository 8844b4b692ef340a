// Package perfmon is the client for the PerfmonService performance counter
// service.
//
// Counters live on a host under an object, optionally split into instances,
// and are addressed by a backslash path like
// \\pub01\Cisco CallManager\CallsActive. One-shot collection reads every
// counter of an object in a single call; session based collection registers
// a counter set once and then polls it cheaply with Collect.
package perfmon

import (
	"context"
	"errors"
	"log/slog"

	"github.com/uctools/cucmapi/pkg/binding"
	"github.com/uctools/cucmapi/pkg/config"
	"github.com/uctools/cucmapi/pkg/logging"
	"github.com/uctools/cucmapi/pkg/schema"
	"github.com/uctools/cucmapi/pkg/soap"
)

const servicePath = "/perfmonservice2/services/PerfmonService"

// Client calls the PerfmonService of one cluster.
type Client struct {
	cfg    *config.Config
	bind   *binding.Client
	logger *slog.Logger
}

type options struct {
	wsdl   []byte
	tr     binding.Transport
	logger *slog.Logger
}

// Option configures a Client.
type Option func(*options)

// WithWSDL uses the given schema document instead of fetching it from the
// service endpoint. Required when substituting a transport that cannot GET.
func WithWSDL(wsdl []byte) Option {
	return func(o *options) { o.wsdl = wsdl }
}

// WithTransport substitutes the SOAP transport.
func WithTransport(tr binding.Transport) Option {
	return func(o *options) { o.tr = tr }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// New binds the PerfmonService operations of one cluster. The schema comes
// from the endpoint's ?wsdl convention unless WithWSDL supplies it.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	logger := logging.WithService(o.logger, "perfmon")

	var st *soap.Transport
	if o.tr == nil {
		var err error
		st, err = soap.NewTransportFromConfig(cfg, logger)
		if err != nil {
			return nil, err
		}
	}

	endpoint := cfg.Endpoint(servicePath)

	wsdl := o.wsdl
	if wsdl == nil {
		if st == nil {
			return nil, errors.New("perfmon: WithWSDL is required alongside WithTransport")
		}
		var err error
		wsdl, err = st.FetchWSDL(ctx, endpoint+"?wsdl")
		if err != nil {
			return nil, err
		}
	}

	types, ops, err := schema.LoadWSDL(wsdl)
	if err != nil {
		return nil, err
	}

	tr := o.tr
	if tr == nil {
		tr = st
	}
	bind, err := binding.New(types, ops, endpoint, tr, binding.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	logger.Debug("schema loaded", "operations", ops.Len())
	return &Client{cfg: cfg, bind: bind, logger: logger}, nil
}

// Invoke calls one PerfmonService operation by its vendor name with raw
// schema arguments. The typed helpers are usually the better entry point.
func (c *Client) Invoke(ctx context.Context, op string, args binding.Args) (any, error) {
	return c.bind.Invoke(ctx, op, args, nil)
}

// Operations lists the operations of the loaded schema, sorted.
func (c *Client) Operations() []*schema.OperationDescriptor {
	return c.bind.Operations()
}

// Describe returns one operation's descriptor.
func (c *Client) Describe(name string) (*schema.OperationDescriptor, error) {
	return c.bind.Describe(name)
}
