// Package ccs is the client for Control Center Services, the serviceability
// interface that activates, starts, stops, and lists the feature services of
// a node.
//
// The server splits the surface across two SOAP services, the base one and
// an extended one added in release 10.0. The client binds both and routes
// each operation to the service that declares it, so callers see a single
// operation space.
package ccs

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"github.com/uctools/cucmapi/pkg/binding"
	"github.com/uctools/cucmapi/pkg/config"
	"github.com/uctools/cucmapi/pkg/logging"
	"github.com/uctools/cucmapi/pkg/schema"
	"github.com/uctools/cucmapi/pkg/soap"
)

const (
	servicePath   = "/controlcenterservice2/services/ControlCenterServices"
	servicePathEx = "/controlcenterservice2/services/ControlCenterServicesEx"
)

// Client calls the Control Center Services of one node.
type Client struct {
	cfg    *config.Config
	base   *binding.Client
	ex     *binding.Client
	logger *slog.Logger
}

type options struct {
	wsdl   []byte
	wsdlEx []byte
	tr     binding.Transport
	logger *slog.Logger
}

// Option configures a Client.
type Option func(*options)

// WithWSDL uses the given base-service schema instead of fetching it.
func WithWSDL(wsdl []byte) Option {
	return func(o *options) { o.wsdl = wsdl }
}

// WithWSDLEx uses the given extended-service schema instead of fetching it.
func WithWSDLEx(wsdl []byte) Option {
	return func(o *options) { o.wsdlEx = wsdl }
}

// WithTransport substitutes the SOAP transport.
func WithTransport(tr binding.Transport) Option {
	return func(o *options) { o.tr = tr }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// New binds both control center services of one node. Schemas come from the
// endpoints' ?wsdl convention unless the WithWSDL options supply them.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	logger := logging.WithService(o.logger, "ccs")

	var st *soap.Transport
	if o.tr == nil {
		var err error
		st, err = soap.NewTransportFromConfig(cfg, logger)
		if err != nil {
			return nil, err
		}
	}
	if st == nil && (o.wsdl == nil || o.wsdlEx == nil) {
		return nil, errors.New("ccs: WithWSDL and WithWSDLEx are required alongside WithTransport")
	}

	tr := o.tr
	if tr == nil {
		tr = st
	}

	base, err := bindService(ctx, st, tr, logger, cfg.Endpoint(servicePath), o.wsdl)
	if err != nil {
		return nil, err
	}
	ex, err := bindService(ctx, st, tr, logger, cfg.Endpoint(servicePathEx), o.wsdlEx)
	if err != nil {
		return nil, err
	}

	logger.Debug("schemas loaded", "operations", len(base.Operations())+len(ex.Operations()))
	return &Client{cfg: cfg, base: base, ex: ex, logger: logger}, nil
}

func bindService(ctx context.Context, st *soap.Transport, tr binding.Transport, logger *slog.Logger, endpoint string, wsdl []byte) (*binding.Client, error) {
	if wsdl == nil {
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
	return binding.New(types, ops, endpoint, tr, binding.WithLogger(logger))
}

// Invoke calls one operation by its vendor name, routed to whichever of the
// two services declares it.
func (c *Client) Invoke(ctx context.Context, op string, args binding.Args) (any, error) {
	if _, err := c.base.Describe(op); err == nil {
		return c.base.Invoke(ctx, op, args, nil)
	}
	if _, err := c.ex.Describe(op); err == nil {
		return c.ex.Invoke(ctx, op, args, nil)
	}
	return nil, &schema.UnknownOperationError{Name: op}
}

// Operations lists the operations of both services, sorted.
func (c *Client) Operations() []*schema.OperationDescriptor {
	ops := c.base.Operations()
	ops = append(ops, c.ex.Operations()...)
	sortOperations(ops)
	return ops
}

// Describe returns one operation's descriptor from whichever service
// declares it.
func (c *Client) Describe(name string) (*schema.OperationDescriptor, error) {
	if od, err := c.base.Describe(name); err == nil {
		return od, nil
	}
	return c.ex.Describe(name)
}

func sortOperations(ops []*schema.OperationDescriptor) {
	sort.Slice(ops, func(i, j int) bool { return ops[i].Name < ops[j].Name })
}
