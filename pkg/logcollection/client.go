// Package logcollection is the client for the Log Collection serviceability
// service.
//
// The XML port lists which service logs each node holds and selects log
// files by service and time window. File content itself comes from a second
// port that answers with DIME framing rather than a SOAP envelope, so
// GetOneFile posts below the envelope layer and reassembles the payload from
// DIME records.
package logcollection

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

const (
	servicePath = "/logcollectionservice2/services/LogCollectionPortTypeService"
	filePath    = "/logcollectionservice/services/DimeGetFileService"
)

// poster is the raw exchange GetOneFile needs. DIME responses cannot pass
// through Send, so file retrieval is driven below the envelope layer.
type poster interface {
	Post(ctx context.Context, endpoint, action string, body []byte) ([]byte, int, error)
}

// Client calls the Log Collection service of one cluster.
type Client struct {
	cfg          *config.Config
	bind         *binding.Client
	post         poster
	fileEndpoint string
	logger       *slog.Logger
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

// WithTransport substitutes the SOAP transport. GetOneFile needs the
// transport to expose raw posts; a transport without them still serves the
// listing and selection operations.
func WithTransport(tr binding.Transport) Option {
	return func(o *options) { o.tr = tr }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// New binds the Log Collection operations of one cluster. The schema covers
// both ports and comes from the endpoint's ?wsdl convention unless WithWSDL
// supplies it.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	logger := logging.WithService(o.logger, "logcollection")

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
			return nil, errors.New("logcollection: WithWSDL is required alongside WithTransport")
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
	var post poster
	if tr == nil {
		tr = st
		post = st
	} else {
		post, _ = tr.(poster)
	}
	bind, err := binding.New(types, ops, endpoint, tr, binding.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	logger.Debug("schema loaded", "operations", ops.Len())
	return &Client{
		cfg:          cfg,
		bind:         bind,
		post:         post,
		fileEndpoint: cfg.Endpoint(filePath),
		logger:       logger,
	}, nil
}

// Invoke calls one Log Collection operation by its vendor name with raw
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
