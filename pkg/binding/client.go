package binding

import (
	"context"
	"errors"
	"log/slog"

	"github.com/beevik/etree"

	"github.com/uctools/cucmapi/pkg/logging"
	"github.com/uctools/cucmapi/pkg/schema"
)

// Transport delivers a built request and returns the response payload.
// *soap.Transport satisfies it; tests substitute their own.
type Transport interface {
	Send(ctx context.Context, endpoint, action string, payload *etree.Element) (*etree.Element, error)
}

// Client binds a catalog pair to an endpoint. Every service client in this
// module is a thin facade over one of these. A Client is immutable after New
// and safe for concurrent use; calls carry no state between them.
type Client struct {
	types    *schema.TypeCatalog
	ops      *schema.OperationCatalog
	endpoint string
	tr       Transport
	logger   *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger. Calls are logged at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New binds the catalogs to an endpoint.
func New(types *schema.TypeCatalog, ops *schema.OperationCatalog, endpoint string, tr Transport, opts ...Option) (*Client, error) {
	if types == nil || ops == nil {
		return nil, errors.New("binding: both catalogs are required")
	}
	if endpoint == "" {
		return nil, errors.New("binding: endpoint is required")
	}
	if tr == nil {
		return nil, errors.New("binding: transport is required")
	}

	c := &Client{
		types:    types,
		ops:      ops,
		endpoint: endpoint,
		tr:       tr,
		logger:   logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Operations lists the bound operations sorted by name.
func (c *Client) Operations() []*schema.OperationDescriptor {
	return c.ops.Operations()
}

// Describe returns the descriptor for one operation, matching the vendor
// name verbatim.
func (c *Client) Describe(name string) (*schema.OperationDescriptor, error) {
	return c.ops.Resolve(name)
}

// Endpoint returns the URL requests are posted to.
func (c *Client) Endpoint() string { return c.endpoint }

// Build renders a request without sending it. The returned element is
// namespace-qualified and ready for Transport.Send with the descriptor's
// action.
func (c *Client) Build(name string, args Args, tags ReturnedTags) (*etree.Element, *schema.OperationDescriptor, error) {
	op, err := c.ops.Resolve(name)
	if err != nil {
		return nil, nil, err
	}
	el, err := c.build(op, args, tags)
	if err != nil {
		return nil, nil, err
	}
	return el, op, nil
}

// Invoke builds, sends, and normalizes one call. The result is a string for
// scalar responses, an Object for singular rows, and []Object or []string
// for listings. Build failures surface before anything touches the network.
func (c *Client) Invoke(ctx context.Context, name string, args Args, tags ReturnedTags) (any, error) {
	op, err := c.ops.Resolve(name)
	if err != nil {
		return nil, err
	}
	payload, err := c.send(ctx, op, args, tags)
	if err != nil {
		return nil, err
	}
	return NormalizeResponse(c.types, op, payload, tags)
}

// InvokeRaw builds and sends one call and returns the response payload
// without normalizing it. The SQL facade uses this to read untyped rows.
func (c *Client) InvokeRaw(ctx context.Context, name string, args Args, tags ReturnedTags) (*etree.Element, error) {
	op, err := c.ops.Resolve(name)
	if err != nil {
		return nil, err
	}
	return c.send(ctx, op, args, tags)
}

func (c *Client) send(ctx context.Context, op *schema.OperationDescriptor, args Args, tags ReturnedTags) (*etree.Element, error) {
	el, err := c.build(op, args, tags)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("invoke", "op", op.Name, "category", string(op.Category))
	return c.tr.Send(ctx, c.endpoint, op.Action, el)
}

func (c *Client) build(op *schema.OperationDescriptor, args Args, tags ReturnedTags) (*etree.Element, error) {
	el, err := BuildRequest(c.types, op, args, tags)
	if err != nil {
		return nil, err
	}
	el.CreateAttr("xmlns", c.ops.TargetNamespace())
	return el, nil
}
