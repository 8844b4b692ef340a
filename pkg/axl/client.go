// Package axl is the client for the AXL provisioning service.
//
// AXL is schema-driven: every operation of the loaded release is callable
// through Invoke under its verbatim vendor name, with arguments validated
// against the schema before anything reaches the cluster. The SQL helpers
// cover the thin SQL operations that bypass typed results.
package axl

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"strings"

	"github.com/uctools/cucmapi/pkg/binding"
	"github.com/uctools/cucmapi/pkg/config"
	"github.com/uctools/cucmapi/pkg/logging"
	"github.com/uctools/cucmapi/pkg/schema"
	"github.com/uctools/cucmapi/pkg/soap"
)

// WSDLName is the schema file each release directory carries, next to its
// AXLSoap.xsd and AXLEnums.xsd siblings.
const WSDLName = "AXLAPI.wsdl"

const servicePath = "/axl/"

// Client calls the AXL provisioning service of one cluster.
type Client struct {
	cfg    *config.Config
	bind   *binding.Client
	types  *schema.TypeCatalog
	ops    *schema.OperationCatalog
	logger *slog.Logger
}

type options struct {
	fsys   fs.FS
	tr     binding.Transport
	logger *slog.Logger
}

// Option configures a Client.
type Option func(*options)

// WithSchemaFS reads schema releases from fsys instead of the configured
// schema directory. The layout is one directory per version, each holding
// an AXLAPI.wsdl.
func WithSchemaFS(fsys fs.FS) Option {
	return func(o *options) { o.fsys = fsys }
}

// WithTransport substitutes the SOAP transport.
func WithTransport(tr binding.Transport) Option {
	return func(o *options) { o.tr = tr }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// New loads the schema release named by cfg.Version and binds it to the
// cluster's AXL endpoint. Cisco does not publish the AXL schema at the
// endpoint, so it must come from disk (the "Cisco AXL Toolkit" download).
func New(cfg *config.Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	logger := logging.WithService(o.logger, "axl")

	fsys := o.fsys
	if fsys == nil {
		if cfg.SchemaDir == "" {
			return nil, errors.New("axl: no schema source: set schemaDir or use WithSchemaFS")
		}
		fsys = os.DirFS(cfg.SchemaDir)
	}

	types, ops, err := loadRelease(fsys, cfg.Version)
	if err != nil {
		return nil, err
	}

	tr := o.tr
	if tr == nil {
		tr, err = soap.NewTransportFromConfig(cfg, logger)
		if err != nil {
			return nil, err
		}
	}

	bind, err := binding.New(types, ops, cfg.Endpoint(servicePath), tr, binding.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	logger.Debug("schema loaded", "version", cfg.Version, "operations", ops.Len())
	return &Client{cfg: cfg, bind: bind, types: types, ops: ops, logger: logger}, nil
}

// loadRelease reads one version directory. A missing release reports which
// releases the schema source does have.
func loadRelease(fsys fs.FS, version string) (*schema.TypeCatalog, *schema.OperationCatalog, error) {
	name := path.Join(version, WSDLName)
	if _, err := fs.Stat(fsys, name); err != nil {
		if versions, verr := schema.Versions(fsys, WSDLName); verr == nil && len(versions) > 0 {
			return nil, nil, fmt.Errorf("axl: schema release %s not found, have %s",
				version, strings.Join(versions, ", "))
		}
		return nil, nil, fmt.Errorf("axl: schema release %s not found", version)
	}
	return schema.LoadWSDLFile(fsys, name)
}

// Invoke calls one AXL operation by its vendor name, e.g. "getPhone" or
// "listCss". Arguments follow the request schema; tags project the result
// for get- and list-style operations.
func (c *Client) Invoke(ctx context.Context, op string, args binding.Args, tags binding.ReturnedTags) (any, error) {
	return c.bind.Invoke(ctx, op, args, tags)
}

// Operations lists the operations of the loaded schema release, sorted.
func (c *Client) Operations() []*schema.OperationDescriptor {
	return c.bind.Operations()
}

// Describe returns one operation's descriptor.
func (c *Client) Describe(name string) (*schema.OperationDescriptor, error) {
	return c.bind.Describe(name)
}

// Version returns the loaded schema release.
func (c *Client) Version() string { return c.cfg.Version }

// Versions lists the schema releases available in a schema directory.
func Versions(dir string) ([]string, error) {
	return schema.Versions(os.DirFS(dir), WSDLName)
}
