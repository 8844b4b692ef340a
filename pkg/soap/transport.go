package soap

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/beevik/etree"

	"github.com/uctools/cucmapi/pkg/config"
	"github.com/uctools/cucmapi/pkg/logging"
)

// Transport posts SOAP envelopes over HTTPS with basic authentication. It is
// safe for concurrent use; connection reuse and pooling are delegated to the
// underlying http.Client.
type Transport struct {
	username   string
	password   string
	timeout    time.Duration
	maxBody    int64
	tlsConfig  *tls.Config
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Transport.
type Option func(*Transport)

// WithTimeout sets the HTTP timeout. The default is 30 seconds.
func WithTimeout(timeout time.Duration) Option {
	return func(t *Transport) { t.timeout = timeout }
}

// WithHTTPClient replaces the HTTP client entirely. TLS and timeout options
// are ignored when a custom client is supplied.
func WithHTTPClient(hc *http.Client) Option {
	return func(t *Transport) { t.httpClient = hc }
}

// WithInsecureSkipVerify disables server certificate verification. CUCM
// ships with a self-signed certificate, so lab clusters commonly need this.
func WithInsecureSkipVerify() Option {
	return func(t *Transport) { t.tlsConfig.InsecureSkipVerify = true }
}

// WithRootCAs sets the CA pool used to verify the server certificate.
func WithRootCAs(pool *x509.CertPool) Option {
	return func(t *Transport) { t.tlsConfig.RootCAs = pool }
}

// WithLogger sets the logger. SOAP exchanges are logged at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Transport) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithMaxResponseSize bounds how many response bytes are read. The default
// is 64 MiB, which comfortably covers large listings and trace files.
func WithMaxResponseSize(n int64) Option {
	return func(t *Transport) { t.maxBody = n }
}

// NewTransportFromConfig builds a transport from client configuration,
// loading the CA bundle when one is named.
func NewTransportFromConfig(cfg *config.Config, logger *slog.Logger, opts ...Option) (*Transport, error) {
	base := []Option{WithTimeout(cfg.Timeout.Std()), WithLogger(logger)}
	if cfg.InsecureSkipVerify {
		base = append(base, WithInsecureSkipVerify())
	}
	if cfg.CAFile != "" {
		pem, err := os.ReadFile(cfg.CAFile)
		if err != nil {
			return nil, fmt.Errorf("read CA bundle: %w", err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, fmt.Errorf("no certificates found in %s", cfg.CAFile)
		}
		base = append(base, WithRootCAs(pool))
	}
	return NewTransport(cfg.Username, cfg.Password, append(base, opts...)...), nil
}

// NewTransport creates a transport that authenticates every request with the
// given credentials.
func NewTransport(username, password string, opts ...Option) *Transport {
	t := &Transport{
		username:  username,
		password:  password,
		timeout:   30 * time.Second,
		maxBody:   64 << 20,
		tlsConfig: &tls.Config{MinVersion: tls.VersionTLS12},
		logger:    logging.Nop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.httpClient == nil {
		t.httpClient = &http.Client{
			Timeout:   t.timeout,
			Transport: &http.Transport{TLSClientConfig: t.tlsConfig},
		}
	}
	return t
}

// Send posts a payload to the endpoint and returns the response payload. The
// server's own errors come back as *Fault with code, string, and detail
// intact; everything that prevented a SOAP exchange comes back as
// *TransportError.
func (t *Transport) Send(ctx context.Context, endpoint, action string, payload *etree.Element) (*etree.Element, error) {
	op := payload.Tag

	doc := Envelope(payload)
	data, err := doc.WriteToBytes()
	if err != nil {
		return nil, &TransportError{Op: op, URL: endpoint, Err: err}
	}

	start := time.Now()
	respBody, status, err := t.Post(ctx, endpoint, action, data)
	if err != nil {
		return nil, &TransportError{Op: op, URL: endpoint, Err: err}
	}
	t.logger.Debug("soap call",
		"op", op,
		"url", endpoint,
		"status", status,
		"duration", time.Since(start))

	parsed, perr := ParseEnvelope(respBody)
	var fault *Fault
	if errors.As(perr, &fault) {
		// Faults arrive with HTTP 500; the fault itself is the error.
		return nil, fault
	}
	if status != http.StatusOK {
		if perr == nil {
			perr = errors.New(http.StatusText(status))
		}
		return nil, &TransportError{Op: op, URL: endpoint, StatusCode: status, Err: perr}
	}
	if perr != nil {
		return nil, &TransportError{Op: op, URL: endpoint, StatusCode: status, Err: perr}
	}
	return parsed, nil
}

// Post sends a prebuilt request body and returns the raw response bytes and
// HTTP status. Log collection file downloads answer with DIME framing
// instead of a SOAP envelope, so that path needs the raw response; every
// normal operation should go through Send.
func (t *Transport) Post(ctx context.Context, endpoint, action string, body []byte) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, 0, err
	}
	req.SetBasicAuth(t.username, t.password)
	req.Header.Set("Content-Type", ContentType)
	req.Header.Set("SOAPAction", `"`+action+`"`)

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, t.maxBody))
	if err != nil {
		return nil, resp.StatusCode, err
	}
	return data, resp.StatusCode, nil
}

// FetchWSDL retrieves a schema document from the server. The serviceability
// services publish theirs at the endpoint itself (?wsdl).
func (t *Transport) FetchWSDL(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &TransportError{URL: url, Err: err}
	}
	req.SetBasicAuth(t.username, t.password)

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{URL: url, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &TransportError{URL: url, StatusCode: resp.StatusCode,
			Err: errors.New(http.StatusText(resp.StatusCode))}
	}
	return io.ReadAll(io.LimitReader(resp.Body, t.maxBody))
}

// TransportError reports a failure to complete the SOAP exchange: network
// errors, timeouts, and HTTP-level failures that carried no fault.
type TransportError struct {
	Op         string // operation name, empty for schema fetches
	URL        string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *TransportError) Error() string {
	prefix := "soap"
	if e.Op != "" {
		prefix = e.Op
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s: status %d: %v", prefix, e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", prefix, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Timeout reports whether the failure was a timeout. Timeouts are the one
// transport failure a caller may reasonably retry for read-style operations;
// writes are not auto-retried anywhere because the schema provides no
// idempotency keys.
func (e *TransportError) Timeout() bool {
	var nerr net.Error
	if errors.As(e.Err, &nerr) {
		return nerr.Timeout()
	}
	return errors.Is(e.Err, context.DeadlineExceeded)
}
