package schematest

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/beevik/etree"
)

// RecordedRequest is one SOAP call the server saw.
type RecordedRequest struct {
	Op       string         // local name of the first Body child
	Action   string         // SOAPAction header with surrounding quotes stripped
	Username string         // basic auth user, empty when absent
	Path     string         // request URL path
	Payload  *etree.Element // the first Body child; nil when the body did not parse
	Body     string         // raw request body
}

// Responder produces the full HTTP response for one recorded request. Use
// Envelope and FaultBody to build SOAP bodies.
type Responder func(req RecordedRequest) (status int, body string)

// Server is a canned SOAP endpoint for client tests. It records every
// request and delegates the reply to a Responder.
type Server struct {
	t       testing.TB
	srv     *httptest.Server
	respond Responder
	wsdl    string
	wsdlAt  map[string]string

	mu   sync.Mutex
	reqs []RecordedRequest
}

// NewServer starts a SOAP test server. It is closed automatically when the
// test finishes.
func NewServer(t testing.TB, respond Responder) *Server {
	t.Helper()

	s := &Server{t: t, respond: respond}
	s.srv = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.srv.Close)
	return s
}

// ServeWSDL makes the server answer GET requests with the given WSDL, for
// clients that fetch their schema from the live endpoint.
func (s *Server) ServeWSDL(wsdl string) { s.wsdl = wsdl }

// ServeWSDLAt serves a WSDL for GETs of one URL path only. Services that
// publish several schemas under one host register each path separately.
func (s *Server) ServeWSDLAt(path, wsdl string) {
	if s.wsdlAt == nil {
		s.wsdlAt = make(map[string]string)
	}
	s.wsdlAt[path] = wsdl
}

// URL returns the server's base URL.
func (s *Server) URL() string { return s.srv.URL }

// Requests returns the recorded requests in arrival order.
func (s *Server) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]RecordedRequest, len(s.reqs))
	copy(out, s.reqs)
	return out
}

// RequestCount returns how many SOAP calls the server has seen.
func (s *Server) RequestCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.reqs)
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		wsdl := s.wsdl
		if at, ok := s.wsdlAt[r.URL.Path]; ok {
			wsdl = at
		}
		if wsdl == "" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/xml; charset=utf-8")
		_, _ = io.WriteString(w, wsdl)
		return
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	req := RecordedRequest{
		Action: strings.Trim(r.Header.Get("SOAPAction"), `"`),
		Path:   r.URL.Path,
		Body:   string(data),
	}
	req.Username, _, _ = r.BasicAuth()
	req.Op, req.Payload = parsePayload(data)

	s.mu.Lock()
	s.reqs = append(s.reqs, req)
	s.mu.Unlock()

	status, body := s.respond(req)
	w.Header().Set("Content-Type", "text/xml; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

// parsePayload pulls the first Body child out of a request envelope. Names
// are matched by local part so the caller's namespace prefixes do not matter.
func parsePayload(data []byte) (string, *etree.Element) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return "", nil
	}
	root := doc.Root()
	if root == nil {
		return "", nil
	}
	for _, child := range root.ChildElements() {
		if child.Tag != "Body" {
			continue
		}
		if els := child.ChildElements(); len(els) > 0 {
			return els[0].Tag, els[0]
		}
	}
	return "", nil
}

// Envelope wraps payload XML in a SOAP 1.1 envelope.
func Envelope(payload string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>` +
		`<soapenv:Envelope xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/">` +
		`<soapenv:Body>` + payload + `</soapenv:Body></soapenv:Envelope>`
}

// FaultBody builds an enveloped SOAP 1.1 fault.
func FaultBody(code, message, detail string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<soapenv:Fault><faultcode>%s</faultcode><faultstring>%s</faultstring>`, code, message)
	if detail != "" {
		fmt.Fprintf(&b, `<detail>%s</detail>`, detail)
	}
	b.WriteString(`</soapenv:Fault>`)
	return Envelope(b.String())
}
