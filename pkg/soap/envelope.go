package soap

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// SOAP 1.1 constants.
const (
	// Namespace is the SOAP 1.1 envelope namespace.
	Namespace = "http://schemas.xmlsoap.org/soap/envelope/"
	// ContentType is the SOAP 1.1 content type.
	ContentType = "text/xml; charset=utf-8"
)

// Envelope wraps a payload element in a SOAP 1.1 envelope document. The
// payload becomes the only child of the Body element.
func Envelope(payload *etree.Element) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	env := doc.CreateElement("soapenv:Envelope")
	env.CreateAttr("xmlns:soapenv", Namespace)
	env.CreateElement("soapenv:Header")
	body := env.CreateElement("soapenv:Body")
	body.AddChild(payload)
	return doc
}

// ParseEnvelope parses a response envelope and returns the first Body child.
// A Fault body is returned as a *Fault error. Namespace prefixes vary by
// server, so elements are matched by local name.
func ParseEnvelope(data []byte) (*etree.Element, error) {
	doc := newDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("invalid XML: %w", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, errors.New("empty document")
	}
	if root.Tag != "Envelope" {
		return nil, fmt.Errorf("root element must be Envelope, got %s", root.Tag)
	}

	body := findChild(root, "Body")
	if body == nil {
		return nil, errors.New("SOAP Body not found")
	}
	children := body.ChildElements()
	if len(children) == 0 {
		return nil, errors.New("SOAP Body is empty")
	}

	payload := children[0]
	if payload.Tag == "Fault" {
		return nil, parseFault(payload)
	}
	return payload, nil
}

// newDocument returns a document that can decode the non-UTF-8 charsets
// older CUCM releases emit (ISO-8859-1 in particular).
func newDocument() *etree.Document {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charsetReader
	return doc
}

func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(charset)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("unsupported charset %q", charset)
	}
	return transform.NewReader(input, enc.NewDecoder()), nil
}

// findChild returns the first direct child with the given local name.
func findChild(parent *etree.Element, name string) *etree.Element {
	for _, child := range parent.ChildElements() {
		if child.Tag == name {
			return child
		}
	}
	return nil
}

// innerXML serializes an element's children, elements and text alike.
func innerXML(el *etree.Element) string {
	var sb strings.Builder
	for _, child := range el.Child {
		switch c := child.(type) {
		case *etree.Element:
			d := etree.NewDocument()
			d.SetRoot(c.Copy())
			s, err := d.WriteToString()
			if err == nil {
				sb.WriteString(s)
			}
		case *etree.CharData:
			sb.WriteString(c.Data)
		}
	}
	return strings.TrimSpace(sb.String())
}
