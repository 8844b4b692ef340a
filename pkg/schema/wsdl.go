package schema

import (
	"io/fs"
	"path"
	"strings"

	"github.com/beevik/etree"
)

// Raw WSDL 1.1 model.

type wsdlDefinitions struct {
	name            string
	targetNamespace string
	messages        []wsdlMessage
	portTypes       []wsdlPortType
	bindings        []wsdlBinding
	services        []wsdlService
	schemas         []*xsdSchema
}

type wsdlMessage struct {
	name  string
	parts []wsdlPart
}

type wsdlPart struct {
	name    string
	element string // QName reference to an XSD element (document style)
	typ     string // QName reference to an XSD type (rpc style)
}

type wsdlPortType struct {
	name       string
	operations []wsdlOperation
}

type wsdlOperation struct {
	name   string
	doc    string
	input  string // message name
	output string // message name
}

type wsdlBinding struct {
	name       string
	operations []wsdlBindingOperation
}

type wsdlBindingOperation struct {
	name       string
	soapAction string
}

type wsdlService struct {
	name     string
	location string // soap:address of the first port
}

func parseWSDLDefinitions(root *etree.Element) *wsdlDefinitions {
	def := &wsdlDefinitions{
		name:            root.SelectAttrValue("name", ""),
		targetNamespace: root.SelectAttrValue("targetNamespace", ""),
	}

	for _, msgEl := range findElements(root, "message") {
		msg := wsdlMessage{name: msgEl.SelectAttrValue("name", "")}
		for _, partEl := range findElements(msgEl, "part") {
			msg.parts = append(msg.parts, wsdlPart{
				name:    partEl.SelectAttrValue("name", ""),
				element: stripPrefix(partEl.SelectAttrValue("element", "")),
				typ:     stripPrefix(partEl.SelectAttrValue("type", "")),
			})
		}
		def.messages = append(def.messages, msg)
	}

	for _, ptEl := range findElements(root, "portType") {
		pt := wsdlPortType{name: ptEl.SelectAttrValue("name", "")}
		for _, opEl := range findElements(ptEl, "operation") {
			op := wsdlOperation{name: opEl.SelectAttrValue("name", "")}
			if doc := findElement(opEl, "documentation"); doc != nil {
				op.doc = strings.TrimSpace(doc.Text())
			}
			if inp := findElement(opEl, "input"); inp != nil {
				op.input = stripPrefix(inp.SelectAttrValue("message", ""))
			}
			if out := findElement(opEl, "output"); out != nil {
				op.output = stripPrefix(out.SelectAttrValue("message", ""))
			}
			pt.operations = append(pt.operations, op)
		}
		def.portTypes = append(def.portTypes, pt)
	}

	for _, bindEl := range findElements(root, "binding") {
		b := wsdlBinding{name: bindEl.SelectAttrValue("name", "")}
		for _, opEl := range findElements(bindEl, "operation") {
			bop := wsdlBindingOperation{name: opEl.SelectAttrValue("name", "")}
			if soapOp := findSOAPChild(opEl, "operation"); soapOp != nil {
				bop.soapAction = soapOp.SelectAttrValue("soapAction", "")
			}
			b.operations = append(b.operations, bop)
		}
		def.bindings = append(def.bindings, b)
	}

	for _, svcEl := range findElements(root, "service") {
		svc := wsdlService{name: svcEl.SelectAttrValue("name", "")}
		for _, portEl := range findElements(svcEl, "port") {
			if addr := findSOAPChild(portEl, "address"); addr != nil && svc.location == "" {
				svc.location = addr.SelectAttrValue("location", "")
			}
		}
		def.services = append(def.services, svc)
	}

	for _, typesEl := range findElements(root, "types") {
		for _, schemaEl := range findElements(typesEl, "schema") {
			def.schemas = append(def.schemas, parseXSDSchema(schemaEl))
		}
	}

	return def
}

// findSOAPChild finds a direct child by local name in a WSDL SOAP binding
// namespace. etree keeps the prefix in Space, so both common prefixes and
// resolved URIs are accepted.
func findSOAPChild(parent *etree.Element, name string) *etree.Element {
	for _, child := range parent.ChildElements() {
		if child.Tag == name && isSOAPBindingNS(child.Space) {
			return child
		}
	}
	return nil
}

func isSOAPBindingNS(ns string) bool {
	switch ns {
	case "soap", "soap12", "wsoap":
		return true
	case "http://schemas.xmlsoap.org/wsdl/soap/",
		"http://schemas.xmlsoap.org/wsdl/soap12/":
		return true
	default:
		return false
	}
}

func buildSOAPActionMap(def *wsdlDefinitions) map[string]string {
	m := make(map[string]string)
	for _, b := range def.bindings {
		for _, op := range b.operations {
			if op.soapAction != "" {
				m[op.name] = op.soapAction
			}
		}
	}
	return m
}

// LoadWSDL parses a WSDL 1.1 document with inline XSD schemas into a type
// catalog and an operation catalog. Schema imports are not followed; use
// LoadWSDLFile when the WSDL references sibling XSD documents.
func LoadWSDL(data []byte) (*TypeCatalog, *OperationCatalog, error) {
	return loadWSDL(data, nil, "")
}

// LoadWSDLFile reads a WSDL document from fsys and parses it. xsd:import and
// xsd:include references are resolved relative to the WSDL's directory, the
// way Cisco ships AXLAPI.wsdl next to AXLSoap.xsd.
func LoadWSDLFile(fsys fs.FS, name string) (*TypeCatalog, *OperationCatalog, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, nil, schemaErrorf(name, "read: %v", err)
	}
	return loadWSDL(data, fsys, name)
}

func loadWSDL(data []byte, fsys fs.FS, name string) (*TypeCatalog, *OperationCatalog, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, nil, schemaErrorf(name, "parse XML: %v", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, nil, schemaErrorf(name, "empty WSDL document")
	}
	if localName(root) != "definitions" {
		return nil, nil, schemaErrorf(name, "root element is %q, want definitions", localName(root))
	}

	def := parseWSDLDefinitions(root)

	schemas := def.schemas
	if fsys != nil {
		resolved, err := resolveSchemaImports(fsys, path.Dir(name), schemas)
		if err != nil {
			return nil, nil, err
		}
		schemas = resolved
	}

	doc2 := def.name
	if doc2 == "" && len(def.services) > 0 {
		doc2 = def.services[0].name
	}

	builder := newCatalogBuilder(doc2)
	for _, s := range schemas {
		if err := builder.registerSchema(s); err != nil {
			return nil, nil, err
		}
	}
	types, err := builder.build()
	if err != nil {
		return nil, nil, err
	}

	ops, err := builder.buildOperations(def)
	if err != nil {
		return nil, nil, err
	}

	service := doc2
	location := ""
	if len(def.services) > 0 {
		service = def.services[0].name
		location = def.services[0].location
	}

	// Request payloads are qualified with the namespace the operation
	// elements are declared in, which in AXL differs from the definitions
	// namespace.
	bodyNS := def.targetNamespace
	for _, s := range schemas {
		if s.targetNamespace != "" {
			bodyNS = s.targetNamespace
			break
		}
	}

	opCatalog, err := NewOperationCatalog(service, bodyNS, ops)
	if err != nil {
		return nil, nil, err
	}
	opCatalog.location = location

	deriveDefaultTags(types, opCatalog)

	return types, opCatalog, nil
}

// resolveSchemaImports loads xsd:import / xsd:include targets, depth-first,
// each document at most once.
func resolveSchemaImports(fsys fs.FS, dir string, schemas []*xsdSchema) ([]*xsdSchema, error) {
	out := make([]*xsdSchema, 0, len(schemas))
	seen := make(map[string]bool)

	var load func(s *xsdSchema) error
	load = func(s *xsdSchema) error {
		out = append(out, s)
		for _, loc := range s.imports {
			p := path.Clean(path.Join(dir, loc))
			if seen[p] {
				continue
			}
			seen[p] = true
			data, err := fs.ReadFile(fsys, p)
			if err != nil {
				return schemaErrorf(p, "read imported schema: %v", err)
			}
			doc := etree.NewDocument()
			if err := doc.ReadFromBytes(data); err != nil {
				return schemaErrorf(p, "parse imported schema: %v", err)
			}
			root := doc.Root()
			if root == nil || localName(root) != "schema" {
				return schemaErrorf(p, "imported document is not an XSD schema")
			}
			if err := load(parseXSDSchema(root)); err != nil {
				return err
			}
		}
		return nil
	}

	for _, s := range schemas {
		if err := load(s); err != nil {
			return nil, err
		}
	}
	return out, nil
}
