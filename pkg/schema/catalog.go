package schema

import (
	"fmt"
	"sort"
	"strings"
)

// TypeCatalog resolves type names to descriptors. Built-in XSD primitives
// are always present alongside the types loaded from schema documents.
type TypeCatalog struct {
	types map[string]*TypeDescriptor
}

// Resolve returns the descriptor for the named type.
func (c *TypeCatalog) Resolve(name string) (*TypeDescriptor, error) {
	td, ok := c.types[name]
	if !ok {
		return nil, &SchemaError{Detail: fmt.Sprintf("unknown type %q", name)}
	}
	return td, nil
}

// Len returns the number of catalogued types, built-ins included.
func (c *TypeCatalog) Len() int { return len(c.types) }

// Names returns all type names in sorted order.
func (c *TypeCatalog) Names() []string {
	names := make([]string, 0, len(c.types))
	for name := range c.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// OperationCatalog resolves operation names to descriptors. Lookup is
// verbatim: vendor names keep their exact spelling and case.
type OperationCatalog struct {
	service  string
	ns       string
	location string
	ops      map[string]*OperationDescriptor
}

// NewOperationCatalog builds a catalog from a descriptor list. Duplicate
// operation names are a schema defect.
func NewOperationCatalog(service, targetNamespace string, ops []*OperationDescriptor) (*OperationCatalog, error) {
	c := &OperationCatalog{
		service: service,
		ns:      targetNamespace,
		ops:     make(map[string]*OperationDescriptor, len(ops)),
	}
	for _, op := range ops {
		if _, dup := c.ops[op.Name]; dup {
			return nil, schemaErrorf(service, "duplicate operation %q", op.Name)
		}
		c.ops[op.Name] = op
	}
	return c, nil
}

// Service returns the WSDL service name.
func (c *OperationCatalog) Service() string { return c.service }

// TargetNamespace returns the namespace request payloads are qualified with.
func (c *OperationCatalog) TargetNamespace() string { return c.ns }

// Location returns the soap:address advertised by the WSDL, if any. Clients
// normally override it with their configured host.
func (c *OperationCatalog) Location() string { return c.location }

// Resolve returns the descriptor for the named operation.
func (c *OperationCatalog) Resolve(name string) (*OperationDescriptor, error) {
	op, ok := c.ops[name]
	if !ok {
		return nil, &UnknownOperationError{Name: name}
	}
	return op, nil
}

// Operations returns all descriptors sorted by name.
func (c *OperationCatalog) Operations() []*OperationDescriptor {
	ops := make([]*OperationDescriptor, 0, len(c.ops))
	for _, op := range c.ops {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i].Name < ops[j].Name })
	return ops
}

// Len returns the number of catalogued operations.
func (c *OperationCatalog) Len() int { return len(c.ops) }

// --- catalog building ---

type rawType struct {
	simple  *xsdSimpleType
	complex *xsdComplexType
	alias   string // top-level element referencing a named type
}

type catalogBuilder struct {
	doc   string
	raw   map[string]*rawType
	done  map[string]*TypeDescriptor
	synth map[string]bool // types synthesized from rpc-style message parts
}

func newCatalogBuilder(doc string) *catalogBuilder {
	b := &catalogBuilder{
		doc:   doc,
		raw:   make(map[string]*rawType),
		done:  make(map[string]*TypeDescriptor),
		synth: make(map[string]bool),
	}
	for name, prim := range builtinPrimitives {
		b.done[name] = &TypeDescriptor{Name: name, Kind: KindScalar, Primitive: prim}
	}
	return b
}

var builtinPrimitives = map[string]Primitive{
	"string":           PrimString,
	"normalizedString": PrimString,
	"token":            PrimString,
	"NMTOKEN":          PrimString,
	"Name":             PrimString,
	"NCName":           PrimString,
	"QName":            PrimString,
	"anyURI":           PrimString,
	"language":         PrimString,
	"ID":               PrimString,
	"IDREF":            PrimString,
	"date":             PrimString,
	"dateTime":         PrimString,
	"time":             PrimString,
	"duration":         PrimString,
	"gYear":            PrimString,
	"gMonth":           PrimString,
	"gDay":             PrimString,

	"int":                PrimInteger,
	"long":               PrimInteger,
	"short":              PrimInteger,
	"byte":               PrimInteger,
	"integer":            PrimInteger,
	"nonNegativeInteger": PrimInteger,
	"nonPositiveInteger": PrimInteger,
	"positiveInteger":    PrimInteger,
	"negativeInteger":    PrimInteger,
	"unsignedLong":       PrimInteger,
	"unsignedInt":        PrimInteger,
	"unsignedShort":      PrimInteger,
	"unsignedByte":       PrimInteger,

	"decimal": PrimDecimal,
	"double":  PrimDecimal,
	"float":   PrimDecimal,

	"boolean": PrimBoolean,

	"base64Binary": PrimBinary,
	"hexBinary":    PrimBinary,

	"anyType":       PrimAny,
	"anySimpleType": PrimAny,
}

func (b *catalogBuilder) registerSchema(s *xsdSchema) error {
	for _, st := range s.simpleTypes {
		if st.name == "" {
			return schemaErrorf(b.doc, "simple type without a name")
		}
		if _, dup := b.raw[st.name]; dup {
			return schemaErrorf(b.doc, "duplicate type %q", st.name)
		}
		b.raw[st.name] = &rawType{simple: st}
	}
	for _, ct := range s.complexTypes {
		if err := b.registerComplex(ct.name, ct); err != nil {
			return err
		}
	}
	for _, el := range s.elements {
		if el.name == "" {
			return schemaErrorf(b.doc, "element without a name")
		}
		switch {
		case el.inline != nil:
			if err := b.registerComplex(el.name, el.inline); err != nil {
				return err
			}
		case el.typ != "":
			if _, dup := b.raw[el.name]; dup {
				return schemaErrorf(b.doc, "duplicate type %q", el.name)
			}
			b.raw[el.name] = &rawType{alias: el.typ}
		default:
			// Declaration-only element: treat as an empty complex type.
			if err := b.registerComplex(el.name, &xsdComplexType{}); err != nil {
				return err
			}
		}
	}
	return nil
}

// registerComplex registers a complex type, hoisting anonymous inline types
// under synthesized names so fields can reference them like any other type.
func (b *catalogBuilder) registerComplex(name string, ct *xsdComplexType) error {
	if name == "" {
		return schemaErrorf(b.doc, "complex type without a name")
	}
	if _, dup := b.raw[name]; dup {
		return schemaErrorf(b.doc, "duplicate type %q", name)
	}
	b.raw[name] = &rawType{complex: ct}
	for _, f := range ct.fields {
		if f.inline == nil {
			continue
		}
		inner := name + "_" + f.name
		inline := f.inline
		f.inline = nil
		f.typ = inner
		if err := b.registerComplex(inner, inline); err != nil {
			return err
		}
	}
	return nil
}

// build flattens every registered type and verifies that all field
// references resolve.
func (b *catalogBuilder) build() (*TypeCatalog, error) {
	names := make([]string, 0, len(b.raw))
	for name := range b.raw {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if _, err := b.resolveType(name, make(map[string]bool)); err != nil {
			return nil, err
		}
	}

	for _, name := range names {
		td := b.done[name]
		for i := range td.Fields {
			f := &td.Fields[i]
			if f.Type == "" {
				return nil, schemaErrorf(b.doc, "field %q of type %q has no type", f.Name, name)
			}
			if _, ok := b.done[f.Type]; !ok {
				return nil, schemaErrorf(b.doc, "type %q references unresolved type %q (field %q)", name, f.Type, f.Name)
			}
		}
	}

	return &TypeCatalog{types: b.done}, nil
}

func (b *catalogBuilder) resolveType(name string, visiting map[string]bool) (*TypeDescriptor, error) {
	if td, ok := b.done[name]; ok {
		return td, nil
	}
	if visiting[name] {
		return nil, schemaErrorf(b.doc, "type cycle through %q", name)
	}
	rt, ok := b.raw[name]
	if !ok {
		return nil, schemaErrorf(b.doc, "unresolved type reference %q", name)
	}
	visiting[name] = true
	defer delete(visiting, name)

	var td *TypeDescriptor
	var err error
	switch {
	case rt.simple != nil:
		td, err = b.resolveSimple(name, rt.simple, visiting)
	case rt.complex != nil:
		td, err = b.resolveComplex(name, rt.complex, visiting)
	default:
		target, terr := b.resolveType(rt.alias, visiting)
		if terr != nil {
			return nil, terr
		}
		clone := *target
		clone.Name = name
		td = &clone
	}
	if err != nil {
		return nil, err
	}
	b.done[name] = td
	return td, nil
}

func (b *catalogBuilder) resolveSimple(name string, st *xsdSimpleType, visiting map[string]bool) (*TypeDescriptor, error) {
	td := &TypeDescriptor{
		Name:      name,
		Kind:      KindScalar,
		Primitive: PrimString,
		Base:      st.base,
		MaxLength: st.maxLength,
		Pattern:   st.pattern,
	}
	if st.base != "" {
		base, err := b.resolveType(st.base, visiting)
		if err != nil {
			return nil, err
		}
		if base.Kind == KindComplex {
			return nil, schemaErrorf(b.doc, "simple type %q restricts complex type %q", name, st.base)
		}
		td.Primitive = base.Primitive
		if td.MaxLength == 0 {
			td.MaxLength = base.MaxLength
		}
		if td.Pattern == "" {
			td.Pattern = base.Pattern
		}
		if base.Kind == KindEnum && len(st.enum) == 0 {
			td.Kind = KindEnum
			td.Enum = base.Enum
		}
	}
	if len(st.enum) > 0 {
		td.Kind = KindEnum
		td.Enum = st.enum
	}
	if looksLikeUUID(name, td.Pattern) {
		td.Primitive = PrimUUID
	}
	return td, nil
}

// looksLikeUUID recognizes the AXL XUUID shape: a braced 8-4-4-4-12 hex
// pattern, or the canonical type name.
func looksLikeUUID(name, pattern string) bool {
	if name == "XUUID" {
		return true
	}
	return strings.Contains(pattern, "{8}") && strings.Contains(pattern, "{12}")
}

func (b *catalogBuilder) resolveComplex(name string, ct *xsdComplexType, visiting map[string]bool) (*TypeDescriptor, error) {
	// simpleContent extensions are scalars on the wire; their attributes
	// (typically uuid) are read back by the normalizer, not modeled here.
	if ct.simpleBase != "" {
		base, err := b.resolveType(ct.simpleBase, visiting)
		if err != nil {
			return nil, err
		}
		if base.Kind == KindComplex {
			return nil, schemaErrorf(b.doc, "simpleContent of %q extends complex type %q", name, ct.simpleBase)
		}
		return &TypeDescriptor{
			Name:      name,
			Kind:      base.Kind,
			Primitive: base.Primitive,
			Base:      ct.simpleBase,
			Enum:      base.Enum,
			MaxLength: base.MaxLength,
			Pattern:   base.Pattern,
		}, nil
	}

	td := &TypeDescriptor{Name: name, Kind: KindComplex, Base: ct.base}

	if ct.base != "" {
		base, err := b.resolveType(ct.base, visiting)
		if err != nil {
			return nil, err
		}
		if base.Kind != KindComplex {
			return nil, schemaErrorf(b.doc, "type %q extends non-complex type %q", name, ct.base)
		}
		td.Fields = append(td.Fields, base.Fields...)
	}

	for _, f := range ct.fields {
		if f.name == "" {
			return nil, schemaErrorf(b.doc, "type %q has a field without a name", name)
		}
		td.Fields = append(td.Fields, FieldDescriptor{
			Name:        f.name,
			Type:        f.typ,
			Required:    !f.optional && !f.repeated,
			Repeated:    f.repeated,
			Nillable:    f.nillable,
			Default:     f.defaultVal,
			HasDefault:  f.hasDefault,
			Choice:      f.choice,
			DefaultTags: f.defaultTags,
		})
	}
	for _, a := range ct.attrs {
		typ := a.typ
		if typ == "" {
			typ = "string"
		}
		td.Fields = append(td.Fields, FieldDescriptor{Name: a.name, Type: typ, Attribute: true})
	}

	seen := make(map[string]bool, len(td.Fields))
	for _, f := range td.Fields {
		if seen[f.Name] {
			return nil, schemaErrorf(b.doc, "duplicate field %q in type %q", f.Name, name)
		}
		seen[f.Name] = true
	}

	return td, nil
}

// buildOperations turns portType operations into descriptors, resolving each
// message to a catalog type. Must run after build.
func (b *catalogBuilder) buildOperations(def *wsdlDefinitions) ([]*OperationDescriptor, error) {
	actions := buildSOAPActionMap(def)
	msgs := make(map[string]*wsdlMessage, len(def.messages))
	for i := range def.messages {
		msgs[def.messages[i].name] = &def.messages[i]
	}

	var ops []*OperationDescriptor
	for _, pt := range def.portTypes {
		for _, op := range pt.operations {
			reqType, err := b.messageType(msgs, op.input, op.name, "input")
			if err != nil {
				return nil, err
			}
			respType, err := b.messageType(msgs, op.output, op.name, "output")
			if err != nil {
				return nil, err
			}
			ops = append(ops, &OperationDescriptor{
				Name:     op.name,
				Category: Classify(op.name),
				Request:  reqType,
				Response: respType,
				Action:   actions[op.name],
				Doc:      op.doc,
			})
		}
	}
	return ops, nil
}

// messageType resolves a message reference to a catalog type name. Document
// style messages reference one element part. rpc style messages carry typed
// parts and are synthesized into a catalog type named after the message.
func (b *catalogBuilder) messageType(msgs map[string]*wsdlMessage, msgName, opName, dir string) (string, error) {
	if msgName == "" {
		return "", schemaErrorf(b.doc, "operation %q has no %s message", opName, dir)
	}
	msg, ok := msgs[msgName]
	if !ok {
		return "", schemaErrorf(b.doc, "operation %q references unknown message %q", opName, msgName)
	}

	if len(msg.parts) == 1 && msg.parts[0].element != "" {
		el := msg.parts[0].element
		if _, ok := b.done[el]; !ok {
			return "", schemaErrorf(b.doc, "message %q references unknown element %q", msgName, el)
		}
		return el, nil
	}
	for _, p := range msg.parts {
		if p.element != "" {
			return "", schemaErrorf(b.doc, "message %q mixes element and type parts", msgName)
		}
	}

	if b.synth[msgName] {
		return msgName, nil
	}
	if _, exists := b.done[msgName]; exists {
		return "", schemaErrorf(b.doc, "message %q collides with type %q", msgName, msgName)
	}

	td := &TypeDescriptor{Name: msgName, Kind: KindComplex}
	for _, p := range msg.parts {
		if p.typ == "" {
			return "", schemaErrorf(b.doc, "part %q of message %q has neither element nor type", p.name, msgName)
		}
		if _, ok := b.done[p.typ]; !ok {
			return "", schemaErrorf(b.doc, "message %q references unresolved type %q", msgName, p.typ)
		}
		td.Fields = append(td.Fields, FieldDescriptor{Name: p.name, Type: p.typ, Required: true})
	}
	b.done[msgName] = td
	b.synth[msgName] = true
	return msgName, nil
}

// deriveDefaultTags fills each get/list operation's default projection: the
// schema's own appinfo hint when present, otherwise the first-level scalar
// fields of the response row type. The default is deliberately narrow; it is
// never "all tags".
func deriveDefaultTags(types *TypeCatalog, ops *OperationCatalog) {
	for _, od := range ops.ops {
		req, err := types.Resolve(od.Request)
		if err != nil {
			continue
		}
		f := req.Field("returnedTags")
		if f == nil {
			continue
		}
		if len(f.DefaultTags) > 0 {
			od.DefaultTags = f.DefaultTags
			continue
		}
		od.DefaultTags = scalarFieldNames(types, od.Response)
	}
}

func scalarFieldNames(types *TypeCatalog, respType string) []string {
	shape, err := ResponseShape(types, respType)
	if err != nil || shape.Type == "" {
		return nil
	}
	row, err := types.Resolve(shape.Type)
	if err != nil || row.Kind != KindComplex {
		return nil
	}
	var tags []string
	for _, f := range row.Fields {
		if f.Repeated {
			continue
		}
		ft, err := types.Resolve(f.Type)
		if err != nil || ft.Kind == KindComplex {
			continue
		}
		tags = append(tags, f.Name)
	}
	return tags
}
