package schema

import "strings"

// Kind classifies a type descriptor.
type Kind int

const (
	// KindScalar is a single text value (string, int, boolean, ...).
	KindScalar Kind = iota
	// KindEnum is a scalar restricted to a fixed set of literals.
	KindEnum
	// KindComplex is a structured type with named fields.
	KindComplex
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindEnum:
		return "enum"
	case KindComplex:
		return "complex"
	default:
		return "unknown"
	}
}

// Primitive is the value space a scalar or enum type encodes to on the wire.
type Primitive string

const (
	PrimString  Primitive = "string"
	PrimInteger Primitive = "integer"
	PrimDecimal Primitive = "decimal"
	PrimBoolean Primitive = "boolean"
	PrimUUID    Primitive = "uuid"
	PrimBinary  Primitive = "binary"
	PrimAny     Primitive = "any"
)

// FieldDescriptor describes one element (or attribute) of a complex type.
// Type references are by name and resolved through the owning TypeCatalog,
// which keeps recursive schemas representable.
type FieldDescriptor struct {
	Name       string
	Type       string
	Required   bool
	Repeated   bool
	Nillable   bool
	Attribute  bool // declared as an XML attribute rather than a child element
	Default    string
	HasDefault bool

	// Choice lists the other members of the same xsd:choice group. At most
	// one member of a group may be supplied in a request.
	Choice []string

	// DefaultTags carries the schema's own hint for the default projection
	// of a returnedTags field, taken from an xsd:appinfo annotation.
	DefaultTags []string
}

// TypeDescriptor describes one named type. For KindComplex the field list is
// already flattened: fields inherited through complexContent extension come
// first, in base-to-derived order.
type TypeDescriptor struct {
	Name      string
	Kind      Kind
	Primitive Primitive // scalar and enum types only
	Base      string    // extension or restriction base, informational
	Enum      []string  // allowed literals when Kind == KindEnum
	MaxLength int       // string length bound, 0 = unbounded
	Pattern   string    // restriction pattern, informational
	Fields    []FieldDescriptor
}

// Field returns the descriptor for the named field, or nil.
func (t *TypeDescriptor) Field(name string) *FieldDescriptor {
	for i := range t.Fields {
		if t.Fields[i].Name == name {
			return &t.Fields[i]
		}
	}
	return nil
}

// EnumAllows reports whether v is one of the type's enumeration literals.
// Matching is literal and case-sensitive.
func (t *TypeDescriptor) EnumAllows(v string) bool {
	for _, lit := range t.Enum {
		if lit == v {
			return true
		}
	}
	return false
}

// Category groups operations by the verb prefix of their vendor name. The
// category decides how omitted fields are treated when a request is built:
// only add-style operations enforce required fields, update-style omission
// means "leave unchanged", and get/list-style omission means "no filter".
type Category string

const (
	CategoryAdd     Category = "add"
	CategoryGet     Category = "get"
	CategoryUpdate  Category = "update"
	CategoryRemove  Category = "remove"
	CategoryList    Category = "list"
	CategoryExecute Category = "execute"
)

// Classify returns the category for an operation name. select* operations
// are criteria-driven reads and classify as get-style. Names with no known
// verb prefix fall into the execute bucket.
func Classify(name string) Category {
	switch {
	case strings.HasPrefix(name, "add"):
		return CategoryAdd
	case strings.HasPrefix(name, "get"):
		return CategoryGet
	case strings.HasPrefix(name, "update"):
		return CategoryUpdate
	case strings.HasPrefix(name, "remove"):
		return CategoryRemove
	case strings.HasPrefix(name, "list"):
		return CategoryList
	case strings.HasPrefix(name, "select"):
		return CategoryGet
	default:
		return CategoryExecute
	}
}

// OperationDescriptor describes one bound operation: its verbatim vendor
// name, the request and response types, and the SOAPAction advertised by the
// WSDL binding.
type OperationDescriptor struct {
	Name     string
	Category Category
	Request  string // request type name in the TypeCatalog
	Response string // response type name in the TypeCatalog
	Action   string // SOAPAction, may be empty
	Doc      string // wsdl:documentation text, if any

	// DefaultTags is the projection applied when a get- or list-style call
	// does not name its returnedTags: the schema's appinfo hint when one
	// exists, otherwise the first-level scalar fields of the row type.
	// Empty for operations without a returnedTags field.
	DefaultTags []string
}
