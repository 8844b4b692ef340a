package schema

// ShapeKind describes how an operation's response payload is laid out once
// the wrapper elements are peeled off.
type ShapeKind int

const (
	// ShapeList is a repeated row field: zero or more rows.
	ShapeList ShapeKind = iota
	// ShapeScalar is a single text value.
	ShapeScalar
	// ShapeStruct is a group of fields projected as one object. A struct
	// behind a non-empty path is a singular row: its absence means the
	// requested entity does not exist.
	ShapeStruct
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeList:
		return "list"
	case ShapeScalar:
		return "scalar"
	case ShapeStruct:
		return "struct"
	default:
		return "unknown"
	}
}

// Shape is the normal form of a response type: the wrapper element names
// between the response root and the result, and what lives at the end.
//
// AXL wraps rows in a "return" element, the serviceability services in a
// "<operation>Return" element; walking single-field wrappers until the walk
// hits a repeated field, a scalar, or a multi-field type covers both.
type Shape struct {
	Kind  ShapeKind
	Path  []string // wrapper element names, outermost first
	Field string   // row or leaf element name (list and scalar shapes)
	Type  string   // row, leaf, or struct type name
}

// ResponseShape computes the shape of the named response type.
func ResponseShape(types *TypeCatalog, name string) (*Shape, error) {
	td, err := types.Resolve(name)
	if err != nil {
		return nil, err
	}

	var path []string
	seen := make(map[string]bool)
	for {
		if td.Kind != KindComplex {
			// The response element itself carries the value.
			return &Shape{Kind: ShapeScalar, Path: path, Type: td.Name}, nil
		}
		if len(td.Fields) != 1 || seen[td.Name] {
			return &Shape{Kind: ShapeStruct, Path: path, Type: td.Name}, nil
		}
		seen[td.Name] = true

		f := td.Fields[0]
		ft, err := types.Resolve(f.Type)
		if err != nil {
			return nil, err
		}
		if f.Repeated {
			return &Shape{Kind: ShapeList, Path: path, Field: f.Name, Type: ft.Name}, nil
		}
		if ft.Kind != KindComplex {
			return &Shape{Kind: ShapeScalar, Path: path, Field: f.Name, Type: ft.Name}, nil
		}
		path = append(path, f.Name)
		td = ft
	}
}
