package schema

import "fmt"

// SchemaError reports a WSDL or XSD document that cannot be turned into a
// usable catalog: unreadable XML, unresolved type references, extension
// cycles, or duplicate definitions.
type SchemaError struct {
	Doc    string // document or definition the defect was found in
	Detail string
}

func (e *SchemaError) Error() string {
	if e.Doc == "" {
		return "schema error: " + e.Detail
	}
	return fmt.Sprintf("schema error in %s: %s", e.Doc, e.Detail)
}

func schemaErrorf(doc, format string, args ...any) *SchemaError {
	return &SchemaError{Doc: doc, Detail: fmt.Sprintf(format, args...)}
}

// UnknownOperationError reports a lookup for an operation name the catalog
// does not carry. Names are matched verbatim, including case.
type UnknownOperationError struct {
	Name string
}

func (e *UnknownOperationError) Error() string {
	return fmt.Sprintf("unknown operation %q", e.Name)
}
