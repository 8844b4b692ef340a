// Package schema turns Cisco UC WSDL/XSD documents into typed catalogs.
//
// A serviceability or AXL WSDL is parsed once into two artifacts: a
// TypeCatalog holding a descriptor for every named type (simple types,
// complex types, and top-level elements), and an OperationCatalog holding a
// descriptor for every operation the WSDL binds. Field descriptors reference
// other types by name rather than by pointer, so the recursive type graphs
// that appear in AXL schemas stay representable without special cases.
//
// The catalogs are immutable after loading and safe for concurrent use.
// Loading is strict about structural defects: unresolved type references,
// extension cycles, duplicate field or operation names, and unreadable XML
// all surface as *SchemaError at load time instead of at call time.
package schema
