// Package binding turns schema catalogs into callable operations.
//
// A Client pairs a type catalog and an operation catalog with a transport.
// Requests are rendered from loosely typed Args against the operation's
// request type, in schema order, with category semantics deciding what an
// omitted field means: add-style calls enforce required fields and fill
// schema defaults, update-style omission means "leave unchanged", and
// get/list-style omission means "no filter". Responses are normalized into
// one of three result forms: a string for scalar results, an Object for
// singular rows, and a slice for listings.
//
// Validation failures surface before anything touches the network:
// MissingFieldError, ConflictingFieldsError, and ValidationError all come
// out of the build step. Errors from the server itself arrive as *soap.Fault
// through the transport, and a singular read whose row is absent returns
// ErrNotFound.
package binding
