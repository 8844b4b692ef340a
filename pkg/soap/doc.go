// Package soap implements the SOAP 1.1 client transport used by every CUCM
// service family. It owns envelope framing, fault parsing, HTTP delivery
// with basic authentication, and nothing else: request bodies are built and
// interpreted by the schema-driven layers above it.
//
// CUCM speaks SOAP 1.1 exclusively, so there is no SOAP 1.2 support.
package soap
