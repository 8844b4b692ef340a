// Package schematest provides fixture WSDL documents and a canned SOAP
// server for tests. The fixtures are trimmed-down versions of the Cisco
// service schemas: a few operations each, but structurally faithful, with
// extensions, choices, inline types, uuid attributes and rpc-style messages.
package schematest
