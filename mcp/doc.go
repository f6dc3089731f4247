// Package mcp contains the protocol data types and constants shared by the
// transport and registry layers. It mirrors the wire representation of the
// Model Context Protocol subset this server implements while keeping the
// surface Go-friendly (exported structs with json tags, string constants for
// method names).
//
// The package is intentionally free of transport logic: the HTTP transport
// imports these types but implements its own framing and error mapping, and
// the registry layer constructs responses from these concrete types.
//
// # Method Names
//
// JSON-RPC method and notification names are enumerated as Method constants
// (e.g. ToolsListMethod). Using the constants avoids typographical mistakes
// and ensures a single point of truth if the supported surface grows.
package mcp
