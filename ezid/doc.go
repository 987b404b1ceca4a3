// Package ezid is a client for the EZID persistent-identifier registry.
//
// It mints and updates DOIs and exchanges their DataCite kernel-3 metadata
// with the registry over EZID's line-oriented text protocol: request and
// response bodies are newline-separated "key: value" lines, with the
// rendered XML document percent-encoded into a single "datacite:" line.
//
// Every lifecycle operation is a single synchronous round trip. Nothing is
// retried or cached here, and a record's in-memory state is replaced only
// after the registry has confirmed the corresponding write, so a Record
// never reflects an update the registry has not acknowledged.
package ezid
